package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/cashcook"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zapcore"
)

// unsetenv clears key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"CASHCOOK_STORE_DRIVER", "CASHCOOK_STORE_PATH", "CASHCOOK_STORE_DSN",
		"CASHCOOK_CURRENCY", "CASHCOOK_RATES_KD", "CASHCOOK_RATES_USD",
		"CASHCOOK_REPORT_FORMAT", "CASHCOOK_AGENT_MODEL", "CASHCOOK_LOG_LEVEL",
	} {
		unsetenv(t, key)
	}
}

func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	c, err := Load("", noEnvFile(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := &Config{
		Store:    StoreConfig{Driver: "file", Path: ".cashcook"},
		Currency: "INR",
		Rates:    RatesConfig{KD: "279.151", USD: "86.20"},
		Report:   ReportConfig{Format: "pdf"},
		Agent:    AgentConfig{Model: "gemini-2.5-flash"},
		Log:      LogConfig{Level: "warn"},
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	rates, err := c.ConversionRates()
	if err != nil {
		t.Fatalf("ConversionRates() error = %v", err)
	}
	if !rates.KD.Equal(cashcook.DefaultRates.KD) || !rates.USD.Equal(cashcook.DefaultRates.USD) {
		t.Errorf("ConversionRates() = %+v, want the default rates", rates)
	}
	if lvl, err := c.LogLevel(); err != nil || lvl != zapcore.WarnLevel {
		t.Errorf("LogLevel() = %v, %v; want warn", lvl, err)
	}
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "cashcook.yaml")
	content := `store:
  driver: sqlite
  path: /tmp/cashcook.db
currency: KWD
rates:
  kd: 1
  usd: 0.307
report:
  format: xlsx
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path, noEnvFile(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Store.Driver != "sqlite" || c.Store.Path != "/tmp/cashcook.db" {
		t.Errorf("Store = %+v", c.Store)
	}
	if c.Currency != "KWD" || c.Report.Format != "xlsx" {
		t.Errorf("Currency = %q, Report = %+v", c.Currency, c.Report)
	}
	if c.Rates.KD != "1" || c.Rates.USD != "0.307" {
		t.Errorf("Rates = %+v, want numbers read as strings", c.Rates)
	}
	if c.Agent.Model != "gemini-2.5-flash" {
		t.Errorf("Agent.Model = %q, want the default", c.Agent.Model)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), noEnvFile(t)); err == nil {
		t.Error("Load() of a missing explicit file should fail")
	}
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("CASHCOOK_STORE_DRIVER", "postgres")
	t.Setenv("CASHCOOK_STORE_DSN", "postgres://localhost/cashcook")
	t.Setenv("CASHCOOK_RATES_USD", "80")

	c, err := Load("", noEnvFile(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Store.Driver != "postgres" || c.Store.DSN != "postgres://localhost/cashcook" {
		t.Errorf("Store = %+v", c.Store)
	}
	if c.Rates.USD != "80" {
		t.Errorf("Rates.USD = %q, want 80", c.Rates.USD)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	env := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(env, []byte("CASHCOOK_CURRENCY=USD\nCASHCOOK_LOG_LEVEL=debug\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// an explicit variable wins over the .env file.
	t.Setenv("CASHCOOK_LOG_LEVEL", "error")

	c, err := Load("", env)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Currency != "USD" {
		t.Errorf("Currency = %q, want USD from the env file", c.Currency)
	}
	if c.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want error from the environment", c.Log.Level)
	}
}

func TestConversionRates_Invalid(t *testing.T) {
	c := &Config{Rates: RatesConfig{KD: "zero", USD: "1"}}
	if _, err := c.ConversionRates(); err == nil {
		t.Error("ConversionRates() should reject non numeric rates")
	}
}
