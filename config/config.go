// Package config loads the cashcook settings.
//
// Settings come, by increasing priority, from defaults, an optional config
// file (yaml, json or toml), a .env file and CASHCOOK_ environment variables,
// e.g. CASHCOOK_STORE_DRIVER=sqlite sets store.driver.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/etnz/cashcook"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix prefixes the environment variables read by Load.
const EnvPrefix = "CASHCOOK"

type StoreConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
	DSN    string `mapstructure:"dsn"`
}

// RatesConfig holds the conversion divisors as decimal strings.
type RatesConfig struct {
	KD  string `mapstructure:"kd"`
	USD string `mapstructure:"usd"`
}

type ReportConfig struct {
	Format string `mapstructure:"format"`
}

type AgentConfig struct {
	Model string `mapstructure:"model"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Store    StoreConfig  `mapstructure:"store"`
	Currency string       `mapstructure:"currency"`
	Rates    RatesConfig  `mapstructure:"rates"`
	Report   ReportConfig `mapstructure:"report"`
	Agent    AgentConfig  `mapstructure:"agent"`
	Log      LogConfig    `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store.driver", cashcook.DriverFile)
	v.SetDefault("store.path", ".cashcook")
	v.SetDefault("store.dsn", "")
	v.SetDefault("currency", "INR")
	v.SetDefault("rates.kd", cashcook.DefaultRates.KD.String())
	v.SetDefault("rates.usd", cashcook.DefaultRates.USD.StringFixed(2))
	v.SetDefault("report.format", "pdf")
	v.SetDefault("agent.model", "gemini-2.5-flash")
	v.SetDefault("log.level", "warn")
}

// Load reads the configuration.
//
// If path is empty, a "cashcook.{yaml,json,toml}" file in the current directory
// is used when it exists. envFiles are loaded into the environment first,
// without overriding variables already set; missing ones are ignored. Without
// envFiles, ".env" is used.
func Load(path string, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read env file %q: %w", f, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	if path == "" {
		v.SetConfigName("cashcook")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// ConversionRates parses the configured rates.
func (c *Config) ConversionRates() (cashcook.Rates, error) {
	return cashcook.ParseRates(c.Rates.KD, c.Rates.USD)
}

// LogLevel parses the configured log level, e.g. "debug" or "warn".
func (c *Config) LogLevel() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.Log.Level)
}
