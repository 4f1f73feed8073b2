// Package cmd implements the cashcook command line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/cashcook"
	"github.com/etnz/cashcook/config"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Commands lists every cashcook subcommand, in help order.
var Commands = []subcommands.Command{
	&addCmd{},
	&editCmd{},
	&deleteCmd{},
	&clearCmd{},
	&listCmd{},
	&sortCmd{},
	&totalsCmd{},
	&reportCmd{},
	&queryCmd{},
	&importCmd{},
	&exportCmd{},
	&fmtCmd{},
	&categorizeCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, group(cmd.Name()))
	}
}

func group(name string) string {
	switch name {
	case "add", "edit", "delete", "clear", "list", "sort":
		return "transactions"
	case "totals", "report", "query":
		return "reports"
	case "import", "export", "fmt":
		return "storage"
	default:
		return ""
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the configuration file (default cashcook.yaml in the current directory)")
var storeDriver = flag.String("store", "", "Store driver: file, sqlite, postgres or memory (overrides store.driver)")
var storePath = flag.String("store-path", "", "Store directory or database file (overrides store.path)")
var verbose = flag.Bool("v", false, "Log debug messages")

// out and in are the command streams, replaced in tests.
var (
	out io.Writer = os.Stdout
	in  io.Reader = os.Stdin
)

// loadConfig loads the configuration and applies the command line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if *storeDriver != "" {
		cfg.Store.Driver = *storeDriver
	}
	if *storePath != "" {
		cfg.Store.Path = *storePath
	}
	return cfg, nil
}

// newLogger builds the stderr logger at the configured level.
func newLogger(cfg *config.Config) *zap.Logger {
	level, err := cfg.LogLevel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using warn\n", err)
		level = zapcore.WarnLevel
	}
	if *verbose {
		level = zapcore.DebugLevel
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableStacktrace = true
	zc.DisableCaller = true
	logger, err := zc.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// session is everything a command needs to work on the ledger.
type session struct {
	Config *config.Config
	Logger *zap.Logger
	Ledger *cashcook.Ledger
	store  cashcook.Store
}

// openSession is the central function to open the ledger.
func openSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg)
	store, err := cashcook.OpenStore(cfg.Store.Driver, cfg.Store.Path, cfg.Store.DSN)
	if err != nil {
		return nil, err
	}
	logger.Debug("store opened", zap.String("driver", cfg.Store.Driver), zap.String("path", cfg.Store.Path))
	l, err := cashcook.Open(store, cashcook.WithLogger(logger))
	if err != nil {
		cashcook.CloseStore(store)
		return nil, err
	}
	l.Subscribe(func(e cashcook.Event) {
		logger.Debug("ledger changed", zap.String("op", string(e.Op)), zap.Int64s("ids", e.IDs))
	})
	return &session{Config: cfg, Logger: logger, Ledger: l, store: store}, nil
}

// Close reports the last persist failure, if any, and releases the store.
func (s *session) Close() error {
	err := errors.Join(s.Ledger.Err(), cashcook.CloseStore(s.store))
	_ = s.Logger.Sync()
	return err
}

// withSession opens a session, runs f and closes the session.
// Errors are printed and turned into ExitFailure.
func withSession(f func(s *session) subcommands.ExitStatus) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	status := f(s)
	if err := s.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	return status
}

// printMarkdown renders md for the terminal, or prints it raw if it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var rendered string
		if rendered, err = r.Render(md); err == nil {
			fmt.Fprint(out, rendered)
			return
		}
	}
	fmt.Fprint(out, md)
}

// openOutput opens name for writing, "-" being the standard output.
func openOutput(name string) (io.WriteCloser, error) {
	if name == "-" {
		return nopCloser{out}, nil
	}
	return os.Create(name)
}

// openInput opens name for reading, "" and "-" being the standard input.
func openInput(name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(in), nil
	}
	return os.Open(name)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
