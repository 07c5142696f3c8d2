// Package main is the entry point for the keyvault credential manager.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/keyvault/internal/app"
	"github.com/dshills/keyvault/internal/term"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, logFile := parseFlags()
	if logFile != nil {
		defer logFile.Close()
	}

	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	terminal, err := term.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open terminal: %v\n", err)
		return 1
	}
	defer terminal.Fini()

	// Restore the terminal before dying on SIGINT or SIGTERM.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		terminal.Fini()
		os.Exit(1)
	}()

	if err := application.Run(terminal); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		terminal.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags() (app.Config, *os.File) {
	var cfg app.Config
	var logLevel string
	var logPath string
	var showVersion bool

	flag.StringVar(&cfg.KeymapPath, "keymap", "", "Path to a user keymap file")
	flag.StringVar(&cfg.KeymapPath, "k", "", "Path to a user keymap file (shorthand)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&logPath, "log-file", "", "Write logs to a file instead of stderr")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "keyvault - terminal credential manager\n\n")
		fmt.Fprintf(os.Stderr, "Usage: keyvault [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("keyvault %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	logCfg := app.DefaultLoggerConfig()
	logCfg.Level = app.ParseLogLevel(logLevel)

	var logFile *os.File
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
			os.Exit(1)
		}
		logCfg.Output = f
		logFile = f
	}
	cfg.Logger = app.NewLogger(logCfg)

	return cfg, logFile
}
