// cmd/kite/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	stlog "log" // For fatal errors before the logger is ready
	"os"

	"github.com/bethropolis/kite/internal/app"
	"github.com/bethropolis/kite/internal/config"
	"github.com/bethropolis/kite/internal/highlighter"
	"github.com/bethropolis/kite/internal/logger"
	"golang.org/x/term"
)

func main() {
	// --- Argument & Flag Parsing ---
	flags := config.NewFlags(os.Stderr)
	args, err := flags.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		os.Exit(0)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintf(os.Stderr, "%s: stdin and stdout must be a terminal\n", config.AppName)
		os.Exit(1)
	}

	var filePath string
	if len(args) > 0 {
		filePath = args[0]
	}

	// --- Configuration ---
	cfg, cfgErr := config.Load(*flags.ConfigFilePath, flags)

	// --- Logger Initialization ---
	output, closeLog, err := logger.OpenOutput(cfg.Logger.LogFilePath)
	if err != nil {
		stlog.Fatalf("Failed to open log output: %v", err)
	}
	defer closeLog()
	logger.Init(cfg.Logger, output)

	if cfgErr != nil {
		logger.Warnf("Using default configuration: %v", cfgErr)
	}
	cfg.ReportUndecoded()

	logger.Infof("Starting %s %s", config.AppName, config.Version)
	logger.Debugf("Config source: %q, tab width %d, theme %q", cfg.Source, cfg.Editor.TabWidth, cfg.Editor.Theme)
	if filePath != "" {
		logger.Debugf("File path specified: %s", filePath)
	} else {
		logger.Debugf("No file specified, starting empty.")
	}

	highlighter.RegisterLanguages()

	// --- Create and Run App ---
	kiteApp, err := app.NewApp(app.Options{Config: cfg, FilePath: filePath})
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		closeLog()
		os.Exit(1)
	}

	if err := kiteApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		closeLog()
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}
