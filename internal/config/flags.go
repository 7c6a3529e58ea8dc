// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/bethropolis/kite/internal/logger"
)

// Flags holds values parsed from command-line flags. Only flags that were
// actually given override the configuration.
type Flags struct {
	fs *flag.FlagSet

	ConfigFilePath  *string
	Version         *bool
	Theme           *string
	LogLevel        *string
	LogFilePath     *string
	TabWidth        *int
	EnableTags      *string
	DisableTags     *string
	EnablePkgs      *string
	DisablePkgs     *string
	EnableFiles     *string
	DisableFiles    *string
	DebugLog        *bool
	SystemClipboard *bool
}

// NewFlags defines the flags on a fresh FlagSet named after the program.
// Parse errors are returned rather than exiting.
func NewFlags(output io.Writer) *Flags {
	fs := flag.NewFlagSet(AppName, flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] [file]\n", AppName)
		fs.PrintDefaults()
	}

	return &Flags{
		fs:              fs,
		ConfigFilePath:  fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", ConfigDirName, DefaultConfigFileName)),
		Version:         fs.Bool("version", false, "Show version information and exit"),
		Theme:           fs.String("theme", "", "Theme name - Overrides config file"),
		LogLevel:        fs.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file"),
		LogFilePath:     fs.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file"),
		TabWidth:        fs.Int("tabwidth", 0, "Display width of a tab stop - Overrides config file"),
		EnableTags:      fs.String("log-tags", "", "Comma-separated list of tags to enable"),
		DisableTags:     fs.String("log-disable-tags", "", "Comma-separated list of tags to disable"),
		EnablePkgs:      fs.String("log-packages", "", "Comma-separated list of packages to enable"),
		DisablePkgs:     fs.String("log-disable-packages", "", "Comma-separated list of packages to disable"),
		EnableFiles:     fs.String("log-files", "", "Comma-separated list of files to enable"),
		DisableFiles:    fs.String("log-disable-files", "", "Comma-separated list of files to disable"),
		DebugLog:        fs.Bool("debug-log", false, "Shortcut for -loglevel debug"),
		SystemClipboard: fs.Bool("system-clipboard", false, "Use the system clipboard instead of the internal one"),
	}
}

// Parse parses args (without the program name) and returns the remaining
// non-flag arguments, e.g. the file to open.
func (f *Flags) Parse(args []string) ([]string, error) {
	if err := f.fs.Parse(args); err != nil {
		return nil, err
	}
	return f.fs.Args(), nil
}

// ApplyOverrides copies the flags that were set into cfg.
func (f *Flags) ApplyOverrides(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			cfg.Logger.LogLevel = *f.LogLevel
		case "debug-log":
			if *f.DebugLog {
				cfg.Logger.LogLevel = "debug"
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath // "-" is stderr
		case "theme":
			cfg.Editor.Theme = *f.Theme
		case "tabwidth":
			if *f.TabWidth > 0 {
				cfg.Editor.TabWidth = *f.TabWidth
			}
		case "system-clipboard":
			cfg.Editor.SystemClipboard = *f.SystemClipboard
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(*f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(*f.DisablePkgs)
		case "log-files":
			cfg.Logger.EnabledFiles = splitCommaList(*f.EnableFiles)
		case "log-disable-files":
			cfg.Logger.DisabledFiles = splitCommaList(*f.DisableFiles)
		default:
			return
		}
		logger.DebugTagf("config", "Applied flag override: %s=%s", fl.Name, fl.Value)
	})
}

func splitCommaList(list string) []string {
	var result []string
	for _, item := range strings.Split(list, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
