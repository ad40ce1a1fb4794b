package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/zarlcorp/core/pkg/zapp"

	"github.com/zarlcorp/zfake/internal/cli"
	"github.com/zarlcorp/zfake/internal/config"
	"github.com/zarlcorp/zfake/internal/identity"
	"github.com/zarlcorp/zfake/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

type globalFlags struct {
	config   string
	logFile  string
	logLevel string
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes zfake and returns the process exit code. Every deferred
// close has run by the time it returns.
func run(argv []string) int {
	app := zapp.New(zapp.WithName("zfake"))
	defer func() { _ = app.Close() }()

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	flags, args, err := parseGlobal(argv)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "zfake: %v\n", err)
		return 2
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zfake: %v\n", err)
		return 1
	}

	log, closeLog, err := newLogger(cfg, len(args) == 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zfake: %v\n", err)
		return 1
	}
	defer closeLog()

	if len(args) > 0 {
		if err := runCLI(ctx, args, cfg, log); err != nil {
			log.Error("command failed", "cmd", args[0], "err", err)
			fmt.Fprintf(os.Stderr, "zfake: %v\n", err)
			return 1
		}
		return 0
	}

	if err := runTUI(cfg, log); err != nil {
		log.Error("tui", "err", err)
		return 1
	}
	return 0
}

// parseGlobal reads the flags that precede the subcommand and returns
// the remaining arguments untouched.
func parseGlobal(argv []string) (globalFlags, []string, error) {
	var g globalFlags
	fs := pflag.NewFlagSet("zfake", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.StringVar(&g.config, "config", config.DefaultPath(), "config file (jsonc or yaml)")
	fs.StringVar(&g.logFile, "log-file", "", "write logs to this file")
	fs.StringVar(&g.logLevel, "log-level", "", "debug, info, warn or error")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: zfake [flags] [generate|regions|version]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(argv); err != nil {
		return g, nil, err
	}
	return g, fs.Args(), nil
}

func loadConfig(g globalFlags) (config.Config, error) {
	cfg, err := config.Load(g.config)
	if err != nil {
		return cfg, err
	}
	if g.logFile != "" {
		cfg.LogFile = g.logFile
	}
	if g.logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(g.logLevel)); err != nil {
			return cfg, fmt.Errorf("log level %q: %w", g.logLevel, err)
		}
	}
	return cfg, nil
}

// newLogger writes JSON to the configured log file. Without one, the TUI
// logs nowhere since stderr belongs to the terminal, and the CLI logs text
// to stderr.
func newLogger(cfg config.Config, interactive bool) (*slog.Logger, func(), error) {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return slog.New(slog.NewJSONHandler(f, opts)), func() { _ = f.Close() }, nil
	}

	if interactive {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts)), func() {}, nil
}

func runCLI(_ context.Context, args []string, cfg config.Config, log *slog.Logger) error {
	switch args[0] {
	case "version":
		fmt.Printf("zfake %s\n", version)
	case "generate":
		return cli.CmdGenerate(args[1:], cfg, log)
	case "regions":
		cli.CmdRegions()
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
	return nil
}

func runTUI(cfg config.Config, log *slog.Logger) error {
	m := tui.New(version, identity.New(), cfg, log)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
