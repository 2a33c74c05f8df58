package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"onidle/internal/config"
	"onidle/internal/logging"
	"onidle/internal/poll"
	"onidle/internal/probe"
	"onidle/internal/report"
	"onidle/internal/runner"
	"onidle/internal/watch"
)

const version = "0.1.0"

type options struct {
	test        bool
	list        bool
	watch       bool
	verbose     bool
	interval    time.Duration
	configPath  string
	showVersion bool
	command     []string
}

func main() {
	flags := flag.NewFlagSet("onidle", flag.ContinueOnError)
	flags.SetInterspersed(false)
	flags.Usage = printUsage

	var opts options
	flags.BoolVar(&opts.test, "test", false, "probe for idle state in a loop, never acting")
	flags.BoolVar(&opts.list, "list", false, "list the probes selected for this host and exit")
	flags.BoolVar(&opts.watch, "watch", false, "live dashboard over continuous probing")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print per-probe diagnostics each cycle")
	flags.DurationVar(&opts.interval, "interval", 0, "time between idle checks (overrides config)")
	flags.StringVar(&opts.configPath, "config", "", "explicit config file path")
	flags.BoolVar(&opts.showVersion, "version", false, "print version and exit")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	opts.command = flags.Args()

	os.Exit(run(opts))
}

func run(opts options) int {
	if opts.showVersion {
		fmt.Printf("onidle version %s\n", version)
		return 0
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Continuous modes are always verbose
	verbose := opts.verbose || opts.test

	logger := newLogger(cfg.Logging, verbose)
	defer logger.Close()

	facts := probe.GatherHostFacts()
	registry := probe.NewRegistry(cfg.Probes, facts, logger)

	if opts.list {
		fmt.Println("All Probes:")
		for _, name := range registry.Names() {
			fmt.Printf(" * %s\n", name)
		}
		return 0
	}

	if !opts.test && !opts.watch && len(opts.command) == 0 {
		fmt.Fprintln(os.Stderr, "error: a command to run when idle is required")
		printUsage()
		return 2
	}

	interval := time.Duration(cfg.Poll.IntervalSeconds) * time.Second
	if opts.interval > 0 {
		interval = opts.interval
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	action := runner.NewActionRunner(logger)

	if opts.watch {
		loop := poll.New(registry.Probes(), action, report.NewConsole(io.Discard, false), logger, interval)
		program := tea.NewProgram(watch.NewModel(loop, interval), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if opts.test {
		reporter := report.NewConsole(os.Stdout, true)
		loop := poll.New(registry.Probes(), action, reporter, logger, interval)
		if err := loop.Observe(ctx); err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	reporter := report.NewConsole(os.Stdout, verbose)
	reporter.Starting(time.Now(), opts.command)

	loop := poll.New(registry.Probes(), action, reporter, logger, interval)
	if err := loop.Wait(ctx, opts.command); err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// loadConfig resolves the effective configuration: an explicit file
// when given, the system/user merge otherwise.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// newLogger builds the process logger from config, escalating to debug
// when verbose output is requested.
func newLogger(cfg config.LoggingConfig, verbose bool) *logging.Logger {
	level := logging.Level(cfg.Level)
	if verbose {
		level = logging.LevelDebug
	}

	if cfg.File != "" {
		logger, err := logging.NewFileLogger(level, cfg.File)
		if err == nil {
			return logger
		}
		fmt.Fprintf(os.Stderr, "Warning: %v, logging to stderr\n", err)
	}

	if cfg.Format == string(logging.FormatJSON) {
		return logging.NewLogger(level)
	}
	return logging.NewTextLogger(level)
}

func printUsage() {
	fmt.Println(`Usage: onidle [flags] command [args...]

Waits until the machine looks idle, then runs the command once.

Modes:
      --test       probe for idle state in a loop, reporting every cycle
      --watch      live dashboard over continuous probing
      --list       list the probes selected for this host and exit

Flags:
  -v, --verbose    print per-probe diagnostics each cycle
      --interval   time between idle checks (default 60s)
      --config     explicit config file path
      --version    print version and exit
  -h, --help       show this help

Examples:
  onidle borg create ::daily
  onidle --interval 30s -- rsync -a /home /backup
  onidle --test`)
}
