// Package cmd implements the vrevents command line.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/rawbytedev/ovr/internal/logging"
	"github.com/rawbytedev/ovr/pkg/config"
)

type command struct {
	name        string
	description string
	configure   func(fs *flag.FlagSet)
	run         func(fs *flag.FlagSet, args []string, ctx *AppContext, stdout io.Writer) error
}

// AppContext exposes the loaded configuration and logger to subcommands.
type AppContext struct {
	Config config.Config
	Logger *slog.Logger
}

type RootCommand struct {
	commands   map[string]command
	stdout     io.Writer
	stderr     io.Writer
	configPath string
	logLevel   string
}

func NewRootCommand() *RootCommand {
	rc := &RootCommand{
		commands: make(map[string]command),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
	rc.register(newDumpCommand())
	rc.register(newStatsCommand())
	rc.register(newReplayCommand())
	return rc
}

// SetOutput redirects command output, mostly for tests.
func (rc *RootCommand) SetOutput(stdout, stderr io.Writer) {
	rc.stdout, rc.stderr = stdout, stderr
}

func (rc *RootCommand) register(cmd command) {
	rc.commands[cmd.name] = cmd
}

// Execute parses global flags and dispatches to a subcommand.
func (rc *RootCommand) Execute(args []string) error {
	rootFlags := flag.NewFlagSet("vrevents", flag.ContinueOnError)
	rootFlags.SetOutput(rc.stderr)
	rootFlags.Usage = func() { rc.printHelp() }
	rootFlags.StringVar(&rc.configPath, "config", "", "Path to a YAML config file")
	rootFlags.StringVar(&rc.logLevel, "log-level", "", "Override log level (debug, info, warn, error)")

	if err := rootFlags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	remaining := rootFlags.Args()
	if len(remaining) == 0 {
		rc.printHelp()
		return nil
	}

	sub, ok := rc.commands[remaining[0]]
	if !ok {
		fmt.Fprintf(rc.stderr, "Unknown command %q\n\n", remaining[0])
		rc.printHelp()
		return fmt.Errorf("unknown command %q", remaining[0])
	}

	fs := flag.NewFlagSet(sub.name, flag.ContinueOnError)
	fs.SetOutput(rc.stderr)
	fs.Usage = func() {
		fmt.Fprintf(rc.stdout, "Usage: vrevents %s [flags] <capture>\n", sub.name)
		fmt.Fprintln(rc.stdout, sub.description)
		fs.PrintDefaults()
	}
	if sub.configure != nil {
		sub.configure(fs)
	}
	if err := fs.Parse(remaining[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, err := rc.appContext()
	if err != nil {
		return err
	}
	return sub.run(fs, fs.Args(), ctx, rc.stdout)
}

func (rc *RootCommand) appContext() (*AppContext, error) {
	cfg, err := config.Load(rc.configPath)
	if err != nil {
		return nil, err
	}
	if rc.logLevel != "" {
		lvl, err := config.NormalizeLogLevel(rc.logLevel)
		if err != nil {
			return nil, err
		}
		cfg.Logging.Level = lvl
	}
	logger, err := logging.FromConfig(cfg.Logging, rc.stderr)
	if err != nil {
		return nil, err
	}
	logger.Debug("configuration loaded", "source", cfg.Source)
	return &AppContext{Config: cfg, Logger: logger}, nil
}

func (rc *RootCommand) printHelp() {
	fmt.Fprintln(rc.stdout, "vrevents - inspect captured VR runtime events")
	fmt.Fprintln(rc.stdout, "")
	fmt.Fprintln(rc.stdout, "Usage: vrevents [global flags] <command> [command flags] <capture>")
	fmt.Fprintln(rc.stdout, "Global flags:")
	fmt.Fprintln(rc.stdout, "  -config string      Path to a YAML config file")
	fmt.Fprintln(rc.stdout, "  -log-level string   Override log level (debug, info, warn, error)")
	fmt.Fprintln(rc.stdout, "")
	fmt.Fprintln(rc.stdout, "Available commands:")

	names := make([]string, 0, len(rc.commands))
	for name := range rc.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(rc.stdout, "  %-8s %s\n", name, rc.commands[name].description)
	}
}

// oneCapture returns the single positional capture path.
func oneCapture(args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New("expected exactly one capture file")
	}
	return args[0], nil
}
