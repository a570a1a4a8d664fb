// Package logging turns the logging section of the config into a
// *slog.Logger for vrevents and the event pump.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/rawbytedev/ovr/pkg/config"
)

// Options selects level, line format and destination. Empty fields take
// the config defaults; a nil Output writes to stderr.
type Options struct {
	Level  string
	Format string
	Output io.Writer
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// New returns a JSON or text logger with RFC3339 UTC timestamps.
func New(opts Options) (*slog.Logger, error) {
	lvl, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	format, err := config.NormalizeFormat(opts.Format)
	if err != nil {
		return nil, err
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: lvl, ReplaceAttr: utcTime}
	if format == "text" {
		return slog.New(slog.NewTextHandler(out, handlerOpts)), nil
	}
	return slog.New(slog.NewJSONHandler(out, handlerOpts)), nil
}

// FromConfig builds the logger described by c.
func FromConfig(c config.LoggingConfig, out io.Writer) (*slog.Logger, error) {
	return New(Options{Level: c.Level, Format: c.Format, Output: out})
}

func parseLevel(level string) (slog.Level, error) {
	name, err := config.NormalizeLogLevel(level)
	if err != nil {
		return 0, err
	}
	lvl, ok := levels[name]
	if !ok {
		return 0, fmt.Errorf("logging: no slog level for %q", name)
	}
	return lvl, nil
}

func utcTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339))
	}
	return a
}
