package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rawbytedev/ovr"
	"github.com/rawbytedev/ovr/pkg/eventlog"
)

type dumpOptions struct {
	limit int
	only  string
}

func newDumpCommand() command {
	var opts dumpOptions
	return command{
		name:        "dump",
		description: "Print every event in a capture",
		configure: func(fs *flag.FlagSet) {
			fs.IntVar(&opts.limit, "n", 0, "Stop after n events (0 prints all)")
			fs.StringVar(&opts.only, "type", "", "Only print events of this type, e.g. ButtonPress")
		},
		run: func(_ *flag.FlagSet, args []string, _ *AppContext, stdout io.Writer) error {
			return runDump(opts, args, stdout)
		},
	}
}

func runDump(opts dumpOptions, args []string, stdout io.Writer) error {
	path, err := oneCapture(args)
	if err != nil {
		return err
	}
	printed := 0
	return eachEntry(path, func(h eventlog.Header, e eventlog.Entry) (bool, error) {
		if opts.only != "" && !strings.EqualFold(e.Event.Type.String(), opts.only) {
			return true, nil
		}
		fmt.Fprintln(stdout, formatEntry(h, e))
		printed++
		return opts.limit <= 0 || printed < opts.limit, nil
	})
}

// eachEntry opens a capture and calls fn for every entry until fn
// returns false.
func eachEntry(path string, fn func(eventlog.Header, eventlog.Entry) (bool, error)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r, err := eventlog.NewReader(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer r.Close()
	for {
		e, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		more, err := fn(r.Header(), e)
		if err != nil || !more {
			return err
		}
	}
}

// formatEntry renders one line: offset from capture start, type, device,
// age and the decoded payload when a view exists for the type.
func formatEntry(h eventlog.Header, e eventlog.Entry) string {
	ev := &e.Event
	line := fmt.Sprintf("%12s  %-28s dev=%-2d age=%.3fs",
		e.Time.Sub(h.Start).Round(time.Microsecond), ev.Type, ev.TrackedDeviceIndex, ev.AgeSeconds)
	if d := payloadDetail(ev); d != "" {
		line += "  " + d
	}
	return line
}

func payloadDetail(ev *ovr.Event) string {
	if c, ok := ev.Controller(); ok {
		return fmt.Sprintf("button=%d", c.Button)
	}
	if m, ok := ev.Mouse(); ok {
		return fmt.Sprintf("x=%.3f y=%.3f button=%d", m.X, m.Y, m.Button)
	}
	if p, ok := ev.Process(); ok {
		return fmt.Sprintf("pid=%d old_pid=%d forced=%t", p.PID, p.OldPID, p.Forced)
	}
	if p, ok := ev.Property(); ok {
		return fmt.Sprintf("container=%#x prop=%d", p.Container, p.Prop)
	}
	return ""
}
