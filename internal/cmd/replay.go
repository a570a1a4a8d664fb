package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"

	"github.com/rawbytedev/ovr"
	"github.com/rawbytedev/ovr/pkg/eventlog"
	"github.com/rawbytedev/ovr/pkg/pump"
)

type replayOptions struct {
	out   string
	quiet bool
}

func newReplayCommand() command {
	var opts replayOptions
	return command{
		name:        "replay",
		description: "Feed a capture through the event pump, optionally re-recording it",
		configure: func(fs *flag.FlagSet) {
			fs.StringVar(&opts.out, "out", "", "Write a new capture here (default: capture.path from config)")
			fs.BoolVar(&opts.quiet, "q", false, "Do not print events")
		},
		run: func(_ *flag.FlagSet, args []string, ctx *AppContext, stdout io.Writer) error {
			return runReplay(opts, args, ctx, stdout)
		},
	}
}

// logSource serves a capture as a runtime event queue. It cancels the
// pump once the capture is exhausted.
type logSource struct {
	r      *eventlog.Reader
	cancel context.CancelFunc
	last   eventlog.Entry
	err    error
}

func (s *logSource) PollNextEvent() (ovr.Event, bool) {
	if s.err != nil {
		return ovr.Event{}, false
	}
	e, err := s.r.Next()
	if err != nil {
		s.err = err
		s.cancel()
		return ovr.Event{}, false
	}
	s.last = e
	return e.Event, true
}

// capturedTimes re-records each event at the time it was captured.
type capturedTimes struct {
	w   *eventlog.Writer
	src *logSource
}

func (c capturedTimes) Append(ev *ovr.Event) error {
	return c.w.AppendAt(c.src.last.Time, ev)
}

// sameFile reports whether out names the file already open as in. A
// missing out is never the same file.
func sameFile(in *os.File, out string) (bool, error) {
	a, err := in.Stat()
	if err != nil {
		return false, err
	}
	b, err := os.Stat(out)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return os.SameFile(a, b), nil
}

func runReplay(opts replayOptions, args []string, app *AppContext, stdout io.Writer) error {
	path, err := oneCapture(args)
	if err != nil {
		return err
	}
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()
	r, err := eventlog.NewReader(in)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer r.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	src := &logSource{r: r, cancel: cancel}

	pumpOpts := []pump.Option{
		pump.WithConfig(app.Config.Poll),
		pump.WithLogger(app.Logger),
	}
	if !opts.quiet {
		h := r.Header()
		pumpOpts = append(pumpOpts, pump.WithHandler(func(*ovr.Event) {
			fmt.Fprintln(stdout, formatEntry(h, src.last))
		}))
	}

	outPath := opts.out
	if outPath == "" {
		outPath = app.Config.Capture.Path
	}
	var w *eventlog.Writer
	if outPath != "" {
		same, err := sameFile(in, outPath)
		if err != nil {
			return err
		}
		if same {
			return fmt.Errorf("replay output %s is the input capture", outPath)
		}
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		comp, err := eventlog.ParseCompression(app.Config.Capture.Compression)
		if err != nil {
			return err
		}
		w, err = eventlog.NewWriter(f, eventlog.Options{
			Compression:  comp,
			BlockRecords: app.Config.Capture.BlockRecords,
			Start:        r.Header().Start,
			Logger:       app.Logger,
		})
		if err != nil {
			return err
		}
		pumpOpts = append(pumpOpts, pump.WithRecorder(capturedTimes{w: w, src: src}))
	}

	p, err := pump.New(src, pumpOpts...)
	if err != nil {
		return err
	}
	runErr := p.Run(ctx)
	if w != nil {
		if err := w.Close(); runErr == nil {
			runErr = err
		}
	}
	if runErr != nil {
		return runErr
	}
	if src.err != nil && !errors.Is(src.err, io.EOF) {
		return fmt.Errorf("%s: %w", path, src.err)
	}
	app.Logger.Info("replay finished", "path", path, "events", p.Stats().Events, "out", outPath)
	return nil
}
