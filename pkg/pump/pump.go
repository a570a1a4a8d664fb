// Package pump drains a runtime event queue on a fixed cadence and fans
// each event out to a handler and an optional recorder.
package pump

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rawbytedev/ovr"
	"github.com/rawbytedev/ovr/pkg/config"
)

// Source is anything that yields events the way System.PollNextEvent does.
type Source interface {
	PollNextEvent() (ovr.Event, bool)
}

// Recorder persists events. *eventlog.Writer implements it.
type Recorder interface {
	Append(ev *ovr.Event) error
}

// Handler receives every drained event in queue order.
type Handler func(ev *ovr.Event)

var ErrNoSource = errors.New("pump: nil source")

const (
	DefaultInterval         = 11 * time.Millisecond
	DefaultMaxEventsPerTick = 64
)

// Stats counts pump activity.
type Stats struct {
	Ticks  uint64
	Events uint64
	// Saturated counts ticks that stopped at the per-tick limit with
	// events possibly still queued.
	Saturated uint64
}

type Pump struct {
	src      Source
	handler  Handler
	recorder Recorder
	interval time.Duration
	maxTick  int
	log      *slog.Logger
	stats    Stats
}

type Option func(*Pump)

func WithHandler(h Handler) Option { return func(p *Pump) { p.handler = h } }

func WithRecorder(r Recorder) Option { return func(p *Pump) { p.recorder = r } }

func WithInterval(d time.Duration) Option {
	return func(p *Pump) {
		if d > 0 {
			p.interval = d
		}
	}
}

func WithMaxEventsPerTick(n int) Option {
	return func(p *Pump) {
		if n > 0 {
			p.maxTick = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Pump) {
		if l != nil {
			p.log = l
		}
	}
}

// WithConfig applies the poll section of a loaded configuration.
func WithConfig(c config.PollConfig) Option {
	return func(p *Pump) {
		WithInterval(c.Interval)(p)
		WithMaxEventsPerTick(c.MaxEventsPerTick)(p)
	}
}

func New(src Source, opts ...Option) (*Pump, error) {
	if src == nil {
		return nil, ErrNoSource
	}
	p := &Pump{
		src:      src,
		interval: DefaultInterval,
		maxTick:  DefaultMaxEventsPerTick,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Tick drains up to the per-tick limit and returns how many events it
// handled. A recorder failure stops the drain; the failing event has
// already been handed to the handler.
func (p *Pump) Tick() (int, error) {
	p.stats.Ticks++
	n := 0
	for n < p.maxTick {
		ev, ok := p.src.PollNextEvent()
		if !ok {
			return n, nil
		}
		n++
		p.stats.Events++
		if p.handler != nil {
			p.handler(&ev)
		}
		if p.recorder != nil {
			if err := p.recorder.Append(&ev); err != nil {
				return n, fmt.Errorf("record %s event: %w", ev.Type, err)
			}
		}
	}
	p.stats.Saturated++
	p.log.Debug("poll tick saturated", "limit", p.maxTick)
	return n, nil
}

// Run ticks until ctx is done or the recorder fails. Cancellation is not
// an error.
func (p *Pump) Run(ctx context.Context) error {
	p.log.Info("event pump started", "interval", p.interval, "max_events_per_tick", p.maxTick)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		if _, err := p.Tick(); err != nil {
			p.log.Error("event pump stopped", "error", err)
			return err
		}
		select {
		case <-ctx.Done():
			p.log.Info("event pump stopped",
				"ticks", p.stats.Ticks,
				"events", p.stats.Events,
			)
			return nil
		case <-ticker.C:
		}
	}
}

// Stats returns a snapshot of the counters. It must not race with Run.
func (p *Pump) Stats() Stats { return p.stats }
