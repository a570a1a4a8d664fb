package pump

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/ovr"
	"github.com/rawbytedev/ovr/internal/fakevr"
	"github.com/rawbytedev/ovr/pkg/config"
	"github.com/rawbytedev/ovr/pkg/eventlog"
)

func queued(n int) *ovr.System {
	fake := fakevr.NewSystem()
	for i := 0; i < n; i++ {
		fake.PushEvent(ovr.Event{Type: ovr.EventButtonPress, TrackedDeviceIndex: ovr.DeviceIndex(i)})
	}
	return ovr.NewSystem(fake)
}

type failingRecorder struct{ after int }

func (f *failingRecorder) Append(*ovr.Event) error {
	if f.after == 0 {
		return errors.New("disk full")
	}
	f.after--
	return nil
}

func TestNewNilSource(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNoSource)
}

func TestTickRespectsLimit(t *testing.T) {
	var seen []ovr.DeviceIndex
	p, err := New(queued(5),
		WithMaxEventsPerTick(3),
		WithHandler(func(ev *ovr.Event) { seen = append(seen, ev.TrackedDeviceIndex) }),
	)
	require.NoError(t, err)

	n, err := p.Tick()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	n, err = p.Tick()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	n, err = p.Tick()
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.Equal(t, []ovr.DeviceIndex{0, 1, 2, 3, 4}, seen)
	assert.Equal(t, Stats{Ticks: 3, Events: 5, Saturated: 1}, p.Stats())
}

func TestTickRecords(t *testing.T) {
	var buf bytes.Buffer
	w, err := eventlog.NewWriter(&buf, eventlog.Options{})
	require.NoError(t, err)
	p, err := New(queued(4), WithRecorder(w))
	require.NoError(t, err)

	_, err = p.Tick()
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := eventlog.NewReader(&buf)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		e, err := r.Next()
		require.NoError(t, err)
		assert.Equal(t, ovr.DeviceIndex(i), e.Event.TrackedDeviceIndex)
	}
}

func TestRecorderErrorStopsRun(t *testing.T) {
	p, err := New(queued(3), WithRecorder(&failingRecorder{after: 1}))
	require.NoError(t, err)
	err = p.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Contains(t, err.Error(), "ButtonPress")
	assert.Equal(t, uint64(2), p.Stats().Events)
}

func TestRunStopsOnCancel(t *testing.T) {
	p, err := New(queued(2), WithConfig(config.PollConfig{Interval: time.Millisecond, MaxEventsPerTick: 1}))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	require.NoError(t, p.Run(ctx))

	st := p.Stats()
	assert.Equal(t, uint64(2), st.Events)
	assert.GreaterOrEqual(t, st.Ticks, uint64(2))
}
