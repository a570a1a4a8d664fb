package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/ovr"
	"github.com/rawbytedev/ovr/pkg/eventlog"
)

var captureStart = time.Date(2026, 5, 12, 9, 30, 0, 0, time.UTC)

func writeCapture(t *testing.T, comp eventlog.Compression, events ...ovr.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "capture.ovrl")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w, err := eventlog.NewWriter(f, eventlog.Options{Compression: comp, BlockRecords: 2, Start: captureStart})
	require.NoError(t, err)
	for i := range events {
		require.NoError(t, w.AppendAt(captureStart.Add(time.Duration(i)*time.Millisecond), &events[i]))
	}
	require.NoError(t, w.Close())
	return path
}

func sampleEvents() []ovr.Event {
	press := ovr.Event{Type: ovr.EventButtonPress, TrackedDeviceIndex: 1}
	press.Payload[ovr.PayloadSize-ovr.UnionSize] = 33
	return []ovr.Event{
		{Type: ovr.EventTrackedDeviceActivated, TrackedDeviceIndex: 1},
		press,
		{Type: ovr.EventButtonUnpress, TrackedDeviceIndex: 1},
		{Type: ovr.EventQuit},
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rc := NewRootCommand()
	rc.SetOutput(&stdout, &stderr)
	err := rc.Execute(args)
	return stdout.String(), err
}

func TestHelp(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	for _, name := range []string{"dump", "stats", "replay"} {
		assert.Contains(t, out, name)
	}
}

func TestUnknownCommand(t *testing.T) {
	_, err := execute(t, "explode")
	assert.Error(t, err)
}

func TestDump(t *testing.T) {
	path := writeCapture(t, eventlog.CompressionZstd, sampleEvents()...)
	out, err := execute(t, "dump", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "TrackedDeviceActivated")
	assert.Contains(t, lines[1], "ButtonPress")
	assert.Contains(t, lines[1], "button=33")
	assert.Contains(t, lines[1], "1ms")
	assert.Contains(t, lines[3], "Quit")
}

func TestDumpFilters(t *testing.T) {
	path := writeCapture(t, eventlog.CompressionNone, sampleEvents()...)

	out, err := execute(t, "dump", "-type", "buttonunpress", path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.Contains(t, out, "ButtonUnpress")

	out, err = execute(t, "dump", "-n", "2", path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestDumpNeedsOneFile(t *testing.T) {
	_, err := execute(t, "dump")
	assert.Error(t, err)
}

func TestDumpRejectsForeignFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte{'x'}, 64), 0o600))
	_, err := execute(t, "dump", path)
	assert.ErrorIs(t, err, eventlog.ErrBadMagic)
}

func TestStats(t *testing.T) {
	path := writeCapture(t, eventlog.CompressionZstd, sampleEvents()...)
	out, err := execute(t, "stats", path)
	require.NoError(t, err)
	assert.Contains(t, out, "entries: 4")
	assert.Contains(t, out, "compression: zstd")
	assert.Contains(t, out, "span: 3ms")
	assert.Contains(t, out, "ButtonPress")
}

func TestSummarize(t *testing.T) {
	path := writeCapture(t, eventlog.CompressionNone, sampleEvents()...)
	s, err := summarize(path)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Entries)
	assert.Equal(t, 3, s.Devices[1])
	assert.Equal(t, 1, s.Devices[0])
	assert.Equal(t, 1, s.ByType[ovr.EventQuit])
}

func TestReplayRecords(t *testing.T) {
	path := writeCapture(t, eventlog.CompressionNone, sampleEvents()...)
	out := filepath.Join(t.TempDir(), "copy.ovrl")
	t.Setenv("OVR_POLL_INTERVAL", "1ms")
	t.Setenv("OVR_POLL_MAX_EVENTS_PER_TICK", "2")

	printed, err := execute(t, "-log-level", "error", "replay", "-out", out, path)
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(printed, "\n"))

	s, err := summarize(out)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Entries)
	assert.Equal(t, eventlog.CompressionZstd, s.Header.Compression())
}

func TestReplayKeepsCaptureTimes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hours.ovrl")
	f, err := os.Create(path)
	require.NoError(t, err)
	w, err := eventlog.NewWriter(f, eventlog.Options{Start: captureStart})
	require.NoError(t, err)
	events := sampleEvents()[:3]
	for i := range events {
		require.NoError(t, w.AppendAt(captureStart.Add(time.Duration(i)*time.Hour), &events[i]))
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	out := filepath.Join(t.TempDir(), "copy.ovrl")
	t.Setenv("OVR_POLL_INTERVAL", "1ms")
	_, err = execute(t, "-log-level", "error", "replay", "-q", "-out", out, path)
	require.NoError(t, err)

	rf, err := os.Open(out)
	require.NoError(t, err)
	defer rf.Close()
	r, err := eventlog.NewReader(rf)
	require.NoError(t, err)
	defer r.Close()
	assert.True(t, captureStart.Equal(r.Header().Start))

	var offsets []time.Duration
	for {
		e, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		offsets = append(offsets, e.Time.Sub(r.Header().Start))
	}
	assert.Equal(t, []time.Duration{0, time.Hour, 2 * time.Hour}, offsets)
}

func TestReplayRefusesToOverwriteInput(t *testing.T) {
	path := writeCapture(t, eventlog.CompressionNone, sampleEvents()...)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	t.Chdir(filepath.Dir(path))
	_, err = execute(t, "-log-level", "error", "replay", "-q", "-out", "./"+filepath.Base(path), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is the input capture")

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
