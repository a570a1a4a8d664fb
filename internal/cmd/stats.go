package cmd

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/rawbytedev/ovr"
	"github.com/rawbytedev/ovr/pkg/eventlog"
)

func newStatsCommand() command {
	return command{
		name:        "stats",
		description: "Summarize a capture by event type and device",
		run:         runStats,
	}
}

// Summary aggregates a capture.
type Summary struct {
	Header  eventlog.Header
	Entries int
	First   time.Time
	Last    time.Time
	ByType  map[ovr.EventType]int
	Devices map[ovr.DeviceIndex]int
}

func summarize(path string) (Summary, error) {
	s := Summary{
		ByType:  map[ovr.EventType]int{},
		Devices: map[ovr.DeviceIndex]int{},
	}
	err := eachEntry(path, func(h eventlog.Header, e eventlog.Entry) (bool, error) {
		if s.Entries == 0 {
			s.Header = h
			s.First = e.Time
		}
		s.Entries++
		s.Last = e.Time
		s.ByType[e.Event.Type]++
		s.Devices[e.Event.TrackedDeviceIndex]++
		return true, nil
	})
	return s, err
}

func runStats(_ *flag.FlagSet, args []string, ctx *AppContext, stdout io.Writer) error {
	path, err := oneCapture(args)
	if err != nil {
		return err
	}
	s, err := summarize(path)
	if err != nil {
		return err
	}
	ctx.Logger.Debug("capture summarized", "path", path, "entries", s.Entries)

	fmt.Fprintf(stdout, "entries: %d\n", s.Entries)
	if s.Entries == 0 {
		return nil
	}
	fmt.Fprintf(stdout, "compression: %s\n", s.Header.Compression())
	fmt.Fprintf(stdout, "span: %s\n", s.Last.Sub(s.First))

	types := make([]ovr.EventType, 0, len(s.ByType))
	for t := range s.ByType {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	fmt.Fprintln(stdout, "by type:")
	for _, t := range types {
		fmt.Fprintf(stdout, "  %-28s %d\n", t, s.ByType[t])
	}

	devices := make([]ovr.DeviceIndex, 0, len(s.Devices))
	for d := range s.Devices {
		devices = append(devices, d)
	}
	sort.Slice(devices, func(i, j int) bool { return devices[i] < devices[j] })
	fmt.Fprintln(stdout, "by device:")
	for _, d := range devices {
		fmt.Fprintf(stdout, "  %-4d %d\n", d, s.Devices[d])
	}
	return nil
}
