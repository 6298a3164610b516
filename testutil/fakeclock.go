package testutil

import (
	"time"

	"github.com/connorkeevill/stopwatch"
)

// FakeClock hands out a queued sequence of instants. Once the queue is
// exhausted it keeps returning the final instant, so a test can line up
// exactly the instants it cares about and still call TimingTrace freely.
type FakeClock struct {
	instants []time.Time
	next     int
}

func (f *FakeClock) QueueInstant(t time.Time) {
	f.instants = append(f.instants, t)
}

func (f *FakeClock) Now() (time.Time, error) {
	if len(f.instants) == 0 {
		return time.Time{}, nil
	}

	t := f.instants[f.next]
	if f.next < len(f.instants)-1 {
		f.next++
	}
	return t, nil
}

var _ stopwatch.Clock = new(FakeClock)
