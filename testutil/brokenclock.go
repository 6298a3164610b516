package testutil

import (
	"time"

	"github.com/connorkeevill/stopwatch"
)

// BrokenClock always fails with the configured error. It exists to exercise
// the unrecoverable-clock path in code built on a Recorder.
type BrokenClock struct {
	Err error
}

func (b *BrokenClock) Now() (time.Time, error) {
	return time.Time{}, b.Err
}

var _ stopwatch.Clock = new(BrokenClock)
