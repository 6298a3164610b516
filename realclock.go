package stopwatch

import (
	"time"
)

type RealClock struct {
}

var _ Clock = new(RealClock)

func (r *RealClock) Now() (time.Time, error) {
	return time.Now(), nil
}
