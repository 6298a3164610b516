package stopwatch

import (
	"time"
)

// Clock is an abstraction over the source of the instants a Recorder
// captures. A Recorder treats a Clock error as an unrecoverable environment
// fault rather than a condition a caller could meaningfully handle, so an
// implementation should only return a non-nil error if the underlying time
// source has genuinely become unavailable. Implementations intended for
// production use should be monotonic so that successively captured instants
// never move backwards.
type Clock interface {
	Now() (time.Time, error)
}
