package phase

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/connorkeevill/stopwatch"
	"github.com/connorkeevill/stopwatch/config"
	"github.com/proidiot/gone/errors"
	"github.com/proidiot/gone/log"
)

// ErrNonPositiveIterations indicates that a loop phase was configured with
// an iteration count that could not meaningfully average an interval.
const ErrNonPositiveIterations = errors.ErrorString(
	"Unable to run a loop phase with a non-positive iteration count",
)

// LoopPhase is a Phase that runs a body of work a fixed number of times and
// records a sampled measurement, so the trace reports both the interval for
// the whole loop and the average per iteration. The Recorder itself accepts
// any sample count, but a loop that could not have run is a config mistake,
// so Run rejects non-positive iteration counts up front.
type LoopPhase struct {
	Label      string
	Iterations int
	Work       func()
}

func init() {
	config.MustRegisterResourceType(
		"loopphase",
		func() json.Unmarshaler {
			return new(LoopPhase)
		},
	)
}

// UnmarshalJSON implements encoding/json.Unmarshaler.
func (l *LoopPhase) UnmarshalJSON(input []byte) error {
	var t struct {
		Label      string
		Iterations int
	}

	dec := json.NewDecoder(bytes.NewReader(input))
	if e := dec.Decode(&t); e != nil {
		return e
	}

	l.Label = t.Label
	l.Iterations = t.Iterations

	return nil
}

// Run executes the work body once per iteration, then records a sampled
// measurement whose sample count is the iteration count.
func (l *LoopPhase) Run(recorder *stopwatch.Recorder) error {
	if l.Iterations <= 0 {
		_ = log.Err(
			fmt.Sprintf(
				"loop phase %s has iteration count %d",
				l.Label,
				l.Iterations,
			),
		)
		return ErrNonPositiveIterations
	}

	if nil == l.Work {
		l.Work = spin
	}

	_ = log.Debug(
		fmt.Sprintf(
			"loop phase %s running %d iterations",
			l.Label,
			l.Iterations,
		),
	)

	for i := 0; i < l.Iterations; i++ {
		l.Work()
	}
	recorder.AddSampledMeasurement(l.Label, l.Iterations)

	return nil
}

var spinSink uint64

// spin is the default loop body for configs that only want a demo load.
func spin() {
	x := spinSink
	for i := uint64(1); i <= 1000; i++ {
		x = x*31 + i
	}
	spinSink = x
}

var _ Phase = new(LoopPhase)
