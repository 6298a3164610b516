package stopwatch

import (
	"bytes"
	"fmt"
	"time"

	"github.com/proidiot/gone/log"
)

// Measurement is a labelled instant. Identity is positional (the order in
// which measurements were added), not by label, so labels are allowed to
// repeat.
type Measurement struct {
	Label   string
	Instant time.Time
}

// SampleCount associates a measurement label with the number of samples
// (for instance loop iterations) the preceding interval covered.
type SampleCount struct {
	Label string
	Count int
}

// Recorder captures labelled instants as a program runs and renders the
// elapsed time between consecutive instants as a textual trace. A Recorder
// always holds at least one measurement, the "start" instant captured at
// construction. It is append-only, holds no resources beyond its two
// in-memory sequences, and assumes single-goroutine ownership; sharing one
// Recorder across goroutines requires external synchronization.
type Recorder struct {
	_            [0]func()
	clock        Clock
	measurements []Measurement
	samples      []SampleCount
}

// NewRecorder initializes a Recorder, immediately capturing the current
// instant as the measurement labelled "start".
func NewRecorder() *Recorder {
	return NewRecorderWithClock(new(RealClock))
}

// NewRecorderWithClock initializes a Recorder which captures its instants
// from the given Clock. The "start" measurement is captured before
// returning.
func NewRecorderWithClock(clock Clock) *Recorder {
	r := &Recorder{
		clock: clock,
	}
	r.measurements = append(
		r.measurements,
		Measurement{"start", r.now()},
	)
	return r
}

func (r *Recorder) now() time.Time {
	t, err := r.clock.Now()
	if nil != err {
		panic(err)
	}
	return t
}

// AddMeasurement captures the current instant under the given label. Labels
// are not validated in any way; an empty or duplicated label is recorded
// as-is.
func (r *Recorder) AddMeasurement(label string) {
	r.measurements = append(r.measurements, Measurement{label, r.now()})

	_ = log.Debug(
		fmt.Sprintf(
			"recorder captured measurement: %s",
			label,
		),
	)
}

// AddSampledMeasurement captures the current instant under the given label
// and additionally records that the interval ending at this measurement
// covered the given number of samples, so the trace can report the average
// time per sample. The count is not validated; a zero or negative count
// produces a degenerate per sample value in the trace rather than an error.
func (r *Recorder) AddSampledMeasurement(label string, samples int) {
	r.measurements = append(r.measurements, Measurement{label, r.now()})
	r.samples = append(r.samples, SampleCount{label, samples})

	_ = log.Debug(
		fmt.Sprintf(
			"recorder captured measurement: %s (%d samples)",
			label,
			samples,
		),
	)
}

// TimingTrace renders the recorded measurements as a multi-line text block:
// a total line from "start" to a freshly captured "now", then one line per
// consecutive pair of measurements, then one additional "per sample" line
// for every sample count whose label matches the pair's later measurement.
// The Recorder is not modified, so the trace can be generated repeatedly as
// further measurements come in.
func (r *Recorder) TimingTrace() string {
	buf := new(bytes.Buffer)

	start := r.measurements[0].Instant
	end := r.now()

	fmt.Fprintf(
		buf,
		"Total; start -> now: %vs\n",
		seconds(end.Sub(start)),
	)

	for m := 1; m < len(r.measurements); m++ {
		previous := r.measurements[m-1]
		current := r.measurements[m]

		interval := current.Instant.Sub(previous.Instant)

		fmt.Fprintf(
			buf,
			"%s -> %s: %vs\n",
			previous.Label,
			current.Label,
			seconds(interval),
		)

		for _, sample := range r.samples {
			if sample.Label == current.Label {
				fmt.Fprintf(
					buf,
					"%s -> %s per sample: %vs\n",
					previous.Label,
					current.Label,
					seconds(interval)/float64(sample.Count),
				)
			}
		}
	}

	return buf.String()
}

// seconds renders a duration as fractional seconds at microsecond
// precision, matching the trace's wire format.
func seconds(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000000.0
}
