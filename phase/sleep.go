package phase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/connorkeevill/stopwatch"
	"github.com/connorkeevill/stopwatch/config"
	"github.com/proidiot/gone/log"
)

// SleepPhase is a Phase that simply sleeps for a fixed delay before
// recording its measurement. It is mostly useful for demonstrating a trace
// and for spacing out other phases in a config.
type SleepPhase struct {
	Label string
	Delay time.Duration
}

func init() {
	config.MustRegisterResourceType(
		"sleepphase",
		func() json.Unmarshaler {
			return new(SleepPhase)
		},
	)
}

// UnmarshalJSON implements encoding/json.Unmarshaler.
func (s *SleepPhase) UnmarshalJSON(input []byte) error {
	var t struct {
		Label string
		Delay string
	}

	dec := json.NewDecoder(bytes.NewReader(input))
	if e := dec.Decode(&t); e != nil {
		return e
	}

	d, e := time.ParseDuration(t.Delay)
	if e != nil {
		return e
	}

	s.Label = t.Label
	s.Delay = d

	return nil
}

// Run sleeps for the configured delay and records a measurement under the
// configured label.
func (s *SleepPhase) Run(recorder *stopwatch.Recorder) error {
	_ = log.Debug(
		fmt.Sprintf(
			"sleep phase %s sleeping for %v",
			s.Label,
			s.Delay,
		),
	)

	time.Sleep(s.Delay)
	recorder.AddMeasurement(s.Label)

	return nil
}

var _ Phase = new(SleepPhase)
