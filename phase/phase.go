package phase

import (
	"encoding/json"
	"io"

	"github.com/connorkeevill/stopwatch"
	"github.com/connorkeevill/stopwatch/config"
	"github.com/proidiot/gone/log"
)

// Phase is a unit of work which is timed by a shared Recorder. An
// implementation performs its work and then records one measurement (plain
// or sampled) marking the point at which the work completed. A Phase should
// not generate the trace itself; that is left to whoever owns the Recorder
// once every phase has run.
type Phase interface {
	Run(recorder *stopwatch.Recorder) error
}

// Sequence is an ordered collection of phases sharing one Recorder.
type Sequence []Phase

// Run executes each phase in order against the given Recorder, stopping at
// the first phase that fails.
func (s Sequence) Run(recorder *stopwatch.Recorder) error {
	for _, p := range s {
		if e := p.Run(recorder); e != nil {
			return e
		}
	}
	return nil
}

// SequenceFromReader constructs a Sequence from a JSON config. The config
// is an object with a "phases" array of resources, each of which must
// unmarshal to a Phase.
func SequenceFromReader(r io.Reader) (Sequence, error) {
	var t struct {
		Phases []config.Resource
	}

	dec := json.NewDecoder(r)
	if e := dec.Decode(&t); e != nil {
		return nil, e
	}

	s := make(Sequence, 0, len(t.Phases))
	for _, resource := range t.Phases {
		switch p := resource.Unmarshalled.(type) {
		case Phase:
			s = append(s, p)
		default:
			_ = log.Err("Registry value is not a Phase")
			return nil, config.UnexpectedResourceType
		}
	}

	return s, nil
}
