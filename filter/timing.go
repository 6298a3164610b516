package filter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/connorkeevill/stopwatch"
	"github.com/connorkeevill/stopwatch/config"
	"github.com/fitstar/falcore"
	"github.com/proidiot/gone/log"
)

// TimingFilter is a falcore.RequestFilter that times the requests it
// forwards to a downstream filter. Each request gets its own Recorder, so
// no Recorder is ever shared between requests. The completed trace is
// written to the log at info level rather than attached to the response.
type TimingFilter struct {
	Identifier  string
	Downstream  falcore.RequestFilter
	NewRecorder func() *stopwatch.Recorder
}

func init() {
	config.MustRegisterResourceType(
		"timingfilter",
		func() json.Unmarshaler {
			return new(TimingFilter)
		},
	)
}

// UnmarshalJSON implements encoding/json.Unmarshaler.
func (f *TimingFilter) UnmarshalJSON(input []byte) error {
	var t struct {
		Identifier string
		Downstream config.Resource
	}

	dec := json.NewDecoder(bytes.NewReader(input))
	if e := dec.Decode(&t); e != nil {
		return e
	}

	ds := t.Downstream.Unmarshalled
	switch ds := ds.(type) {
	case falcore.RequestFilter:
		f.Downstream = ds
	default:
		_ = log.Err(
			fmt.Sprintf(
				"Registry value is not a RequestFilter: %s",
				ds,
			),
		)
		return config.UnexpectedResourceType
	}

	f.Identifier = t.Identifier
	f.NewRecorder = stopwatch.NewRecorder

	return nil
}

// FilterRequest forwards the request to the downstream filter and logs the
// timing trace for this request once the downstream response has been
// produced. The filter itself is never written to here, since falcore may
// run it from many goroutines at once.
func (f *TimingFilter) FilterRequest(
	request *falcore.Request,
) *http.Response {
	newRecorder := f.NewRecorder
	if nil == newRecorder {
		newRecorder = stopwatch.NewRecorder
	}

	recorder := newRecorder()
	response := f.Downstream.FilterRequest(request)
	recorder.AddMeasurement("downstream")

	_ = log.Info(
		fmt.Sprintf(
			"timing trace for %s %s (%s):\n%s",
			request.HttpRequest.Method,
			request.HttpRequest.URL.Path,
			f.Identifier,
			recorder.TimingTrace(),
		),
	)

	return response
}

var _ falcore.RequestFilter = new(TimingFilter)
