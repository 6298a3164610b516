package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/proidiot/gone/errors"
	"github.com/proidiot/gone/log"
)

// UnknownResourceType indicates that a resource in the config refers to a
// type that has not been registered.
const UnknownResourceType = errors.ErrorString(
	"The resource type given has not been registered",
)

// UnexpectedResourceType indicates that a resource unmarshalled cleanly but
// is not of the type the surrounding component requires.
const UnexpectedResourceType = errors.ErrorString(
	"The resource given is not of the expected type",
)

var registry map[string]func() json.Unmarshaler

// MustRegisterResourceType associates a resource type name with a generator
// for that type's unmarshaler. It is expected to be called from the init of
// the package implementing the resource, and so it panics on a duplicate
// name rather than returning an error.
func MustRegisterResourceType(
	name string,
	generator func() json.Unmarshaler,
) {
	if registry == nil {
		registry = make(map[string]func() json.Unmarshaler)
	}

	if _, present := registry[name]; present {
		panic(
			fmt.Sprintf(
				"resource type registered twice: %s",
				name,
			),
		)
	}

	registry[name] = generator
}

// Resource is a reference to a registered resource type along with the data
// needed to construct an instance of it. Its JSON form is an object with a
// "type" naming the registered type and a "data" object handed to that
// type's unmarshaler. After a successful unmarshal the constructed instance
// is available as Unmarshalled.
type Resource struct {
	Unmarshalled json.Unmarshaler
}

// UnmarshalJSON implements encoding/json.Unmarshaler.
func (r *Resource) UnmarshalJSON(input []byte) error {
	var t struct {
		Type string
		Data json.RawMessage
	}

	dec := json.NewDecoder(bytes.NewReader(input))
	if e := dec.Decode(&t); e != nil {
		return e
	}

	generator, present := registry[t.Type]
	if !present {
		_ = log.Err(
			fmt.Sprintf(
				"config referenced an unregistered resource"+
					" type: %s",
				t.Type,
			),
		)
		return UnknownResourceType
	}

	u := generator()
	if t.Data != nil {
		if e := u.UnmarshalJSON(t.Data); e != nil {
			return e
		}
	}

	r.Unmarshalled = u
	return nil
}
