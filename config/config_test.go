package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeResource struct {
	Name string
}

func (f *fakeResource) UnmarshalJSON(input []byte) error {
	var t struct {
		Name string
	}
	if e := json.Unmarshal(input, &t); e != nil {
		return e
	}
	f.Name = t.Name
	return nil
}

func init() {
	MustRegisterResourceType(
		"fakeresource",
		func() json.Unmarshaler {
			return new(fakeResource)
		},
	)
}

func TestResourceUnmarshal(t *testing.T) {
	/* setup */
	input := `{"type": "fakeresource", "data": {"name": "widget"}}`

	/* run */
	var r Resource
	err := json.Unmarshal([]byte(input), &r)

	/* check */
	assert.NoError(t, err)
	f, ok := r.Unmarshalled.(*fakeResource)
	assert.True(t, ok)
	assert.Equal(t, "widget", f.Name)
}

func TestResourceUnmarshalWithoutData(t *testing.T) {
	/* setup */
	input := `{"type": "fakeresource"}`

	/* run */
	var r Resource
	err := json.Unmarshal([]byte(input), &r)

	/* check */
	assert.NoError(t, err)
	assert.NotNil(t, r.Unmarshalled)
}

func TestResourceUnmarshalUnknownType(t *testing.T) {
	/* setup */
	input := `{"type": "nosuchresource", "data": {}}`

	/* run */
	var r Resource
	err := json.Unmarshal([]byte(input), &r)

	/* check */
	assert.Error(t, err)
	assert.Equal(t, UnknownResourceType, err)
	assert.Nil(t, r.Unmarshalled)
}

func TestResourceUnmarshalBadJSON(t *testing.T) {
	/* run */
	var r Resource
	err := json.Unmarshal([]byte(`{"type": 7}`), &r)

	/* check */
	assert.Error(t, err)
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustRegisterResourceType(
			"fakeresource",
			func() json.Unmarshaler {
				return new(fakeResource)
			},
		)
	})
}
