package envsource

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldErrorMessages(t *testing.T) {
	missing := NewMissing("Host", "DB_HOST")
	assert.Equal(t, "Host: missing required value DB_HOST", missing.Error())

	invalid := NewInvalid("Port", "DB_PORT", "abc", errors.New("not a number"))
	assert.Equal(t, `Port: invalid value "abc" for DB_PORT: not a number`, invalid.Error())
}

func TestPrefixed(t *testing.T) {
	list := ErrorList{
		NewMissing("Host", "DB_HOST"),
		NewInvalid("Port", "DB_PORT", "abc", errors.New("bad")),
	}

	prefixed := list.Prefixed("DB")
	require.Len(t, prefixed, 2)
	assert.Equal(t, "DB.Host", prefixed[0].FieldPath())
	assert.Equal(t, "DB.Port", prefixed[1].FieldPath())

	// Originals stay untouched.
	assert.Equal(t, "Host", list[0].FieldPath())

	nested := prefixed.Prefixed("Outer")
	assert.Equal(t, "Outer.DB.Host", nested[0].FieldPath())

	assert.Nil(t, ErrorList{}.Prefixed("X"))
}

func TestErrorListJoins(t *testing.T) {
	list := ErrorList{
		NewMissing("Host", "HOST"),
		NewMissing("Name", "NAME"),
	}

	assert.Equal(t, "Host: missing required value HOST; Name: missing required value NAME", list.Error())
}

func TestErr(t *testing.T) {
	assert.NoError(t, ErrorList{}.Err())
	assert.NoError(t, ErrorList(nil).Err())

	list := ErrorList{NewMissing("Host", "HOST")}
	err := list.Err()
	require.Error(t, err)

	var back ErrorList
	require.ErrorAs(t, err, &back)
	assert.Len(t, back, 1)
}
