package envsource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "HOST", Key("", "HOST"))
	assert.Equal(t, "APP_HOST", Key("APP", "HOST"))
	assert.Equal(t, "APP_DB_HOST", Key(Key("APP", "DB"), "HOST"))
}

func TestMapLookup(t *testing.T) {
	m := Map{"HOST": "h", "EMPTY": ""}

	v, ok := m.Lookup("HOST")
	assert.True(t, ok)
	assert.Equal(t, "h", v)

	// Present but empty is still present.
	v, ok = m.Lookup("EMPTY")
	assert.True(t, ok)
	assert.Empty(t, v)

	_, ok = m.Lookup("MISSING")
	assert.False(t, ok)
}

func TestOSLookup(t *testing.T) {
	t.Setenv("ENVSOURCE_TEST_KEY", "value")

	src := OS()

	v, ok := src.Lookup("ENVSOURCE_TEST_KEY")
	require.True(t, ok)
	assert.Equal(t, "value", v)

	_, ok = src.Lookup("ENVSOURCE_TEST_KEY_ABSENT")
	assert.False(t, ok)
}
