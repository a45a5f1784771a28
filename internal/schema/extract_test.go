package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"envgen/scalar"
)

func loadExamples(t *testing.T, patterns ...string) *Extractor {
	t.Helper()

	ex := NewExtractor()
	require.NoError(t, ex.LoadPackages(patterns...))

	return ex
}

func TestExtract_Basic(t *testing.T) {
	ex := loadExamples(t, "envgen/examples/basic")

	spec, err := ex.Extract("AppConfig")
	require.NoError(t, err)

	assert.Equal(t, "AppConfig", spec.Name)
	assert.Equal(t, "envgen/examples/basic", spec.PkgPath)
	require.Len(t, spec.Fields, 6)

	name := spec.Fields[0]
	assert.Equal(t, "Name", name.Name)
	assert.Equal(t, scalar.KindString, name.Kind)
	assert.Equal(t, "string", name.TypeName)

	port := spec.Fields[1]
	assert.Equal(t, "8080", port.Default)
	assert.Equal(t, "int", port.TypeName)

	rate := spec.Fields[3]
	assert.Equal(t, "RATE_LIMIT", rate.Key)
	assert.True(t, rate.Optional)

	workers := spec.Fields[4]
	assert.True(t, workers.Pointer)
	assert.True(t, workers.Optional)
	assert.Equal(t, "int", workers.TypeName)

	timeout := spec.Fields[5]
	assert.Equal(t, scalar.KindDuration, timeout.Kind)
	assert.Equal(t, "time.Duration", timeout.TypeName)
}

func TestExtract_Nested(t *testing.T) {
	ex := loadExamples(t, "envgen/examples/nested")

	spec, err := ex.Extract("Config")
	require.NoError(t, err)
	require.Len(t, spec.Fields, 3)

	db := spec.Fields[0]
	assert.True(t, db.Nested)
	assert.True(t, db.IsStruct)
	assert.Equal(t, "Database", db.TypeName)
	require.NotNil(t, db.Child)
	assert.Equal(t, "Database", db.Child.Name)
	require.Len(t, db.Child.Fields, 2)
	assert.Equal(t, "Host", db.Child.Fields[0].Name)

	server := spec.Fields[1]
	assert.True(t, server.Flatten)
	require.NotNil(t, server.Child)
	assert.Equal(t, "LISTEN_HOST", server.Child.Fields[0].Key)

	env := spec.Fields[2]
	assert.Equal(t, "production", env.Default)
}

func TestExtract_SharedChildCached(t *testing.T) {
	ex := loadExamples(t, "envgen/examples/nested")

	first, err := ex.Extract("Config")
	require.NoError(t, err)

	second, err := ex.Extract("Database")
	require.NoError(t, err)

	// The child spec reachable from Config is the same object.
	assert.Same(t, second, first.Fields[0].Child)
}

func TestExtract_UnknownType(t *testing.T) {
	ex := loadExamples(t, "envgen/examples/basic")

	_, err := ex.Extract("NoSuchType")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestExtract_AllScalarKindsResolved(t *testing.T) {
	ex := loadExamples(t, "envgen/examples/nested")

	spec, err := ex.Extract("Config")
	require.NoError(t, err)

	for _, f := range spec.Fields {
		if f.IsStruct {
			continue
		}

		assert.NotEqual(t, scalar.KindInvalid, f.Kind, f.Name)
	}
}

func TestLoadPackages_BadPattern(t *testing.T) {
	ex := NewExtractor()

	err := ex.LoadPackages("envgen/examples/doesnotexist")
	require.Error(t, err)
}
