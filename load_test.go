package envgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"envgen/envsource"
)

type testDatabase struct {
	Host string
	Port int `default:"5432"`
}

type testServer struct {
	Host    string `env:"LISTEN_HOST"`
	Workers int    `default:"4"`
}

type testConfig struct {
	Name    string
	Timeout time.Duration `default:"30s"`
	Rate    float64       `env:"RATE_LIMIT,optional"`
	Debug   *bool
	DB      testDatabase `env:",nested"`
	Server  testServer   `env:",flatten"`
}

func TestLoad_Full(t *testing.T) {
	src := envsource.Map{
		"NAME":        "svc",
		"TIMEOUT":     "1m",
		"RATE_LIMIT":  "2.5",
		"DEBUG":       "yes",
		"DB_HOST":     "db.internal",
		"DB_PORT":     "6432",
		"LISTEN_HOST": "0.0.0.0",
	}

	var cfg testConfig
	require.NoError(t, Load(&cfg, src))

	assert.Equal(t, "svc", cfg.Name)
	assert.Equal(t, time.Minute, cfg.Timeout)
	assert.Equal(t, 2.5, cfg.Rate)
	require.NotNil(t, cfg.Debug)
	assert.True(t, *cfg.Debug)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 6432, cfg.DB.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 4, cfg.Server.Workers)
}

func TestLoad_DefaultsAndOptionals(t *testing.T) {
	src := envsource.Map{
		"NAME":        "svc",
		"DB_HOST":     "db",
		"LISTEN_HOST": "127.0.0.1",
	}

	var cfg testConfig
	require.NoError(t, Load(&cfg, src))

	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Zero(t, cfg.Rate)
	assert.Nil(t, cfg.Debug)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 4, cfg.Server.Workers)
}

func TestLoad_MissingReportsNestedPath(t *testing.T) {
	src := envsource.Map{
		"NAME":        "svc",
		"LISTEN_HOST": "127.0.0.1",
	}

	var cfg testConfig
	err := Load(&cfg, src)
	require.Error(t, err)

	errs, ok := err.(envsource.ErrorList)
	require.True(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, "DB.Host", errs[0].FieldPath())
	assert.Equal(t, "DB_HOST", errs[0].Key)
	assert.Equal(t, envsource.ErrorMissing, errs[0].Kind)
}

func TestLoad_FlattenPathHasNoSegment(t *testing.T) {
	src := envsource.Map{
		"NAME":    "svc",
		"DB_HOST": "db",
	}

	var cfg testConfig
	err := Load(&cfg, src)
	require.Error(t, err)

	errs, ok := err.(envsource.ErrorList)
	require.True(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, "Host", errs[0].FieldPath())
	assert.Equal(t, "LISTEN_HOST", errs[0].Key)
}

func TestLoad_AggregatesAllErrors(t *testing.T) {
	src := envsource.Map{
		"TIMEOUT": "soon",
		"DB_PORT": "not-a-number",
	}

	var cfg testConfig
	err := Load(&cfg, src)
	require.Error(t, err)

	errs, ok := err.(envsource.ErrorList)
	require.True(t, ok)

	var paths []string
	for _, e := range errs {
		paths = append(paths, e.FieldPath())
	}

	// Declaration order: Name missing, Timeout invalid, DB.Host missing,
	// DB.Port invalid, Server.Host (flattened, bare) missing.
	assert.Equal(t, []string{"Name", "Timeout", "DB.Host", "DB.Port", "Host"}, paths)

	assert.Equal(t, envsource.ErrorInvalid, errs[1].Kind)
	assert.Equal(t, "soon", errs[1].Raw)
	assert.Equal(t, envsource.ErrorInvalid, errs[3].Kind)
}

func TestLoad_FailureLeavesDstUntouched(t *testing.T) {
	cfg := testConfig{Name: "before"}

	err := Load(&cfg, envsource.Map{})
	require.Error(t, err)
	assert.Equal(t, "before", cfg.Name)
	assert.Zero(t, cfg.Timeout)
}

func TestLoad_WithPrefix(t *testing.T) {
	type small struct {
		Host string
	}

	src := envsource.Map{"APP_HOST": "h"}

	var cfg small
	require.NoError(t, Load(&cfg, src, WithPrefix("APP")))
	assert.Equal(t, "h", cfg.Host)

	err := Load(&cfg, envsource.Map{"HOST": "h"}, WithPrefix("APP"))
	require.Error(t, err)
}

func TestLoad_PrefixOverrideOnNested(t *testing.T) {
	type inner struct {
		Host string
	}

	type outer struct {
		DB inner `env:",nested" prefix:"PG"`
	}

	src := envsource.Map{"PG_HOST": "h"}

	var cfg outer
	require.NoError(t, Load(&cfg, src, WithPrefix("APP")))
	assert.Equal(t, "h", cfg.DB.Host)
}

func TestLoad_KeyOverrideComposesWithPrefix(t *testing.T) {
	type small struct {
		Rate float64 `env:"RATE_LIMIT"`
	}

	src := envsource.Map{"APP_RATE_LIMIT": "0.5"}

	var cfg small
	require.NoError(t, Load(&cfg, src, WithPrefix("APP")))
	assert.Equal(t, 0.5, cfg.Rate)
}

func TestLoad_SkippedAndUnexportedFields(t *testing.T) {
	type small struct {
		Host     string
		Internal string `env:"-"`
		hidden   string
	}

	var cfg small
	require.NoError(t, Load(&cfg, envsource.Map{"HOST": "h"}))
	assert.Equal(t, "h", cfg.Host)
	assert.Empty(t, cfg.Internal)
}

func TestLoad_BadDestination(t *testing.T) {
	src := envsource.Map{}

	require.Error(t, Load(nil, src))
	require.Error(t, Load(testConfig{}, src))

	var n int
	require.Error(t, Load(&n, src))
}

func TestLoad_ConflictingAnnotations(t *testing.T) {
	type bad struct {
		Port int `default:"8080" env:",optional"`
	}

	var cfg bad
	err := Load(&cfg, envsource.Map{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conflicting-annotations")
}

func TestLoad_UnknownTagOption(t *testing.T) {
	type bad struct {
		Host string `env:"HOST,required"`
	}

	var cfg bad
	err := Load(&cfg, envsource.Map{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown env option "required"`)
}
