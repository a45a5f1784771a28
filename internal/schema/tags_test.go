package schema

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTag(t *testing.T) {
	cases := []struct {
		name string
		tag  reflect.StructTag
		want Annotations
	}{
		{
			name: "no tags",
			tag:  ``,
			want: Annotations{},
		},
		{
			name: "key only",
			tag:  `env:"RATE_LIMIT"`,
			want: Annotations{Key: "RATE_LIMIT", HasKey: true},
		},
		{
			name: "empty key keeps derived name",
			tag:  `env:",optional"`,
			want: Annotations{Optional: true},
		},
		{
			name: "skip",
			tag:  `env:"-"`,
			want: Annotations{Skip: true},
		},
		{
			name: "key with option",
			tag:  `env:"TOKEN,optional"`,
			want: Annotations{Key: "TOKEN", HasKey: true, Optional: true},
		},
		{
			name: "nested",
			tag:  `env:",nested"`,
			want: Annotations{Nested: true},
		},
		{
			name: "flatten",
			tag:  `env:",flatten"`,
			want: Annotations{Flatten: true},
		},
		{
			name: "default",
			tag:  `default:"8080"`,
			want: Annotations{Default: "8080", HasDefault: true},
		},
		{
			name: "empty default is still a default",
			tag:  `default:""`,
			want: Annotations{HasDefault: true},
		},
		{
			name: "prefix",
			tag:  `env:",nested" prefix:"PG"`,
			want: Annotations{Nested: true, Prefix: "PG", HasPrefix: true},
		},
		{
			name: "unknown option",
			tag:  `env:"HOST,required"`,
			want: Annotations{Key: "HOST", HasKey: true, Unknown: []string{"required"}},
		},
		{
			name: "foreign tags ignored",
			tag:  `json:"host" yaml:"host"`,
			want: Annotations{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseTag(tc.tag))
		})
	}
}
