package src

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringMatch(t *testing.T) {
	cases := []struct {
		pattern, s string
		noCase     bool
		want       bool
	}{
		{"*", "asda", false, true},
		{"***", "asda", false, true},
		{"*", "", false, true},
		{"*d*", "asda", false, true},
		{"a*a", "asda", false, true},
		{"a*b", "asda", false, false},
		{"as?a", "asda", false, true},
		{"as?a", "asa", false, false},
		{"as[de]a", "asda", false, true},
		{"as[de]a", "asea", false, true},
		{"as[de]a", "asfa", false, false},
		{"as[^de]a", "asfa", false, true},
		{"as[a-e]a", "asca", false, true},
		{"as[e-a]a", "asca", false, true},
		{"as[a-e]a", "asxa", false, false},
		{`as\*a`, "as*a", false, true},
		{`as\*a`, "asda", false, false},
		{"VEC*", "vector", false, false},
		{"VEC*", "vector", true, true},
		{"v[A-Z]c", "vEc", false, true},
		{"v[A-Z]c", "vec", true, true},
		{"abc", "ab", false, false},
		{"ab", "abc", false, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StringMatch(tc.pattern, tc.s, tc.noCase), "%q ~ %q", tc.pattern, tc.s)
	}
}

func TestHistoryFile(t *testing.T) {
	assert.Equal(t, "/tmp/h", HistoryFile("/tmp/h"))
	rel := HistoryFile(SSTL_CLI_HISTFILE_DEFAULT)
	assert.True(t, strings.HasSuffix(rel, "/"+SSTL_CLI_HISTFILE_DEFAULT), rel)
	assert.Equal(t, byte('/'), rel[0])
}
