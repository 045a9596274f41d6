package src

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextLineIdx(t *testing.T) {
	assert.Equal(t, 7, nextLineIdx("hello  world", 5))
	assert.Equal(t, 3, nextLineIdx("abc", 3))
}

func TestSplitArgs(t *testing.T) {
	cases := []struct {
		line string
		want []string
	}{
		{` "vget" name`, []string{"vget", "name"}},
		{`vpush v "na\"me"`, []string{"vpush", "v", `na"me`}},
		{`vpush v 'na\'me'`, []string{"vpush", "v", "na'me"}},
		{`sset s 'na me'`, []string{"sset", "s", "na me"}},
		{`sset s "na\nme"`, []string{"sset", "s", "na\nme"}},
		{`sset s "a\x"`, []string{"sset", "s", "ax"}},
		{"  ping   ", []string{"ping"}},
		{`sset s ""`, []string{"sset", "s", ""}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, splitArgs(tc.line), tc.line)
	}
}

func TestSplitArgsUnbalanced(t *testing.T) {
	for _, line := range []string{
		``,
		`sset s "abc`,
		`sset s 'abc`,
		`sset s "abc"x`,
		`sset s "abc\"`,
		`"`,
	} {
		assert.Nil(t, splitArgs(line), line)
	}
}
