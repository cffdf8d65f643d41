package input_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aoc-go/aocutils/input"
)

func TestHead(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"Empty", "", nil},
		{"One", "foobar", []string{"foobar"}},
		{"OneNewline", "\n", []string{""}},
		{"TwoNewlines", "\n\n", []string{"", ""}},
		{"CRLF", "a\r\nb\r\n", []string{"a", "b"}},
		{"Six", "foo\nbar\nbaz\ndead\nbeef\nfoo", []string{"foo", "bar", "baz", "dead", "beef"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, input.Head(tc.in))
		})
	}
}

func parseU8(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 10, 8)
	return uint8(v), err
}

func TestParseLines(t *testing.T) {
	assert.Equal(t, []uint8{1, 2, 3}, input.ParseLines("1\n2\n3", parseU8))
	assert.Equal(t, []uint8{1, 2}, input.ParseLines("1\n2\nthree", parseU8))
	assert.Equal(t, []uint8{1, 2}, input.ParseLines("1\n2\nthree\n", parseU8))
	assert.Equal(t, []uint8{7}, input.ParseLines("300\n7", parseU8))
	assert.Empty(t, input.ParseLines("", strconv.Atoi))
	assert.Equal(t, []int{-4, 12}, input.ParseLines("-4\n\n12", strconv.Atoi))
}
