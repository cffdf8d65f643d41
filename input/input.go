// Package input holds small helpers for reading puzzle text.
package input

import (
	"strings"
)

// HeadLines is the number of lines returned by Head.
const HeadLines = 5

// Lines splits s on "\n", dropping a trailing "\r" from each line. A final
// line terminator does not start an extra empty line, so "" has no lines
// and "\n" has one empty line.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	return lines
}

// Head returns the first HeadLines lines of s.
func Head(s string) []string {
	lines := Lines(s)
	if len(lines) > HeadLines {
		lines = lines[:HeadLines]
	}

	return lines
}

// ParseLines applies parse to every line of s and keeps the values that
// parse without error.
func ParseLines[T any](s string, parse func(string) (T, error)) []T {
	var out []T
	for _, line := range Lines(s) {
		v, err := parse(line)
		if err != nil {
			continue
		}
		out = append(out, v)
	}

	return out
}
