package fstree

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aoc-go/aocutils/input"
)

// ErrBadTranscript indicates a transcript line that cannot be replayed.
var ErrBadTranscript = errors.New("fstree: bad transcript")

// ParseTranscript replays a cd/ls transcript into a new FileSystem and
// leaves the working directory at the root. Entries listed more than once
// are kept from their first listing. Changing into a directory that was
// never listed creates it.
func ParseTranscript(text string) (*FileSystem, error) {
	lines := input.Lines(strings.TrimSpace(text))
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrBadTranscript)
	}
	if strings.TrimSpace(lines[0]) != "$ cd /" {
		return nil, fmt.Errorf("%w: line 1: want %q, got %q", ErrBadTranscript, "$ cd /", lines[0])
	}

	fs := New()
	for i, line := range lines[1:] {
		if err := fs.replay(strings.TrimSpace(line)); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrBadTranscript, i+2, err)
		}
	}
	fs.CdRoot()
	log.Debugf("replayed %d transcript lines into %d entries", len(lines), fs.Len())

	return fs, nil
}

func (fs *FileSystem) replay(line string) error {
	switch {
	case line == "":
		return nil
	case line == "$ ls":
		return nil
	case line == "$ cd /":
		fs.CdRoot()
		return nil
	case strings.HasPrefix(line, "$ cd "):
		name := strings.TrimPrefix(line, "$ cd ")
		if name == ".." || fs.Exists(name) {
			return fs.Cd(name)
		}
		if err := fs.Mkdir(name); err != nil {
			return err
		}
		return fs.Cd(name)
	case strings.HasPrefix(line, "$"):
		return fmt.Errorf("unknown command %q", line)
	}

	first, name, ok := strings.Cut(line, " ")
	if !ok || name == "" {
		return fmt.Errorf("malformed listing %q", line)
	}
	if fs.Exists(name) {
		return nil
	}
	if first == "dir" {
		return fs.Mkdir(name)
	}
	size, err := strconv.ParseInt(first, 10, 64)
	if err != nil || size < 0 {
		return fmt.Errorf("bad file size in %q", line)
	}

	return fs.Touch(name, size)
}
