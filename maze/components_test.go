package maze_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aoc-go/aocutils/maze"
)

func TestComponents(t *testing.T) {
	// rows listed top-down; y of the last row is 0
	rows := []string{
		"##..#",
		"#...#",
		"....#",
		"#.#.#",
	}
	m := maze.New[loc, byte]()
	for j, row := range rows {
		for x := range row {
			m.AddLoc(maze.Pt(uint(x), uint(len(rows)-1-j)), row[x])
		}
	}

	land := m.Components(func(c byte) bool { return c == '#' })
	sizes := make([]int, 0, len(land))
	for _, c := range land {
		sizes = append(sizes, len(c))
	}
	sort.Ints(sizes)
	// top-left corner, right column, two singles in the bottom row
	assert.Equal(t, []int{1, 1, 3, 4}, sizes)

	water := m.Components(func(c byte) bool { return c == '.' })
	assert.Len(t, water, 1)
	assert.Len(t, water[0], 11)

	assert.Empty(t, m.Components(func(byte) bool { return false }))
}

func TestComponents_SparseGap(t *testing.T) {
	m := maze.New[loc, int]()
	m.AddLoc(maze.Pt[uint](0, 0), 1)
	m.AddLoc(maze.Pt[uint](1, 0), 1)
	// (2,0) missing: no bounding box fills it
	m.AddLoc(maze.Pt[uint](3, 0), 1)

	assert.Len(t, m.Components(func(int) bool { return true }), 2)
}
