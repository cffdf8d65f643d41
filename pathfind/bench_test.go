package pathfind_test

import (
	"testing"

	"github.com/aoc-go/aocutils/maze"
	"github.com/aoc-go/aocutils/pathfind"
)

// BenchmarkShortestPath_OpenSquare measures a corner-to-corner search on an
// open n×n grid. Complexity: O(C log C) for C enqueued paths.
func BenchmarkShortestPath_OpenSquare(b *testing.B) {
	const n = 40
	m := maze.New[loc, int]()
	for x := uint(0); x < n; x++ {
		for y := uint(0); y < n; y++ {
			m.AddLoc(maze.Pt(x, y), 0)
		}
	}
	goal := pathfind.WithGoalLocation[loc, int](maze.Pt[uint](n-1, n-1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pathfind.ShortestPath[loc, int](m, maze.Pt[uint](0, 0), goal); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHeightmap_Climb(b *testing.B) {
	h, err := pathfind.ParseHeightmap(sample)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := h.Climb(); err != nil {
			b.Fatal(err)
		}
	}
}
