// Package aocutils collects the reusable data structures behind a set of
// puzzle solvers: an index-based tree, a sparse grid maze, a best-first
// grid search and a merging interval set.
//
// 🚀 What is in aocutils?
//
//	• arena/      append-only tree whose nodes link by index, not pointer
//	• maze/       sparse 2D locations with 4-way adjacency and a movable cursor
//	• pathfind/   shortest path over a maze with a step-validity predicate
//	• intervals/  disjoint closed integer ranges with insert-and-merge
//	• fstree/     a directory tree rebuilt from a cd/ls transcript (uses arena)
//	• sensor/     Manhattan sensor coverage by row (uses intervals)
//	• input/      line helpers for puzzle text
//
// ✨ Conventions
//
//   - Sentinel errors per package, wrapped with context via fmt.Errorf("%w")
//   - Functional options with DefaultOptions() where a type is configurable
//   - Debug logging through github.com/op/go-logging; backends are left to
//     the caller
//   - Nothing here is safe for concurrent mutation
//
// Quick example:
//
//	hm, _ := pathfind.ParseHeightmap("Sabqponm\nabcryxxl\naccszExk\nacctuvwj\nabdefghi")
//	up, _ := hm.Climb()     // 31
//	down, _ := hm.Descend() // 29
//
//	go get github.com/aoc-go/aocutils
package aocutils
