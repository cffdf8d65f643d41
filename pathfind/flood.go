package pathfind

import (
	"fmt"

	"github.com/aoc-go/aocutils/maze"
)

// FloodResult is the outcome of Flood.
type FloodResult[L comparable] struct {
	// Order lists reached locations in the order they were dequeued.
	Order []L
	// Depth maps each reached location to its step distance from start.
	Depth map[L]int
	// Parent maps each reached location except start to its predecessor.
	Parent map[L]L
}

// Reached reports whether loc was reached.
func (r *FloodResult[L]) Reached(loc L) bool {
	_, ok := r.Depth[loc]
	return ok
}

// PathTo rebuilds the path from start to loc by following Parent links,
// or returns ErrUnreachable.
func (r *FloodResult[L]) PathTo(loc L) ([]L, error) {
	d, ok := r.Depth[loc]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, loc)
	}
	path := make([]L, d+1)
	for i := d; i > 0; i-- {
		path[i] = loc
		loc = r.Parent[loc]
	}
	path[0] = loc

	return path, nil
}

// Flood runs a breadth-first search from start and records the step
// distance to every location reachable under CanStep. MaxSteps limits
// the depth; Goal is ignored.
//
// Errors: ErrNilGrid, ErrStartNotFound, or the context's error.
//
// Complexity: O(N) for N reachable locations.
func Flood[L comparable, V any](g maze.Grid[L, V], start L, opts ...Option[L, V]) (*FloodResult[L], error) {
	// 1) Build options
	cfg := DefaultOptions[L, V]()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate input
	if g == nil {
		return nil, ErrNilGrid
	}
	if _, err := g.ValueAt(start); err != nil {
		return nil, fmt.Errorf("%w: %v: %w", ErrStartNotFound, start, err)
	}

	// 3) Seed the queue with start at depth 0
	res := &FloodResult[L]{
		Depth:  map[L]int{start: 0},
		Parent: map[L]L{},
	}
	queue := []L{start}

	// 4) Dequeue in FIFO order, enqueueing unseen admissible neighbours
	for len(queue) > 0 {
		if err := cfg.Ctx.Err(); err != nil {
			return nil, err
		}
		loc := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, loc)

		depth := res.Depth[loc]
		if cfg.MaxSteps >= 0 && depth >= cfg.MaxSteps {
			continue
		}
		val, err := g.ValueAt(loc)
		if err != nil {
			return nil, err
		}
		for _, d := range maze.Directions {
			next, err := g.Neighbor(loc, d)
			if err != nil {
				continue
			}
			if _, seen := res.Depth[next]; seen {
				continue
			}
			nextVal, err := g.ValueAt(next)
			if err != nil || !cfg.CanStep(val, nextVal) {
				continue
			}
			res.Depth[next] = depth + 1
			res.Parent[next] = loc
			queue = append(queue, next)
		}
	}
	log.Debugf("flood from %v reached %d locations", start, len(res.Order))

	return res, nil
}
