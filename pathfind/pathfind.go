package pathfind

import (
	"fmt"
	"slices"

	"github.com/Workiva/go-datastructures/queue"
	logging "github.com/op/go-logging"

	"github.com/aoc-go/aocutils/maze"
)

var log = logging.MustGetLogger("pathfind")

// ShortestPath returns the fewest 4-directional moves from start to the
// first location satisfying the configured goal.
//
// The frontier holds whole paths ordered by length. A location is settled
// the first time any path ending there is popped; later arrivals are
// dropped unexpanded. A neighbour is enqueued only if it exists in g, is
// not already on the current path, and CanStep(current, neighbour) holds.
//
// Preconditions (checked in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. a goal must be configured (ErrNoGoal).
//  3. start must be in g (ErrStartNotFound).
//
// If the frontier empties first, ErrUnreachable is returned. A cancelled
// WithContext context aborts with its error.
//
// Complexity: O(C log C) queue work for C enqueued paths, each path costing
// O(length) memory.
func ShortestPath[L comparable, V any](g maze.Grid[L, V], start L, opts ...Option[L, V]) (*Result[L], error) {
	// 1) Build options
	cfg := DefaultOptions[L, V]()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate input
	if g == nil {
		return nil, ErrNilGrid
	}
	if cfg.Goal == nil {
		return nil, ErrNoGoal
	}
	if _, err := g.ValueAt(start); err != nil {
		return nil, fmt.Errorf("%w: %v: %w", ErrStartNotFound, start, err)
	}

	// 3) Prepare searcher with an empty frontier
	s := &searcher[L, V]{
		g:       g,
		cfg:     cfg,
		visited: make(map[L]struct{}),
		pq:      queue.NewPriorityQueue(64, true),
	}
	defer s.pq.Dispose()

	// 4) Run and log the outcome
	res, err := s.run(start)
	if err != nil {
		log.Debugf("search from %v failed after settling %d locations: %v", start, len(s.visited), err)
		return nil, err
	}
	log.Debugf("search from %v reached %v in %d steps (%d settled, %d enqueued)",
		start, res.End(), res.Steps, len(s.visited), s.pushed)

	return res, nil
}

// searcher holds the mutable state of one ShortestPath call.
type searcher[L comparable, V any] struct {
	g       maze.Grid[L, V]
	cfg     Options[L, V]
	visited map[L]struct{}
	pq      *queue.PriorityQueue
	pushed  int
}

func (s *searcher[L, V]) push(path []L) error {
	s.pushed++
	return s.pq.Put(&pathItem[L]{path: path})
}

func (s *searcher[L, V]) run(start L) (*Result[L], error) {
	if err := s.push([]L{start}); err != nil {
		return nil, err
	}

	for !s.pq.Empty() {
		if err := s.cfg.Ctx.Err(); err != nil {
			return nil, err
		}
		items, err := s.pq.Get(1)
		if err != nil {
			return nil, err
		}
		path := items[0].(*pathItem[L]).path
		loc := path[len(path)-1]

		// settle on first pop; later arrivals are never shorter
		if _, seen := s.visited[loc]; seen {
			continue
		}
		s.visited[loc] = struct{}{}

		val, err := s.g.ValueAt(loc)
		if err != nil {
			// only locations present in g are ever enqueued
			return nil, err
		}
		if s.cfg.Goal(loc, val) {
			return &Result[L]{Steps: len(path) - 1, Path: path}, nil
		}
		if s.cfg.MaxSteps >= 0 && len(path)-1 >= s.cfg.MaxSteps {
			continue
		}
		if err := s.expand(path, val); err != nil {
			return nil, err
		}
	}

	return nil, ErrUnreachable
}

// expand enqueues every admissible one-step extension of path.
func (s *searcher[L, V]) expand(path []L, val V) error {
	loc := path[len(path)-1]
	for _, d := range maze.Directions {
		next, err := s.g.Neighbor(loc, d)
		if err != nil {
			continue
		}
		if slices.Contains(path, next) {
			continue
		}
		nextVal, err := s.g.ValueAt(next)
		if err != nil {
			continue
		}
		if !s.cfg.CanStep(val, nextVal) {
			continue
		}
		extended := make([]L, len(path), len(path)+1)
		copy(extended, path)
		if err := s.push(append(extended, next)); err != nil {
			return err
		}
	}

	return nil
}

// pathItem orders frontier paths by length; equal lengths compare equal,
// so their pop order is unspecified.
type pathItem[L comparable] struct {
	path []L
}

// Compare implements queue.Item.
func (p *pathItem[L]) Compare(other queue.Item) int {
	o := other.(*pathItem[L])
	switch {
	case len(p.path) < len(o.path):
		return -1
	case len(p.path) > len(o.path):
		return 1
	default:
		return 0
	}
}
