package intervals

import (
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

// degree of the backing B-tree.
const degree = 16

// Set holds pairwise-disjoint closed intervals ordered by left bound.
// Inserting an interval merges it with every stored interval it overlaps.
// Intervals that merely touch ([3,5] and [6,8]) are kept apart.
type Set[T constraints.Signed] struct {
	tree *btree.BTreeG[Interval[T]]
}

// NewSet returns an empty Set.
func NewSet[T constraints.Signed]() *Set[T] {
	return &Set[T]{
		tree: btree.NewG[Interval[T]](degree, func(a, b Interval[T]) bool { return a.Left < b.Left }),
	}
}

// Insert adds iv, folding every overlapping stored interval into it.
// An inverted interval (Left > Right) covers nothing and is ignored.
//
// Complexity: O(k log n) for k merged intervals.
func (s *Set[T]) Insert(iv Interval[T]) {
	if iv.Left > iv.Right {
		return
	}

	// Stored intervals are disjoint, so descending by Left also descends
	// by Right: stop at the first one ending before iv starts.
	var overlapping []Interval[T]
	s.tree.DescendLessOrEqual(Interval[T]{Left: iv.Right}, func(it Interval[T]) bool {
		if it.Right < iv.Left {
			return false
		}
		overlapping = append(overlapping, it)
		return true
	})

	merged := iv
	for _, it := range overlapping {
		s.tree.Delete(it)
		merged, _ = merged.Union(it)
	}
	s.tree.ReplaceOrInsert(merged)
}

// Contains reports whether any stored interval includes p.
func (s *Set[T]) Contains(p T) bool {
	found := false
	s.tree.DescendLessOrEqual(Interval[T]{Left: p}, func(it Interval[T]) bool {
		found = it.Right >= p
		return false
	})

	return found
}

// TotalLength returns the number of integer points covered. Stored
// intervals are disjoint, so the sum is at most 2^64 and only wraps (to 0)
// when the set covers every int64.
func (s *Set[T]) TotalLength() uint64 {
	var total uint64
	s.tree.Ascend(func(it Interval[T]) bool {
		total += it.Len()
		return true
	})

	return total
}

// Len returns the number of stored intervals.
func (s *Set[T]) Len() int { return s.tree.Len() }

// Intervals returns the stored intervals in ascending order.
func (s *Set[T]) Intervals() []Interval[T] {
	out := make([]Interval[T], 0, s.tree.Len())
	s.tree.Ascend(func(it Interval[T]) bool {
		out = append(out, it)
		return true
	})

	return out
}

// Gaps returns the maximal closed ranges within [lo, hi] that no stored
// interval covers, in ascending order. It returns nil if lo > hi.
func (s *Set[T]) Gaps(lo, hi T) []Interval[T] {
	if lo > hi {
		return nil
	}

	var gaps []Interval[T]
	cursor, done := lo, false
	s.tree.Ascend(func(it Interval[T]) bool {
		if it.Right < cursor {
			return true
		}
		if it.Left > hi {
			return false
		}
		if it.Left > cursor {
			gaps = append(gaps, Interval[T]{Left: cursor, Right: it.Left - 1})
		}
		if it.Right >= hi {
			done = true
			return false
		}
		cursor = it.Right + 1
		return true
	})
	if !done {
		gaps = append(gaps, Interval[T]{Left: cursor, Right: hi})
	}

	return gaps
}
