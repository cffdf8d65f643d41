package intervals

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrInvalidInterval indicates a left bound greater than the right bound.
var ErrInvalidInterval = errors.New("intervals: left bound exceeds right bound")

// Interval is the closed range [Left, Right].
type Interval[T constraints.Signed] struct {
	Left, Right T
}

// NewInterval returns [left, right], or ErrInvalidInterval if left > right.
func NewInterval[T constraints.Signed](left, right T) (Interval[T], error) {
	if left > right {
		return Interval[T]{}, fmt.Errorf("%w: [%d,%d]", ErrInvalidInterval, left, right)
	}

	return Interval[T]{Left: left, Right: right}, nil
}

// Len returns the number of integer points covered, Right-Left+1, for
// Left <= Right. The difference is taken in uint64 so it never wraps for
// narrow types. The one unrepresentable case is the full int64 range,
// 2^64 points, which reports 0.
func (iv Interval[T]) Len() uint64 {
	return uint64(int64(iv.Right)) - uint64(int64(iv.Left)) + 1
}

// Contains reports whether p lies within the closed bounds.
func (iv Interval[T]) Contains(p T) bool { return p >= iv.Left && p <= iv.Right }

// Overlaps reports whether the two intervals share at least one point.
func (iv Interval[T]) Overlaps(o Interval[T]) bool {
	return o.Left <= iv.Right && o.Right >= iv.Left
}

// Union returns the smallest interval covering both. It reports false,
// returning iv unchanged, when the two are disjoint.
func (iv Interval[T]) Union(o Interval[T]) (Interval[T], bool) {
	if o.Left > iv.Right || o.Right < iv.Left {
		return iv, false
	}

	return Interval[T]{Left: min(iv.Left, o.Left), Right: max(iv.Right, o.Right)}, true
}

// String formats the interval as "[l,r]".
func (iv Interval[T]) String() string {
	return fmt.Sprintf("[%d,%d]", iv.Left, iv.Right)
}
