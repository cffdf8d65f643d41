package arena

import (
	"errors"
	"fmt"
)

// Sentinel errors for arena operations.
var (
	// ErrNodeDoesNotExist indicates an index outside the arena bounds.
	ErrNodeDoesNotExist = errors.New("arena: node does not exist")

	// ErrBadCapacity indicates a negative capacity passed to WithCapacity.
	ErrBadCapacity = errors.New("arena: capacity must be non-negative")

	// SkipChildren may be returned by a Walk visitor to skip the
	// descendants of the node just visited. It is never returned by Walk.
	SkipChildren = errors.New("arena: skip children")
)

// noParent marks a node that has not been registered under any parent.
const noParent = -1

// Node is a single arena slot. Value is freely mutable by the owner;
// the structural fields are only changed through Tree methods.
type Node[T comparable] struct {
	// Value is the payload supplied at insertion.
	Value T

	idx      int
	parent   int
	children []int
}

// Index returns the node's own stable index.
func (n *Node[T]) Index() int { return n.idx }

// Parent returns the parent index, or false for a root.
func (n *Node[T]) Parent() (int, bool) {
	if n.parent == noParent {
		return 0, false
	}

	return n.parent, true
}

// IsRoot reports whether the node has no parent.
func (n *Node[T]) IsRoot() bool { return n.parent == noParent }

// Children returns a copy of the child indices in insertion order.
func (n *Node[T]) Children() []int {
	out := make([]int, len(n.children))
	copy(out, n.children)

	return out
}

// NumChildren returns the number of registered children.
func (n *Node[T]) NumChildren() int { return len(n.children) }

// Option configures a Tree at construction.
type Option func(*Options)

// Options holds construction parameters for New.
type Options struct {
	// Capacity pre-sizes the backing slice. Zero means no preallocation.
	Capacity int
}

// DefaultOptions returns Options with no preallocation.
func DefaultOptions() Options {
	return Options{Capacity: 0}
}

// WithCapacity pre-sizes the arena for n nodes.
// Panics with ErrBadCapacity if n is negative.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadCapacity.Error())
		}
		o.Capacity = n
	}
}

func nodeError(idx, n int) error {
	return fmt.Errorf("%w: index %d (arena holds %d nodes)", ErrNodeDoesNotExist, idx, n)
}
