package arena

import (
	"errors"
	"slices"
)

// Tree is an append-only arena of nodes linked by index.
// The zero value is not usable; construct with New.
type Tree[T comparable] struct {
	nodes []*Node[T]
}

// New returns an empty Tree configured by opts.
func New[T comparable](opts ...Option) *Tree[T] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Tree[T]{nodes: make([]*Node[T], 0, cfg.Capacity)}
}

// Len returns the number of nodes ever added.
func (t *Tree[T]) Len() int { return len(t.nodes) }

// valid reports whether idx addresses an existing node.
func (t *Tree[T]) valid(idx int) bool {
	return idx >= 0 && idx < len(t.nodes)
}

// Node returns the node at idx, or ErrNodeDoesNotExist.
// The returned pointer stays valid as the arena grows.
func (t *Tree[T]) Node(idx int) (*Node[T], error) {
	if !t.valid(idx) {
		return nil, nodeError(idx, len(t.nodes))
	}

	return t.nodes[idx], nil
}

// AddNode appends a parentless node holding value and returns its index.
func (t *Tree[T]) AddNode(value T) int {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, &Node[T]{
		Value:  value,
		idx:    idx,
		parent: noParent,
	})

	return idx
}

// AddChildNode appends a node holding value and links it under parent.
// Nothing is appended if parent does not exist.
func (t *Tree[T]) AddChildNode(parent int, value T) (int, error) {
	if !t.valid(parent) {
		return 0, nodeError(parent, len(t.nodes))
	}
	child := t.AddNode(value)
	if err := t.RegisterParent(child, parent); err != nil {
		return 0, err
	}

	return child, nil
}

// RegisterParent sets child's parent pointer to parent (overwriting any
// previous one) and appends child to parent's children unless already
// listed. Calling it twice with the same pair is a no-op.
//
// A previous parent keeps child in its own child list; the arena has no
// re-parenting operation.
func (t *Tree[T]) RegisterParent(child, parent int) error {
	if !t.valid(child) {
		return nodeError(child, len(t.nodes))
	}
	if !t.valid(parent) {
		return nodeError(parent, len(t.nodes))
	}
	t.nodes[child].parent = parent
	p := t.nodes[parent]
	if !slices.Contains(p.children, child) {
		p.children = append(p.children, child)
	}

	return nil
}

// Roots returns the indices of all parentless nodes in ascending order.
// A conventional single-rooted tree yields []int{0}.
func (t *Tree[T]) Roots() []int {
	var roots []int
	for _, n := range t.nodes {
		if n.parent == noParent {
			roots = append(roots, n.idx)
		}
	}

	return roots
}

// Ancestors returns the parent chain of idx, nearest first.
// A root yields an empty slice.
func (t *Tree[T]) Ancestors(idx int) ([]int, error) {
	if !t.valid(idx) {
		return nil, nodeError(idx, len(t.nodes))
	}
	var chain []int
	seen := newVisited(len(t.nodes))
	seen.mark(idx)
	for p := t.nodes[idx].parent; p != noParent && seen.mark(p); p = t.nodes[p].parent {
		chain = append(chain, p)
	}

	return chain, nil
}

// FindChild returns the index of the first child of parent, in insertion
// order, whose value satisfies match.
func (t *Tree[T]) FindChild(parent int, match func(T) bool) (int, error) {
	if !t.valid(parent) {
		return 0, nodeError(parent, len(t.nodes))
	}
	for _, c := range t.nodes[parent].children {
		if match(t.nodes[c].Value) {
			return c, nil
		}
	}

	return 0, ErrNodeDoesNotExist
}

// Walk visits the subtree rooted at root in pre-order, children in
// insertion order. depth is 0 for root. A visitor returning SkipChildren
// prunes that node's descendants; any other error aborts the walk and is
// returned. Each node is visited at most once even if RegisterParent was
// used to build a cycle, including through nodes the visitor adds.
func (t *Tree[T]) Walk(root int, visit func(n *Node[T], depth int) error) error {
	if !t.valid(root) {
		return nodeError(root, len(t.nodes))
	}

	type frame struct{ idx, depth int }
	seen := newVisited(len(t.nodes))
	stack := []frame{{root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !seen.mark(f.idx) {
			continue
		}

		n := t.nodes[f.idx]
		if err := visit(n, f.depth); err != nil {
			if errors.Is(err, SkipChildren) {
				continue
			}
			return err
		}
		// reverse push keeps insertion order on pop
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, frame{n.children[i], f.depth + 1})
		}
	}

	return nil
}
