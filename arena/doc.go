// Package arena implements an index-based parent/child tree whose nodes
// live in a single append-only backing slice.
//
// What:
//
//   - Tree[T] owns every Node[T]; nodes refer to each other by integer
//     index, never by pointer, so parent/child cycles never become
//     ownership cycles.
//   - Indices are handed out in strictly increasing order starting at 0
//     and are never reused: there is no removal operation.
//   - Every access is bounds-checked against the current arena length and
//     reports ErrNodeDoesNotExist on a miss.
//
// Why:
//
//   - Directory trees, expression trees, scene graphs: anything that wants
//     upward (Parent) and downward (Children) traversal without juggling
//     back-pointers.
//
// Roots:
//
//	The tree does not enforce a single root. Index 0 is the root by
//	convention, but nodes added with AddNode and never registered under a
//	parent are roots as well, so a Tree may hold a forest. Roots reports
//	them all.
//
// Complexity:
//
//   - AddNode, AddChildNode, Node, Len: O(1) amortized.
//   - RegisterParent: O(c), c = number of children already under the parent
//     (duplicate check).
//   - Walk: O(n) over the reachable subtree.
//   - Roots: O(n).
//
// Errors:
//
//   - ErrNodeDoesNotExist: an index outside [0, Len()) was used, or FindChild
//     found no match.
//   - ErrBadCapacity:      WithCapacity was given a negative size (panics).
//
// A Tree is not safe for concurrent mutation.
package arena
