// Package intervals provides closed integer intervals and a set of
// pairwise-disjoint intervals with insertion-time merging.
//
// Set keeps its intervals sorted by left bound in a github.com/google/btree
// B-tree, so an insertion touches only the intervals it overlaps. Coverage
// questions (Contains, TotalLength, Gaps) never see overlapping storage.
//
// Two intervals merge when they share at least one integer point. Touching
// intervals such as [3,5] and [6,8] stay separate; TotalLength and Gaps
// are unaffected by the distinction.
package intervals
