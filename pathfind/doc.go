// Package pathfind implements an uninformed best-first (Dijkstra-style)
// shortest-path search over maze.Grid values with unit step cost.
//
// What:
//
//   - ShortestPath(g, start, opts...) returns the fewest 4-directional moves
//     from start to the first location accepted by the goal predicate,
//     together with the path itself.
//   - A step-validity predicate (WithCanStep) restricts moves by the values
//     of the two cells, e.g. "elevation may rise by at most one".
//   - Flood(g, start, opts...) is the breadth-first counterpart: step
//     distances and parent links to every reachable location.
//   - Heightmap wraps the common a-z elevation puzzle: ParseHeightmap,
//     Climb (S to E) and Descend (E to any lowest cell).
//
// How:
//
//	The frontier is a priority queue of whole paths ordered by length
//	(github.com/Workiva/go-datastructures/queue). A location is settled the
//	first time it is popped, which for unit weights is on a shortest path;
//	later paths reaching it are discarded. Paths never revisit a location
//	they already contain. Keeping whole paths costs O(length) memory per
//	entry, which is fine for puzzle-sized grids; a distance map with parent
//	pointers would be the choice for large inputs.
//
// Options:
//
//   - WithCanStep(fn):        step-validity predicate; default allows all.
//   - WithGoal(fn):           goal predicate over (location, value). Required
//     unless WithGoalLocation is used.
//   - WithGoalLocation(loc):  stop at a fixed location.
//   - WithMaxSteps(n):        do not extend paths beyond n steps.
//   - WithContext(ctx):       abort with ctx.Err() once ctx is done.
//
// Errors:
//
//   - ErrNilGrid, ErrNoGoal, ErrStartNotFound: invalid input.
//   - ErrUnreachable: the frontier emptied before any goal was popped.
//   - ErrEmptyHeightmap, ErrBadHeight, ErrMissingMarker: heightmap parsing.
//
// Each search or flood logs one Debug line through github.com/op/go-logging under
// the "pathfind" module.
package pathfind
