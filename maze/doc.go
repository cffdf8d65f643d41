// Package maze models sparse 2D (or any keyed) locations with
// 4-directional adjacency, plus a cursor-carrying variant that enforces
// walk/no-walk rules.
//
// What:
//
//   - HashMapMaze[L, V] maps locations to values. A location that was never
//     added is off the maze; there is no bounding box.
//   - Location types compute their own arithmetic neighbours through
//     Step(Direction). Point[T] is the stock 2D implementation over unsigned
//     coordinates: Up is y+1, Down is y-1, Left is x-1, Right is x+1.
//   - Block[P, W] classifies cell content as Open (passable, payload P) or
//     Wall (blocking, payload W).
//   - OccupiedMaze[L, P, W] wraps a Block-valued HashMapMaze and a single
//     cursor that only moves onto Open cells.
//   - HashMapMaze.Components splits the cells accepted by a filter into
//     4-connected regions.
//
// Both maze types satisfy Navigable and Grid, so searches written against
// those interfaces work on either backing.
//
// Invariants:
//
//   - Neighbour existence is re-checked against the map on every query.
//   - Stepping Down or Left from coordinate 0 (or Up or Right from the
//     maximum representable coordinate) fails with ErrImpossibleMove before
//     any unsigned wraparound can happen.
//   - An OccupiedMaze cursor always addresses a present cell.
//
// Errors:
//
//   - ErrLocationDoesNotExist: the location was never added.
//   - ErrImpossibleMove:       the step would wrap a coordinate, or the
//     target cell is a Wall.
//
// None of the types are safe for concurrent mutation.
package maze
