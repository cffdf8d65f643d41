package maze

import "fmt"

// OccupiedMaze is a Block-valued maze with a single cursor. The cursor
// only ever rests on a location present in the underlying maze and only
// moves onto Open cells.
type OccupiedMaze[L Location[L], P, W any] struct {
	maze *HashMapMaze[L, Block[P, W]]
	loc  L
}

// FromMaze places a cursor at start. It fails with ErrLocationDoesNotExist,
// returning nil, if start is not in m.
func FromMaze[L Location[L], P, W any](m *HashMapMaze[L, Block[P, W]], start L) (*OccupiedMaze[L, P, W], error) {
	if m == nil || !m.Has(start) {
		return nil, fmt.Errorf("%w: start %v", ErrLocationDoesNotExist, start)
	}

	return &OccupiedMaze[L, P, W]{maze: m, loc: start}, nil
}

// Location returns the cursor position.
func (o *OccupiedMaze[L, P, W]) Location() L { return o.loc }

// Value returns the block under the cursor.
func (o *OccupiedMaze[L, P, W]) Value() Block[P, W] {
	return o.maze.cells[o.loc]
}

// Maze returns the wrapped maze.
func (o *OccupiedMaze[L, P, W]) Maze() *HashMapMaze[L, Block[P, W]] { return o.maze }

// Move steps the cursor one cell in direction d. Lookup errors from the
// wrapped maze are returned unchanged; a Wall (or nil) target yields
// ErrImpossibleMove. The cursor does not move on any error.
func (o *OccupiedMaze[L, P, W]) Move(d Direction) error {
	next, err := o.maze.Neighbor(o.loc, d)
	if err != nil {
		return err
	}
	b := o.maze.cells[next]
	if b == nil || !b.Passable() {
		return fmt.Errorf("%w: %v is blocked", ErrImpossibleMove, next)
	}
	o.loc = next

	return nil
}

// MoveUp moves the cursor Up.
func (o *OccupiedMaze[L, P, W]) MoveUp() error { return o.Move(Up) }

// MoveDown moves the cursor Down.
func (o *OccupiedMaze[L, P, W]) MoveDown() error { return o.Move(Down) }

// MoveLeft moves the cursor Left.
func (o *OccupiedMaze[L, P, W]) MoveLeft() error { return o.Move(Left) }

// MoveRight moves the cursor Right.
func (o *OccupiedMaze[L, P, W]) MoveRight() error { return o.Move(Right) }

// The methods below delegate to the wrapped maze so that an OccupiedMaze
// can be handed to anything written against Grid.

// ValueAt returns the block at loc.
func (o *OccupiedMaze[L, P, W]) ValueAt(loc L) (Block[P, W], error) { return o.maze.ValueAt(loc) }

// Neighbor returns loc's neighbour in direction d.
func (o *OccupiedMaze[L, P, W]) Neighbor(loc L, d Direction) (L, error) {
	return o.maze.Neighbor(loc, d)
}

// LocAbove returns the neighbour in direction Up.
func (o *OccupiedMaze[L, P, W]) LocAbove(loc L) (L, error) { return o.maze.LocAbove(loc) }

// LocBelow returns the neighbour in direction Down.
func (o *OccupiedMaze[L, P, W]) LocBelow(loc L) (L, error) { return o.maze.LocBelow(loc) }

// LocLeft returns the neighbour in direction Left.
func (o *OccupiedMaze[L, P, W]) LocLeft(loc L) (L, error) { return o.maze.LocLeft(loc) }

// LocRight returns the neighbour in direction Right.
func (o *OccupiedMaze[L, P, W]) LocRight(loc L) (L, error) { return o.maze.LocRight(loc) }
