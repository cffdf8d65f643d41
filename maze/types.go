package maze

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for maze operations.
var (
	// ErrLocationDoesNotExist indicates a location that was never added.
	ErrLocationDoesNotExist = errors.New("maze: location does not exist")

	// ErrImpossibleMove indicates a step that would wrap a coordinate or
	// enter a blocking cell.
	ErrImpossibleMove = errors.New("maze: impossible move")
)

// Direction selects one of the four orthogonal neighbours.
type Direction int

const (
	// Up increases Y.
	Up Direction = iota
	// Down decreases Y.
	Down
	// Left decreases X.
	Left
	// Right increases X.
	Right
)

// Directions lists the four neighbours in lookup order.
var Directions = [...]Direction{Up, Down, Left, Right}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Opposite returns the direction that undoes d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Location is a comparable key that knows its arithmetic neighbours.
// Step must not consult any maze; existence is checked by the caller.
type Location[L any] interface {
	comparable
	Step(d Direction) (L, error)
}

// Point is a 2D location over an unsigned coordinate type.
type Point[T constraints.Unsigned] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T constraints.Unsigned](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Step returns the neighbouring point in direction d, or ErrImpossibleMove
// if the coordinate would wrap around.
func (p Point[T]) Step(d Direction) (Point[T], error) {
	top := ^T(0)
	switch d {
	case Up:
		if p.Y == top {
			return Point[T]{}, ErrImpossibleMove
		}
		p.Y++
	case Down:
		if p.Y == 0 {
			return Point[T]{}, ErrImpossibleMove
		}
		p.Y--
	case Left:
		if p.X == 0 {
			return Point[T]{}, ErrImpossibleMove
		}
		p.X--
	case Right:
		if p.X == top {
			return Point[T]{}, ErrImpossibleMove
		}
		p.X++
	default:
		return Point[T]{}, fmt.Errorf("%w: unknown %v", ErrImpossibleMove, d)
	}

	return p, nil
}

// String formats the point as "(x,y)".
func (p Point[T]) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Navigable is the adjacency capability shared by every maze backing.
type Navigable[L any] interface {
	LocAbove(loc L) (L, error)
	LocBelow(loc L) (L, error)
	LocLeft(loc L) (L, error)
	LocRight(loc L) (L, error)
	Neighbor(loc L, d Direction) (L, error)
}

// Grid is a Navigable maze whose cells carry values of type V.
type Grid[L, V any] interface {
	Navigable[L]
	ValueAt(loc L) (V, error)
}

// Block classifies a cell as passable (Open) or blocking (Wall).
// The interface is sealed: Open and Wall are the only implementations.
type Block[P, W any] interface {
	Passable() bool
	isBlock()
}

// Open is a passable cell carrying payload P.
type Open[P, W any] struct {
	Payload P
}

// Passable always reports true.
func (Open[P, W]) Passable() bool { return true }
func (Open[P, W]) isBlock()       {}

// Wall is a blocking cell carrying payload W.
type Wall[P, W any] struct {
	Payload W
}

// Passable always reports false.
func (Wall[P, W]) Passable() bool { return false }
func (Wall[P, W]) isBlock()       {}

// OpenBlock wraps p as a passable Block.
func OpenBlock[P, W any](p P) Block[P, W] { return Open[P, W]{Payload: p} }

// WallBlock wraps w as a blocking Block.
func WallBlock[P, W any](w W) Block[P, W] { return Wall[P, W]{Payload: w} }
