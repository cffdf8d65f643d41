package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoc-go/aocutils/maze"
)

type loc = maze.Point[uint]

// square builds an n×n maze with value "." everywhere.
func square(n uint) *maze.HashMapMaze[loc, string] {
	m := maze.New[loc, string]()
	for i := uint(0); i < n; i++ {
		for j := uint(0); j < n; j++ {
			m.AddLoc(maze.Pt(i, j), ".")
		}
	}

	return m
}

func TestHashMapMaze_AddAndGet(t *testing.T) {
	m := maze.New[loc, string]()
	m.AddLoc(maze.Pt[uint](0, 0), "start")

	v, err := m.ValueAt(maze.Pt[uint](0, 0))
	require.NoError(t, err)
	assert.Equal(t, "start", v)

	m.AddLoc(maze.Pt[uint](0, 0), "again")
	v, _ = m.ValueAt(maze.Pt[uint](0, 0))
	assert.Equal(t, "again", v)
	assert.Equal(t, 1, m.Len())

	_, err = m.ValueAt(maze.Pt[uint](3, 3))
	assert.ErrorIs(t, err, maze.ErrLocationDoesNotExist)
	assert.False(t, m.Has(maze.Pt[uint](3, 3)))
}

func TestHashMapMaze_Neighbours(t *testing.T) {
	m := square(10)
	c := maze.Pt[uint](5, 5)

	cases := []struct {
		name string
		fn   func(loc) (loc, error)
		want loc
	}{
		{"Above", m.LocAbove, maze.Pt[uint](5, 6)},
		{"Below", m.LocBelow, maze.Pt[uint](5, 4)},
		{"Left", m.LocLeft, maze.Pt[uint](4, 5)},
		{"Right", m.LocRight, maze.Pt[uint](6, 5)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.fn(c)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHashMapMaze_Edges(t *testing.T) {
	m := square(10)
	origin := maze.Pt[uint](0, 0)
	corner := maze.Pt[uint](9, 9)

	_, err := m.LocBelow(origin)
	assert.ErrorIs(t, err, maze.ErrImpossibleMove)
	_, err = m.LocLeft(origin)
	assert.ErrorIs(t, err, maze.ErrImpossibleMove)

	_, err = m.LocAbove(corner)
	assert.ErrorIs(t, err, maze.ErrLocationDoesNotExist)
	_, err = m.LocRight(corner)
	assert.ErrorIs(t, err, maze.ErrLocationDoesNotExist)
}

func TestHashMapMaze_NoBoundingBox(t *testing.T) {
	// an L-shaped maze: (0,0) (1,0) (1,1); (0,1) is absent
	m := maze.New[loc, int]()
	m.AddLoc(maze.Pt[uint](0, 0), 1)
	m.AddLoc(maze.Pt[uint](1, 0), 2)
	m.AddLoc(maze.Pt[uint](1, 1), 3)

	_, err := m.LocAbove(maze.Pt[uint](0, 0))
	assert.ErrorIs(t, err, maze.ErrLocationDoesNotExist)
	assert.ElementsMatch(t, []loc{maze.Pt[uint](1, 0)}, m.Neighbors(maze.Pt[uint](0, 0)))
	assert.ElementsMatch(t, []loc{maze.Pt[uint](0, 0), maze.Pt[uint](1, 1)}, m.Neighbors(maze.Pt[uint](1, 0)))
	assert.ElementsMatch(t, m.Locations(), []loc{maze.Pt[uint](0, 0), maze.Pt[uint](1, 0), maze.Pt[uint](1, 1)})
}

func TestPoint_StepRoundTrip(t *testing.T) {
	pts := []maze.Point[uint8]{{X: 0, Y: 1}, {X: 7, Y: 200}, {X: 254, Y: 255}}
	for _, p := range pts {
		for _, d := range maze.Directions {
			q, err := p.Step(d)
			if err != nil {
				continue
			}
			back, err := q.Step(d.Opposite())
			require.NoError(t, err, "%v %v", p, d)
			assert.Equal(t, p, back, "%v %v", p, d)
		}
	}
}

func TestPoint_StepNoWrap(t *testing.T) {
	_, err := maze.Pt[uint8](0, 0).Step(maze.Down)
	assert.ErrorIs(t, err, maze.ErrImpossibleMove)
	_, err = maze.Pt[uint8](0, 0).Step(maze.Left)
	assert.ErrorIs(t, err, maze.ErrImpossibleMove)
	_, err = maze.Pt[uint8](255, 255).Step(maze.Up)
	assert.ErrorIs(t, err, maze.ErrImpossibleMove)
	_, err = maze.Pt[uint8](255, 255).Step(maze.Right)
	assert.ErrorIs(t, err, maze.ErrImpossibleMove)
	_, err = maze.Pt[uint8](1, 1).Step(maze.Direction(9))
	assert.ErrorIs(t, err, maze.ErrImpossibleMove)
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "up", maze.Up.String())
	assert.Equal(t, "right", maze.Right.String())
	assert.Equal(t, "Direction(7)", maze.Direction(7).String())
}
