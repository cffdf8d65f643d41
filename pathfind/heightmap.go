package pathfind

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aoc-go/aocutils/input"
	"github.com/aoc-go/aocutils/maze"
)

// Heightmap parsing errors.
var (
	// ErrEmptyHeightmap indicates input with no rows.
	ErrEmptyHeightmap = errors.New("pathfind: heightmap is empty")

	// ErrBadHeight indicates a byte that is not S, E or a-z.
	ErrBadHeight = errors.New("pathfind: invalid elevation marker")

	// ErrMissingMarker indicates input without exactly one S and one E.
	ErrMissingMarker = errors.New("pathfind: heightmap needs exactly one S and one E")
)

// Elevation bounds used by heightmaps.
const (
	LowestElevation  = 0
	HighestElevation = 25
)

// Loc is the location type of heightmap mazes.
type Loc = maze.Point[uint]

// Heightmap is an elevation maze with marked start (S) and end (E).
type Heightmap struct {
	Maze  *maze.HashMapMaze[Loc, int]
	Start Loc
	End   Loc
}

// ParseHeightmap reads rows of a-z elevations. The last row has y = 0 and
// y grows towards the first row. S has elevation 0, E has elevation 25.
func ParseHeightmap(text string) (*Heightmap, error) {
	rows := input.Lines(strings.TrimRight(text, "\r\n"))
	if len(rows) == 0 || (len(rows) == 1 && strings.TrimSpace(rows[0]) == "") {
		return nil, ErrEmptyHeightmap
	}

	h := &Heightmap{Maze: maze.New[Loc, int]()}
	starts, ends := 0, 0
	for j := range rows {
		row := rows[len(rows)-1-j]
		for i := 0; i < len(row); i++ {
			loc := maze.Pt(uint(i), uint(j))
			var elev int
			switch c := row[i]; {
			case c == 'S':
				elev = LowestElevation
				h.Start = loc
				starts++
			case c == 'E':
				elev = HighestElevation
				h.End = loc
				ends++
			case c >= 'a' && c <= 'z':
				elev = int(c - 'a')
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrBadHeight, c, loc)
			}
			h.Maze.AddLoc(loc, elev)
		}
	}
	if starts != 1 || ends != 1 {
		return nil, fmt.Errorf("%w: found %d S and %d E", ErrMissingMarker, starts, ends)
	}

	return h, nil
}

// Climb returns the fewest steps from S to E when each step may rise at
// most one unit (descending any amount is allowed).
func (h *Heightmap) Climb() (int, error) {
	res, err := ShortestPath[Loc, int](h.Maze, h.Start,
		WithCanStep[Loc](func(from, to int) bool { return to-from <= 1 }),
		WithGoalLocation[Loc, int](h.End),
	)
	if err != nil {
		return 0, err
	}

	return res.Steps, nil
}

// Descend returns the fewest steps from E to any lowest-elevation cell,
// walking the Climb rule in reverse.
func (h *Heightmap) Descend() (int, error) {
	res, err := ShortestPath[Loc, int](h.Maze, h.End,
		WithCanStep[Loc](func(from, to int) bool { return from-to <= 1 }),
		WithGoal(func(_ Loc, elev int) bool { return elev == LowestElevation }),
	)
	if err != nil {
		return 0, err
	}

	return res.Steps, nil
}
