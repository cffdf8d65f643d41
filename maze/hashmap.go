package maze

// HashMapMaze stores values keyed by location. Only added locations are
// part of the maze.
type HashMapMaze[L Location[L], V any] struct {
	cells map[L]V
}

// New returns an empty HashMapMaze.
func New[L Location[L], V any]() *HashMapMaze[L, V] {
	return &HashMapMaze[L, V]{cells: make(map[L]V)}
}

// AddLoc inserts or overwrites the value at loc.
func (m *HashMapMaze[L, V]) AddLoc(loc L, value V) {
	m.cells[loc] = value
}

// ValueAt returns the value at loc, or ErrLocationDoesNotExist.
func (m *HashMapMaze[L, V]) ValueAt(loc L) (V, error) {
	v, ok := m.cells[loc]
	if !ok {
		var zero V
		return zero, ErrLocationDoesNotExist
	}

	return v, nil
}

// Has reports whether loc is part of the maze.
func (m *HashMapMaze[L, V]) Has(loc L) bool {
	_, ok := m.cells[loc]
	return ok
}

// Len returns the number of locations in the maze.
func (m *HashMapMaze[L, V]) Len() int { return len(m.cells) }

// Locations returns every location in unspecified order.
func (m *HashMapMaze[L, V]) Locations() []L {
	out := make([]L, 0, len(m.cells))
	for loc := range m.cells {
		out = append(out, loc)
	}

	return out
}

// Neighbor returns loc's arithmetic neighbour in direction d.
// It fails with ErrImpossibleMove when the step wraps and with
// ErrLocationDoesNotExist when the neighbour is not in the maze.
func (m *HashMapMaze[L, V]) Neighbor(loc L, d Direction) (L, error) {
	next, err := loc.Step(d)
	if err != nil {
		var zero L
		return zero, err
	}
	if _, ok := m.cells[next]; !ok {
		var zero L
		return zero, ErrLocationDoesNotExist
	}

	return next, nil
}

// LocAbove returns the neighbour in direction Up.
func (m *HashMapMaze[L, V]) LocAbove(loc L) (L, error) { return m.Neighbor(loc, Up) }

// LocBelow returns the neighbour in direction Down.
func (m *HashMapMaze[L, V]) LocBelow(loc L) (L, error) { return m.Neighbor(loc, Down) }

// LocLeft returns the neighbour in direction Left.
func (m *HashMapMaze[L, V]) LocLeft(loc L) (L, error) { return m.Neighbor(loc, Left) }

// LocRight returns the neighbour in direction Right.
func (m *HashMapMaze[L, V]) LocRight(loc L) (L, error) { return m.Neighbor(loc, Right) }

// Neighbors returns the existing neighbours of loc in Directions order.
func (m *HashMapMaze[L, V]) Neighbors(loc L) []L {
	out := make([]L, 0, len(Directions))
	for _, d := range Directions {
		if next, err := m.Neighbor(loc, d); err == nil {
			out = append(out, next)
		}
	}

	return out
}
