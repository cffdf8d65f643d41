package maze

// Components groups the locations whose values satisfy keep into regions
// connected by 4-directional adjacency. Locations failing keep belong to
// no region. Region order and the order inside a region are unspecified.
//
// Time:   O(N) for N locations.
// Memory: O(N) for the seen set and output.
func (m *HashMapMaze[L, V]) Components(keep func(V) bool) [][]L {
	seen := make(map[L]bool, len(m.cells))
	var comps [][]L

	for start, v := range m.cells {
		if seen[start] || !keep(v) {
			continue
		}
		seen[start] = true
		queue := []L{start}
		for qi := 0; qi < len(queue); qi++ {
			for _, next := range m.Neighbors(queue[qi]) {
				if seen[next] || !keep(m.cells[next]) {
					continue
				}
				seen[next] = true
				queue = append(queue, next)
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
