package game

// ShortestPath runs a breadth-first search from start to goal over the
// wrapped grid. Nothing blocks the search, not even the searching snake's
// own body. The returned path starts with start and ends with goal; it is
// nil when either end lies off the grid.
func ShortestPath(grid Grid, start, goal Point) []Point {
	if !grid.Contains(start) || !grid.Contains(goal) {
		return nil
	}
	if start == goal {
		return []Point{start}
	}

	q := []Point{start}
	parent := map[Point]Point{}
	visited := map[Point]bool{start: true}

	for len(q) > 0 {
		current := q[0]
		q = q[1:]

		for _, next := range grid.Neighbors(current) {
			if visited[next] {
				continue
			}
			visited[next] = true
			parent[next] = current

			if next == goal {
				return buildPath(parent, start, goal)
			}
			q = append(q, next)
		}
	}

	return nil
}

func buildPath(parent map[Point]Point, start, goal Point) []Point {
	path := []Point{goal}
	for at := goal; at != start; {
		at = parent[at]
		path = append(path, at)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// NextStep is the first move along the shortest path, or ok=false when
// there is nowhere to go (already on the goal, or unreachable).
func NextStep(grid Grid, start, goal Point) (Point, bool) {
	path := ShortestPath(grid, start, goal)
	if len(path) < 2 {
		return start, false
	}
	return path[1], true
}
