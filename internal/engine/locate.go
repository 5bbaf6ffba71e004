package engine

// FindMax returns the highest-scoring cell. Among equal scores the row-major
// earliest coordinate wins (smallest I, then smallest J), independent of the
// order of cells.
func FindMax(cells []ScoredCell) (Coord, int, error) {
	if len(cells) == 0 {
		return Coord{}, 0, ErrNoAlignment
	}
	best := cells[0]
	for _, c := range cells[1:] {
		switch {
		case c.Score > best.Score:
			best = c
		case c.Score == best.Score && earlier(c.Coord, best.Coord):
			best = c
		}
	}
	return best.Coord, best.Score, nil
}

func earlier(a, b Coord) bool {
	if a.I != b.I {
		return a.I < b.I
	}
	return a.J < b.J
}
