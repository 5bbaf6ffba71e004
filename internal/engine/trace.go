package engine

// Trace walks the grid from start back to the first None cell and returns
// the two aligned sequences, gap-padded to equal length.
func Trace[S comparable](seq1, seq2 []S, m *Matrix, start Coord, gap S) (aligned1, aligned2 []S) {
	t := trace(seq1, seq2, m, start, gap)
	return t.aligned1, t.aligned2
}

type traced[S comparable] struct {
	aligned1, aligned2 []S
	stop               Coord // the None cell that ended the walk
	matches            int
	mismatches         int
	gaps               int
}

func trace[S comparable](seq1, seq2 []S, m *Matrix, start Coord, gap S) traced[S] {
	var t traced[S]
	i, j := start.I, start.J
	for {
		switch m.At(i, j).Dir {
		case Diagonal:
			a, b := seq1[i-1], seq2[j-1]
			t.aligned1 = append(t.aligned1, a)
			t.aligned2 = append(t.aligned2, b)
			if a == b {
				t.matches++
			} else {
				t.mismatches++
			}
			i, j = i-1, j-1
		case Left:
			t.aligned1 = append(t.aligned1, gap)
			t.aligned2 = append(t.aligned2, seq2[j-1])
			t.gaps++
			j--
		case Up:
			t.aligned1 = append(t.aligned1, seq1[i-1])
			t.aligned2 = append(t.aligned2, gap)
			t.gaps++
			i--
		default:
			reverse(t.aligned1)
			reverse(t.aligned2)
			t.stop = Coord{I: i, J: j}
			return t
		}
	}
}

func reverse[S any](s []S) {
	for a, b := 0, len(s)-1; a < b; a, b = a+1, b-1 {
		s[a], s[b] = s[b], s[a]
	}
}
