package engine

// Direction records which neighbour a cell's score came from.
type Direction uint8

const (
	None Direction = iota // boundary or local restart
	Diagonal
	Left
	Up
)

func (d Direction) String() string {
	switch d {
	case Diagonal:
		return "diagonal"
	case Left:
		return "left"
	case Up:
		return "up"
	default:
		return "none"
	}
}

// Cell is one entry of the scoring grid.
type Cell struct {
	Score int
	Dir   Direction
}

// Coord addresses a cell; I indexes seq1 (rows), J indexes seq2 (columns).
type Coord struct {
	I, J int
}

// ScoredCell is a positive-scoring cell recorded while the grid is filled.
type ScoredCell struct {
	Coord
	Score int
}

// ProgressFunc observes matrix construction; done is in [0,1].
type ProgressFunc func(done float64)

// Matrix is a dense (rows × cols) grid stored row-major in one slice.
type Matrix struct {
	rows, cols int
	cells      []Cell
}

func newMatrix(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
}

// Rows is len(seq1)+1.
func (m *Matrix) Rows() int { return m.rows }

// Cols is len(seq2)+1.
func (m *Matrix) Cols() int { return m.cols }

// At returns cell (i,j).
func (m *Matrix) At(i, j int) Cell { return m.cells[i*m.cols+j] }

func (m *Matrix) set(i, j int, c Cell) { m.cells[i*m.cols+j] = c }

// progressStep is the minimum advance, in percent, between two reports.
const progressStep = 10

// Build fills the Smith-Waterman grid for seq1 × seq2.
//
// Candidates are evaluated in priority order Diagonal, Left, Up and a later
// candidate only wins when strictly greater, so ties resolve to
// Diagonal > Left > Up. Scores ≤ 0 are stored as (0, None).
//
// The second return value lists every positive cell in row-major order.
func Build[S comparable](seq1, seq2 []S, p ScoreParams, progress ProgressFunc) (*Matrix, []ScoredCell) {
	m := newMatrix(len(seq1)+1, len(seq2)+1)
	var positive []ScoredCell

	reported := 0
	if progress != nil {
		progress(0)
	}

	for i := 1; i <= len(seq1); i++ {
		for j := 1; j <= len(seq2); j++ {
			best := Cell{
				Score: m.At(i-1, j-1).Score + p.substitution(seq1[i-1] == seq2[j-1]),
				Dir:   Diagonal,
			}
			if s := m.At(i, j-1).Score + p.Indel; s > best.Score {
				best = Cell{Score: s, Dir: Left}
			}
			if s := m.At(i-1, j).Score + p.Indel; s > best.Score {
				best = Cell{Score: s, Dir: Up}
			}

			if best.Score > 0 {
				m.set(i, j, best)
				positive = append(positive, ScoredCell{Coord: Coord{I: i, J: j}, Score: best.Score})
			}
			// zero value of the arena is already (0, None)
		}

		if progress != nil {
			pct := i * 100 / len(seq1)
			if pct-reported >= progressStep && pct < 100 {
				reported = pct
				progress(float64(i) / float64(len(seq1)))
			}
		}
	}

	if progress != nil {
		progress(1)
	}
	return m, positive
}
