package engine

// Result is the best local alignment of two sequences.
//
// Aligned1 and Aligned2 have equal length; Length is that common length.
// Start/End are 0-based half-open spans of the inputs covered by the
// alignment. The zero value stands for "no alignment found".
type Result[S comparable] struct {
	Aligned1 []S
	Aligned2 []S
	Score    int
	Length   int

	Start1, End1 int
	Start2, End2 int

	Matches    int
	Mismatches int
	Gaps       int
}

// Identity is the fraction of aligned columns that are matches.
func (r Result[S]) Identity() float64 {
	if r.Length == 0 {
		return 0
	}
	return float64(r.Matches) / float64(r.Length)
}

// Alignment is the byte-sequence result produced by Engine.
type Alignment = Result[byte]

// Align computes the best local alignment of seq1 and seq2.
//
// It returns an *InputError (matching ErrInvalidInput) when either sequence
// is empty, and ErrNoAlignment with a zero Result when no cell scores above
// zero. progress may be nil.
func Align[S comparable](seq1, seq2 []S, p ScoreParams, gap S, progress ProgressFunc) (Result[S], error) {
	switch {
	case len(seq1) == 0:
		return Result[S]{}, &InputError{Which: 1}
	case len(seq2) == 0:
		return Result[S]{}, &InputError{Which: 2}
	}

	m, positive := Build(seq1, seq2, p, progress)
	start, score, err := FindMax(positive)
	if err != nil {
		return Result[S]{}, err
	}

	t := trace(seq1, seq2, m, start, gap)
	return Result[S]{
		Aligned1:   t.aligned1,
		Aligned2:   t.aligned2,
		Score:      score,
		Length:     len(t.aligned1),
		Start1:     t.stop.I,
		End1:       start.I,
		Start2:     t.stop.J,
		End2:       start.J,
		Matches:    t.matches,
		Mismatches: t.mismatches,
		Gaps:       t.gaps,
	}, nil
}

// DefaultGap is the gap symbol used when Config.Gap is unset.
const DefaultGap byte = '-'

// Config is the byte-oriented engine configuration.
type Config struct {
	Params   ScoreParams
	Gap      byte         // 0 → DefaultGap
	Progress ProgressFunc // optional
}

// Engine aligns byte sequences with a fixed configuration. It holds no
// per-call state and is safe for concurrent use.
type Engine struct{ cfg Config }

func New(c Config) *Engine {
	if c.Gap == 0 {
		c.Gap = DefaultGap
	}
	return &Engine{cfg: c}
}

// Align runs the local alignment using the engine's progress observer.
func (e *Engine) Align(seq1, seq2 []byte) (Alignment, error) {
	return Align(seq1, seq2, e.cfg.Params, e.cfg.Gap, e.cfg.Progress)
}

// AlignObserved is Align with a per-call progress observer, which replaces
// the configured one.
func (e *Engine) AlignObserved(seq1, seq2 []byte, progress ProgressFunc) (Alignment, error) {
	return Align(seq1, seq2, e.cfg.Params, e.cfg.Gap, progress)
}
