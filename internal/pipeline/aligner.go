// internal/pipeline/aligner.go
package pipeline

import "localign/internal/engine"

// Aligner is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Aligner interface {
	AlignObserved(seq1, seq2 []byte, progress engine.ProgressFunc) (engine.Alignment, error)
}
