// internal/pipeline/plan.go
package pipeline

import (
	"errors"
	"fmt"

	"localign/internal/fasta"
)

// Pair planning modes.
const (
	ModeFirst = "first" // the first two records only
	ModeQuery = "query" // record 0 against every other record
	ModeAll   = "all"   // every unordered pair i < j
)

// ErrTooFewSequences is returned when fewer than two records are available.
var ErrTooFewSequences = errors.New("at least two sequences are required")

// Pair is one planned alignment. Index is its position in the plan.
type Pair struct {
	Index int
	Seq1  fasta.Record
	Seq2  fasta.Record
}

// Plan expands records into the pairs to align under mode.
func Plan(records []fasta.Record, mode string) ([]Pair, error) {
	if len(records) < 2 {
		return nil, fmt.Errorf("%w (got %d)", ErrTooFewSequences, len(records))
	}
	var pairs []Pair
	add := func(i, j int) {
		pairs = append(pairs, Pair{Index: len(pairs), Seq1: records[i], Seq2: records[j]})
	}
	switch mode {
	case ModeFirst, "":
		add(0, 1)
	case ModeQuery:
		for j := 1; j < len(records); j++ {
			add(0, j)
		}
	case ModeAll:
		for i := 0; i < len(records); i++ {
			for j := i + 1; j < len(records); j++ {
				add(i, j)
			}
		}
	default:
		return nil, fmt.Errorf("unknown pair mode %q", mode)
	}
	return pairs, nil
}
