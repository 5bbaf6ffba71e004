package output

import (
	"fmt"
	"io"

	"localign/internal/engine"
)

// StreamFASTA writes the two gapped sequences of every found hit as FASTA
// records. Hits without an alignment are skipped.
func StreamFASTA(w io.Writer, in <-chan engine.Hit) error {
	for h := range in {
		if !h.Found {
			continue
		}
		if _, err := fmt.Fprintf(w,
			">%s score=%d span=%d-%d\n%s\n>%s score=%d span=%d-%d\n%s\n",
			h.Seq1ID, h.Score, h.Start1, h.End1, h.Aligned1,
			h.Seq2ID, h.Score, h.Start2, h.End2, h.Aligned2,
		); err != nil {
			return err
		}
	}
	return nil
}
