// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"localign/internal/engine"
	"localign/pkg/api"
)

// ToAPI converts a domain Hit to the stable wire schema (v1).
// Aligned strings are attached only when withAlignment is set.
func ToAPI(h engine.Hit, withAlignment bool) api.AlignmentV1 {
	v := api.AlignmentV1{
		Seq1ID:     h.Seq1ID,
		Seq2ID:     h.Seq2ID,
		Seq1Len:    h.Seq1Len,
		Seq2Len:    h.Seq2Len,
		Found:      h.Found,
		Score:      h.Score,
		Length:     h.Length,
		Seq1Start:  h.Start1,
		Seq1End:    h.End1,
		Seq2Start:  h.Start2,
		Seq2End:    h.End2,
		Matches:    h.Matches,
		Mismatches: h.Mismatches,
		Gaps:       h.Gaps,
		Identity:   h.Identity(),
	}
	if withAlignment {
		v.Aligned1 = string(h.Aligned1)
		v.Aligned2 = string(h.Aligned2)
	}
	return v
}

// WriteJSON writes a single JSON array of v1 alignments (pretty-indented).
func WriteJSON(w io.Writer, list []engine.Hit, withAlignment bool) error {
	out := make([]api.AlignmentV1, 0, len(list))
	for _, h := range list {
		out = append(out, ToAPI(h, withAlignment))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
