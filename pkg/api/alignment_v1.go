// pkg/api/alignment_v1.go
package api

// AlignmentV1 is the stable JSON/JSONL schema for one aligned pair.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
// Spans are 0-based, half-open.
type AlignmentV1 struct {
	Seq1ID  string `json:"seq1_id"`
	Seq2ID  string `json:"seq2_id"`
	Seq1Len int    `json:"seq1_len"`
	Seq2Len int    `json:"seq2_len"`
	Found   bool   `json:"found"`

	Score     int `json:"score"`
	Length    int `json:"length"`
	Seq1Start int `json:"seq1_start"`
	Seq1End   int `json:"seq1_end"`
	Seq2Start int `json:"seq2_start"`
	Seq2End   int `json:"seq2_end"`

	Matches    int     `json:"matches"`
	Mismatches int     `json:"mismatches"`
	Gaps       int     `json:"gaps"`
	Identity   float64 `json:"identity"`

	Aligned1 string `json:"aligned1,omitempty"`
	Aligned2 string `json:"aligned2,omitempty"`
}
