package engine

// Hit is one aligned pair of named sequences, the unit handed to writers.
// Found is false when the pair admitted no positive alignment; Alignment is
// then the zero value.
type Hit struct {
	Index   int    // position in the run's pair plan
	Seq1ID  string // record IDs as read from input
	Seq2ID  string
	Seq1Len int
	Seq2Len int
	Found   bool

	Alignment
}
