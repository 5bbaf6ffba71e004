package output

// Output format names accepted by --format.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatFASTA = "fasta"
)

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "seq1_id\tseq2_id\tscore\tlength\tseq1_start\tseq1_end\tseq2_start\tseq2_end\tidentity"

// linePrefix marks non-tabular lines (alignments) inside text output.
const linePrefix = "# "
