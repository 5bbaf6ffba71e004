// internal/output/output_test.go
package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"localign/internal/engine"
	"localign/pkg/api"
)

func sampleHits() []engine.Hit {
	return []engine.Hit{
		{
			Index: 0, Seq1ID: "q", Seq2ID: "t1", Seq1Len: 4, Seq2Len: 3, Found: true,
			Alignment: engine.Alignment{
				Aligned1: []byte("ACGT"), Aligned2: []byte("AC-T"),
				Score: 5, Length: 4, End1: 4, End2: 3, Matches: 3, Gaps: 1,
			},
		},
		{Index: 1, Seq1ID: "q", Seq2ID: "t2", Seq1Len: 4, Seq2Len: 2},
	}
}

func TestFormatsStable(t *testing.T) {
	if FormatText != "text" || FormatJSON != "json" || FormatJSONL != "jsonl" || FormatFASTA != "fasta" {
		t.Fatalf("output format constants changed")
	}
	if got := len(strings.Split(TSVHeader, "\t")); got != 9 {
		t.Fatalf("TSV header has %d columns, want 9", got)
	}
}

func TestFormatRowTSV(t *testing.T) {
	got := FormatRowTSV(sampleHits()[0])
	want := "q\tt1\t5\t4\t0\t4\t0\t3\t0.7500"
	if got != want {
		t.Fatalf("row = %q, want %q", got, want)
	}
	if cols := strings.Split(got, "\t"); len(cols) != len(strings.Split(TSVHeader, "\t")) {
		t.Fatalf("row/header column count differ")
	}
}

func TestWriteTextWithAlignment(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sampleHits(), true, PlainRenderer); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := TSVHeader + "\n" +
		"q\tt1\t5\t4\t0\t4\t0\t3\t0.7500\n" +
		"# ACGT\n# AC-T\n" +
		"q\tt2\t0\t0\t0\t0\t0\t0\t0.0000\n"
	if buf.String() != want {
		t.Fatalf("text mismatch\n got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleHits(), true); err != nil {
		t.Fatalf("json write: %v", err)
	}
	var got []api.AlignmentV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil || len(got) != 2 {
		t.Fatalf("json round-trip failed: %v %v", err, got)
	}
	if got[0].Aligned2 != "AC-T" || got[0].Seq2End != 3 || !got[0].Found {
		t.Errorf("first record = %+v", got[0])
	}
	if got[1].Found || got[1].Aligned1 != "" {
		t.Errorf("second record = %+v", got[1])
	}
}

func TestJSONOmitsAlignmentByDefault(t *testing.T) {
	v := ToAPI(sampleHits()[0], false)
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(b), "aligned1") {
		t.Fatalf("aligned fields should be omitted: %s", b)
	}
}

func TestStreamFASTASkipsUnfound(t *testing.T) {
	in := make(chan engine.Hit, 2)
	for _, h := range sampleHits() {
		in <- h
	}
	close(in)
	var buf bytes.Buffer
	if err := StreamFASTA(&buf, in); err != nil {
		t.Fatalf("fasta: %v", err)
	}
	want := ">q score=5 span=0-4\nACGT\n>t1 score=5 span=0-3\nAC-T\n"
	if buf.String() != want {
		t.Fatalf("fasta = %q, want %q", buf.String(), want)
	}
}
