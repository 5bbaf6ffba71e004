package writers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localign/internal/engine"
	"localign/internal/output"
	"localign/internal/pretty"
	"localign/pkg/api"
)

func hit(i int, found bool) engine.Hit {
	h := engine.Hit{Index: i, Seq1ID: "a", Seq2ID: "b", Seq1Len: 4, Seq2Len: 3, Found: found}
	if found {
		h.Alignment = engine.Alignment{
			Aligned1: []byte("ACGT"), Aligned2: []byte("AC-T"),
			Score: 5, Length: 4, End1: 4, End2: 3, Matches: 3, Gaps: 1,
		}
	}
	return h
}

func run(t *testing.T, o Options, hits ...engine.Hit) string {
	t.Helper()
	var buf bytes.Buffer
	in, done := StartResultWriter(&buf, o, 2)
	for _, h := range hits {
		in <- h
	}
	close(in)
	require.NoError(t, <-done)
	return buf.String()
}

func TestFormatsRegistered(t *testing.T) {
	assert.Equal(t, []string{"fasta", "json", "jsonl", "text"}, Formats())
}

func TestStartResultWriterJSON(t *testing.T) {
	out := run(t, Options{Format: output.FormatJSON}, hit(0, true), hit(1, false))
	var got []api.AlignmentV1
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, 5, got[0].Score)
	assert.Empty(t, got[0].Aligned1)
}

func TestStartResultWriterJSONL(t *testing.T) {
	out := run(t, Options{Format: output.FormatJSONL, Alignment: true}, hit(0, true), hit(1, true), hit(2, false))
	sc := bufio.NewScanner(strings.NewReader(out))
	n := 0
	for sc.Scan() {
		var v api.AlignmentV1
		require.NoError(t, json.Unmarshal(sc.Bytes(), &v))
		if v.Found {
			assert.Equal(t, "AC-T", v.Aligned2)
		}
		n++
	}
	assert.Equal(t, 3, n)
}

func TestStartResultWriterTextPretty(t *testing.T) {
	o := Options{Format: output.FormatText, Header: false, Alignment: true, Pretty: true, PrettyOpt: pretty.DefaultOptions}
	out := run(t, o, hit(0, true))
	assert.True(t, strings.HasPrefix(out, "a\tb\t5\t4"))
	assert.Contains(t, out, "# a 1 ACGT 4\n")
	assert.Contains(t, out, "# b 1 AC-T 3\n")
}

func TestStartResultWriterTextSummaryOnly(t *testing.T) {
	out := run(t, Options{Format: output.FormatText, Header: true}, hit(0, true))
	assert.Equal(t, output.TSVHeader+"\n"+"a\tb\t5\t4\t0\t4\t0\t3\t0.7500\n", out)
}

func TestStartResultWriterUnknownFormatDrains(t *testing.T) {
	in, done := StartResultWriter(io.Discard, Options{Format: "xml"}, 1)
	for i := 0; i < 5; i++ {
		in <- hit(i, true)
	}
	close(in)
	assert.Error(t, <-done)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, syscall.EPIPE }

func TestStartResultWriterErrorDrains(t *testing.T) {
	in, done := StartResultWriter(failWriter{}, Options{Format: output.FormatText, Header: true}, 1)
	for i := 0; i < 5; i++ {
		in <- hit(i, true)
	}
	close(in)
	err := <-done
	require.Error(t, err)
	assert.True(t, IsBrokenPipe(err))
}

func TestIsBrokenPipe(t *testing.T) {
	assert.True(t, IsBrokenPipe(syscall.EPIPE))
	assert.True(t, IsBrokenPipe(io.ErrClosedPipe))
	assert.False(t, IsBrokenPipe(errors.New("disk full")))
	assert.False(t, IsBrokenPipe(nil))
}
