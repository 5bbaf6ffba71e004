// internal/writers/writer.go
package writers

import (
	"fmt"
	"io"

	"localign/internal/engine"
	"localign/internal/output"
	"localign/internal/pretty"
)

// Options select and tune the output format.
type Options struct {
	Format    string // text | json | jsonl | fasta
	Header    bool   // TSV header row (text)
	Alignment bool   // include aligned sequences
	Pretty    bool   // render alignments as ASCII blocks (text)
	PrettyOpt pretty.Options
}

func init() {
	Register(output.FormatText, writeText)
	Register(output.FormatJSON, writeJSON)
	Register(output.FormatFASTA, func(out io.Writer, _ Options, in <-chan engine.Hit) error {
		return output.StreamFASTA(out, in)
	})
}

// StartResultWriter spins up a writer goroutine for engine.Hit items.
// Close the returned channel when done, then read the error channel once.
func StartResultWriter(out io.Writer, o Options, bufSize int) (chan<- engine.Hit, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Hit, bufSize)
	errCh := make(chan error, 1)

	go func() {
		fn, ok := Lookup(o.Format)
		if !ok {
			for range in {
			}
			errCh <- fmt.Errorf("unsupported output %q", o.Format)
			return
		}
		err := fn(out, o, in)
		if err != nil {
			// keep producers from blocking on a dead writer
			for range in {
			}
		}
		errCh <- err
	}()

	return in, errCh
}

func writeText(out io.Writer, o Options, in <-chan engine.Hit) error {
	var render output.Renderer
	switch {
	case o.Alignment && o.Pretty:
		popt := o.PrettyOpt
		render = func(h engine.Hit) string { return pretty.Render(h, popt) }
	case o.Alignment:
		render = output.PlainRenderer
	}
	return output.StreamText(out, in, o.Header, render)
}

func writeJSON(out io.Writer, o Options, in <-chan engine.Hit) error {
	var buf []engine.Hit
	for h := range in {
		buf = append(buf, h)
	}
	return output.WriteJSON(out, buf, o.Alignment)
}
