// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strings"

	"localign/internal/engine"
)

// FormatRowTSV returns the summary columns for h (no trailing newline).
func FormatRowTSV(h engine.Hit) string {
	return fmt.Sprintf("%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%.4f",
		h.Seq1ID, h.Seq2ID, h.Score, h.Length,
		h.Start1, h.End1, h.Start2, h.End2,
		h.Identity(),
	)
}

// Renderer turns a hit into the block printed under its row when the
// alignment is requested. Lines should already carry their prefix.
type Renderer func(engine.Hit) string

// PlainRenderer prints the two aligned rows.
func PlainRenderer(h engine.Hit) string {
	if !h.Found {
		return ""
	}
	return linePrefix + string(h.Aligned1) + "\n" + linePrefix + string(h.Aligned2) + "\n"
}

// StreamText writes one TSV row per hit; when render is non-nil its block
// follows each row.
func StreamText(w io.Writer, in <-chan engine.Hit, header bool, render Renderer) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for h := range in {
		if err := writeTextHit(w, h, render); err != nil {
			return err
		}
	}
	return nil
}

// WriteText is StreamText over a slice.
func WriteText(w io.Writer, list []engine.Hit, header bool, render Renderer) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, h := range list {
		if err := writeTextHit(w, h, render); err != nil {
			return err
		}
	}
	return nil
}

func writeTextHit(w io.Writer, h engine.Hit, render Renderer) error {
	if _, err := fmt.Fprintln(w, FormatRowTSV(h)); err != nil {
		return err
	}
	if render == nil {
		return nil
	}
	block := render(h)
	if block == "" {
		return nil
	}
	if !strings.HasSuffix(block, "\n") {
		block += "\n"
	}
	_, err := io.WriteString(w, block)
	return err
}
