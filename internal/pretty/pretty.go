package pretty

import (
	"fmt"
	"strings"

	"localign/internal/engine"
)

// Options control the ASCII rendering.
type Options struct {
	// Columns per block. If <=0, the alignment is printed on one block.
	Width int

	// Gap is the symbol the engine used for indels.
	Gap byte

	// Glyphs
	MatchGlyph    string // default "|"
	MismatchGlyph string // default "."
	GapGlyph      string // default " "
}

// DefaultOptions wraps at 60 columns like most aligners.
var DefaultOptions = Options{
	Width:         60,
	Gap:           engine.DefaultGap,
	MatchGlyph:    "|",
	MismatchGlyph: ".",
	GapGlyph:      " ",
}

const linePrefix = "# "

// Render draws h as wrapped blocks of
//
//	# seq1  1 ACGT 4
//	#         || |
//	# seq2  1 AC-T 3
//
// with 1-based inclusive coordinates. Unfound hits render as "".
func Render(h engine.Hit, o Options) string {
	if !h.Found || h.Length == 0 {
		return ""
	}
	o = withDefaults(o)

	width := o.Width
	if width <= 0 || width > h.Length {
		width = h.Length
	}

	labelW := max(len(h.Seq1ID), len(h.Seq2ID))
	numW := len(fmt.Sprint(max(h.End1, h.End2)))
	pad := strings.Repeat(" ", labelW+numW+2)

	var b strings.Builder
	pos1, pos2 := h.Start1, h.Start2
	for off := 0; off < h.Length; off += width {
		end := min(off+width, h.Length)
		a1, a2 := h.Aligned1[off:end], h.Aligned2[off:end]
		n1, n2 := countSymbols(a1, o.Gap), countSymbols(a2, o.Gap)

		if off > 0 {
			b.WriteString(linePrefix + "\n")
		}
		fmt.Fprintf(&b, "%s%-*s %*d %s %d\n", linePrefix, labelW, h.Seq1ID, numW, first(pos1, n1), a1, pos1+n1)
		fmt.Fprintf(&b, "%s%s%s\n", linePrefix, pad, bars(a1, a2, o))
		fmt.Fprintf(&b, "%s%-*s %*d %s %d\n", linePrefix, labelW, h.Seq2ID, numW, first(pos2, n2), a2, pos2+n2)

		pos1 += n1
		pos2 += n2
	}
	return b.String()
}

func withDefaults(o Options) Options {
	if o.Gap == 0 {
		o.Gap = DefaultOptions.Gap
	}
	if o.MatchGlyph == "" {
		o.MatchGlyph = DefaultOptions.MatchGlyph
	}
	if o.MismatchGlyph == "" {
		o.MismatchGlyph = DefaultOptions.MismatchGlyph
	}
	if o.GapGlyph == "" {
		o.GapGlyph = DefaultOptions.GapGlyph
	}
	return o
}

// first is the 1-based coordinate of the first symbol in a block; a block
// made only of gaps reports the position it sits after.
func first(pos, n int) int {
	if n == 0 {
		return pos
	}
	return pos + 1
}

func countSymbols(s []byte, gap byte) int {
	n := 0
	for _, c := range s {
		if c != gap {
			n++
		}
	}
	return n
}

func bars(a1, a2 []byte, o Options) string {
	var b strings.Builder
	b.Grow(len(a1))
	for k := range a1 {
		switch {
		case a1[k] == o.Gap || a2[k] == o.Gap:
			b.WriteString(o.GapGlyph)
		case a1[k] == a2[k]:
			b.WriteString(o.MatchGlyph)
		default:
			b.WriteString(o.MismatchGlyph)
		}
	}
	return strings.TrimRight(b.String(), " ")
}
