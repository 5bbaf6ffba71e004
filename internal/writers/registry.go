// internal/writers/registry.go
package writers

import (
	"io"
	"sort"

	"localign/internal/engine"
)

// FormatFunc consumes hits from in until it is closed and writes them to out.
type FormatFunc func(out io.Writer, o Options, in <-chan engine.Hit) error

// Writer registry (format → handler). Formats register themselves in init()
// blocks of the files that implement them.
var registry = map[string]FormatFunc{}

// Register adds or replaces (last wins) the handler for format.
func Register(format string, fn FormatFunc) { registry[format] = fn }

// Lookup returns the handler for format.
func Lookup(format string) (FormatFunc, bool) {
	fn, ok := registry[format]
	return fn, ok
}

// Formats lists registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
