// internal/writers/jsonl.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"localign/internal/engine"
	"localign/internal/output"
)

// Reuse a 64 KiB buffered writer across JSONL writers to avoid per-writer mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

func init() {
	Register(output.FormatJSONL, writeJSONL)
}

// writeJSONL streams each hit as one JSON line (v1).
func writeJSONL(out io.Writer, o Options, in <-chan engine.Hit) error {
	bw := bwPool.Get().(*bufio.Writer)
	// Rebind to the actual output while keeping the pooled buffer.
	bw.Reset(out)
	defer func() {
		bw.Reset(io.Discard)
		bwPool.Put(bw)
	}()

	enc := json.NewEncoder(bw)
	for h := range in {
		if err := enc.Encode(output.ToAPI(h, o.Alignment)); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil && !IsBrokenPipe(err) {
		return err
	}
	return nil
}
