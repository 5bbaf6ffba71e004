// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one parsed sequence.
type Record struct {
	ID  string
	Seq []byte
}

// maxLine allows very long single-line sequences (64 MiB).
const maxLine = 64 * 1024 * 1024

// Scan parses FASTA from r and calls emit once per record.
//
// Sequence lines are trimmed and concatenated until the next '>' header.
// Lines that appear before any header are taken as one sequence each and
// named "<name>:<n>" (1-based), so plain one-sequence-per-line files work.
// Cancellation is checked between lines.
func Scan(ctx context.Context, r io.Reader, name string, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		id        string
		inRecord  bool
		seq       = make([]byte, 0, 1<<12)
		anonymous int
	)

	flush := func() error {
		if !inRecord {
			return nil
		}
		return emit(Record{ID: id, Seq: append([]byte(nil), seq...)})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id = parseHeaderID(line[1:])
			if id == "" {
				id = fmt.Sprintf("%s:%d", name, anonymous+1)
				anonymous++
			}
			seq = seq[:0]
			inRecord = true
			continue
		}
		if !inRecord {
			anonymous++
			rec := Record{ID: fmt.Sprintf("%s:%d", name, anonymous), Seq: append([]byte(nil), line...)}
			if err := emit(rec); err != nil {
				return err
			}
			continue
		}
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan %s: %w", name, err)
	}
	return flush()
}

// ReadAllFrom collects every record from r.
func ReadAllFrom(ctx context.Context, r io.Reader, name string) ([]Record, error) {
	var out []Record
	err := Scan(ctx, r, name, func(rec Record) error {
		out = append(out, rec)
		return nil
	})
	return out, err
}

// ReadAll opens path ("-" for stdin, gzip auto-detected) and collects every
// record.
func ReadAll(ctx context.Context, path string) ([]Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	name := path
	if path == "-" {
		name = "stdin"
	}
	return ReadAllFrom(ctx, rc, name)
}

// ReadFiles reads paths in order and concatenates their records.
func ReadFiles(ctx context.Context, paths []string) ([]Record, error) {
	var out []Record
	for _, p := range paths {
		recs, err := ReadAll(ctx, p)
		if err != nil {
			return nil, err
		}
		out = append(out, recs...)
	}
	return out, nil
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
