// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sync"

	"localign/internal/cmdutil"
	"localign/internal/config"
	"localign/internal/engine"
	"localign/internal/fasta"
	"localign/internal/pipeline"
	"localign/internal/pretty"
	"localign/internal/store"
	"localign/internal/writers"
)

// Exit statuses shared by the commands.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitIO       = 3
	ExitCanceled = 130
)

// Run reads inputs, aligns the planned pairs and writes the results to
// stdout (or c.Output). Diagnostics go to stderr. It returns the process
// exit status.
func Run(parent context.Context, stdout, stderr io.Writer, c config.Config, inputs []string) int {
	log := cmdutil.NewLogger(stderr, c.Quiet, c.Verbose)

	records, err := fasta.ReadFiles(parent, inputs)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return ExitCanceled
		}
		log.Error("read input", "err", err)
		return ExitIO
	}
	pairs, err := pipeline.Plan(records, c.Mode)
	if err != nil {
		log.Error("plan pairs", "err", err)
		return ExitUsage
	}
	if extra := len(records) - 2; extra > 0 && (c.Mode == pipeline.ModeFirst || c.Mode == "") {
		cmdutil.Warnf(log, "ignoring %d record(s) after the first two; use --mode query or --mode all", extra)
	}
	log.Debug("planned", "records", len(records), "pairs", len(pairs), "mode", c.Mode)

	dst, closeDst, err := openOutput(stdout, c.Output)
	if err != nil {
		log.Error("open output", "err", err)
		return ExitIO
	}
	defer func() { _ = closeDst() }()
	outw := bufio.NewWriter(dst)

	thr := c.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	eng := engine.New(engine.Config{Params: c.Params(), Gap: c.GapByte()})

	inCh, writeErr := writers.StartResultWriter(outw, writerOptions(c), thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var (
		found int
		kept  []engine.Hit
	)
	perr := pipeline.ForEach(ctx,
		pipeline.Config{
			Threads: thr,
			Progress: func(p pipeline.Pair) engine.ProgressFunc {
				return cmdutil.ProgressLogger(log, pairName(p))
			},
		},
		pairs,
		eng,
		func(h engine.Hit) error {
			logHit(log, h)
			if h.Found {
				found++
			}
			if c.DB != "" {
				kept = append(kept, h)
			}
			select {
			case inCh <- h:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if code, done := finish(log, <-writeErr, outw, closeDst); done {
		return code
	}

	if perr != nil {
		switch {
		case errors.Is(perr, context.Canceled):
			return ExitCanceled
		case errors.Is(perr, engine.ErrInvalidInput):
			log.Error("align", "err", perr)
			return ExitUsage
		}
		log.Error("align", "err", perr)
		return ExitIO
	}

	if c.DB != "" {
		if err := record(parent, log, c, inputs, kept); err != nil {
			log.Error("record run", "db", c.DB, "err", err)
			return ExitIO
		}
	}

	if found == 0 {
		return c.NoMatchExitCode
	}
	return ExitOK
}

func writerOptions(c config.Config) writers.Options {
	return writers.Options{
		Format:    c.Format,
		Header:    !c.NoHeader,
		Alignment: c.Alignment || c.Pretty,
		Pretty:    c.Pretty,
		PrettyOpt: pretty.Options{Width: c.Width, Gap: c.GapByte()},
	}
}

// finish settles the writer goroutine result, flushes and closes the
// destination. done reports that code is final; a broken pipe ends the
// run successfully.
func finish(log *slog.Logger, werr error, outw *bufio.Writer, closeDst func() error) (code int, done bool) {
	if writers.IsBrokenPipe(werr) {
		return ExitOK, true
	} else if werr != nil {
		log.Error("write output", "err", werr)
		return ExitIO, true
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK, true
	} else if e != nil {
		log.Error("flush output", "err", e)
		return ExitIO, true
	}
	if e := closeDst(); e != nil {
		log.Error("close output", "err", e)
		return ExitIO, true
	}
	return ExitOK, false
}

// openOutput returns stdout unless path names a file.
func openOutput(stdout io.Writer, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, sync.OnceValue(f.Close), nil
}

func pairName(p pipeline.Pair) string {
	return fmt.Sprintf("%s vs %s", p.Seq1.ID, p.Seq2.ID)
}

func logHit(log *slog.Logger, h engine.Hit) {
	if !h.Found {
		log.Info("no local alignment", "seq1", h.Seq1ID, "seq2", h.Seq2ID)
		return
	}
	log.Info("aligned",
		"seq1", h.Seq1ID, "seq2", h.Seq2ID,
		"score", h.Score, "length", h.Length,
		"identity", fmt.Sprintf("%.4f", h.Identity()))
}

func record(ctx context.Context, log *slog.Logger, c config.Config, inputs []string, hits []engine.Hit) error {
	st, err := store.Open(ctx, c.DB)
	if err != nil {
		return err
	}
	defer st.Close()

	mode := c.Mode
	if mode == "" {
		mode = pipeline.ModeFirst
	}
	id, err := st.SaveRun(ctx, store.Run{Params: c.Params(), Gap: c.GapByte(), Mode: mode, Inputs: inputs}, hits)
	if err != nil {
		return err
	}
	log.Info("recorded run", "db", c.DB, "run", id.String(), "pairs", len(hits))
	return nil
}
