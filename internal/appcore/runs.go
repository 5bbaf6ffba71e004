package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"localign/internal/cmdutil"
	"localign/internal/config"
	"localign/internal/store"
	"localign/internal/writers"
)

const runsHeader = "run\tcreated\tmode\tmatch\tmismatch\tindel\tgap\tpairs\tfound\tinputs"

// ListRuns prints the runs recorded in c.DB, newest first.
func ListRuns(ctx context.Context, stdout, stderr io.Writer, c config.Config) int {
	log := cmdutil.NewLogger(stderr, c.Quiet, c.Verbose)

	st, err := store.Open(ctx, c.DB)
	if err != nil {
		log.Error("open database", "db", c.DB, "err", err)
		return ExitIO
	}
	defer st.Close()

	runs, err := st.ListRuns(ctx)
	if err != nil {
		log.Error("list runs", "db", c.DB, "err", err)
		return ExitIO
	}

	outw := bufio.NewWriter(stdout)
	tw := tabwriter.NewWriter(outw, 0, 4, 2, ' ', 0)
	if !c.NoHeader {
		fmt.Fprintln(tw, runsHeader)
	}
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%c\t%d\t%d\t%s\n",
			r.ID, r.CreatedAt.Local().Format(time.DateTime), r.Mode,
			r.Params.Match, r.Params.Mismatch, r.Params.Indel, r.Gap,
			r.Pairs, r.Found, strings.Join(r.Inputs, ","))
	}
	if e := tw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		log.Error("write output", "err", e)
		return ExitIO
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		log.Error("flush output", "err", e)
		return ExitIO
	}
	if len(runs) == 0 {
		log.Info("no runs recorded", "db", c.DB)
	}
	return ExitOK
}

// ShowRun prints the alignments stored for one run in the configured
// output format. Pretty blocks use the gap symbol the run was recorded with.
func ShowRun(ctx context.Context, stdout, stderr io.Writer, c config.Config, runID string) int {
	log := cmdutil.NewLogger(stderr, c.Quiet, c.Verbose)

	id, err := uuid.Parse(runID)
	if err != nil {
		log.Error("parse run id", "run", runID, "err", err)
		return ExitUsage
	}

	st, err := store.Open(ctx, c.DB)
	if err != nil {
		log.Error("open database", "db", c.DB, "err", err)
		return ExitIO
	}
	defer st.Close()

	run, err := st.GetRun(ctx, id)
	if errors.Is(err, store.ErrRunNotFound) {
		log.Error("unknown run", "db", c.DB, "run", runID)
		return ExitUsage
	} else if err != nil {
		log.Error("load run", "run", runID, "err", err)
		return ExitIO
	}
	hits, err := st.Alignments(ctx, id)
	if err != nil {
		log.Error("load alignments", "run", runID, "err", err)
		return ExitIO
	}

	dst, closeDst, err := openOutput(stdout, c.Output)
	if err != nil {
		log.Error("open output", "err", err)
		return ExitIO
	}
	defer func() { _ = closeDst() }()
	outw := bufio.NewWriter(dst)

	// stored rows carry the gap symbol of the recorded run, not --gap
	o := writerOptions(c)
	o.PrettyOpt.Gap = run.Gap
	inCh, writeErr := writers.StartResultWriter(outw, o, len(hits))
	for _, h := range hits {
		inCh <- h
	}
	close(inCh)

	code, _ := finish(log, <-writeErr, outw, closeDst)
	return code
}
