// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"localign/internal/engine"
)

// Config controls the alignment pipeline.
type Config struct {
	Threads int // number of worker goroutines (>=1)

	// Progress, when set, returns the matrix-fill observer for a pair.
	Progress func(Pair) engine.ProgressFunc
}

// ForEach aligns every pair and calls visit with the resulting hits in plan
// order. Pairs without a positive alignment are delivered with Found=false.
// It returns the first error encountered (alignment, visit, or context
// cancellation); no further hits are visited after an error.
func ForEach(
	ctx context.Context,
	cfg Config,
	pairs []Pair,
	al Aligner,
	visit func(engine.Hit) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Threads)

	type slot struct {
		k   int
		hit engine.Hit
	}
	results := make(chan slot, cfg.Threads*2)

	// Collector: reorder to plan order, then visit.
	var (
		verr error
		done = make(chan struct{})
	)
	go func() {
		defer close(done)
		pending := make(map[int]engine.Hit)
		next := 0
		for s := range results {
			if verr != nil {
				continue
			}
			pending[s.k] = s.hit
			for {
				h, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if err := visit(h); err != nil {
					verr = err
					cancel()
					break
				}
			}
		}
	}()

	for k, p := range pairs {
		k, p := k, p
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var progress engine.ProgressFunc
			if cfg.Progress != nil {
				progress = cfg.Progress(p)
			}
			hit, err := alignPair(al, p, progress)
			if err != nil {
				return err
			}
			select {
			case results <- slot{k: k, hit: hit}:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}

	werr := g.Wait()
	close(results)
	<-done

	switch {
	case verr != nil:
		return verr
	case werr != nil:
		return werr
	}
	return ctx.Err()
}

func alignPair(al Aligner, p Pair, progress engine.ProgressFunc) (engine.Hit, error) {
	hit := engine.Hit{
		Index:   p.Index,
		Seq1ID:  p.Seq1.ID,
		Seq2ID:  p.Seq2.ID,
		Seq1Len: len(p.Seq1.Seq),
		Seq2Len: len(p.Seq2.Seq),
	}
	aln, err := al.AlignObserved(p.Seq1.Seq, p.Seq2.Seq, progress)
	switch {
	case errors.Is(err, engine.ErrNoAlignment):
		return hit, nil
	case err != nil:
		return hit, fmt.Errorf("align %s vs %s: %w", p.Seq1.ID, p.Seq2.ID, err)
	}
	hit.Found = true
	hit.Alignment = aln
	return hit, nil
}
