// internal/pipeline/pipeline_test.go
package pipeline

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localign/internal/engine"
	"localign/internal/fasta"
)

// Compile-time check: the concrete engine satisfies the minimal contract.
var _ Aligner = (*engine.Engine)(nil)

func recs(seqs ...string) []fasta.Record {
	out := make([]fasta.Record, len(seqs))
	for i, s := range seqs {
		out[i] = fasta.Record{ID: string(rune('a' + i)), Seq: []byte(s)}
	}
	return out
}

func TestPlanModes(t *testing.T) {
	rs := recs("A", "C", "G", "T")

	first, err := Plan(rs, ModeFirst)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "a", first[0].Seq1.ID)
	assert.Equal(t, "b", first[0].Seq2.ID)

	query, err := Plan(rs, ModeQuery)
	require.NoError(t, err)
	require.Len(t, query, 3)
	for k, p := range query {
		assert.Equal(t, k, p.Index)
		assert.Equal(t, "a", p.Seq1.ID)
	}

	all, err := Plan(rs, ModeAll)
	require.NoError(t, err)
	require.Len(t, all, 6)
	assert.Equal(t, "c", all[5].Seq1.ID)
	assert.Equal(t, "d", all[5].Seq2.ID)

	_, err = Plan(rs[:1], ModeFirst)
	assert.ErrorIs(t, err, ErrTooFewSequences)

	_, err = Plan(rs, "bogus")
	assert.Error(t, err)
}

// slowFirst delays early pairs so completions arrive out of order.
type slowFirst struct{ eng *engine.Engine }

func (s slowFirst) AlignObserved(seq1, seq2 []byte, progress engine.ProgressFunc) (engine.Alignment, error) {
	time.Sleep(time.Duration(len(seq2)) * time.Millisecond)
	return s.eng.AlignObserved(seq1, seq2, progress)
}

func TestForEachDeliversInPlanOrder(t *testing.T) {
	rs := recs("ACGTACGT", "ACGTACGTACGTACGTACGT", "ACGTACGTACGT", "ACGT", "GGGG")
	pairs, err := Plan(rs, ModeQuery)
	require.NoError(t, err)

	al := slowFirst{eng: engine.New(engine.Config{Params: engine.DefaultParams()})}
	var got []engine.Hit
	err = ForEach(context.Background(), Config{Threads: 4}, pairs, al, func(h engine.Hit) error {
		got = append(got, h)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 4)
	for k, h := range got {
		assert.Equal(t, k, h.Index)
	}
	assert.True(t, got[0].Found)
	assert.Equal(t, 8, got[0].Score)
	// ACGTACGT vs GGGG: one G match scores 1.
	assert.Equal(t, 1, got[3].Score)
}

func TestForEachNoAlignmentIsNotAnError(t *testing.T) {
	pairs, err := Plan(recs("AC", "GT"), ModeFirst)
	require.NoError(t, err)

	var got []engine.Hit
	err = ForEach(context.Background(), Config{Threads: 1}, pairs,
		engine.New(engine.Config{Params: engine.DefaultParams()}),
		func(h engine.Hit) error { got = append(got, h); return nil })
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].Found)
	assert.Equal(t, 0, got[0].Score)
	assert.Equal(t, "a", got[0].Seq1ID)
	assert.Equal(t, 2, got[0].Seq2Len)
}

func TestForEachInvalidInputStops(t *testing.T) {
	pairs, err := Plan(recs("AC", ""), ModeFirst)
	require.NoError(t, err)

	err = ForEach(context.Background(), Config{Threads: 2}, pairs,
		engine.New(engine.Config{Params: engine.DefaultParams()}),
		func(engine.Hit) error { return nil })
	assert.ErrorIs(t, err, engine.ErrInvalidInput)
}

func TestForEachVisitErrorStops(t *testing.T) {
	pairs, err := Plan(recs("A", "A", "A", "A"), ModeAll)
	require.NoError(t, err)

	boom := errors.New("boom")
	var n int32
	err = ForEach(context.Background(), Config{Threads: 2}, pairs,
		engine.New(engine.Config{Params: engine.DefaultParams()}),
		func(engine.Hit) error {
			atomic.AddInt32(&n, 1)
			return boom
		})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int32(1), atomic.LoadInt32(&n))
}

func TestForEachCanceled(t *testing.T) {
	pairs, err := Plan(recs("A", "A"), ModeFirst)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = ForEach(ctx, Config{Threads: 1}, pairs,
		engine.New(engine.Config{Params: engine.DefaultParams()}),
		func(engine.Hit) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestForEachProgressPerPair(t *testing.T) {
	pairs, err := Plan(recs("ACGT", "ACGT", "ACGA"), ModeQuery)
	require.NoError(t, err)

	var calls int32
	cfg := Config{
		Threads: 2,
		Progress: func(p Pair) engine.ProgressFunc {
			return func(float64) { atomic.AddInt32(&calls, 1) }
		},
	}
	err = ForEach(context.Background(), cfg, pairs,
		engine.New(engine.Config{Params: engine.DefaultParams()}),
		func(engine.Hit) error { return nil })
	require.NoError(t, err)
	// every pair reports at least start and completion
	assert.GreaterOrEqual(t, atomic.LoadInt32(&calls), int32(4))
}
