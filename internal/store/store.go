// Package store records alignment runs in a SQLite database.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"localign/internal/engine"
)

// schema.sql defines one row per run and one row per aligned pair.
//
//go:embed schema.sql
var schemaSQL string

// timeLayout has fixed-width fractions so created_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrRunNotFound is returned by GetRun for an unknown run ID.
var ErrRunNotFound = errors.New("run not found")

// Store wraps the database handle.
type Store struct {
	db *sql.DB
}

// Run describes one invocation. Pairs and Found are filled by ListRuns.
type Run struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Params    engine.ScoreParams
	Gap       byte // gap symbol in the stored aligned rows
	Mode      string
	Inputs    []string

	Pairs int
	Found int
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// SaveRun writes r and its hits in one transaction and returns the run ID.
// A zero ID or time is filled in.
func (s *Store) SaveRun(ctx context.Context, r Run, hits []engine.Hit) (uuid.UUID, error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	if r.Gap == 0 {
		r.Gap = engine.DefaultGap
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, match_score, mismatch_score, indel_score, gap, mode, inputs)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID.String(), r.CreatedAt.UTC().Format(timeLayout),
		r.Params.Match, r.Params.Mismatch, r.Params.Indel,
		string(r.Gap), r.Mode, strings.Join(r.Inputs, "\n"),
	); err != nil {
		return uuid.Nil, fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO alignments (
			run_id, pair_index, seq1_id, seq2_id, seq1_len, seq2_len, found,
			score, length, seq1_start, seq1_end, seq2_start, seq2_end,
			matches, mismatches, gaps, aligned1, aligned2
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return uuid.Nil, err
	}
	defer stmt.Close()

	for _, h := range hits {
		if _, err := stmt.ExecContext(ctx,
			r.ID.String(), h.Index, h.Seq1ID, h.Seq2ID, h.Seq1Len, h.Seq2Len, boolInt(h.Found),
			h.Score, h.Length, h.Start1, h.End1, h.Start2, h.End2,
			h.Matches, h.Mismatches, h.Gaps, string(h.Aligned1), string(h.Aligned2),
		); err != nil {
			return uuid.Nil, fmt.Errorf("insert alignment %d: %w", h.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, err
	}
	return r.ID, nil
}

const runColumns = `
	SELECT r.id, r.created_at, r.match_score, r.mismatch_score, r.indel_score,
	       r.gap, r.mode, r.inputs, COUNT(a.pair_index), COALESCE(SUM(a.found), 0)
	FROM runs r
	LEFT JOIN alignments a ON a.run_id = r.id`

// ListRuns returns every run, newest first, with pair counts.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, runColumns+`
		GROUP BY r.id
		ORDER BY r.created_at DESC, r.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetRun returns one run with its pair counts, or ErrRunNotFound.
func (s *Store) GetRun(ctx context.Context, id uuid.UUID) (Run, error) {
	r, err := scanRun(s.db.QueryRowContext(ctx, runColumns+`
		WHERE r.id = ?
		GROUP BY r.id`, id.String()))
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return r, err
}

func scanRun(row interface{ Scan(...any) error }) (Run, error) {
	var (
		r           Run
		id, created string
		gap, inputs string
		err         error
	)
	if err = row.Scan(&id, &created, &r.Params.Match, &r.Params.Mismatch, &r.Params.Indel,
		&gap, &r.Mode, &inputs, &r.Pairs, &r.Found); err != nil {
		return Run{}, err
	}
	if r.ID, err = uuid.Parse(id); err != nil {
		return Run{}, fmt.Errorf("run id %q: %w", id, err)
	}
	if r.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return Run{}, fmt.Errorf("run %s created_at: %w", id, err)
	}
	if len(gap) != 1 {
		return Run{}, fmt.Errorf("run %s gap %q: want one symbol", id, gap)
	}
	r.Gap = gap[0]
	if inputs != "" {
		r.Inputs = strings.Split(inputs, "\n")
	}
	return r, nil
}

// Alignments returns the hits stored for run id in pair order.
func (s *Store) Alignments(ctx context.Context, id uuid.UUID) ([]engine.Hit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT pair_index, seq1_id, seq2_id, seq1_len, seq2_len, found,
		       score, length, seq1_start, seq1_end, seq2_start, seq2_end,
		       matches, mismatches, gaps, aligned1, aligned2
		FROM alignments WHERE run_id = ? ORDER BY pair_index`, id.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []engine.Hit
	for rows.Next() {
		var (
			h      engine.Hit
			a1, a2 string
		)
		if err := rows.Scan(&h.Index, &h.Seq1ID, &h.Seq2ID, &h.Seq1Len, &h.Seq2Len, &h.Found,
			&h.Score, &h.Length, &h.Start1, &h.End1, &h.Start2, &h.End2,
			&h.Matches, &h.Mismatches, &h.Gaps, &a1, &a2); err != nil {
			return nil, err
		}
		if h.Found {
			h.Aligned1, h.Aligned2 = []byte(a1), []byte(a2)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
