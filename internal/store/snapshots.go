package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wonny/kabu/internal/contracts"
)

// ErrNotFound is returned when no snapshot exists for the query.
var ErrNotFound = errors.New("snapshot not found")

// SnapshotRepository persists daily analysis snapshots.
type SnapshotRepository struct {
	pool *pgxpool.Pool
}

// NewSnapshotRepository creates a new snapshot repository.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

// SaveAnalyses replaces the snapshots for a date in one transaction.
func (r *SnapshotRepository) SaveAnalyses(ctx context.Context, date time.Time, analyses []*contracts.Analysis) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, "DELETE FROM analysis_snapshots WHERE snapshot_date = $1", date)
	if err != nil {
		return fmt.Errorf("failed to delete old snapshots: %w", err)
	}

	query := `
		INSERT INTO analysis_snapshots (
			symbol, snapshot_date, price, composite_score,
			short_score, short_signal,
			medium_score, medium_signal,
			long_score, long_signal,
			detail
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	for _, a := range analyses {
		detail, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("failed to marshal analysis for %s: %w", a.Symbol, err)
		}

		_, err = tx.Exec(ctx, query,
			a.Symbol, date, a.Price, a.CompositeScore(),
			a.ShortTerm.Score, string(a.ShortTerm.Signal),
			a.MediumTerm.Score, string(a.MediumTerm.Signal),
			a.LongTerm.Score, string(a.LongTerm.Signal),
			detail,
		)
		if err != nil {
			return fmt.Errorf("failed to insert snapshot for %s: %w", a.Symbol, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetAnalysis retrieves the stored analysis for a symbol on a date.
func (r *SnapshotRepository) GetAnalysis(ctx context.Context, symbol string, date time.Time) (*contracts.Analysis, error) {
	query := `
		SELECT detail
		FROM analysis_snapshots
		WHERE symbol = $1 AND snapshot_date = $2
	`

	var detail []byte
	err := r.pool.QueryRow(ctx, query, symbol, date).Scan(&detail)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}

	var analysis contracts.Analysis
	if err := json.Unmarshal(detail, &analysis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return &analysis, nil
}

// GetRanking returns the stored snapshots for a date ordered by
// composite score, highest first.
func (r *SnapshotRepository) GetRanking(ctx context.Context, date time.Time) ([]contracts.RankedSymbol, error) {
	query := `
		SELECT symbol, composite_score, short_signal, medium_signal, long_signal, price
		FROM analysis_snapshots
		WHERE snapshot_date = $1
		ORDER BY composite_score DESC
	`

	rows, err := r.pool.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query ranking: %w", err)
	}
	defer rows.Close()

	var ranked []contracts.RankedSymbol
	for rows.Next() {
		var rs contracts.RankedSymbol
		var short, medium, long string

		if err := rows.Scan(&rs.Symbol, &rs.Score, &short, &medium, &long, &rs.Price); err != nil {
			return nil, fmt.Errorf("failed to scan ranking row: %w", err)
		}

		rs.Rank = len(ranked) + 1
		rs.ShortTerm = contracts.Signal(short)
		rs.MediumTerm = contracts.Signal(medium)
		rs.LongTerm = contracts.Signal(long)
		ranked = append(ranked, rs)
	}

	return ranked, rows.Err()
}

// LatestSnapshotDate returns the most recent snapshot date, or
// ErrNotFound when the table is empty.
func (r *SnapshotRepository) LatestSnapshotDate(ctx context.Context) (time.Time, error) {
	var date time.Time
	err := r.pool.QueryRow(ctx, "SELECT MAX(snapshot_date) FROM analysis_snapshots").Scan(&date)
	if errors.Is(err, pgx.ErrNoRows) || date.IsZero() {
		return time.Time{}, ErrNotFound
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to query latest date: %w", err)
	}
	return date, nil
}
