package repo

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/elishalema/portfolio-service/internal/stats"
)

// StatsRepo provides data access for the singleton stats row using sqlx.
type StatsRepo struct {
	db *sqlx.DB
}

func NewStatsRepo(db *sqlx.DB) *StatsRepo { return &StatsRepo{db: db} }

// EnsureTable creates the stats table if not exists (idempotent).
func (r *StatsRepo) EnsureTable(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS stats (
  id varchar(32) PRIMARY KEY,
  total_visits bigint NOT NULL DEFAULT 0
);`
	_, err := r.db.ExecContext(ctx, ddl)
	return err
}

func (r *StatsRepo) Get(ctx context.Context) (*stats.Stats, error) {
	const q = `SELECT id, total_visits FROM stats WHERE id=$1`
	var row stats.Stats
	if err := r.db.GetContext(ctx, &row, q, stats.SingletonID); err != nil {
		return nil, err
	}
	return &row, nil
}

// IncrementVisits is a single-statement atomic increment; concurrent visits
// never lose an update.
func (r *StatsRepo) IncrementVisits(ctx context.Context) error {
	const q = `UPDATE stats SET total_visits = total_visits + 1 WHERE id=$1`
	_, err := r.db.ExecContext(ctx, q, stats.SingletonID)
	return err
}

// EnsureCounter inserts the stats row with its starting offset only if it
// does not exist yet. Safe under concurrent bootstrap.
func (r *StatsRepo) EnsureCounter(ctx context.Context, start int64) error {
	const q = `INSERT INTO stats (id, total_visits) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`
	_, err := r.db.ExecContext(ctx, q, stats.SingletonID, start)
	return err
}
