package repo

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/elishalema/portfolio-service/internal/work"
)

// WorkRepo provides data access for the works table using sqlx.
type WorkRepo struct {
	db *sqlx.DB
}

func NewWorkRepo(db *sqlx.DB) *WorkRepo { return &WorkRepo{db: db} }

// EnsureTable creates the works table if not exists (idempotent).
func (r *WorkRepo) EnsureTable(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS works (
  id varchar(32) PRIMARY KEY,
  title text NOT NULL DEFAULT '',
  category text NOT NULL DEFAULT '',
  image_src text NOT NULL DEFAULT '',
  description text NOT NULL DEFAULT '',
  tags jsonb NOT NULL DEFAULT '[]'::jsonb,
  website_url text NOT NULL DEFAULT '',
  status text NOT NULL DEFAULT 'Live',
  views bigint NOT NULL DEFAULT 0,
  created_at timestamptz NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_works_created_at ON works (created_at);
`
	_, err := r.db.ExecContext(ctx, ddl)
	return err
}

const workColumns = `id, title, category, image_src, description, tags, website_url, status, views, created_at`

// List returns all works newest first. The id tiebreak keeps the order
// stable for rows created within the same timestamp.
func (r *WorkRepo) List(ctx context.Context) ([]work.Work, error) {
	const q = `SELECT ` + workColumns + ` FROM works ORDER BY created_at DESC, id DESC`
	var rows []work.Work
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByID fetches one work or returns sql.ErrNoRows.
func (r *WorkRepo) GetByID(ctx context.Context, id string) (*work.Work, error) {
	const q = `SELECT ` + workColumns + ` FROM works WHERE id=$1`
	var row work.Work
	if err := r.db.GetContext(ctx, &row, q, id); err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *WorkRepo) Insert(ctx context.Context, w *work.Work) error {
	const q = `INSERT INTO works (id, title, category, image_src, description, tags, website_url, status, views, created_at)
		VALUES (:id, :title, :category, :image_src, :description, :tags, :website_url, :status, :views, :created_at)`
	_, err := r.db.NamedExecContext(ctx, q, w)
	return err
}

// Update replaces the mutable fields. Views and created_at are never written
// here so concurrent view increments cannot be lost to an admin edit.
func (r *WorkRepo) Update(ctx context.Context, w *work.Work) error {
	const q = `UPDATE works SET title=:title, category=:category, image_src=:image_src,
		description=:description, tags=:tags, website_url=:website_url, status=:status
		WHERE id=:id`
	_, err := r.db.NamedExecContext(ctx, q, w)
	return err
}

func (r *WorkRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM works WHERE id=$1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// IncrementViews is a single-statement atomic increment.
func (r *WorkRepo) IncrementViews(ctx context.Context, id string) error {
	const q = `UPDATE works SET views = views + 1 WHERE id=$1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

func (r *WorkRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM works`); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *WorkRepo) TopByViews(ctx context.Context, limit int) ([]work.Work, error) {
	const q = `SELECT ` + workColumns + ` FROM works ORDER BY views DESC LIMIT $1`
	var rows []work.Work
	if err := r.db.SelectContext(ctx, &rows, q, limit); err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteAll clears the collection; used by the demo-content seeder only.
func (r *WorkRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM works`)
	return err
}
