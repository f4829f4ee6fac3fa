package repo

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/elishalema/portfolio-service/internal/profile"
)

// ProfileRepo provides data access for the singleton profile row using sqlx.
type ProfileRepo struct {
	db *sqlx.DB
}

func NewProfileRepo(db *sqlx.DB) *ProfileRepo { return &ProfileRepo{db: db} }

// EnsureTable creates the profiles table if not exists (idempotent).
func (r *ProfileRepo) EnsureTable(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS profiles (
  id varchar(32) PRIMARY KEY,
  bio text NOT NULL DEFAULT '',
  experience text NOT NULL DEFAULT '',
  location text NOT NULL DEFAULT '',
  email text NOT NULL DEFAULT '',
  updated_at timestamptz NOT NULL DEFAULT NOW()
);`
	_, err := r.db.ExecContext(ctx, ddl)
	return err
}

func (r *ProfileRepo) Get(ctx context.Context) (*profile.Profile, error) {
	const q = `SELECT id, bio, experience, location, email, updated_at FROM profiles WHERE id=$1`
	var row profile.Profile
	if err := r.db.GetContext(ctx, &row, q, profile.SingletonID); err != nil {
		return nil, err
	}
	return &row, nil
}

// Replace overwrites the singleton document, inserting it if the row was
// somehow lost.
func (r *ProfileRepo) Replace(ctx context.Context, p *profile.Profile) error {
	const q = `INSERT INTO profiles (id, bio, experience, location, email, updated_at)
		VALUES (:id, :bio, :experience, :location, :email, :updated_at)
		ON CONFLICT (id) DO UPDATE SET bio=EXCLUDED.bio, experience=EXCLUDED.experience,
			location=EXCLUDED.location, email=EXCLUDED.email, updated_at=EXCLUDED.updated_at`
	_, err := r.db.NamedExecContext(ctx, q, p)
	return err
}

// EnsureDefault inserts the default profile only if no row exists yet.
// Safe under concurrent bootstrap: the conflict target is the fixed key.
func (r *ProfileRepo) EnsureDefault(ctx context.Context, p *profile.Profile) error {
	const q = `INSERT INTO profiles (id, bio, experience, location, email, updated_at)
		VALUES (:id, :bio, :experience, :location, :email, :updated_at)
		ON CONFLICT (id) DO NOTHING`
	_, err := r.db.NamedExecContext(ctx, q, p)
	return err
}
