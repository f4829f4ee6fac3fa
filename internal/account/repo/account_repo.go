package repo

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/elishalema/portfolio-service/internal/account"
)

// AccountRepo provides data access for the accounts table using sqlx.
type AccountRepo struct {
	db *sqlx.DB
}

func NewAccountRepo(db *sqlx.DB) *AccountRepo { return &AccountRepo{db: db} }

// EnsureTable creates the accounts table if not exists (idempotent).
func (r *AccountRepo) EnsureTable(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS accounts (
  id varchar(32) PRIMARY KEY,
  username text NOT NULL UNIQUE,
  password_hash text NOT NULL
);`
	_, err := r.db.ExecContext(ctx, ddl)
	return err
}

// GetByUsername fetches by username or returns sql.ErrNoRows.
func (r *AccountRepo) GetByUsername(ctx context.Context, username string) (*account.Account, error) {
	const q = `SELECT id, username, password_hash FROM accounts WHERE username=$1`
	var row account.Account
	if err := r.db.GetContext(ctx, &row, q, username); err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates the account. The unique username constraint resolves a
// concurrent bootstrap race: the loser's insert is a no-op.
func (r *AccountRepo) Insert(ctx context.Context, a *account.Account) error {
	const q = `INSERT INTO accounts (id, username, password_hash) VALUES ($1, $2, $3)
		ON CONFLICT (username) DO NOTHING`
	_, err := r.db.ExecContext(ctx, q, a.ID, a.Username, a.PasswordHash)
	return err
}
