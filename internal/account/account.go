// Package account models the single admin account used for dashboard login.
package account

import "context"

// Account is a row in the accounts table. There is exactly one in practice:
// the admin created by bootstrap. The API never updates or deletes it.
type Account struct {
	ID           string `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password_hash" json:"-"`
}

// Store is the persistence surface the auth service and bootstrap need.
type Store interface {
	GetByUsername(ctx context.Context, username string) (*Account, error)
	Insert(ctx context.Context, a *Account) error
}
