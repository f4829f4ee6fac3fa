// Package profile manages the singleton about/profile record.
package profile

import (
	"context"
	"time"
)

// SingletonID is the fixed primary key of the one profile row. Addressing
// the row by a well-known key removes the "first document wins" race that a
// concurrent first-run bootstrap could otherwise hit.
const SingletonID = "profile"

// Profile is the about-section content edited from the admin dashboard.
type Profile struct {
	ID         string    `db:"id" json:"id"`
	Bio        string    `db:"bio" json:"bio"`
	Experience string    `db:"experience" json:"experience"`
	Location   string    `db:"location" json:"location"`
	Email      string    `db:"email" json:"email"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

// Store is the persistence surface for the singleton profile.
type Store interface {
	Get(ctx context.Context) (*Profile, error)
	// Replace overwrites the whole document and refreshes UpdatedAt.
	Replace(ctx context.Context, p *Profile) error
}
