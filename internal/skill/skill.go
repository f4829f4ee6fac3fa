// Package skill implements the skills collection shown on the marketing page.
package skill

import (
	"context"
	"time"
)

// Skill is a proficiency entry. Percentage is 0-100 by convention; the API
// does not enforce the bound, callers validate it.
type Skill struct {
	ID         string    `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Percentage int       `db:"percentage" json:"percentage"`
	Category   string    `db:"category" json:"category"`
	Icon       string    `db:"icon" json:"icon"`
	Color      string    `db:"color" json:"color"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

// Patch carries the fields of a partial update; nil means "leave unchanged".
type Patch struct {
	Name       *string `json:"name"`
	Percentage *int    `json:"percentage"`
	Category   *string `json:"category"`
	Icon       *string `json:"icon"`
	Color      *string `json:"color"`
}

// Store is the persistence surface for skills.
type Store interface {
	// List returns all skills oldest-created-first, the inverse of works.
	List(ctx context.Context) ([]Skill, error)
	GetByID(ctx context.Context, id string) (*Skill, error)
	Insert(ctx context.Context, s *Skill) error
	Update(ctx context.Context, s *Skill) error
	Delete(ctx context.Context, id string) error
}
