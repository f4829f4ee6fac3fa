// Package work implements the portfolio works collection: public listing and
// view tracking, authenticated create/update/delete.
package work

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Tags is an ordered list of strings stored as a jsonb column.
type Tags []string

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		t = Tags{}
	}
	return json.Marshal(t)
}

func (t *Tags) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = Tags{}
		return nil
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return errors.New("tags: unsupported scan source")
	}
}

// Work is a portfolio entry. Views is incremented only by the view-tracking
// operation, never by updates.
type Work struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Category    string    `db:"category" json:"category"`
	ImageSrc    string    `db:"image_src" json:"imageSrc"`
	Description string    `db:"description" json:"description"`
	Tags        Tags      `db:"tags" json:"tags"`
	WebsiteURL  string    `db:"website_url" json:"websiteUrl,omitempty"`
	Status      string    `db:"status" json:"status"`
	Views       int64     `db:"views" json:"views"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// Patch carries the fields of a partial update; nil means "leave unchanged".
// Views and CreatedAt are deliberately absent.
type Patch struct {
	Title       *string `json:"title"`
	Category    *string `json:"category"`
	ImageSrc    *string `json:"imageSrc"`
	Description *string `json:"description"`
	Tags        *Tags   `json:"tags"`
	WebsiteURL  *string `json:"websiteUrl"`
	Status      *string `json:"status"`
}

// Store is the persistence surface for works.
type Store interface {
	// List returns all works newest-created-first.
	List(ctx context.Context) ([]Work, error)
	GetByID(ctx context.Context, id string) (*Work, error)
	Insert(ctx context.Context, w *Work) error
	// Update replaces the mutable fields of the row matching w.ID.
	Update(ctx context.Context, w *Work) error
	Delete(ctx context.Context, id string) error
	// IncrementViews must be a store-level atomic increment.
	IncrementViews(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	// TopByViews returns up to limit works ordered by views descending.
	TopByViews(ctx context.Context, limit int) ([]Work, error)
}
