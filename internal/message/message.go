// Package message stores contact-form submissions. The collection is
// append-only: there is no update or delete operation.
package message

import (
	"context"
	"time"
)

// Message is one contact-form submission.
type Message struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Store is the persistence surface for messages.
type Store interface {
	Insert(ctx context.Context, m *Message) error
	Count(ctx context.Context) (int64, error)
	// Recent returns up to limit messages newest first.
	Recent(ctx context.Context, limit int) ([]Message, error)
}
