package repo

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/elishalema/portfolio-service/internal/message"
)

// MessageRepo provides data access for the messages table using sqlx.
type MessageRepo struct {
	db *sqlx.DB
}

func NewMessageRepo(db *sqlx.DB) *MessageRepo { return &MessageRepo{db: db} }

// EnsureTable creates the messages table if not exists (idempotent).
func (r *MessageRepo) EnsureTable(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS messages (
  id varchar(32) PRIMARY KEY,
  name text NOT NULL,
  email text NOT NULL,
  message text NOT NULL,
  created_at timestamptz NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_messages_created_at ON messages (created_at);
`
	_, err := r.db.ExecContext(ctx, ddl)
	return err
}

func (r *MessageRepo) Insert(ctx context.Context, m *message.Message) error {
	const q = `INSERT INTO messages (id, name, email, message, created_at)
		VALUES (:id, :name, :email, :message, :created_at)`
	_, err := r.db.NamedExecContext(ctx, q, m)
	return err
}

func (r *MessageRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM messages`); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *MessageRepo) Recent(ctx context.Context, limit int) ([]message.Message, error) {
	const q = `SELECT id, name, email, message, created_at FROM messages
		ORDER BY created_at DESC, id DESC LIMIT $1`
	var rows []message.Message
	if err := r.db.SelectContext(ctx, &rows, q, limit); err != nil {
		return nil, err
	}
	return rows, nil
}
