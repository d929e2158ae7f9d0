// Package postgres implements storage.Store on top of sqlx/PostgreSQL.
package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// queryTimeout bounds every store call; the transport gives no other
// cancellation signal.
const queryTimeout = 5 * time.Second

// Store is the production storage.Store implementation.
type Store struct {
	db *sqlx.DB
}

// New wraps an already connected database handle.
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, queryTimeout)
}
