// Package db wires the Postgres connection, schema migrations, and the
// repositories together behind a single manager.
package db

import (
	"context"
	"database/sql"

	"github.com/ozyalhan/ozyblog/internal/server/posts"
	"github.com/ozyalhan/ozyblog/internal/server/users"
)

type RepositoryManager interface {
	Conn() *sql.DB
	Users() users.Repository
	Posts(kind posts.Kind) posts.Repository
	RunMigrations(ctx context.Context) error
	Close() error
}
