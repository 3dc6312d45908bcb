package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands the layout store its SQLite connection. The
// connection is opened and migrated on the first DB call, so commands that
// never read or write layouts skip that cost.
type DatabaseProvider interface {
	// DB opens the database once and returns the shared connection.
	DB(ctx context.Context) (*sql.DB, error)
	// Path is the database file, or ":memory:".
	Path() string
	IsInitialized() bool
	Close() error
}
