package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	// ErrDatabaseError is returned for unexpected database errors.
	// It can be used to wrap more specific driver errors.
	ErrDatabaseError = errors.New("database error")
)

// Querier defines an interface that can be satisfied by *sql.DB or *sql.Tx.
// This allows report queries to run inside a read-only transaction or on a direct DB connection.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// scanner is an interface satisfied by *sql.Row and *sql.Rows.
// This allows for generic scanning helpers.
type scanner interface {
	Scan(dest ...interface{}) error
}

// wrapDBError wraps err with ErrDatabaseError, keeping the Postgres error code when there is one.
func wrapDBError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("%w: %s: %s (code %s)", ErrDatabaseError, op, pqErr.Message, pqErr.Code)
	}
	return fmt.Errorf("%w: %s: %v", ErrDatabaseError, op, err)
}
