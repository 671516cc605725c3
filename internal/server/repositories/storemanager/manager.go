// Package storemanager wires a concrete credential-store engine from a DSN.
// Supported schemes: postgres:// (pgx + goose migrations), mongodb://, and
// memory: for tests and local runs without a database.
package storemanager

import (
	"context"
	"fmt"
	"strings"

	"github.com/groovestream/users/internal/server/repositories/users"
)

// Manager owns the storage connection lifecycle and vends repositories
// bound to it.
type Manager interface {
	Users() users.Repository
	Close(ctx context.Context) error
}

// New picks an engine from the DSN scheme. mongoDBName is only consulted for
// mongodb DSNs.
func New(ctx context.Context, dsn string, mongoDBName string) (Manager, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewPostgresManager(ctx, dsn)
	case strings.HasPrefix(dsn, "mongodb://"), strings.HasPrefix(dsn, "mongodb+srv://"):
		return NewMongoManager(ctx, dsn, mongoDBName)
	case dsn == "memory:":
		return NewMemoryManager(), nil
	default:
		return nil, fmt.Errorf("unsupported database DSN %q", dsn)
	}
}
