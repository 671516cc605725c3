package storemanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/groovestream/users/internal/server/migrations"
	"github.com/groovestream/users/internal/server/repositories/users"
)

// PostgresManager serves repositories backed by PostgreSQL through the pgx
// stdlib driver and applies the embedded goose migrations on start.
type PostgresManager struct {
	db    *sql.DB
	users users.Repository
}

// gooseUpContext is a seam for testing migration failures.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

func NewPostgresManager(ctx context.Context, dsn string) (*PostgresManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresManager{db: db, users: users.NewPostgresRepository(db)}

	if err := m.runMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}

func (m *PostgresManager) runMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, ".")
}

func (m *PostgresManager) Users() users.Repository {
	return m.users
}

func (m *PostgresManager) Close(_ context.Context) error {
	return m.db.Close()
}
