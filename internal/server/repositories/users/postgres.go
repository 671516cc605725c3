package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/groovestream/users/internal/common"
	"github.com/groovestream/users/internal/dbx"
	"github.com/groovestream/users/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	tracks := user.Playlist
	if tracks == nil {
		tracks = []string{}
	}
	playlist, err := json.Marshal(tracks)
	if err != nil {
		return nil, fmt.Errorf("playlist encode error: %w", err)
	}

	query :=
		`INSERT INTO users (name, email, password_hash, role, playlist)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		user.Name, user.Email, user.PasswordHash, user.Role, playlist).
		Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, name, email, password_hash, role, playlist, created_at FROM users
		 WHERE email = $1
		 `
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	// id is a uuid column; comparing as text avoids a cast error on a
	// syntactically invalid id coming from a token subject.
	query :=
		`SELECT id, name, email, password_hash, role, playlist, created_at FROM users
		 WHERE id::text = $1
		 `
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var playlist []byte

	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Role, &playlist, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := json.Unmarshal(playlist, &user.Playlist); err != nil {
		return nil, fmt.Errorf("playlist decode error: %w", err)
	}

	return user, nil
}
