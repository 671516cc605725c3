// Package services contains the server-side business logic. This file
// implements Service, the authentication gateway: credential registration,
// login, and per-request token authentication.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/groovestream/users/internal/common"
	"github.com/groovestream/users/internal/logging"
	"github.com/groovestream/users/internal/server/auth"
	"github.com/groovestream/users/internal/server/models"
	"github.com/groovestream/users/internal/server/repositories/users"
)

// Service orchestrates the credential store, the password hasher and the
// token service. It never exposes a password digest: every user it returns
// is a sanitized copy. Unexpected store or hashing failures are logged with
// their cause and surface to callers as common.ErrorInternal.
type Service struct {
	users  users.Repository
	hasher auth.Hasher
	tokens *auth.TokenService
	logger logging.Logger
}

func NewService(repo users.Repository, hasher auth.Hasher, tokens *auth.TokenService, logger logging.Logger) *Service {
	return &Service{
		users:  repo,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With("module", "services"),
	}
}

// normalizeEmail makes email matching case-insensitive across all store
// engines.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user for a previously-unused email and issues a session
// token for it. An email already present yields common.ErrorAlreadyExists
// with no user created and no token issued. The store's unique constraint
// backs the existence check, so a concurrent duplicate registration also
// surfaces as ErrorAlreadyExists.
func (s *Service) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	email = normalizeEmail(email)

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil, "", common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		s.logger.Error(ctx, "email lookup failed", "error", err)
		return nil, "", common.ErrorInternal
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return nil, "", common.ErrorInternal
	}

	user, err := s.users.Create(ctx, &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: digest,
		Role:         "user",
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, "", common.ErrorAlreadyExists
		}
		s.logger.Error(ctx, "user creation failed", "error", err)
		return nil, "", common.ErrorInternal
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.logger.Error(ctx, "token issue failed", "error", err)
		return nil, "", common.ErrorInternal
	}

	return user.Sanitized(), token, nil
}

// Login verifies the credentials and issues a fresh session token. Unknown
// email and wrong password both yield common.ErrorUnauthorized so the
// response does not reveal which part failed.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "email lookup failed", "error", err)
		return nil, "", common.ErrorInternal
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		s.logger.Error(ctx, "password verification failed", "error", err)
		return nil, "", common.ErrorInternal
	}
	if !ok {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.logger.Error(ctx, "token issue failed", "error", err)
		return nil, "", common.ErrorInternal
	}

	return user.Sanitized(), token, nil
}

// Authenticate resolves a session token to the user it was issued for.
// Rejections: common.ErrMissingToken for an absent token, the token
// service's sentinel for a failed verification, common.ErrUserNotFound when
// the subject no longer resolves. A successful result is the sanitized user
// to bind into the request context; the caller proceeds only on nil error.
func (s *Service) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, common.ErrMissingToken
	}

	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		s.logger.Error(ctx, "user lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	return user.Sanitized(), nil
}
