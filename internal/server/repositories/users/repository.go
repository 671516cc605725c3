// Package users contains the credential store boundary: the Repository
// interface consumed by the auth service and its storage engines.
package users

import (
	"context"

	"github.com/groovestream/users/internal/server/models"
)

// Repository persists user identity records. Implementations must enforce
// email uniqueness atomically (unique index or equivalent) so concurrent
// registrations cannot both succeed; a violated constraint surfaces as
// common.ErrorAlreadyExists. Lookup misses surface as common.ErrorNotFound.
type Repository interface {
	// Create inserts the user and returns it with the store-assigned ID and
	// CreatedAt populated.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user registered under the given email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the user with the given opaque id.
	GetByID(ctx context.Context, id string) (*models.User, error)
}
