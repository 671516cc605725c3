package rest

import (
	"context"

	"github.com/groovestream/users/internal/server/models"
)

type ctxKey string

const userKey ctxKey = "user"

// withUser binds the authenticated user into the request context. The value
// lives only for the request; handlers receive it through UserFromContext
// instead of mutating any shared object.
func withUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the authenticated user placed by the middleware.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}
