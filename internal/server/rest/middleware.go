package rest

import (
	"errors"
	"net/http"

	"github.com/groovestream/users/internal/common"
)

// authenticate guards a route group: it reads the session token from the
// request header, resolves it to a user and binds the user into the request
// context. Every rejection answers 403 and stops the chain; no downstream
// handler runs.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(common.TokenHeaderName)

		user, err := s.service.Authenticate(r.Context(), token)
		if err != nil {
			writeJSON(w, http.StatusForbidden, msgResponse{Msg: rejectionMessage(err)})
			return
		}

		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
	})
}

// rejectionMessage maps rejections to the fixed wire contract: any token
// verification failure reads as a login prompt, a verified token with an
// unusable subject reads as invalid, and a dangling subject names the
// missing user. Internal failures fall into the generic login prompt.
func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, common.ErrInvalidToken):
		return "Invalid token"
	default:
		return "Please login first"
	}
}
