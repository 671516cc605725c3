// Package auth implements the stateless pieces of the authentication core:
// signed session tokens and password digests.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/groovestream/users/internal/common"
)

// Claims carries the standard registered claims plus the subject's user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// TokenService issues and verifies signed, time-limited session tokens.
// The signing secret is injected once at construction; the service holds no
// per-token state, so a token stays valid until its expiry.
type TokenService struct {
	secret   []byte
	validity time.Duration
}

func NewTokenService(secret []byte, validity time.Duration) *TokenService {
	return &TokenService{secret: secret, validity: validity}
}

// Issue produces an HS256-signed token embedding userID and an absolute
// expiry of now + the configured validity window.
func (s *TokenService) Issue(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
		},
		UserID: userID,
	})

	return token.SignedString(s.secret)
}

// Verify checks the token's signature and expiry and returns the embedded
// user id. Failures map to distinct sentinels: common.ErrTokenMalformed,
// common.ErrInvalidSignature, common.ErrTokenExpired. A token that verifies
// but carries no subject is common.ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", common.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", common.ErrInvalidSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", common.ErrTokenExpired
		default:
			return "", common.ErrInvalidToken
		}
	}

	if !token.Valid || claims.UserID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
