package auth

import "golang.org/x/crypto/bcrypt"

// Hasher produces and verifies one-way salted password digests.
type Hasher interface {
	// Hash creates a digest from a password. A fresh salt is drawn on every
	// call, so the same password yields different digests.
	Hash(password string) (string, error)

	// Verify reports whether the password matches the digest. Comparison is
	// constant-time.
	Verify(password, digest string) (bool, error)
}

// BcryptHasher implements Hasher using bcrypt with a tunable work factor.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a bcrypt hasher. A cost outside bcrypt's valid
// range is clamped.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (h *BcryptHasher) Verify(password, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	if err == bcrypt.ErrMismatchedHashAndPassword {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

var _ Hasher = (*BcryptHasher)(nil)
