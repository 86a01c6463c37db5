package helpers

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned when attempting to hash an empty password.
var ErrEmptyPassword = errors.New("password cannot be empty")

// PasswordHasher isolates the hashing algorithm so it can be swapped
// without touching callers.
type PasswordHasher interface {
	// Hash produces a salted one-way digest of the password.
	Hash(plain string) (string, error)

	// Verify checks the password against a stored digest.
	// Returns (true, nil) on match, (false, nil) on mismatch, or an error
	// only when the digest itself is malformed.
	Verify(plain, digest string) (bool, error)
}

// BcryptHasher implements PasswordHasher using bcrypt, an adaptive
// cost-parameterized algorithm. Comparison runs in constant time relative
// to the digest, so mismatches do not leak how much of it matched.
type BcryptHasher struct {
	Cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{Cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Verify(plain, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		// A wrong password is a normal false result, not an error.
		return false, nil
	}
	return false, err
}

var _ PasswordHasher = (*BcryptHasher)(nil)
