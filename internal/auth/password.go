package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidHashFormat reports a stored hash that bcrypt cannot parse.
// A plain mismatch is not an error.
var ErrInvalidHashFormat = errors.New("invalid password hash format")

// HashPassword creates a bcrypt hash of the password. Salt and cost are
// embedded in the hash itself.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// VerifyPassword checks the password against a stored hash. Returns
// (false, nil) on mismatch and ErrInvalidHashFormat when the hash is
// malformed.
func VerifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, ErrInvalidHashFormat
}

// ValidatePassword checks password strength
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters long")
	}
	return nil
}
