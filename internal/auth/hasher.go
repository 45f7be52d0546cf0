package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt work factor used for new hashes. Stored hashes
// embed their own cost, so raising it only affects future registrations.
const HashCost = 12

// ErrEmptyPassword is returned when an empty password reaches the hasher.
var ErrEmptyPassword = errors.New("password must not be empty")

// ErrPasswordMismatch is the sentinel for a candidate password that does
// not match the stored hash.
var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword generates a salted bcrypt hash for the given password.
// Each call produces a distinct hash for the same input.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	return string(h), err
}

// ComparePasswordAndHash validates the given cleartext password against a
// stored bcrypt hash. A mismatch returns ErrPasswordMismatch, never an
// unexceptional error; comparison time does not depend on how close the
// candidate is.
func ComparePasswordAndHash(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return err
	}
	return nil
}
