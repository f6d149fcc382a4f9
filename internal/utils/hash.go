package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by VerifyPassword when the supplied
// plaintext password does not match the stored digest.
var ErrPasswordMismatch = errors.New("password does not match stored hash")

// HashPassword derives a one-way bcrypt digest from the given plaintext
// password. bcrypt embeds a per-call random salt into the digest, so hashing
// the same password twice yields different strings.
//
// cost selects the bcrypt work factor; pass 0 (or any value below
// bcrypt.MinCost) to use bcrypt.DefaultCost.
//
// Returns:
//
//	string - the encoded digest, safe to persist as-is
//	error  - non-nil if the password exceeds bcrypt's 72-byte limit or
//	         hashing fails
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword compares a stored bcrypt digest against a candidate
// plaintext password. The comparison inside bcrypt is constant-time, so the
// check leaks no timing information about how close the candidate is.
//
// Returns nil on match, ErrPasswordMismatch when the password is wrong, and
// a wrapped error when the stored digest itself is malformed.
func VerifyPassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}

	return fmt.Errorf("error verifying password hash: %w", err)
}
