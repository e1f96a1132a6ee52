package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrEmptyPassword = errors.New("empty password")

// HashPassword turns a submitted password into the bcrypt hash stores keep instead of it.
// cost <= 0 means bcrypt.DefaultCost.
func HashPassword(raw string, cost int) (string, error) {
	if raw == "" {
		return "", ErrEmptyPassword
	}
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(raw), cost)
	return string(b), err
}

// CheckPassword reports whether raw matches a stored hash.
func CheckPassword(hash, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
