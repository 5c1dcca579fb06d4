package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a salted bcrypt hash of plaintext. An empty plaintext
// is a programmer error and returns an error rather than a valid credential.
func HashPassword(plaintext string) (string, error) {
	if plaintext == "" {
		return "", errors.New("auth: empty password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored credential.
// A mismatch is not an error; it returns false.
func CheckPassword(plaintext, credential string) bool {
	return bcrypt.CompareHashAndPassword([]byte(credential), []byte(plaintext)) == nil
}
