// Package password generates, hashes, and verifies account passwords.
package password

import (
	"crypto/rand"
	"errors"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// alphabet is the character set generated passwords are drawn from:
// letters, digits, and symbols.
const alphabet = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"!@#$%^&*()-_=+[]{}<>?"

// ErrInvalidLength is returned by Generate for a non-positive length.
var ErrInvalidLength = errors.New("password length must be positive")

// Generate produces a random password of the given length using a
// cryptographically secure source.
func Generate(length int) (string, error) {
	if length <= 0 {
		return "", ErrInvalidLength
	}

	max := big.NewInt(int64(len(alphabet)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = alphabet[n.Int64()]
	}
	return string(buf), nil
}

// Hash produces a salted bcrypt digest of the plaintext. The salt is
// embedded in the digest, so hashing the same input twice yields
// different digests that both verify.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether the candidate matches the digest. A malformed
// digest verifies as false rather than returning an error.
func Verify(digest, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(candidate)) == nil
}
