package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	inviteTokenLength   = 43
	inviteTokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// InviteToken returns a fresh URL-safe invite link token. Collisions are left
// to the unique index on the token column; at 43 characters over a 64-symbol
// alphabet they are not a practical concern.
func InviteToken() (string, error) {
	return RandomString(inviteTokenLength, inviteTokenAlphabet)
}

// RandomString returns a cryptographically secure, unbiased string of the
// requested length drawn from the given alphabet.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}

	return string(value), nil
}
