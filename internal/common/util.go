package common

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
)

// MakeRandHexString generates a random hexadecimal string from size random
// bytes. The resulting string is twice as long as size, since each byte
// expands to two hex characters.
//
// It returns an error if the random number generator fails.
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// MakeRandDigits generates a string of n random decimal digits, e.g. "4819".
func MakeRandDigits(n int) (string, error) {
	digits := make([]byte, n)
	for i := range digits {
		d, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + d.Int64())
	}
	return string(digits), nil
}
