package utils

import (
	"crypto/rand"
	"math/big"
)

const resetCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateRandomToken returns a short human-typable code, e.g. for password resets.
func GenerateRandomToken(length int) (string, error) {
	token := make([]byte, length)
	max := big.NewInt(int64(len(resetCharset)))
	for i := range token {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		token[i] = resetCharset[n.Int64()]
	}
	return string(token), nil
}
