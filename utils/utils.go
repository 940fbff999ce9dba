package utils

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"math/big"
)

const saltChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Sha512String hashes and encodes in hex the result
func Sha512String(s string) string {
	sum := sha512.Sum512([]byte(s))
	return hex.EncodeToString(sum[:])
}

// RandSalt returns a random alphanumeric string of the given size
func RandSalt(size int) string {
	result := make([]byte, size)
	max := big.NewInt(int64(len(saltChars)))
	for i := range result {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err)
		}
		result[i] = saltChars[n.Int64()]
	}
	return string(result)
}
