package utils

import (
	"fmt"
	"math/rand"
)

func GenerateRandomToken(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	token := make([]byte, length)
	for i := range token {
		token[i] = charset[rand.Intn(len(charset))]
	}
	return string(token)
}

// GenerateMFACode returns a zero-padded 6-digit code.
func GenerateMFACode() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}
