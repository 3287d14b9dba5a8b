package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateTokenID creates a random 128-bit identifier for a signed token
func GenerateTokenID() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
