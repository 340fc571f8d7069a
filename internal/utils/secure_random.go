package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateSecureRandomString generates a cryptographically secure random string of the specified byte length,
// then hex encodes it. For example, lengthInBytes=32 will result in a 64-character hex string.
func GenerateSecureRandomString(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// OneTimeTokenBytes is the entropy of registration and password reset secrets.
const OneTimeTokenBytes = 32

// GenerateOneTimeToken returns a fresh secret for the caller and the hash to persist in its place.
func GenerateOneTimeToken() (secret string, hash string, err error) {
	secret, err = GenerateSecureRandomString(OneTimeTokenBytes)
	if err != nil {
		return "", "", err
	}
	return secret, HashToken(secret), nil
}
