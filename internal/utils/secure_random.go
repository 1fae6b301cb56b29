package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	nanoid "github.com/jaevor/go-nanoid"
)

const (
	usernamePrefix   = "user-"
	usernameAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	usernameLength   = 8
	slugSuffixLength = 6
)

var (
	usernameSuffix = mustGenerator(usernameAlphabet, usernameLength)
	slugSuffix     = mustGenerator(usernameAlphabet, slugSuffixLength)
)

func mustGenerator(alphabet string, length int) func() string {
	gen, err := nanoid.CustomASCII(alphabet, length)
	if err != nil {
		panic(fmt.Sprintf("invalid nanoid generator: %v", err))
	}
	return gen
}

// GenerateUsername returns "user-" followed by 8 random [0-9a-z] characters.
func GenerateUsername() string {
	return usernamePrefix + usernameSuffix()
}

// GenerateSlugSuffix returns 6 random [0-9a-z] characters.
func GenerateSlugSuffix() string {
	return slugSuffix()
}

// GenerateSecureRandomString generates a cryptographically secure random string of the specified byte length,
// then hex encodes it. For example, lengthInBytes=32 will result in a 64-character hex string.
func GenerateSecureRandomString(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
