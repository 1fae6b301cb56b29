package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateUsername(t *testing.T) {
	pattern := regexp.MustCompile(`^user-[0-9a-z]{8}$`)
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		u := GenerateUsername()
		assert.Regexp(t, pattern, u)
		seen[u] = struct{}{}
	}
	assert.Greater(t, len(seen), 95)
}

func TestHashRefreshToken(t *testing.T) {
	a := HashRefreshToken("token-a")
	assert.Len(t, a, 64)
	assert.Equal(t, a, HashRefreshToken("token-a"))
	assert.NotEqual(t, a, HashRefreshToken("token-b"))
}
