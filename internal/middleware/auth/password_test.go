package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_OutputDiffersPerCall(t *testing.T) {
	h1, err := HashPassword("password123")
	assert.NoError(t, err)
	h2, err := HashPassword("password123")
	assert.NoError(t, err)

	// bcrypt salts every hash, so two hashes of the same input differ
	assert.NotEqual(t, h1, h2)
	assert.NotEqual(t, "password123", h1)

	// but both still verify against the original plaintext
	assert.NoError(t, VerifyPassword(h1, "password123"))
	assert.NoError(t, VerifyPassword(h2, "password123"))
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	h, err := HashPassword("password123")
	assert.NoError(t, err)

	assert.Error(t, VerifyPassword(h, "password124"))
	assert.Error(t, VerifyPassword(h, ""))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	assert.Error(t, VerifyPassword("not-a-bcrypt-hash", "password123"))
	assert.Error(t, VerifyPassword("", "password123"))
}
