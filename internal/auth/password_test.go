package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("super_password123")
	assert.NoError(t, err)
	assert.NotEqual(t, "super_password123", hash)

	ok, err := VerifyPassword("super_password123", hash)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("correct-password")
	assert.NoError(t, err)

	ok, err := VerifyPassword("wrong-password", hash)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	ok, err := VerifyPassword("whatever", "not-a-bcrypt-hash")
	assert.ErrorIs(t, err, ErrInvalidHashFormat)
	assert.False(t, ok)
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("same-password")
	assert.NoError(t, err)
	second, err := HashPassword("same-password")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("longer"))
}
