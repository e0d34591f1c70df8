package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	password := "Secret1!"

	hash, err := HashPassword(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, CheckPasswordHash(password, hash))
}

func TestHashPassword_SaltIsRandom(t *testing.T) {
	password := "Secret1!"

	hash1, err := HashPassword(password)
	assert.NoError(t, err)
	hash2, err := HashPassword(password)
	assert.NoError(t, err)

	// Two hashes of the same input differ because of the salt
	assert.NotEqual(t, hash1, hash2)
	assert.True(t, CheckPasswordHash(password, hash1))
	assert.True(t, CheckPasswordHash(password, hash2))
}

func TestCheckPasswordHash(t *testing.T) {
	password := "Secret1!"

	hash, err := HashPassword(password)
	assert.NoError(t, err)

	// Correct password
	assert.True(t, CheckPasswordHash(password, hash))

	// Wrong password is false, not an error
	assert.False(t, CheckPasswordHash("Wrong1!pass", hash))

	// Empty password
	assert.False(t, CheckPasswordHash("", hash))

	// Garbage hash
	assert.False(t, CheckPasswordHash(password, "not-a-hash"))
}
