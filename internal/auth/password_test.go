package auth_test

import (
	"testing"

	"github.com/quillhq/quill/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := auth.HashPassword("password")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "password", hash)

	t.Run("hashes are salted", func(t *testing.T) {
		other, err := auth.HashPassword("password")
		require.NoError(t, err)
		assert.NotEqual(t, hash, other)
	})
}

func TestCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)

	assert.True(t, auth.CheckPassword("correct-horse", hash))
	assert.False(t, auth.CheckPassword("wrong-horse", hash))
	assert.False(t, auth.CheckPassword("", hash))
	assert.False(t, auth.CheckPassword("correct-horse", "not-a-hash"))
}
