package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("s3cret")
	require.NoError(t, err)
	h2, err := HashPassword("s3cret")
	require.NoError(t, err)

	// 每次加盐，digest 不同，但都能校验通过
	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPassword("s3cret", h1))
	assert.True(t, CheckPassword("s3cret", h2))
}

func TestCheckPassword_WrongPlaintext(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("right")
	require.NoError(t, err)

	assert.False(t, CheckPassword("wrong", h))
	assert.False(t, CheckPassword("", h))
	assert.False(t, CheckPassword("right", "not-a-bcrypt-digest"))
}

func TestHashPassword_NeverPlaintext(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("plaintext-password")
	require.NoError(t, err)
	assert.False(t, strings.Contains(h, "plaintext-password"))
}

func TestHashPassword_TooLong(t *testing.T) {
	t.Parallel()

	// bcrypt 上限 72 字节
	_, err := HashPassword(strings.Repeat("x", 73))
	assert.Error(t, err)
}
