package utils_test

import (
	"testing"

	"github.com/mfadel/papertrade/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()
	hash, err := utils.HashPassword("pw1234")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1234", hash)
	assert.True(t, utils.CheckPasswordHash("pw1234", hash))
	assert.False(t, utils.CheckPasswordHash("pw12345", hash))
	assert.False(t, utils.CheckPasswordHash("", hash))
}

func TestCheckPasswordHash_InvalidHash(t *testing.T) {
	t.Parallel()
	assert.False(t, utils.CheckPasswordHash("pw1234", "not-a-bcrypt-hash"))
}
