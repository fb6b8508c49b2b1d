package password_test

import (
	"testing"

	"residential-hub/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hashed, err := password.Hash("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hashed)

	assert.True(t, password.Verify("password123", hashed))
	assert.False(t, password.Verify("wrong", hashed))
	assert.False(t, password.Verify("", hashed))
}

func TestHashToken(t *testing.T) {
	first := password.HashToken("some-bearer-token")
	second := password.HashToken("some-bearer-token")

	// SHA256 hex: deterministic, 64 chars, distinct inputs diverge.
	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
	assert.NotEqual(t, first, password.HashToken("other-token"))
}
