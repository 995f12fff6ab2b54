package utils

import (
	"os"
	"path/filepath"
	"testing"

	"foodgram-go/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestConfig(t *testing.T) {
	t.Helper()
	yaml := `
app:
  name: foodgram-go-test
jwt:
  secret: unit-test-secret
  expire_hours: 1
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	_, err := config.Load(path)
	require.NoError(t, err)
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("qwerty123")
	require.NoError(t, err)
	assert.NotEqual(t, "qwerty123", hash)

	assert.True(t, VerifyPassword("qwerty123", hash))
	assert.False(t, VerifyPassword("qwerty124", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	loadTestConfig(t)

	token, err := GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "foodgram-go-test", claims.Issuer)
}

func TestParseTokenGarbage(t *testing.T) {
	loadTestConfig(t)

	_, err := ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
