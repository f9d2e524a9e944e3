package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	tokenStr, err := IssueToken(secret, "u1", "buyer@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	claims, err := ParseToken(secret, tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "buyer@example.com", claims.Email)
}

func TestParseToken_Invalid(t *testing.T) {
	secret := []byte("test-secret")

	t.Run("WrongSecret", func(t *testing.T) {
		tokenStr, err := IssueToken([]byte("other-secret"), "u1", "", time.Hour)
		require.NoError(t, err)

		_, err = ParseToken(secret, tokenStr)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		tokenStr, err := IssueToken(secret, "u1", "", -time.Minute)
		require.NoError(t, err)

		_, err = ParseToken(secret, tokenStr)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := ParseToken(secret, "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("MissingSubject", func(t *testing.T) {
		tokenStr, err := IssueToken(secret, "", "", time.Hour)
		require.NoError(t, err)

		_, err = ParseToken(secret, tokenStr)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
