package jwt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const secret = "test_secret"

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken(7, "jdoe", "manager", secret, 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAccessToken(token, secret)
	require.NoError(t, err)
	require.Equal(t, uint(7), claims.UserID)
	require.Equal(t, "jdoe", claims.Username)
	require.Equal(t, "manager", claims.Role)
	require.NotEmpty(t, claims.ID)
	require.Equal(t, "tillpoint", claims.Issuer)
}

func TestExpiredToken(t *testing.T) {
	token, err := GenerateAccessToken(7, "jdoe", "manager", secret, -1)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, secret)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTamperedToken(t *testing.T) {
	token, err := GenerateAccessToken(7, "jdoe", "manager", secret, 60)
	require.NoError(t, err)

	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	_, err = ValidateAccessToken(string(tampered), secret)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(7, "jdoe", "cashier", secret, 60)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "other_secret")
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestGarbageToken(t *testing.T) {
	_, err := ValidateAccessToken("not-a-token", secret)
	require.ErrorIs(t, err, ErrTokenInvalid)
}
