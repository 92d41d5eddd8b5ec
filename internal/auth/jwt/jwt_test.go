package jwtauth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wkdev/pacelular-backend/internal/config"
)

func TestGenerateAndParseToken(t *testing.T) {
	tm := NewTokenManager(config.JWT{
		Secret:         "test-secret",
		AccessTokenTTL: time.Hour,
	})

	token, err := tm.GenerateToken("wk")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := tm.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, "wk", username)
}

func TestParseExpiredToken(t *testing.T) {
	tm := NewTokenManager(config.JWT{
		Secret:         "test-secret",
		AccessTokenTTL: -time.Minute,
	})

	token, err := tm.GenerateToken("wk")
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenWithWrongSecret(t *testing.T) {
	issuer := NewTokenManager(config.JWT{Secret: "one", AccessTokenTTL: time.Hour})
	verifier := NewTokenManager(config.JWT{Secret: "another", AccessTokenTTL: time.Hour})

	token, err := issuer.GenerateToken("wk")
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}
