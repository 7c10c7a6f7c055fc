package auth

import (
	"testing"
	"time"

	"portal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCfg = &config.JWTConfig{Secret: "test-secret", Expiry: time.Hour, Issuer: "company-portal"}

func TestTokenRoundTrip(t *testing.T) {
	now := time.Now()
	tok, exp, err := GenerateToken(testCfg, "admin", now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(time.Hour), exp, time.Second)

	sub, err := ParseToken(testCfg, tok)
	require.NoError(t, err)
	assert.Equal(t, "admin", sub)
}

func TestParseTokenRejects(t *testing.T) {
	expired, _, err := GenerateToken(testCfg, "admin", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	otherKey, _, err := GenerateToken(&config.JWTConfig{Secret: "other", Expiry: time.Hour, Issuer: "company-portal"}, "admin", time.Now())
	require.NoError(t, err)

	otherIssuer, _, err := GenerateToken(&config.JWTConfig{Secret: "test-secret", Expiry: time.Hour, Issuer: "elsewhere"}, "admin", time.Now())
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"expired":      expired,
		"wrong key":    otherKey,
		"wrong issuer": otherIssuer,
		"alg none":     none,
		"garbage":      "not.a.token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseToken(testCfg, tok)
			assert.ErrorIs(t, err, errInvalidToken)
		})
	}
}
