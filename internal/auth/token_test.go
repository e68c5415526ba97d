package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/bistro-service/internal/domain"
)

func TestGenerateAndParseToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	token, expiresAt, err := tm.GenerateToken("a@x.com", nil)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Nil(t, claims.Role)
}

func TestParseTokenWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-one", 60)
	verifier := NewTokenManager("secret-two", 60)

	token, _, err := issuer.GenerateToken("a@x.com", nil)
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	tm := &TokenManager{secret: []byte("test-secret"), ttl: -time.Minute}

	token, _, err := tm.GenerateToken("a@x.com", nil)
	require.NoError(t, err)

	verifier := NewTokenManager("test-secret", 60)
	_, err = verifier.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenMalformed(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := tm.ParseToken(token)
		assert.Error(t, err, "token %q should not parse", token)
	}
}

func TestGenerateTokenCarriesRoleClaim(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	role := domain.RoleAdmin
	token, _, err := tm.GenerateToken("a@x.com", &role)
	require.NoError(t, err)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	require.NotNil(t, claims.Role)
	assert.Equal(t, domain.RoleAdmin, *claims.Role)
}

func TestRepeatedIssuanceKeepsSubject(t *testing.T) {
	short := NewTokenManager("test-secret", 30)
	long := NewTokenManager("test-secret", 120)

	first, firstExp, err := short.GenerateToken("a@x.com", nil)
	require.NoError(t, err)
	second, secondExp, err := long.GenerateToken("a@x.com", nil)
	require.NoError(t, err)

	assert.True(t, secondExp.After(firstExp))

	verifier := NewTokenManager("test-secret", 60)
	firstClaims, err := verifier.ParseToken(first)
	require.NoError(t, err)
	secondClaims, err := verifier.ParseToken(second)
	require.NoError(t, err)
	assert.Equal(t, firstClaims.Email, secondClaims.Email)
}
