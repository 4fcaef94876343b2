package jwt_test

import (
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/karibu-groceries/kgl-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "kgl-api-test"
)

func TestGenerateAndParse_WithRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "Manager", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "Manager", role)
}

func TestGenerate_EmptySecret(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, "Manager", testIssuer, 60)
	assert.ErrorIs(t, err, pkgjwt.ErrEmptySecret)
}

func TestGenerate_ZeroExpiryUsesDefault(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "SalesAgent", testIssuer, 0)
	require.NoError(t, err)

	claims := &pkgjwt.Claims{}
	_, _, err = gojwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)
	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, float64(pkgjwt.DefaultExpMinutes), ttl.Minutes())
}

func TestParse_Expired(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "Manager", testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "expired token must be rejected")
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "Manager", testIssuer, 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("another-secret", tok)
	assert.Error(t, err)
}

func TestParse_UnexpectedAlgorithm(t *testing.T) {
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, pkgjwt.Claims{UserID: testUserID, Role: "Manager"}).
		SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}
