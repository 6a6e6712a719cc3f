package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/panasystem/panasystem-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "panasystem-test"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := pkgjwt.Generate(testSecret, "user-1", "dueña", "admin", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, username, role, err := pkgjwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "dueña", username)
	assert.Equal(t, "admin", role)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	token, err := pkgjwt.Generate(testSecret, "user-1", "dueña", "admin", testIssuer, 60)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret", token)
	assert.Error(t, err, "firma con otro secret debe rechazarse")
}

func TestParse_TokenExpirado(t *testing.T) {
	// Expiración negativa: el token nace vencido.
	token, err := pkgjwt.Generate(testSecret, "user-1", "dueña", "vendedor", testIssuer, -5)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testSecret, token)
	assert.Error(t, err, "token vencido debe rechazarse")
}

func TestParse_BasuraNoEsToken(t *testing.T) {
	_, _, _, err := pkgjwt.Parse(testSecret, "no-es-un-jwt")
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "user-1", "dueña", "admin", testIssuer, 60)
	assert.Error(t, err)

	_, _, _, err = pkgjwt.Parse("", "lo-que-sea")
	assert.Error(t, err)
}
