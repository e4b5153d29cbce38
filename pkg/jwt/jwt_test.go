package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "kyc-api-test"
)

func TestGenerateAndParse_RoundTrip(t *testing.T) {
	tok, err := Generate(testSecret, testUserID, "admin", testIssuer)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "admin", role)
}

func TestParse_TokenExpirado_RetornaErrExpired(t *testing.T) {
	// Token emitido hace más de TokenTTL: firma válida pero vencido.
	tok, err := generateAt(testSecret, testUserID, "user", testIssuer, time.Now().Add(-2*TokenTTL))
	require.NoError(t, err)

	_, _, err = Parse(testSecret, tok)
	assert.ErrorIs(t, err, ErrExpired,
		"un token vencido con firma válida debe clasificarse como expirado, no como inválido")
}

func TestParse_SecretIncorrecto_RetornaErrSignature(t *testing.T) {
	tok, err := Generate(testSecret, testUserID, "user", testIssuer)
	require.NoError(t, err)

	_, _, err = Parse("otro-secret-completamente-distinto", tok)
	assert.ErrorIs(t, err, ErrSignature)
}

func TestParse_TokenBasura_RetornaErrMalformed(t *testing.T) {
	_, _, err := Parse(testSecret, "no.es.un-jwt")
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestGenerate_SecretVacio_Falla(t *testing.T) {
	_, err := Generate("", testUserID, "user", testIssuer)
	assert.Error(t, err)
}

func TestParse_SecretVacio_Falla(t *testing.T) {
	tok, err := Generate(testSecret, testUserID, "user", testIssuer)
	require.NoError(t, err)

	_, _, err = Parse("", tok)
	assert.Error(t, err)
}
