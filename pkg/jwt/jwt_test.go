package jwt_test

import (
	"strings"
	"testing"

	pkgjwt "github.com/jhoicas/Empleados-api/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "empleados-api-test"
)

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "ana", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, username, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "ana", username)
}

func TestJWT_TokenExpirado(t *testing.T) {
	// Vigencia negativa: el token nace vencido.
	tok, err := pkgjwt.Generate(testSecret, testUserID, "ana", testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "un token vencido debe rechazarse")
}

func TestJWT_FirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "ana", testIssuer, 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err, "un token firmado con otro secret debe rechazarse")
}

func TestJWT_TokenManipulado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "ana", testIssuer, 60)
	require.NoError(t, err)

	// Alterar el payload invalida la firma.
	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	parts[1] = parts[1][:len(parts[1])-2] + "xx"
	_, _, err = pkgjwt.Parse(testSecret, strings.Join(parts, "."))
	assert.Error(t, err)
}

func TestJWT_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, "ana", testIssuer, 60)
	assert.Error(t, err)

	tok, err := pkgjwt.Generate(testSecret, testUserID, "ana", testIssuer, 60)
	require.NoError(t, err)
	_, _, err = pkgjwt.Parse("", tok)
	assert.Error(t, err)
}
