package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pyme-api/pkg/jwt"
)

const secret = "clave-de-prueba"

// Lo que se firma es lo que se recupera al validar.
func TestGenerateParse_Roundtrip(t *testing.T) {
	tok, err := jwt.Generate(secret, "u-1", "maria", "manager", "pyme-api", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, username, role, err := jwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
	assert.Equal(t, "maria", username)
	assert.Equal(t, "manager", role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := jwt.Generate(secret, "u-1", "maria", "manager", "pyme-api", 60)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("otra-clave", tok)
	assert.Error(t, err, "un token firmado con otro secreto no debe validar")
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := jwt.Generate(secret, "u-1", "maria", "manager", "pyme-api", -1)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse(secret, tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "u-1", "maria", "manager", "pyme-api", 60)
	assert.Error(t, err)
}
