package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/construstock/pkg/jwt"
)

const testSecret = "secreto-de-prueba"

func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := jwt.Generate(testSecret, 42, "maria", "manager", "construstock", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, username, role, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "maria", username)
	assert.Equal(t, "manager", role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate(testSecret, 1, "admin", "admin", "construstock", 60)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("otro-secreto", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate(testSecret, 1, "admin", "admin", "construstock", -5)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse(testSecret, token)
	assert.Error(t, err)
}

func TestParse_TokenBasura(t *testing.T) {
	_, _, _, err := jwt.Parse(testSecret, "no.es.un-jwt")
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", 1, "admin", "admin", "construstock", 60)
	assert.Error(t, err)
}
