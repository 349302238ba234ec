package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse_ConservaClaims(t *testing.T) {
	token, exp, err := Generate("secret", "sess-1", "user-1", "USER", "storefront", 30)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), exp, 5*time.Second)

	claims, err := Parse("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.ID)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "USER", claims.Role)
	assert.Equal(t, "storefront", claims.Issuer)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, _, err := Generate("secret", "sess-1", "user-1", "USER", "storefront", 30)
	require.NoError(t, err)

	_, err = Parse("otro", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, _, err := Generate("secret", "sess-1", "user-1", "USER", "storefront", -1)
	require.NoError(t, err)

	_, err = Parse("secret", token)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, _, err := Generate("", "sess-1", "user-1", "USER", "storefront", 30)
	assert.Error(t, err)
}
