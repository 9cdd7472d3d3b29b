package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("jane@example.com", "secret", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := ParseJWT(token, "secret")
	assert.NoError(t, err)
	assert.Equal(t, "jane@example.com", email)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT("jane@example.com", "secret", time.Hour)
	require.NoError(t, err)

	email, err := ParseJWT(token, "wrong-secret")
	assert.Error(t, err)
	assert.Empty(t, email)
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := GenerateJWT("jane@example.com", "secret", -time.Minute)
	require.NoError(t, err)

	email, err := ParseJWT(token, "secret")
	assert.Error(t, err)
	assert.Empty(t, email)
}

func TestParseJWT_Garbage(t *testing.T) {
	email, err := ParseJWT("definitely.not.a-token", "secret")
	assert.Error(t, err)
	assert.Empty(t, email)
}
