package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("ozgur", testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := GetUsernameFromToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "ozgur", username)
}

func TestGetUsernameFromToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("ozgur", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = GetUsernameFromToken(token, []byte("other-secret"))
	assert.Error(t, err)
}

func TestGetUsernameFromToken_Expired(t *testing.T) {
	token, err := GenerateToken("ozgur", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = GetUsernameFromToken(token, testSecret)
	assert.Error(t, err)
}

func TestGetUsernameFromToken_Garbage(t *testing.T) {
	_, err := GetUsernameFromToken("not.a.token", testSecret)
	assert.Error(t, err)
}

func TestGenerateToken_UniqueIDs(t *testing.T) {
	t1, err := GenerateToken("ozgur", testSecret, time.Hour)
	require.NoError(t, err)
	t2, err := GenerateToken("ozgur", testSecret, time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, t1, t2, "each token carries a fresh jti")
}
