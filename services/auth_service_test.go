package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*fixture, *AuthService) {
	t.Helper()
	f := newFixture(t)
	return f, NewAuthService(f.userRepo, "test-secret", time.Hour)
}

func TestAuth_RegisterAndLogin(t *testing.T) {
	_, auth := newAuthFixture(t)

	user, err := auth.Register("Owner@Example.com ", "supersecret", "Ada", "Lovelace")
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", user.Email)
	assert.NotEqual(t, "supersecret", user.Password) // stored hashed

	token, logged, err := auth.Login("owner@example.com", "supersecret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, logged.ID)
}

func TestAuth_DuplicateEmail(t *testing.T) {
	_, auth := newAuthFixture(t)

	_, err := auth.Register("owner@example.com", "supersecret", "", "")
	require.NoError(t, err)

	_, err = auth.Register("owner@example.com", "othersecret", "", "")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "email", ve.Field)
}

func TestAuth_BadCredentials(t *testing.T) {
	_, auth := newAuthFixture(t)

	_, err := auth.Register("owner@example.com", "supersecret", "", "")
	require.NoError(t, err)

	_, _, err = auth.Login("owner@example.com", "wrong")
	assert.Error(t, err)

	_, _, err = auth.Login("nobody@example.com", "supersecret")
	assert.Error(t, err)
}

func TestAuth_RegisterValidation(t *testing.T) {
	_, auth := newAuthFixture(t)

	_, err := auth.Register("", "supersecret", "", "")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "email", ve.Field)

	_, err = auth.Register("owner@example.com", "short", "", "")
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "password", ve.Field)
}
