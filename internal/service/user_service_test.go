package service

import (
	"context"
	"testing"
	"yatube/internal/api/dto"
	"yatube/internal/pkg/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	e := newTestEnv(t)

	user, err := e.users.Register(context.Background(), &dto.RegisterDTO{
		Username: "leo",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "leo", user.Username)
	assert.NotZero(t, user.ID)

	token, err := e.users.Login(context.Background(), &dto.CredentialDTO{
		Username: "leo",
		Password: "secret-password",
	})
	require.NoError(t, err)

	claims, err := security.ValidateToken(token.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "leo", claims.Username)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.users.Register(context.Background(), &dto.RegisterDTO{Username: "leo", Password: "secret-password"})
	require.NoError(t, err)

	_, err = e.users.Register(context.Background(), &dto.RegisterDTO{Username: "leo", Password: "another-password"})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.users.Register(context.Background(), &dto.RegisterDTO{Username: "leo", Password: "secret-password"})
	require.NoError(t, err)

	_, err = e.users.Login(context.Background(), &dto.CredentialDTO{Username: "leo", Password: "wrong"})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)

	_, err = e.users.Login(context.Background(), &dto.CredentialDTO{Username: "ghost", Password: "secret-password"})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)
}

func TestPasswordNotStoredInPlaintext(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.users.Register(context.Background(), &dto.RegisterDTO{Username: "leo", Password: "secret-password"})
	require.NoError(t, err)

	stored, err := e.userRepo.GetUserByUsername(context.Background(), "leo")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-password", stored.Password)
	assert.NoError(t, security.CheckPasswordHash("secret-password", stored.Password))
}
