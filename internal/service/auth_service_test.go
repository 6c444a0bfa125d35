package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestAuthServiceRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testSecret)

	reg, err := svc.Register(context.Background(), "  Alice@Example.COM ", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, "alice@example.com", reg.User.Email)

	stored, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "hunter22", stored.PasswordHash, "passwords are stored hashed")

	login, err := svc.Login(context.Background(), "alice@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)

	claims, err := svc.ValidateToken(login.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, claims.UserID)
}

func TestAuthServiceRegisterValidation(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testSecret)

	_, err := svc.Register(context.Background(), "", "hunter22")
	_, ok := AsValidation(err)
	assert.True(t, ok)

	_, err = svc.Register(context.Background(), "alice@example.com", "")
	_, ok = AsValidation(err)
	assert.True(t, ok)
}

func TestAuthServiceRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testSecret)

	_, err := svc.Register(context.Background(), "alice@example.com", "hunter22")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "ALICE@example.com", "other")
	assert.True(t, errors.Is(err, ErrEmailTaken))
}

func TestAuthServiceLoginInvalidCredentials(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testSecret)

	_, err := svc.Register(context.Background(), "alice@example.com", "hunter22")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "alice@example.com", "wrong")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))

	_, err = svc.Login(context.Background(), "nobody@example.com", "hunter22")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestAuthServiceValidateTokenRejectsTampering(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testSecret)

	token, err := svc.GenerateToken("user-1")
	require.NoError(t, err)

	other := NewAuthService(newFakeUserRepo(), "different-secret")
	_, err = other.ValidateToken(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))

	_, err = svc.ValidateToken("not-a-token")
	assert.True(t, errors.Is(err, ErrInvalidToken))
}
