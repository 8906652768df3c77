package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"espetinho/internal/domain"
	"espetinho/internal/usecase"
)

func TestAccountRegisterAndAuthenticate(t *testing.T) {
	ucs := newUCs(t)
	ctx := context.Background()

	u, err := ucs.accounts.Register(ctx, usecase.RegisterInput{Login: "maria", Password: "segredo123"})
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.NotEqual(t, "segredo123", u.Password, "password must be stored hashed")

	got, err := ucs.accounts.Authenticate(ctx, "maria", "segredo123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = ucs.accounts.Authenticate(ctx, "maria", "errada")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = ucs.accounts.Authenticate(ctx, "ninguem", "segredo123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAccountRegisterValidation(t *testing.T) {
	ucs := newUCs(t)
	ctx := context.Background()

	_, err := ucs.accounts.Register(ctx, usecase.RegisterInput{Login: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = ucs.accounts.Register(ctx, usecase.RegisterInput{Login: "joao", Password: ""})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = ucs.accounts.Authenticate(ctx, "", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAccountDuplicateLogin(t *testing.T) {
	ucs := newUCs(t)
	ctx := context.Background()

	first, err := ucs.accounts.Register(ctx, usecase.RegisterInput{Login: "maria", Password: "senha1"})
	require.NoError(t, err)

	_, err = ucs.accounts.Register(ctx, usecase.RegisterInput{Login: "maria", Password: "senha2"})
	assert.ErrorIs(t, err, domain.ErrDuplicateLogin)

	// first registration must be untouched, including its password
	got, err := ucs.accounts.Authenticate(ctx, "maria", "senha1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	users, err := ucs.accounts.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAccountListNewestFirst(t *testing.T) {
	ucs := newUCs(t)
	ctx := context.Background()

	for _, login := range []string{"a", "b", "c"} {
		_, err := ucs.accounts.Register(ctx, usecase.RegisterInput{Login: login, Password: "senha"})
		require.NoError(t, err)
	}
	users, err := ucs.accounts.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "c", users[0].Login)
	assert.Equal(t, "a", users[2].Login)
}
