package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"espetinho/internal/domain"
)

var validate = validator.New()

// AccountUC handles staff registration and authentication.
type AccountUC struct {
	Users domain.UserRepo
}

type RegisterInput struct {
	Login    string `validate:"required,max=50"`
	Password string `validate:"required"`
}

func (uc *AccountUC) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	in.Login = strings.TrimSpace(in.Login)
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: login e senha obrigatórios", domain.ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &domain.User{Login: in.Login, Password: string(hash)}
	if err := uc.Users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate returns the same error for unknown logins and wrong
// passwords so the response doesn't reveal which one it was.
func (uc *AccountUC) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, fmt.Errorf("%w: login e senha obrigatórios", domain.ErrValidation)
	}
	u, err := uc.Users.FindByLogin(ctx, login)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return u, nil
}

func (uc *AccountUC) List(ctx context.Context) ([]domain.User, error) {
	return uc.Users.List(ctx)
}
