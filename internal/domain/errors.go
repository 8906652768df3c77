package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation")
	ErrDuplicateLogin     = errors.New("login already taken")
	ErrDuplicateCPF       = errors.New("cpf already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPersistence        = errors.New("persistence failure")
)
