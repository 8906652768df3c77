package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"espetinho/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		// Concurrent registrations race through the unique index,
		// not application locks.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateLogin
		}
		return err
	}
	return nil
}

func (r *UserRepo) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, "login = ?", login).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	var list []domain.User
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
