package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"espetinho/internal/domain"
)

type DrinkRepo struct{ db *gorm.DB }

func NewDrinkRepo(db *gorm.DB) *DrinkRepo { return &DrinkRepo{db: db} }

func (r *DrinkRepo) Create(ctx context.Context, d *domain.Drink) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DrinkRepo) FindByID(ctx context.Context, id uint) (*domain.Drink, error) {
	var d domain.Drink
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *DrinkRepo) List(ctx context.Context, sort domain.SortOrder) ([]domain.Drink, error) {
	var list []domain.Drink
	if err := r.db.WithContext(ctx).Order(orderClause(sort)).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
