package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"espetinho/internal/domain"
)

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Create(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProductRepo) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) List(ctx context.Context, sort domain.SortOrder) ([]domain.Product, error) {
	var list []domain.Product
	if err := r.db.WithContext(ctx).Order(orderClause(sort)).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
