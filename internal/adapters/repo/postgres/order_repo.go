package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"espetinho/internal/domain"
)

type OrderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) *OrderRepo { return &OrderRepo{db: db} }

// CreateWithItems writes the header first so item rows can carry its id,
// all inside one transaction. Any failure rolls the whole order back.
func (r *OrderRepo) CreateWithItems(ctx context.Context, o *domain.Order, items []domain.OrderItem) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = o.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	o.Items = items
	return nil
}

func (r *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	var list []domain.Order
	if err := r.db.WithContext(ctx).Preload("Items").Order("id DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
