package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"espetinho/internal/domain"
	"espetinho/pkg/rabbitmq"
)

// OrderUC assembles orders from catalog entries and lists them with
// their computed totals.
type OrderUC struct {
	Orders    domain.OrderRepo
	Customers domain.CustomerRepo
	Products  domain.ProductRepo
	Drinks    domain.DrinkRepo

	// Events is optional; when nil no order events are published.
	Events *rabbitmq.Client
}

// OrderLine is a (catalog id, quantity) pair that survived form
// decoding. Lines that fail to parse never reach this type.
type OrderLine struct {
	RefID uint
	Qty   int
}

// Create persists an order for customerID built from the given lines.
// Lines whose catalog row doesn't exist or whose quantity isn't
// positive are skipped without error; an order may legitimately end up
// with zero items. Header and items commit atomically.
func (uc *OrderUC) Create(ctx context.Context, customerID uint, products, drinks []OrderLine) (*domain.Order, error) {
	if _, err := uc.Customers.FindByID(ctx, customerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: cliente inexistente", domain.ErrValidation)
		}
		return nil, err
	}

	var items []domain.OrderItem
	for _, ln := range products {
		if ln.Qty <= 0 {
			continue
		}
		p, err := uc.Products.FindByID(ctx, ln.RefID)
		if err != nil {
			continue
		}
		items = append(items, domain.OrderItem{
			Kind:      domain.ItemKindProduct,
			RefID:     p.ID,
			Name:      p.Name,
			Qty:       ln.Qty,
			UnitPrice: p.Price,
			Total:     p.Price * float64(ln.Qty),
		})
	}
	for _, ln := range drinks {
		if ln.Qty <= 0 {
			continue
		}
		d, err := uc.Drinks.FindByID(ctx, ln.RefID)
		if err != nil {
			continue
		}
		items = append(items, domain.OrderItem{
			Kind:      domain.ItemKindDrink,
			RefID:     d.ID,
			Name:      d.Name,
			Size:      d.Size,
			Qty:       ln.Qty,
			UnitPrice: d.Price,
			Total:     d.Price * float64(ln.Qty),
		})
	}

	o := &domain.Order{CustomerID: customerID}
	if err := uc.Orders.CreateWithItems(ctx, o, items); err != nil {
		return nil, err
	}
	uc.publishCreated(o)
	return o, nil
}

// ListWithTotals returns orders newest first. A missing customer row is
// tolerated and rendered as a placeholder, not an error.
func (uc *OrderUC) ListWithTotals(ctx context.Context) ([]domain.OrderView, error) {
	orders, err := uc.Orders.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]domain.OrderView, 0, len(orders))
	for _, o := range orders {
		v := domain.OrderView{ID: o.ID, CustomerName: "-", CreatedAt: o.CreatedAt}
		if c, err := uc.Customers.FindByID(ctx, o.CustomerID); err == nil {
			v.CustomerName = c.Name
		}
		for _, it := range o.Items {
			v.Total += it.Total
			if it.Kind == domain.ItemKindProduct {
				v.Products = append(v.Products, it)
			} else {
				v.Drinks = append(v.Drinks, it)
			}
		}
		views = append(views, v)
	}
	return views, nil
}

// publishCreated is best effort: a broker hiccup must not fail an order
// that already committed.
func (uc *OrderUC) publishCreated(o *domain.Order) {
	if uc.Events == nil {
		return
	}
	var total float64
	for _, it := range o.Items {
		total += it.Total
	}
	event := map[string]any{
		"order_id":    o.ID,
		"customer_id": o.CustomerID,
		"items":       len(o.Items),
		"total":       total,
	}
	if err := uc.Events.PublishOrderCreated(event); err != nil {
		log.Warn().Err(err).Uint("order_id", o.ID).Msg("order event publish failed")
	}
}
