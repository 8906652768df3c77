package domain

import "context"

// SortOrder selects how catalog listings come back: id descending for
// the registration tables, name ascending for selection lists.
type SortOrder int

const (
	ByIDDesc SortOrder = iota
	ByNameAsc
)

type UserRepo interface {
	Create(ctx context.Context, u *User) error
	FindByLogin(ctx context.Context, login string) (*User, error)
	List(ctx context.Context) ([]User, error)
}

type CustomerRepo interface {
	Create(ctx context.Context, c *Customer) error
	FindByID(ctx context.Context, id uint) (*Customer, error)
	List(ctx context.Context, sort SortOrder) ([]Customer, error)
}

type ProductRepo interface {
	Create(ctx context.Context, p *Product) error
	FindByID(ctx context.Context, id uint) (*Product, error)
	List(ctx context.Context, sort SortOrder) ([]Product, error)
}

type DrinkRepo interface {
	Create(ctx context.Context, d *Drink) error
	FindByID(ctx context.Context, id uint) (*Drink, error)
	List(ctx context.Context, sort SortOrder) ([]Drink, error)
}

type OrderRepo interface {
	// CreateWithItems persists the header and every item in one
	// transaction; on failure nothing is left behind.
	CreateWithItems(ctx context.Context, o *Order, items []OrderItem) error
	// List returns orders newest first with items preloaded.
	List(ctx context.Context) ([]Order, error)
}
