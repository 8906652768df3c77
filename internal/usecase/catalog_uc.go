package usecase

import (
	"context"
	"fmt"
	"strings"

	"espetinho/internal/domain"
)

// CatalogUC creates and lists customers, skewers and drinks. Catalog
// entries are immutable once created.
type CatalogUC struct {
	Customers domain.CustomerRepo
	Products  domain.ProductRepo
	Drinks    domain.DrinkRepo
}

type CustomerInput struct {
	Name  string `validate:"required"`
	CPF   string
	Email string
	Phone string
}

func (uc *CatalogUC) CreateCustomer(ctx context.Context, in CustomerInput) (*domain.Customer, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: nome obrigatório", domain.ErrValidation)
	}
	c := &domain.Customer{
		Name:  in.Name,
		CPF:   optional(in.CPF),
		Email: optional(in.Email),
		Phone: optional(in.Phone),
	}
	if err := uc.Customers.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

type ProductInput struct {
	Name  string  `validate:"required"`
	Price float64 `validate:"gte=0"`
}

func (uc *CatalogUC) CreateProduct(ctx context.Context, in ProductInput) (*domain.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: nome e preço válidos obrigatórios", domain.ErrValidation)
	}
	p := &domain.Product{Name: in.Name, Price: in.Price}
	if err := uc.Products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

type DrinkInput struct {
	Name  string `validate:"required"`
	Size  string
	Price float64 `validate:"gte=0"`
}

func (uc *CatalogUC) CreateDrink(ctx context.Context, in DrinkInput) (*domain.Drink, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: nome e preço válidos obrigatórios", domain.ErrValidation)
	}
	d := &domain.Drink{Name: in.Name, Size: optional(in.Size), Price: in.Price}
	if err := uc.Drinks.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (uc *CatalogUC) ListCustomers(ctx context.Context, sort domain.SortOrder) ([]domain.Customer, error) {
	return uc.Customers.List(ctx, sort)
}

func (uc *CatalogUC) ListProducts(ctx context.Context, sort domain.SortOrder) ([]domain.Product, error) {
	return uc.Products.List(ctx, sort)
}

func (uc *CatalogUC) ListDrinks(ctx context.Context, sort domain.SortOrder) ([]domain.Drink, error) {
	return uc.Drinks.List(ctx, sort)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
