package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"espetinho/internal/adapters/repo/postgres"
	"espetinho/internal/domain"
	"espetinho/internal/usecase"
)

func seedCustomer(t *testing.T, ucs testUCs, name string) *domain.Customer {
	t.Helper()
	c, err := ucs.catalog.CreateCustomer(context.Background(), usecase.CustomerInput{Name: name})
	require.NoError(t, err)
	return c
}

func TestCreateOrderSkipsInvalidLines(t *testing.T) {
	ucs := newUCs(t)
	ctx := context.Background()

	c := seedCustomer(t, ucs, "Ana")
	p, err := ucs.catalog.CreateProduct(ctx, usecase.ProductInput{Name: "Carne", Price: 10.00})
	require.NoError(t, err)

	o, err := ucs.orders.Create(ctx, c.ID,
		[]usecase.OrderLine{{RefID: p.ID, Qty: 2}},
		[]usecase.OrderLine{{RefID: 99, Qty: 3}}, // no such drink
	)
	require.NoError(t, err)
	require.Len(t, o.Items, 1, "the dangling drink line is dropped silently")

	it := o.Items[0]
	assert.Equal(t, domain.ItemKindProduct, it.Kind)
	assert.Equal(t, p.ID, it.RefID)
	assert.Equal(t, 2, it.Qty)
	assert.Equal(t, 10.00, it.UnitPrice)
	assert.Equal(t, 20.00, it.Total)

	views, err := ucs.orders.ListWithTotals(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, 20.00, views[0].Total)
}

func TestCreateOrderNonPositiveQtySkipped(t *testing.T) {
	ucs := newUCs(t)
	ctx := context.Background()

	c := seedCustomer(t, ucs, "Ana")
	p, err := ucs.catalog.CreateProduct(ctx, usecase.ProductInput{Name: "Carne", Price: 10})
	require.NoError(t, err)

	o, err := ucs.orders.Create(ctx, c.ID,
		[]usecase.OrderLine{{RefID: p.ID, Qty: 0}, {RefID: p.ID, Qty: -3}},
		nil,
	)
	require.NoError(t, err)
	assert.Empty(t, o.Items)
}

func TestCreateOrderEmptyStillCommitsHeader(t *testing.T) {
	ucs := newUCs(t)
	ctx := context.Background()

	c := seedCustomer(t, ucs, "Ana")
	o, err := ucs.orders.Create(ctx, c.ID, nil, nil)
	require.NoError(t, err)
	assert.NotZero(t, o.ID)
	assert.Empty(t, o.Items)

	views, err := ucs.orders.ListWithTotals(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, 0.00, views[0].Total)
	assert.Empty(t, views[0].Products)
	assert.Empty(t, views[0].Drinks)
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	ucs := newUCs(t)

	_, err := ucs.orders.Create(context.Background(), 42, nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	views, err := ucs.orders.ListWithTotals(context.Background())
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestOrderSnapshotSurvivesCatalogPriceIntent(t *testing.T) {
	ucs := newUCs(t)
	ctx := context.Background()

	c := seedCustomer(t, ucs, "Ana")
	d, err := ucs.catalog.CreateDrink(ctx, usecase.DrinkInput{Name: "Suco", Size: "500ml", Price: 8})
	require.NoError(t, err)

	o, err := ucs.orders.Create(ctx, c.ID, nil, []usecase.OrderLine{{RefID: d.ID, Qty: 2}})
	require.NoError(t, err)
	require.Len(t, o.Items, 1)

	it := o.Items[0]
	assert.Equal(t, domain.ItemKindDrink, it.Kind)
	assert.Equal(t, "Suco", it.Name)
	require.NotNil(t, it.Size)
	assert.Equal(t, "500ml", *it.Size)
	assert.Equal(t, 16.00, it.Total)
}

func TestListWithTotalsOrderingAndPartition(t *testing.T) {
	ucs := newUCs(t)
	ctx := context.Background()

	c := seedCustomer(t, ucs, "Ana")
	p, err := ucs.catalog.CreateProduct(ctx, usecase.ProductInput{Name: "Carne", Price: 10})
	require.NoError(t, err)
	d, err := ucs.catalog.CreateDrink(ctx, usecase.DrinkInput{Name: "Suco", Price: 5})
	require.NoError(t, err)

	first, err := ucs.orders.Create(ctx, c.ID, []usecase.OrderLine{{RefID: p.ID, Qty: 1}}, nil)
	require.NoError(t, err)
	second, err := ucs.orders.Create(ctx, c.ID,
		[]usecase.OrderLine{{RefID: p.ID, Qty: 2}},
		[]usecase.OrderLine{{RefID: d.ID, Qty: 3}},
	)
	require.NoError(t, err)

	views, err := ucs.orders.ListWithTotals(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)

	// newest first
	assert.Equal(t, second.ID, views[0].ID)
	assert.Equal(t, first.ID, views[1].ID)
	assert.Equal(t, "Ana", views[0].CustomerName)

	assert.Len(t, views[0].Products, 1)
	assert.Len(t, views[0].Drinks, 1)
	assert.Equal(t, 35.00, views[0].Total)
	assert.Equal(t, 10.00, views[1].Total)

	// aggregation invariant: total is exactly the sum of item totals
	for _, v := range views {
		var sum float64
		for _, it := range v.Products {
			sum += it.Total
		}
		for _, it := range v.Drinks {
			sum += it.Total
		}
		assert.Equal(t, sum, v.Total)
	}
}

func TestListWithTotalsOrphanedCustomer(t *testing.T) {
	db := newTestDB(t)
	orderRepo := postgres.NewOrderRepo(db)
	uc := &usecase.OrderUC{
		Orders:    orderRepo,
		Customers: postgres.NewCustomerRepo(db),
		Products:  postgres.NewProductRepo(db),
		Drinks:    postgres.NewDrinkRepo(db),
	}

	// header pointing at a customer that was never created
	o := &domain.Order{CustomerID: 999}
	require.NoError(t, orderRepo.CreateWithItems(context.Background(), o, nil))

	views, err := uc.ListWithTotals(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "-", views[0].CustomerName)
}
