package usecase_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"espetinho/internal/adapters/repo/postgres"
	"espetinho/internal/domain"
	"espetinho/internal/usecase"
)

// newTestDB opens a fresh in-memory database per test. The unique name
// keeps parallel tests from sharing state through sqlite's cache.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Customer{},
		&domain.Product{},
		&domain.Drink{},
		&domain.Order{},
		&domain.OrderItem{},
	))
	return db
}

type testUCs struct {
	accounts *usecase.AccountUC
	catalog  *usecase.CatalogUC
	orders   *usecase.OrderUC
}

func newUCs(t *testing.T) testUCs {
	t.Helper()
	db := newTestDB(t)
	userRepo := postgres.NewUserRepo(db)
	custRepo := postgres.NewCustomerRepo(db)
	prodRepo := postgres.NewProductRepo(db)
	drinkRepo := postgres.NewDrinkRepo(db)
	orderRepo := postgres.NewOrderRepo(db)
	return testUCs{
		accounts: &usecase.AccountUC{Users: userRepo},
		catalog:  &usecase.CatalogUC{Customers: custRepo, Products: prodRepo, Drinks: drinkRepo},
		orders: &usecase.OrderUC{
			Orders:    orderRepo,
			Customers: custRepo,
			Products:  prodRepo,
			Drinks:    drinkRepo,
		},
	}
}
