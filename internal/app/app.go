package app

import (
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"espetinho/internal/adapters/httpserver"
	"espetinho/internal/adapters/repo/postgres"
	"espetinho/internal/config"
	"espetinho/internal/domain"
	"espetinho/internal/usecase"
	"espetinho/internal/views"
	"espetinho/pkg/rabbitmq"
)

type App struct {
	DB       *gorm.DB
	Tmpl     *template.Template
	Accounts *usecase.AccountUC
	Catalog  *usecase.CatalogUC
	Orders   *usecase.OrderUC
	Events   *rabbitmq.Client

	cfg config.Config
}

func New(db *gorm.DB, cfg config.Config) (*App, error) {
	userRepo := postgres.NewUserRepo(db)
	custRepo := postgres.NewCustomerRepo(db)
	prodRepo := postgres.NewProductRepo(db)
	drinkRepo := postgres.NewDrinkRepo(db)
	orderRepo := postgres.NewOrderRepo(db)

	// Order events are optional; a missing broker must not keep the
	// shop from taking orders.
	var events *rabbitmq.Client
	if cfg.RabbitURL != "" {
		var err error
		events, err = rabbitmq.Dial(cfg.RabbitURL)
		if err != nil {
			log.Warn().Err(err).Msg("rabbitmq unavailable, order events disabled")
			events = nil
		}
	}

	funcMap := template.FuncMap{
		"seq": func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = i
			}
			return out
		},
	}
	tmpl, err := template.New("layout").Funcs(funcMap).ParseFS(views.FS, "*.html")
	if err != nil {
		return nil, err
	}

	a := &App{DB: db, Tmpl: tmpl, Events: events, cfg: cfg}
	a.Accounts = &usecase.AccountUC{Users: userRepo}
	a.Catalog = &usecase.CatalogUC{Customers: custRepo, Products: prodRepo, Drinks: drinkRepo}
	a.Orders = &usecase.OrderUC{
		Orders:    orderRepo,
		Customers: custRepo,
		Products:  prodRepo,
		Drinks:    drinkRepo,
		Events:    events,
	}
	return a, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.Tmpl, a.Accounts, a.Catalog, a.Orders, []byte(a.cfg.SessionKey))
}

func (a *App) Migrate() error {
	return a.DB.AutoMigrate(
		&domain.User{},
		&domain.Customer{},
		&domain.Product{},
		&domain.Drink{},
		&domain.Order{},
		&domain.OrderItem{},
	)
}

func (a *App) Close() {
	if a.Events != nil {
		_ = a.Events.Close()
	}
}
