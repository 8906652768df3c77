package httpserver

import (
	"html/template"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"espetinho/internal/usecase"
)

type Server struct {
	mux      *http.ServeMux
	tmpl     *template.Template
	accounts *usecase.AccountUC
	catalog  *usecase.CatalogUC
	orders   *usecase.OrderUC

	sessionKey []byte
}

func New(t *template.Template, accounts *usecase.AccountUC, catalog *usecase.CatalogUC, orders *usecase.OrderUC, sessionKey []byte) http.Handler {
	s := &Server{
		mux:        http.NewServeMux(),
		tmpl:       t,
		accounts:   accounts,
		catalog:    catalog,
		orders:     orders,
		sessionKey: sessionKey,
	}
	s.routes()
	return Chain(s.mux,
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/", s.handleLogin)
	s.mux.HandleFunc("/logout", s.handleLogout)
	s.mux.HandleFunc("/registro", s.handleRegister)
	s.mux.HandleFunc("/health", s.handleHealth)

	s.mux.HandleFunc("/index", s.requireAuth(s.handleIndex))
	s.mux.HandleFunc("/clientes", s.requireAuth(s.handleCustomers))
	s.mux.HandleFunc("/usuarios", s.requireAuth(s.handleUsers))
	s.mux.HandleFunc("/produtos", s.requireAuth(s.handleProducts))
	s.mux.HandleFunc("/bebidas", s.requireAuth(s.handleDrinks))
	s.mux.HandleFunc("/pedidos", s.requireAuth(s.handleOrders))
	s.mux.HandleFunc("/pedidos/export", s.requireAuth(s.handleOrdersExport))
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Flash"]; !ok {
		if f := popFlash(w, r); f != nil {
			data["Flash"] = f
		}
	}
	if _, ok := data["User"]; !ok {
		if u := userFrom(r.Context()); u != nil {
			data["User"] = u
		}
	}
	if _, ok := data["Year"]; !ok {
		data["Year"] = time.Now().Year()
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Error().Err(err).Str("tpl", name).Msg("render")
		http.Error(w, "tpl", 500)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "index.html", map[string]any{"ShowMenu": true})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
