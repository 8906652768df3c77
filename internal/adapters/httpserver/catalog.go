package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"espetinho/internal/domain"
	"espetinho/internal/usecase"
)

func (s *Server) handleCustomers(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "form", http.StatusBadRequest)
			return
		}
		in := usecase.CustomerInput{
			Name:  r.PostFormValue("nome"),
			CPF:   r.PostFormValue("cpf"),
			Email: r.PostFormValue("email"),
			Phone: r.PostFormValue("telefone"),
		}
		_, err := s.catalog.CreateCustomer(r.Context(), in)
		switch {
		case errors.Is(err, domain.ErrValidation):
			setFlash(w, "danger", "Informe o nome do cliente.")
		case errors.Is(err, domain.ErrDuplicateCPF):
			setFlash(w, "warning", "CPF já cadastrado.")
		case err != nil:
			setFlash(w, "danger", "Erro ao cadastrar cliente.")
		default:
			setFlash(w, "success", "Cliente cadastrado.")
		}
		http.Redirect(w, r, "/clientes", http.StatusFound)
		return
	}

	customers, err := s.catalog.ListCustomers(r.Context(), domain.ByIDDesc)
	if err != nil {
		http.Error(w, "err", http.StatusInternalServerError)
		return
	}
	s.render(w, r, "clientes.html", map[string]any{"ShowMenu": true, "Customers": customers})
}

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "form", http.StatusBadRequest)
			return
		}
		in := usecase.RegisterInput{
			Login:    r.PostFormValue("login"),
			Password: r.PostFormValue("password"),
		}
		_, err := s.accounts.Register(r.Context(), in)
		switch {
		case errors.Is(err, domain.ErrValidation):
			setFlash(w, "danger", "Informe login e senha.")
		case errors.Is(err, domain.ErrDuplicateLogin):
			setFlash(w, "warning", "Login já utilizado.")
		case err != nil:
			setFlash(w, "danger", "Erro ao cadastrar usuário.")
		default:
			setFlash(w, "success", "Usuário cadastrado.")
		}
		http.Redirect(w, r, "/usuarios", http.StatusFound)
		return
	}

	users, err := s.accounts.List(r.Context())
	if err != nil {
		http.Error(w, "err", http.StatusInternalServerError)
		return
	}
	s.render(w, r, "usuarios.html", map[string]any{"ShowMenu": true, "Users": users})
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "form", http.StatusBadRequest)
			return
		}
		name := strings.TrimSpace(r.PostFormValue("nome"))
		rawPrice := strings.TrimSpace(r.PostFormValue("preco"))
		if name == "" || rawPrice == "" {
			setFlash(w, "danger", "Informe nome e preço do espetinho.")
			http.Redirect(w, r, "/produtos", http.StatusFound)
			return
		}
		price, err := strconv.ParseFloat(rawPrice, 64)
		if err != nil {
			setFlash(w, "danger", "Preço inválido.")
			http.Redirect(w, r, "/produtos", http.StatusFound)
			return
		}
		_, err = s.catalog.CreateProduct(r.Context(), usecase.ProductInput{Name: name, Price: price})
		switch {
		case errors.Is(err, domain.ErrValidation):
			setFlash(w, "danger", "Preço inválido.")
		case err != nil:
			setFlash(w, "danger", "Erro ao cadastrar espetinho.")
		default:
			setFlash(w, "success", "Espetinho cadastrado.")
		}
		http.Redirect(w, r, "/produtos", http.StatusFound)
		return
	}

	products, err := s.catalog.ListProducts(r.Context(), domain.ByIDDesc)
	if err != nil {
		http.Error(w, "err", http.StatusInternalServerError)
		return
	}
	s.render(w, r, "produtos.html", map[string]any{"ShowMenu": true, "Products": products})
}

func (s *Server) handleDrinks(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "form", http.StatusBadRequest)
			return
		}
		name := strings.TrimSpace(r.PostFormValue("nome"))
		size := r.PostFormValue("tamanho")
		rawPrice := strings.TrimSpace(r.PostFormValue("preco"))
		if name == "" || rawPrice == "" {
			setFlash(w, "danger", "Informe nome e preço da bebida.")
			http.Redirect(w, r, "/bebidas", http.StatusFound)
			return
		}
		price, err := strconv.ParseFloat(rawPrice, 64)
		if err != nil {
			setFlash(w, "danger", "Preço inválido.")
			http.Redirect(w, r, "/bebidas", http.StatusFound)
			return
		}
		_, err = s.catalog.CreateDrink(r.Context(), usecase.DrinkInput{Name: name, Size: size, Price: price})
		switch {
		case errors.Is(err, domain.ErrValidation):
			setFlash(w, "danger", "Preço inválido.")
		case err != nil:
			setFlash(w, "danger", "Erro ao cadastrar bebida.")
		default:
			setFlash(w, "success", "Bebida cadastrada.")
		}
		http.Redirect(w, r, "/bebidas", http.StatusFound)
		return
	}

	drinks, err := s.catalog.ListDrinks(r.Context(), domain.ByIDDesc)
	if err != nil {
		http.Error(w, "err", http.StatusInternalServerError)
		return
	}
	s.render(w, r, "bebidas.html", map[string]any{"ShowMenu": true, "Drinks": drinks})
}
