package httpserver

import (
	"errors"
	"net/http"

	"espetinho/internal/domain"
	"espetinho/internal/usecase"
)

// handleLogin serves the login form and processes submissions. The root
// path doubles as the catch-all, so anything else under it is a 404.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
		s.render(w, r, "login.html", map[string]any{"ShowMenu": false})
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "form", http.StatusBadRequest)
			return
		}
		login := r.PostFormValue("login")
		password := r.PostFormValue("password")
		u, err := s.accounts.Authenticate(r.Context(), login, password)
		switch {
		case errors.Is(err, domain.ErrValidation):
			setFlash(w, "danger", "Informe login e senha.")
			http.Redirect(w, r, "/", http.StatusFound)
		case errors.Is(err, domain.ErrInvalidCredentials):
			setFlash(w, "danger", "Credenciais inválidas.")
			http.Redirect(w, r, "/", http.StatusFound)
		case err != nil:
			setFlash(w, "danger", "Erro ao efetuar login.")
			http.Redirect(w, r, "/", http.StatusFound)
		default:
			s.writeSession(w, r, &sessionUser{ID: u.ID, Login: u.Login})
			setFlash(w, "success", "Login efetuado.")
			http.Redirect(w, r, "/index", http.StatusFound)
		}
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}

// handleLogout clears the session; logging out twice is harmless.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.writeSession(w, r, nil)
	setFlash(w, "success", "Sessão encerrada.")
	http.Redirect(w, r, "/", http.StatusFound)
}

// handleRegister is open self-service registration. It does not log the
// new user in; they are sent to the login form.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.render(w, r, "registro.html", map[string]any{"ShowMenu": false})
	case http.MethodPost:
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
			http.Redirect(w, r, "/registro", http.StatusFound)
		case errors.Is(err, domain.ErrDuplicateLogin):
			setFlash(w, "warning", "Login já utilizado.")
			http.Redirect(w, r, "/registro", http.StatusFound)
		case err != nil:
			setFlash(w, "danger", "Erro ao cadastrar usuário.")
			http.Redirect(w, r, "/registro", http.StatusFound)
		default:
			setFlash(w, "success", "Usuário cadastrado. Faça login.")
			http.Redirect(w, r, "/", http.StatusFound)
		}
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}
