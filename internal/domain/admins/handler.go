package admins

import (
	"errors"
	"net/http"
	"time"

	"pet-adoption-api/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta el login de la consola (público).
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/admin/login", loginHandler(svc))
}

// RegisterAdminRoutes monta la gestión de admins (requiere sesión admin).
func RegisterAdminRoutes(r chi.Router, svc *Service) {
	r.Route("/admins", func(ar chi.Router) {
		ar.Get("/", listAdminsHandler(svc))
		ar.Post("/", createAdminHandler(svc))
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type createAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// adminResponse nunca incluye el hash del password.
type adminResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type loginResponse struct {
	Token string        `json:"token"`
	Admin adminResponse `json:"admin"`
}

func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if !web.DecodeJSON(w, r, &req) {
			return
		}
		a, token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, ErrBadCredentials) {
				web.WriteError(w, http.StatusUnauthorized, "Invalid username or password")
				return
			}
			web.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}
		web.WriteJSON(w, http.StatusOK, loginResponse{
			Token: token,
			Admin: toAdminResponse(a),
		})
	}
}

func listAdminsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, "Failed to fetch admins")
			return
		}
		out := make([]adminResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAdminResponse(a))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

func createAdminHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAdminRequest
		if !web.DecodeJSON(w, r, &req) {
			return
		}
		a, err := svc.Create(r.Context(), CreateInput{
			Username: req.Username,
			Password: req.Password,
			Name:     req.Name,
			Email:    req.Email,
			Role:     req.Role,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				web.WriteError(w, http.StatusBadRequest, err.Error())
				return
			}
			web.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}
		web.WriteJSON(w, http.StatusCreated, toAdminResponse(a))
	}
}

func toAdminResponse(a Admin) adminResponse {
	return adminResponse{
		ID:        a.ID,
		Username:  a.Username,
		Name:      a.Name,
		Email:     a.Email,
		Role:      string(a.Role),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
