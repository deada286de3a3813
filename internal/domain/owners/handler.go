package owners

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"pet-adoption-api/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta el directorio público, el registro y el login.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/owners", func(or chi.Router) {
		or.Get("/", listOwnersHandler(svc))
		or.Get("/{ownerID}", getOwnerHandler(svc))
	})
	r.Post("/register/owners", registerOwnerHandler(svc))
	r.Post("/owner/login", loginHandler(svc))
}

// RegisterAdminRoutes monta la gestión de owners de la consola.
func RegisterAdminRoutes(r chi.Router, svc *Service) {
	r.Route("/owners", func(or chi.Router) {
		or.Get("/", listOwnersHandler(svc))
		or.Get("/pending", listPendingHandler(svc))
		or.Post("/", createOwnerHandler(svc))
		or.Put("/{ownerID}", updateOwnerHandler(svc))
		or.Put("/{ownerID}/approve", approveOwnerHandler(svc))
		or.Delete("/{ownerID}", deleteOwnerHandler(svc))
	})
}

type ownerPayload struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Type      string `json:"type"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatarUrl"`
	Password  string `json:"password"`
}

type ownerPatch struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Type      *string `json:"type"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatarUrl"`
	Password  *string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ownerResponse nunca incluye el hash del password.
type ownerResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Type       string    `json:"type"`
	Bio        string    `json:"bio"`
	AvatarURL  string    `json:"avatarUrl"`
	IsApproved bool      `json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type loginResponse struct {
	Token string        `json:"token"`
	Owner ownerResponse `json:"owner"`
}

func listOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, "Failed to fetch owners")
			return
		}
		web.WriteJSON(w, http.StatusOK, toOwnerResponses(items))
	}
}

func listPendingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListPending(r.Context())
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, "Failed to fetch pending owners")
			return
		}
		web.WriteJSON(w, http.StatusOK, toOwnerResponses(items))
	}
}

func getOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := ownerID(r)
		if !ok {
			web.WriteError(w, http.StatusNotFound, "Owner not found")
			return
		}
		o, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeOwnerError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

func registerOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ownerPayload
		if !web.DecodeJSON(w, r, &req) {
			return
		}
		o, err := svc.Register(r.Context(), RegisterInput{
			Name:      req.Name,
			Email:     req.Email,
			Type:      req.Type,
			Bio:       req.Bio,
			AvatarURL: req.AvatarURL,
			Password:  req.Password,
		})
		if err != nil {
			writeOwnerError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusCreated, toOwnerResponse(o))
	}
}

func createOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ownerPayload
		if !web.DecodeJSON(w, r, &req) {
			return
		}
		o, err := svc.Create(r.Context(), RegisterInput{
			Name:      req.Name,
			Email:     req.Email,
			Type:      req.Type,
			Bio:       req.Bio,
			AvatarURL: req.AvatarURL,
			Password:  req.Password,
		})
		if err != nil {
			writeOwnerError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusCreated, toOwnerResponse(o))
	}
}

func updateOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := ownerID(r)
		if !ok {
			web.WriteError(w, http.StatusNotFound, "Owner not found")
			return
		}
		var req ownerPatch
		if !web.DecodeJSON(w, r, &req) {
			return
		}
		o, err := svc.Update(r.Context(), id, UpdateInput{
			Name:      req.Name,
			Email:     req.Email,
			Type:      req.Type,
			Bio:       req.Bio,
			AvatarURL: req.AvatarURL,
			Password:  req.Password,
		})
		if err != nil {
			writeOwnerError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

func approveOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := ownerID(r)
		if !ok {
			web.WriteError(w, http.StatusNotFound, "Owner not found")
			return
		}
		o, err := svc.Approve(r.Context(), id)
		if err != nil {
			writeOwnerError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

func deleteOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := ownerID(r)
		if !ok {
			web.WriteError(w, http.StatusNotFound, "Owner not found")
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			writeOwnerError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, map[string]string{"message": "Owner deleted successfully"})
	}
}

func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if !web.DecodeJSON(w, r, &req) {
			return
		}
		o, token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, ErrBadCredentials) {
				web.WriteError(w, http.StatusUnauthorized, "Invalid email or password")
				return
			}
			web.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}
		web.WriteJSON(w, http.StatusOK, loginResponse{
			Token: token,
			Owner: toOwnerResponse(o),
		})
	}
}

func ownerID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "ownerID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func writeOwnerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		web.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		web.WriteError(w, http.StatusNotFound, "Owner not found")
	default:
		web.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}

func toOwnerResponse(o Owner) ownerResponse {
	return ownerResponse{
		ID:         o.ID,
		Name:       o.Name,
		Email:      o.Email,
		Type:       string(o.Type),
		Bio:        o.Bio,
		AvatarURL:  o.AvatarURL,
		IsApproved: o.IsApproved,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func toOwnerResponses(items []Owner) []ownerResponse {
	out := make([]ownerResponse, 0, len(items))
	for _, o := range items {
		out = append(out, toOwnerResponse(o))
	}
	return out
}
