package pets

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"pet-adoption-api/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta las rutas públicas de pets.
// showcase va antes que {petID} (chi resuelve estático > parámetro igual,
// pero el orden explícito documenta la intención).
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listAdoptableHandler(svc))
		pr.Get("/showcase", listShowcaseHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
	})
}

// RegisterAdminRoutes monta el CRUD de moderación. El router ya aplica
// el middleware de admin sobre este subárbol.
func RegisterAdminRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listAllHandler(svc))
		pr.Post("/", createPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

type petPayload struct {
	Name           string `json:"name"`
	Type           string `json:"type"`
	Breed          string `json:"breed"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	Size           string `json:"size"`
	Description    string `json:"description"`
	ImageURL       string `json:"imageUrl"`
	Status         string `json:"status"`
	IsAdoptable    bool   `json:"isAdoptable"`
	OwnerID        int64  `json:"ownerId"`
	OwnerName      string `json:"ownerName"`
	OwnerAvatarURL string `json:"ownerAvatarUrl"`
	IsRecent       bool   `json:"isRecent"`
	IsFeatured     bool   `json:"isFeatured"`
}

type petPatch struct {
	// Punteros para update parcial real: nil = no tocar.
	Name           *string `json:"name"`
	Type           *string `json:"type"`
	Breed          *string `json:"breed"`
	Age            *int    `json:"age"`
	Gender         *string `json:"gender"`
	Size           *string `json:"size"`
	Description    *string `json:"description"`
	ImageURL       *string `json:"imageUrl"`
	Status         *string `json:"status"`
	IsAdoptable    *bool   `json:"isAdoptable"`
	OwnerID        *int64  `json:"ownerId"`
	OwnerName      *string `json:"ownerName"`
	OwnerAvatarURL *string `json:"ownerAvatarUrl"`
	Likes          *int    `json:"likes"`
	IsRecent       *bool   `json:"isRecent"`
	IsFeatured     *bool   `json:"isFeatured"`
}

type petResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	Breed          string    `json:"breed"`
	Age            int       `json:"age"`
	Gender         string    `json:"gender,omitempty"`
	Size           string    `json:"size,omitempty"`
	Description    string    `json:"description"`
	ImageURL       string    `json:"imageUrl"`
	Status         string    `json:"status"`
	IsAdoptable    bool      `json:"isAdoptable"`
	OwnerID        int64     `json:"ownerId"`
	OwnerName      string    `json:"ownerName"`
	OwnerAvatarURL string    `json:"ownerAvatarUrl"`
	Likes          int       `json:"likes"`
	IsRecent       bool      `json:"isRecent"`
	IsFeatured     bool      `json:"isFeatured"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func listAdoptableHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAdoptable(r.Context())
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, "Failed to fetch pets")
			return
		}
		web.WriteJSON(w, http.StatusOK, toPetResponses(items))
	}
}

func listShowcaseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListShowcase(r.Context())
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, "Failed to fetch showcase pets")
			return
		}
		web.WriteJSON(w, http.StatusOK, toPetResponses(items))
	}
}

func listAllHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, "Failed to fetch pets")
			return
		}
		web.WriteJSON(w, http.StatusOK, toPetResponses(items))
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petID(r)
		if !ok {
			web.WriteError(w, http.StatusNotFound, "Pet not found")
			return
		}
		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writePetError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petPayload
		if !web.DecodeJSON(w, r, &req) {
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:           req.Name,
			Type:           req.Type,
			Breed:          req.Breed,
			Age:            req.Age,
			Gender:         req.Gender,
			Size:           req.Size,
			Description:    req.Description,
			ImageURL:       req.ImageURL,
			Status:         req.Status,
			IsAdoptable:    req.IsAdoptable,
			OwnerID:        req.OwnerID,
			OwnerName:      req.OwnerName,
			OwnerAvatarURL: req.OwnerAvatarURL,
			IsRecent:       req.IsRecent,
			IsFeatured:     req.IsFeatured,
		})
		if err != nil {
			writePetError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petID(r)
		if !ok {
			web.WriteError(w, http.StatusNotFound, "Pet not found")
			return
		}

		var req petPatch
		if !web.DecodeJSON(w, r, &req) {
			return
		}

		updated, err := svc.Update(r.Context(), id, UpdateInput{
			Name:           req.Name,
			Type:           req.Type,
			Breed:          req.Breed,
			Age:            req.Age,
			Gender:         req.Gender,
			Size:           req.Size,
			Description:    req.Description,
			ImageURL:       req.ImageURL,
			Status:         req.Status,
			IsAdoptable:    req.IsAdoptable,
			OwnerID:        req.OwnerID,
			OwnerName:      req.OwnerName,
			OwnerAvatarURL: req.OwnerAvatarURL,
			Likes:          req.Likes,
			IsRecent:       req.IsRecent,
			IsFeatured:     req.IsFeatured,
		})
		if err != nil {
			writePetError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toPetResponse(updated))
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petID(r)
		if !ok {
			web.WriteError(w, http.StatusNotFound, "Pet not found")
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			writePetError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, map[string]string{"message": "Pet deleted successfully"})
	}
}

func petID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func writePetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		web.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		web.WriteError(w, http.StatusNotFound, "Pet not found")
	default:
		web.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:             p.ID,
		Name:           p.Name,
		Type:           string(p.Type),
		Breed:          p.Breed,
		Age:            p.Age,
		Gender:         string(p.Gender),
		Size:           string(p.Size),
		Description:    p.Description,
		ImageURL:       p.ImageURL,
		Status:         string(p.Status),
		IsAdoptable:    p.IsAdoptable,
		OwnerID:        p.OwnerID,
		OwnerName:      p.OwnerName,
		OwnerAvatarURL: p.OwnerAvatarURL,
		Likes:          p.Likes,
		IsRecent:       p.IsRecent,
		IsFeatured:     p.IsFeatured,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toPetResponses(items []Pet) []petResponse {
	out := make([]petResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPetResponse(p))
	}
	return out
}
