package products

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"pet-adoption-api/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

// RegisterAdminRoutes monta el CRUD de productos de la consola.
// No hay superficie pública de productos por ahora.
func RegisterAdminRoutes(r chi.Router, svc *Service) {
	r.Route("/products", func(pr chi.Router) {
		pr.Get("/", listProductsHandler(svc))
		pr.Post("/", createProductHandler(svc))
		pr.Put("/{productID}", updateProductHandler(svc))
		pr.Delete("/{productID}", deleteProductHandler(svc))
	})
}

type productPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	PetType     string `json:"petType"`
	Price       string `json:"price"`
	ImageURL    string `json:"imageUrl"`
	Stock       int    `json:"stock"`
	IsAvailable bool   `json:"isAvailable"`
}

type productPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	PetType     *string `json:"petType"`
	Price       *string `json:"price"`
	ImageURL    *string `json:"imageUrl"`
	Stock       *int    `json:"stock"`
	IsAvailable *bool   `json:"isAvailable"`
}

type productResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	PetType     string    `json:"petType"`
	Price       string    `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	Stock       int       `json:"stock"`
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func listProductsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, "Failed to fetch products")
			return
		}
		out := make([]productResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toProductResponse(p))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

func createProductHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req productPayload
		if !web.DecodeJSON(w, r, &req) {
			return
		}
		p, err := svc.Create(r.Context(), CreateInput{
			Name:        req.Name,
			Description: req.Description,
			Category:    req.Category,
			PetType:     req.PetType,
			Price:       req.Price,
			ImageURL:    req.ImageURL,
			Stock:       req.Stock,
			IsAvailable: req.IsAvailable,
		})
		if err != nil {
			writeProductError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusCreated, toProductResponse(p))
	}
}

func updateProductHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := productID(r)
		if !ok {
			web.WriteError(w, http.StatusNotFound, "Product not found")
			return
		}
		var req productPatch
		if !web.DecodeJSON(w, r, &req) {
			return
		}
		p, err := svc.Update(r.Context(), id, UpdateInput{
			Name:        req.Name,
			Description: req.Description,
			Category:    req.Category,
			PetType:     req.PetType,
			Price:       req.Price,
			ImageURL:    req.ImageURL,
			Stock:       req.Stock,
			IsAvailable: req.IsAvailable,
		})
		if err != nil {
			writeProductError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toProductResponse(p))
	}
}

func deleteProductHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := productID(r)
		if !ok {
			web.WriteError(w, http.StatusNotFound, "Product not found")
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			writeProductError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
	}
}

func productID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func writeProductError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		web.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		web.WriteError(w, http.StatusNotFound, "Product not found")
	default:
		web.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}

func toProductResponse(p Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		PetType:     p.PetType,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		IsAvailable: p.IsAvailable,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
