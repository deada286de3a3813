package reports

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"pet-adoption-api/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta la entrada pública de denuncias.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/reports", createReportHandler(svc))
}

// RegisterAdminRoutes monta la revisión de denuncias de la consola.
func RegisterAdminRoutes(r chi.Router, svc *Service) {
	r.Route("/reports", func(rr chi.Router) {
		rr.Get("/", listReportsHandler(svc))
		rr.Get("/{reportID}", getReportHandler(svc))
		rr.Put("/{reportID}", updateReportHandler(svc))
	})
}

type createReportRequest struct {
	Type        string `json:"type"`
	Location    string `json:"location"`
	Description string `json:"description"`
	ContactInfo string `json:"contactInfo"`
	Anonymous   bool   `json:"anonymous"`
}

type reportPatch struct {
	Status     *string `json:"status"`
	AdminNotes *string `json:"adminNotes"`
	AssignedTo *string `json:"assignedTo"`
}

type reportResponse struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	ContactInfo *string   `json:"contactInfo"`
	Anonymous   bool      `json:"anonymous"`
	Status      string    `json:"status"`
	AdminNotes  *string   `json:"adminNotes"`
	AssignedTo  *string   `json:"assignedTo"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func createReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createReportRequest
		if !web.DecodeJSON(w, r, &req) {
			return
		}
		rep, err := svc.Create(r.Context(), CreateInput{
			Type:        req.Type,
			Location:    req.Location,
			Description: req.Description,
			ContactInfo: req.ContactInfo,
			Anonymous:   req.Anonymous,
		})
		if err != nil {
			writeReportError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusCreated, toReportResponse(rep))
	}
}

func listReportsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, "Failed to fetch reports")
			return
		}
		out := make([]reportResponse, 0, len(items))
		for _, rep := range items {
			out = append(out, toReportResponse(rep))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

func getReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := reportID(r)
		if !ok {
			web.WriteError(w, http.StatusNotFound, "Report not found")
			return
		}
		rep, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeReportError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toReportResponse(rep))
	}
}

func updateReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := reportID(r)
		if !ok {
			web.WriteError(w, http.StatusNotFound, "Report not found")
			return
		}
		var req reportPatch
		if !web.DecodeJSON(w, r, &req) {
			return
		}
		rep, err := svc.Update(r.Context(), id, UpdateInput{
			Status:     req.Status,
			AdminNotes: req.AdminNotes,
			AssignedTo: req.AssignedTo,
		})
		if err != nil {
			writeReportError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toReportResponse(rep))
	}
}

func reportID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "reportID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func writeReportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		web.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		web.WriteError(w, http.StatusNotFound, "Report not found")
	default:
		web.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}

func toReportResponse(rep Report) reportResponse {
	return reportResponse{
		ID:          rep.ID,
		Type:        rep.Type,
		Location:    rep.Location,
		Description: rep.Description,
		ContactInfo: rep.ContactInfo,
		Anonymous:   rep.Anonymous,
		Status:      string(rep.Status),
		AdminNotes:  rep.AdminNotes,
		AssignedTo:  rep.AssignedTo,
		CreatedAt:   rep.CreatedAt,
		UpdatedAt:   rep.UpdatedAt,
	}
}
