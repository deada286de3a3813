package router

import (
	"net/http"

	"pet-adoption-api/internal/domain/owners"
	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/domain/products"
	"pet-adoption-api/internal/domain/reports"
	"pet-adoption-api/internal/platform/web"
)

// dashboardStats resume el estado del marketplace para la consola.
type dashboardStats struct {
	TotalPets     int `json:"totalPets"`
	AdoptablePets int `json:"adoptablePets"`
	TotalOwners   int `json:"totalOwners"`
	PendingOwners int `json:"pendingOwners"`
	TotalReports  int `json:"totalReports"`
	OpenReports   int `json:"openReports"`
	TotalProducts int `json:"totalProducts"`
}

func dashboardHandler(
	petsSvc *pets.Service,
	ownersSvc *owners.Service,
	reportsSvc *reports.Service,
	productsSvc *products.Service,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		allPets, err := petsSvc.ListAll(ctx)
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, "Failed to fetch dashboard stats")
			return
		}
		allOwners, err := ownersSvc.ListAll(ctx)
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, "Failed to fetch dashboard stats")
			return
		}
		allReports, err := reportsSvc.ListAll(ctx)
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, "Failed to fetch dashboard stats")
			return
		}
		allProducts, err := productsSvc.ListAll(ctx)
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, "Failed to fetch dashboard stats")
			return
		}

		stats := dashboardStats{
			TotalPets:     len(allPets),
			TotalOwners:   len(allOwners),
			TotalReports:  len(allReports),
			TotalProducts: len(allProducts),
		}
		for _, p := range allPets {
			if p.IsAdoptable {
				stats.AdoptablePets++
			}
		}
		for _, o := range allOwners {
			if !o.IsApproved {
				stats.PendingOwners++
			}
		}
		for _, rep := range allReports {
			if rep.Status == reports.StatusSubmitted || rep.Status == reports.StatusInvestigating {
				stats.OpenReports++
			}
		}

		web.WriteJSON(w, http.StatusOK, stats)
	}
}
