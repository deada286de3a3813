package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"

	mem "pet-adoption-api/internal/adapters/storage/memory"
	pg "pet-adoption-api/internal/adapters/storage/postgres"
	"pet-adoption-api/internal/domain/admins"
	"pet-adoption-api/internal/domain/owners"
	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/domain/products"
	"pet-adoption-api/internal/domain/reports"
	"pet-adoption-api/internal/middleware"
	"pet-adoption-api/internal/platform/logger"
	"pet-adoption-api/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Issuer   auth.TokenIssuer
	Verifier auth.TokenVerifier

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Carga datos de muestra en los repos in-memory (dev/demo).
	Seed bool
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(logger.RequestLogger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		petRepo     pets.Repository
		ownerRepo   owners.Repository
		reportRepo  reports.Repository
		adminRepo   admins.Repository
		productRepo products.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		petRepo = pg.NewPetsRepo(db)
		ownerRepo = pg.NewOwnersRepo(db)
		reportRepo = pg.NewReportsRepo(db)
		adminRepo = pg.NewAdminsRepo(db)
		productRepo = pg.NewProductsRepo(db)
	} else {
		petRepo = mem.NewPetRepo()
		ownerRepo = mem.NewOwnerRepo()
		reportRepo = mem.NewReportRepo()
		adminRepo = mem.NewAdminRepo()
		productRepo = mem.NewProductRepo()

		if opts.Seed {
			if err := mem.Seed(context.Background(), petRepo, ownerRepo, reportRepo, adminRepo, productRepo); err != nil {
				log.Warn().Err(err).Msg("seed failed")
			}
		}
	}

	// Services por módulo
	petsSvc := pets.NewService(petRepo)
	ownersSvc := owners.NewService(ownerRepo, opts.Issuer)
	reportsSvc := reports.NewService(reportRepo)
	adminsSvc := admins.NewService(adminRepo, opts.Issuer)
	productsSvc := products.NewService(productRepo)

	r.Route("/api", func(api chi.Router) {
		// Superficie pública
		pets.RegisterRoutes(api, petsSvc)
		owners.RegisterRoutes(api, ownersSvc)
		reports.RegisterRoutes(api, reportsSvc)
		admins.RegisterRoutes(api, adminsSvc)

		// Consola de moderación: todo el subárbol detrás del gate admin.
		api.Route("/admin", func(adm chi.Router) {
			adm.Use(middleware.AdminAuth(opts.Verifier, adminsSvc))

			adm.Get("/dashboard", dashboardHandler(petsSvc, ownersSvc, reportsSvc, productsSvc))

			pets.RegisterAdminRoutes(adm, petsSvc)
			owners.RegisterAdminRoutes(adm, ownersSvc)
			reports.RegisterAdminRoutes(adm, reportsSvc)
			admins.RegisterAdminRoutes(adm, adminsSvc)
			products.RegisterAdminRoutes(adm, productsSvc)
		})
	})

	return r
}
