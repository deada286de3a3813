package main

import (
	"context"
	"net/http"
	"time"

	"pet-adoption-api/internal/adapters/auth/jwt"
	pg "pet-adoption-api/internal/adapters/storage/postgres"
	"pet-adoption-api/internal/platform/config"
	"pet-adoption-api/internal/platform/logger"
	"pet-adoption-api/internal/router"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("pet-adoption-api", "development", "info")
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	logger.Init("pet-adoption-api", cfg.Env, cfg.LogLevel)

	opts := router.Options{Seed: cfg.Seed}

	if cfg.DBDSN != "" {
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := pg.Migrate(ctx, db); err != nil {
			cancel()
			log.Fatal().Err(err).Msg("migration failed")
		}
		cancel()

		opts.DB = db
		log.Info().Msg("using postgres storage")
	} else {
		log.Info().Bool("seed", cfg.Seed).Msg("using in-memory storage")
	}

	tokens := jwt.New(cfg.JWTSecret, cfg.TokenTTL)
	opts.Issuer = tokens
	opts.Verifier = tokens

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
}
