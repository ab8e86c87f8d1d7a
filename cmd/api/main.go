package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gym-management/internal/adapters/storage/postgres"
	"gym-management/internal/config"
	"gym-management/internal/domain/auth"
	"gym-management/internal/platform/logger"
	"gym-management/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load() // .env es opcional

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	var db *sql.DB
	if cfg.DatabaseURL != "" {
		db, err = postgres.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("no se pudo conectar a la base de datos")
		}
		defer db.Close()

		if err := postgres.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatal().Err(err).Msg("migraciones fallidas")
		}
		log.Info().Msg("migraciones aplicadas")
	} else {
		log.Warn().Msg("DB_DSN vacío: usando almacenamiento en memoria")
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL())

	r := router.NewRouter(router.Options{
		DB:          db,
		Logger:      log,
		CORSOrigins: cfg.CORSOrigins,
		Tokens:      tokens,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown forzado")
	}
	log.Info().Msg("server detenido")
}
