// Command server boots the incident reporting backend: configuration,
// structured logging, tracing, the SQLite store, the evidence blob store,
// and the Gin HTTP server with graceful shutdown.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/schoolsafe/go-report-backend/internal/blob"
	"github.com/schoolsafe/go-report-backend/internal/config"
	httpapi "github.com/schoolsafe/go-report-backend/internal/http"
	"github.com/schoolsafe/go-report-backend/internal/observability"
	"github.com/schoolsafe/go-report-backend/internal/repo"
	"github.com/schoolsafe/go-report-backend/internal/sysutil"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

// @title           School Incident Reporting API
// @version         1.0
// @description     Anonymous incident reporting with capability-style case ids, evidence uploads, case threads, a community forum, and a support resource directory.
// @BasePath        /api/v1
//
// @securityDefinitions.apikey AdminKey
// @in   header
// @name X-API-Key
func main() {
	// .env is optional; real deployments use the environment directly.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	// APP_VERSION (container builds) wins over the ldflags stamp.
	ver := sysutil.FirstNonEmpty(os.Getenv("APP_VERSION"), version)

	// Logging: zerolog, JSON by default, console writer for local dev.
	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	log.Info().Str("version", ver).Str("gin_mode", cfg.GinMode).Msg("starting server")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Tracing (no-op unless OTEL_ENABLED)
	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, ver)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(sctx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	// Persistence
	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database failed")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}

	// Evidence blob store
	blobs, err := newBlobStore(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Storage.Backend).Msg("blob store init failed")
	}

	if cfg.AdminAPIKey == "" {
		log.Warn().Msg("ADMIN_API_KEY is empty; the authority console is closed")
	}

	// HTTP
	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, db, blobs, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		log.Fatal().Err(err).Msg("server failed")
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	}

	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("stopped")
}

// newBlobStore builds the configured evidence store. The fs backend keeps
// bytes under a local directory; the s3 backend targets a bucket, optionally
// through a custom endpoint for S3-compatible stores.
func newBlobStore(ctx context.Context, cfg config.StorageConfig) (blob.Store, error) {
	switch cfg.Backend {
	case "fs":
		return blob.NewFSStore(cfg.UploadDir)
	case "s3":
		return blob.NewS3Store(ctx, cfg.S3Bucket, cfg.S3Region, cfg.S3Endpoint)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
