//	@title			Fotowall Gallery API
//	@version		1.0
//	@description	Photo gallery backend: password-gated uploads to object storage, public listing, soft deletes.
//
//	@host		localhost:8080
//	@BasePath	/api/v1

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"github.com/fotowall/service/internal/config"
	"github.com/fotowall/service/internal/db"
	"github.com/fotowall/service/internal/logger"
	appMiddleware "github.com/fotowall/service/internal/middleware"
	"github.com/fotowall/service/internal/photo"
	"github.com/fotowall/service/internal/storage"

	_ "github.com/fotowall/service/docs/swagger"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := cfg.ValidateCredentials(); err != nil {
		zl.Fatal("invalid configuration", zap.Error(err))
	}

	pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		zl.Fatal("database connection failed", zap.Error(err))
	}
	defer pool.Close()

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		zl.Fatal("database migration failed", zap.Error(err))
	}
	zl.Info("database ready")

	store, err := storage.NewMinioStorage(
		cfg.StorageEndpoint,
		cfg.StorageAccessKey,
		cfg.StorageSecretKey,
		cfg.StorageBucket,
		cfg.StoragePublicBase,
		cfg.StorageUseSSL,
	)
	if err != nil {
		zl.Fatal("object storage init failed", zap.Error(err))
	}

	// Wire dependencies: repository → service → handler
	photoRepo := photo.NewRepository(pool)
	photoSvc := photo.NewService(photoRepo, store, photo.Credentials{
		UploadPasswords: map[photo.Category]string{
			photo.CategoryInterior:    cfg.UploadPasswordInterior,
			photo.CategoryCertificate: cfg.UploadPasswordCertificate,
		},
		DeletePasswords: cfg.DeletePasswords,
	}, zl)
	photoHandler := photo.NewHandler(photoSvc)

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger(zl))
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger UI — available at http://localhost:8080/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/photos", photoHandler.List)
		r.Post("/photos", photoHandler.Upload)
		r.Delete("/photos/{id}", photoHandler.Delete)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		zl.Info("server listening", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zl.Info("shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zl.Fatal("forced shutdown", zap.Error(err))
	}

	zl.Info("server stopped")
}
