package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/minio/minio-go/v7"
	authhandler "github.com/wkdev/pacelular-backend/internal/auth/handler"
	jwtauth "github.com/wkdev/pacelular-backend/internal/auth/jwt"
	authservice "github.com/wkdev/pacelular-backend/internal/auth/service"
	cataloghandler "github.com/wkdev/pacelular-backend/internal/catalog/handler"
	catalogservice "github.com/wkdev/pacelular-backend/internal/catalog/service"
	"github.com/wkdev/pacelular-backend/internal/config"
	herohandler "github.com/wkdev/pacelular-backend/internal/hero/handler"
	heroservice "github.com/wkdev/pacelular-backend/internal/hero/service"
	hourshandler "github.com/wkdev/pacelular-backend/internal/hours/handler"
	hoursservice "github.com/wkdev/pacelular-backend/internal/hours/service"
	repairshandler "github.com/wkdev/pacelular-backend/internal/repairs/handler"
	"github.com/wkdev/pacelular-backend/internal/storefront"
	uploadhandler "github.com/wkdev/pacelular-backend/internal/upload/handler"
	uploadservice "github.com/wkdev/pacelular-backend/internal/upload/service"
	minioclient "github.com/wkdev/pacelular-backend/pkg/client/minio"
	pgclient "github.com/wkdev/pacelular-backend/pkg/client/postgresql"
	"github.com/wkdev/pacelular-backend/pkg/keystore"
	filekeystore "github.com/wkdev/pacelular-backend/pkg/keystore/file"
	pgkeystore "github.com/wkdev/pacelular-backend/pkg/keystore/postgresql"
	"go.uber.org/zap"
)

type App struct {
	HTTPServer *http.Server
}

func NewApp(log *zap.Logger, cfg config.Config) *App {
	backend := newKeystore(log, cfg)

	store := storefront.New(backend, log)

	// the store accepts no mutation and writes nothing back until all three
	// slots have resolved
	if err := store.Load(context.TODO()); err != nil {
		log.Fatal("failed to load storefront state", zap.Error(err))
	}

	router := chi.NewRouter()

	router.Use(
		LoggingMiddleware(log),
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.HTTPServer.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
		}),
		middleware.Recoverer,
	)

	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", PingHandler)

		tokenManager := jwtauth.NewTokenManager(cfg.JWT)

		authMiddleware := jwtauth.NewMiddleware(log, tokenManager)

		authService, err := authservice.New(cfg.Admin, tokenManager, log)
		if err != nil {
			log.Fatal(err.Error())
		}

		log.Info("register auth handlers")

		authhandler.New(authService, log).Register(r)

		catalogService := catalogservice.New(store, log)

		log.Info("register catalog handlers")

		cataloghandler.New(catalogService, authMiddleware, log).Register(r)

		heroService := heroservice.New(store, log)

		log.Info("register hero image handlers")

		herohandler.New(heroService, authMiddleware, log).Register(r)

		hoursService := hoursservice.New(store, log)

		log.Info("register business hours handlers")

		hourshandler.New(hoursService, authMiddleware, log).Register(r)

		log.Info("register repair services handlers")

		repairshandler.New().Register(r)

		uploadService := uploadservice.New(newMinioClient(log, cfg), cfg.Minio, log)

		log.Info("register upload handlers")

		uploadhandler.New(uploadService, authMiddleware, log).Register(r)
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		HTTPServer: srv,
	}
}

func newKeystore(log *zap.Logger, cfg config.Config) keystore.Store {
	switch cfg.Storage.Driver {
	case "postgresql":
		pgClient, err := pgclient.NewClient(
			context.TODO(),
			pgclient.Config{
				Username: cfg.PostgreSQL.Username,
				Password: cfg.PostgreSQL.Password,
				Host:     cfg.PostgreSQL.Host,
				Port:     cfg.PostgreSQL.Port,
				Database: cfg.PostgreSQL.Database,
			},
		)
		if err != nil {
			log.Fatal(err.Error())
		}

		return pgkeystore.New(pgClient, log)
	case "file":
		return filekeystore.New(cfg.Storage.Path, log)
	default:
		log.Fatal("unknown storage driver", zap.String("driver", cfg.Storage.Driver))
		return nil
	}
}

func newMinioClient(log *zap.Logger, cfg config.Config) *minio.Client {
	if !cfg.Minio.Enabled {
		return nil
	}

	minioClient, err := minioclient.New(minioclient.Config{
		Endpoint:        cfg.Minio.Endpoint,
		AccessKeyID:     cfg.Minio.AccessKeyID,
		SecretAccessKey: cfg.Minio.SecretAccessKey,
		UseSSL:          cfg.Minio.UseSSL,
	})
	if err != nil {
		log.Fatal(err.Error())
	}

	return minioClient
}

func (a *App) MustRun() {
	if err := a.HTTPServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		panic("failed to start server")
	}
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.HTTPServer.Shutdown(ctx)
}

func LoggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote", r.RemoteAddr),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}
