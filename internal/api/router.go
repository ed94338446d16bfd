package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/armelyara/TraficDay/internal/api/handlers/http/admin"
	"github.com/armelyara/TraficDay/internal/api/handlers/http/public"
	"github.com/armelyara/TraficDay/internal/api/handlers/http/system"
	"github.com/armelyara/TraficDay/internal/config"
	"github.com/armelyara/TraficDay/internal/middleware"
	"github.com/armelyara/TraficDay/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	publicHandler := public.NewHandler(logger, svc.Reporter, svc.Confirmer, svc.Location, svc.Users)
	adminHandler := admin.NewHandler(logger, svc.Admin, svc.Stats, svc.Dispatcher)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, publicHandler, adminHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, publicHandler *public.Handler, adminHandler *admin.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Http.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-API-Key", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(api chi.Router) {
		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKey(cfg.APIKey, logger))
			ar.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			ar.Get("/stats", adminHandler.AdminStats)
			ar.Post("/notify", adminHandler.AdminBroadcast)

			ar.Route("/obstacles", func(or chi.Router) {
				or.Get("/", adminHandler.AdminObstacleList)

				or.Route("/{id}", func(rr chi.Router) {
					rr.Get("/", adminHandler.AdminObstacleGet)
					rr.Delete("/", adminHandler.AdminObstacleDelete)
				})
			})
		})

		// PUBLIC
		api.Route("/obstacles", func(pr chi.Router) {
			pr.Use(middleware.Limit(5, 10, 5*time.Minute, logger))
			pr.Post("/", publicHandler.ObstacleReport)
			pr.Post("/{id}/confirm", publicHandler.ObstacleConfirm)
			pr.Post("/{id}/resolve", publicHandler.ObstacleResolve)
		})

		api.Route("/location", func(pr chi.Router) {
			pr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			pr.Post("/check", publicHandler.LocationCheck)
		})

		api.Route("/users/{id}", func(ur chi.Router) {
			ur.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			ur.Put("/location", publicHandler.UserLocationUpdate)
			ur.Put("/token", publicHandler.UserTokenUpdate)
			ur.Put("/subscription", publicHandler.UserSubscriptionUpdate)
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
