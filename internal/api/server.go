package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/habitquest/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	SessionCookie   = "SESSION"
	shutdownTimeout = 10 * time.Second
)

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	catalogService     service.CatalogServiceI
	userHabitsService  service.UserHabitsServiceI
	completionsService service.CompletionsServiceI
	jwtService         JWTServiceI
	registry           *prometheus.Registry
	metrics            *Metrics
	loginURL           string
}

type ServicesList struct {
	UserService        service.UserServiceI
	CatalogService     service.CatalogServiceI
	UserHabitsService  service.UserHabitsServiceI
	CompletionsService service.CompletionsServiceI
	JwtService         JWTServiceI
	// Where unauthenticated clients are sent to sign in, optional
	LoginURL string
}

func New(servicesOptions *ServicesList) *Server {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		catalogService:     servicesOptions.CatalogService,
		userHabitsService:  servicesOptions.UserHabitsService,
		completionsService: servicesOptions.CompletionsService,
		jwtService:         servicesOptions.JwtService,
		registry:           registry,
		metrics:            NewMetrics(registry),
		loginURL:           servicesOptions.LoginURL,
	}
}

func (s *Server) MountHandlers() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.metrics.Middleware)

	s.mx.Get("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}).ServeHTTP)
	s.mx.Get("/logout", s.Logout)

	s.mx.Route("/api", func(r chi.Router) {
		// Suggestions work for guests too, signed in users get their tracked habits skipped
		r.Group(func(r chi.Router) {
			r.Use(s.OptionalAuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)
			r.Get("/habits", s.Habits)
			r.Get("/habits/daily", s.DailyHabit)
			r.Get("/habits/weekly", s.WeeklyHabit)
		})
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)
			r.Get("/auth/me", s.Me)
			r.Get("/my-habits", s.MyHabits)
			r.Post("/my-habits/{habitId}", s.AcceptHabit)
			r.Delete("/my-habits/{habitId}", s.RemoveHabit)
			r.Post("/my-habits/{habitId}/complete", s.CompleteHabit)
			r.Get("/completions/week", s.WeekCompletions)
		})
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run serves on addr until ctx is done, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	s.MountHandlers()
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	slog.Info("shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("shutting down server error: " + err.Error())
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
