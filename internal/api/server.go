package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/netip"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/Raikadier/Captus-sub001/internal/service"
	"github.com/Raikadier/Captus-sub001/pkg/httputil"
)

const (
	defaultRateLimitRPS   = 5
	defaultRateLimitBurst = 30
	shutdownTimeout       = 10 * time.Second
)

type Server struct {
	mx           *chi.Mux
	userService  service.UserServiceI
	statsService service.StatisticsServiceI
	jwtService   JWTServiceI
	limiter      *ipRateLimiter
	metricsAuth  *BasicAuthCredentials

	trustedProxies []netip.Prefix
}

type ServicesList struct {
	UserService       service.UserServiceI
	StatisticsService service.StatisticsServiceI
	JwtService        JWTServiceI
}

// BasicAuthCredentials protect /metrics when set.
type BasicAuthCredentials struct {
	User     string
	Password string
}

type ServerOption func(*Server)

// WithRateLimit sets per client IP limits for /api/v1 routes.
func WithRateLimit(rps float64, burst int) ServerOption {
	return func(s *Server) {
		if rps > 0 && burst > 0 {
			s.limiter = newIPRateLimiter(rate.Limit(rps), burst)
		}
	}
}

// WithTrustedProxies lists the reverse proxies whose X-Forwarded-For is honored.
// Without it the rate limiter keys on the TCP peer address only.
func WithTrustedProxies(prefixes []netip.Prefix) ServerOption {
	return func(s *Server) {
		s.trustedProxies = prefixes
	}
}

func WithMetricsAuth(user, password string) ServerOption {
	return func(s *Server) {
		if user != "" {
			s.metricsAuth = &BasicAuthCredentials{User: user, Password: password}
		}
	}
}

func New(servicesOptions *ServicesList, opts ...ServerOption) *Server {
	s := &Server{
		mx:           chi.NewMux(),
		userService:  servicesOptions.UserService,
		statsService: servicesOptions.StatisticsService,
		jwtService:   servicesOptions.JwtService,
		limiter:      newIPRateLimiter(defaultRateLimitRPS, defaultRateLimitBurst),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) MountEndpoints() {
	s.mx.Use(s.MonitorMiddleware, s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Get("/healthz", s.Health)
	s.mx.With(s.MetricsAuthMiddleware).Handle("/metrics", promhttp.Handler())
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.RateLimitMiddleware)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.Register)
			r.Post("/login", s.Login)
		})
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Route("/stats", func(r chi.Router) {
				r.Get("/", s.GetStatistics)
				r.Get("/weekly", s.GetWeeklyStats)
				r.Get("/streak", s.GetStreakStats)
				r.Get("/categories", s.GetCategoryStats)
				r.Get("/tasks", s.GetTaskStats)
				r.Get("/motivation", s.GetMotivationalMessage)
				r.Put("/daily-goal", s.UpdateDailyGoal)
				r.Post("/refresh", s.RefreshStatistics)
				r.Post("/check-achievements", s.CheckAchievements)
			})
			r.Route("/achievements", func(r chi.Router) {
				r.Get("/", s.GetAchievements)
				r.Get("/summary", s.GetAchievementsSummary)
			})
		})
	})
	s.mx.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteErrorResponse(w, http.StatusNotFound, "route not found", nil)
	})
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, address string) error {
	s.MountEndpoints()
	srv := &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       time.Minute,
	}
	go s.limiter.cleanupVisitors(ctx, time.Minute, 3*time.Minute)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", address))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	slog.Info("shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	return nil
}
