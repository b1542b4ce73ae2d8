// @title Captus statistics API
// @description Statistics, streaks and achievements of the Captus productivity app
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Raikadier/Captus-sub001/internal/api"
	"github.com/Raikadier/Captus-sub001/internal/metrics"
	"github.com/Raikadier/Captus-sub001/internal/repository"
	"github.com/Raikadier/Captus-sub001/internal/service"
	"github.com/Raikadier/Captus-sub001/pkg/cleanup"
	"github.com/Raikadier/Captus-sub001/pkg/config"
	jwtservice "github.com/Raikadier/Captus-sub001/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	setupLogger(cfg.GetStringOr("LOG_LEVEL", "info"))
	metrics.Init()

	loc, err := time.LoadLocation(cfg.GetStringOr("STATS_TIMEZONE", "Local"))
	if err != nil {
		log.Fatal("invalid STATS_TIMEZONE: " + err.Error())
	}
	daySource, err := service.ParseDaySource(cfg.GetString("STREAK_DAY_SOURCE"))
	if err != nil {
		log.Fatal(err)
	}

	trustedProxies, err := api.ParseTrustedProxies(cfg.GetString("TRUSTED_PROXIES"))
	if err != nil {
		log.Fatal(err)
	}

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool := repository.NewPool(&dbCfg)

	userService := service.NewUserService(repository.NewUsersRepoWithConn(pool))
	statsService := service.NewStatisticsService(
		repository.NewStatisticsRepoWithConn(pool),
		repository.NewTasksRepoWithConn(pool),
		repository.NewSubtasksRepoWithConn(pool),
		repository.NewUserAchievementsRepoWithConn(pool),
		service.WithLocation(loc),
		service.WithDaySource(daySource),
	)
	serv := api.New(&api.ServicesList{
		UserService:       userService,
		StatisticsService: statsService,
		JwtService:        jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", time.Hour)),
	},
		api.WithRateLimit(cfg.GetFloat("RATE_LIMIT_RPS", 5), cfg.GetInt("RATE_LIMIT_BURST", 30)),
		api.WithMetricsAuth(cfg.GetString("METRICS_USER"), cfg.GetString("METRICS_PASS")),
		api.WithTrustedProxies(trustedProxies),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if addr := cfg.GetString("METRICS_ADDRESS"); addr != "" {
		go serveMetrics(ctx, addr)
	}
	slog.Info("statistics engine configured",
		slog.String("timezone", loc.String()), slog.String("day_source", string(daySource)))

	err = serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
	cleanup.CleanUp()
}

func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}

// serveMetrics exposes /metrics on a separate listener, e.g. for an internal scrape port.
func serveMetrics(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	cleanup.Register(&cleanup.Job{
		Name: "closing metrics server",
		F: func() error {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
	slog.Info("metrics server started", slog.String("address", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("metrics server error", slog.String("error", err.Error()))
	}
}
