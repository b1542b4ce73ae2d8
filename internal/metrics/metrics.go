package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultOK     = "ok"
	ResultFailed = "failed"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)
	RateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
	AuthRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_rejections_total",
			Help: "Total number of unauthorized requests",
		},
		[]string{"reason"},
	)
	StreakEvaluations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stats_streak_evaluations_total",
			Help: "Streak evaluations by result",
		},
		[]string{"result"},
	)
	AchievementsUnlocked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stats_achievements_unlocked_total",
			Help: "Achievements unlocked by achievement id",
		},
		[]string{"achievement"},
	)
	AchievementProgressUpdates = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "stats_achievement_progress_updates_total",
			Help: "Stored progress updates of uncompleted achievements",
		},
	)
	AchievementFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stats_achievement_failures_total",
			Help: "Per-achievement evaluation failures",
		},
		[]string{"achievement"},
	)
	EvaluationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stats_evaluation_duration_seconds",
			Help:    "Duration of engine operations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

var once sync.Once

// Init registers collectors on the default registry. Safe to call more than once.
func Init() {
	once.Do(func() {
		prometheus.MustRegister(
			HTTPRequestsTotal,
			HTTPRequestDuration,
			RateLimited,
			AuthRejections,
			StreakEvaluations,
			AchievementsUnlocked,
			AchievementProgressUpdates,
			AchievementFailures,
			EvaluationDuration,
		)
	})
}
