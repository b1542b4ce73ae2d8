package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/Raikadier/Captus-sub001/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type UserServiceI interface {
	// Validates user's credentials, creates user together with default statistics. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type StatisticsServiceI interface {
	// Credits or resets the daily streak, then evaluates achievements
	EvaluateStreak(ctx context.Context, uid uuid.UUID) error
	// Recounts task totals and favourite category, then evaluates achievements
	RefreshAggregates(ctx context.Context, uid uuid.UUID) error
	EvaluateAchievements(ctx context.Context, uid uuid.UUID) (*EvaluationReport, error)
	// Validates and stores the goal, then re-checks the streak
	UpdateDailyGoal(ctx context.Context, uid uuid.UUID, goal int) error

	GetStatistics(ctx context.Context, uid uuid.UUID) (*entity.StatisticsOverview, error)
	GetStreakStats(ctx context.Context, uid uuid.UUID) (*entity.StreakStats, error)
	GetWeeklyStats(ctx context.Context, uid uuid.UUID) (*entity.WeeklyStats, error)
	GetCategoryStats(ctx context.Context, uid uuid.UUID) ([]entity.CategoryStats, error)
	// Today's created and completed counts plus a seven day productivity chart
	GetTaskStats(ctx context.Context, uid uuid.UUID) (*entity.TaskStats, error)
	GetMotivationalMessage(ctx context.Context, uid uuid.UUID) (string, error)
	GetAchievementsView(ctx context.Context, uid uuid.UUID) ([]entity.AchievementView, error)
	GetAchievementsSummary(ctx context.Context, uid uuid.UUID) (*entity.AchievementsSummary, error)
}
