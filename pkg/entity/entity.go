package entity

import (
	"time"

	"github.com/google/uuid"
)

const DefaultDailyGoal = 5

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

// Statistics is the per-user aggregate row maintained by the statistics engine.
type Statistics struct {
	ID               int64      `json:"id"`
	UserID           uuid.UUID  `json:"uid"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          time.Time  `json:"end_date"`
	LastStreakDate   *time.Time `json:"last_streak_date"`
	Streak           int        `json:"streak"`
	BestStreak       int        `json:"best_streak"`
	TotalTasks       int        `json:"total_tasks"`
	CompletedTasks   int        `json:"completed_tasks"`
	DailyGoal        int        `json:"daily_goal"`
	FavoriteCategory *int64     `json:"favorite_category"`
}

// DefaultStatistics returns the row every new user starts with.
func DefaultStatistics(uid uuid.UUID, now time.Time) *Statistics {
	return &Statistics{
		UserID:    uid,
		StartDate: now,
		EndDate:   now,
		DailyGoal: DefaultDailyGoal,
	}
}

type Task struct {
	ID           int64      `json:"id"`
	UserID       uuid.UUID  `json:"uid"`
	CategoryID   *int64     `json:"category_id"`
	PriorityID   int        `json:"priority_id"`
	State        bool       `json:"state"`
	CreationDate time.Time  `json:"creation_date"`
	EndDate      *time.Time `json:"end_date"`
	HasSubtasks  bool       `json:"has_subtasks"`
	ParentID     *int64     `json:"parent_id"`
}

type Subtask struct {
	ID           int64      `json:"id"`
	TaskID       int64      `json:"task_id"`
	State        bool       `json:"state"`
	CreationDate time.Time  `json:"creation_date"`
	EndDate      *time.Time `json:"end_date"`
}

type UserAchievement struct {
	UserID        uuid.UUID  `json:"uid"`
	AchievementID string     `json:"achievement_id"`
	Progress      int        `json:"progress"`
	IsCompleted   bool       `json:"is_completed"`
	UnlockedAt    *time.Time `json:"unlocked_at,omitempty"`
}

// AchievementView merges catalog metadata with the user's progress on it.
type AchievementView struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	Icon               string  `json:"icon"`
	Difficulty         string  `json:"difficulty"`
	Color              string  `json:"color"`
	TargetValue        int     `json:"target_value"`
	CurrentProgress    int     `json:"current_progress"`
	IsCompleted        bool    `json:"is_completed"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

type AchievementsSummary struct {
	TotalAchievements     int `json:"total_achievements"`
	CompletedAchievements int `json:"completed_achievements"`
	CompletionRate        int `json:"completion_rate"`
}

type WeeklyStats struct {
	TotalTasks     int `json:"total_tasks"`
	CompletedTasks int `json:"completed_tasks"`
	CompletionRate int `json:"completion_rate"`
	CurrentStreak  int `json:"current_streak"`
	DailyGoal      int `json:"daily_goal"`
}

type StreakStats struct {
	CurrentStreak  int        `json:"current_streak"`
	BestStreak     int        `json:"best_streak"`
	DailyGoal      int        `json:"daily_goal"`
	LastStreakDate *time.Time `json:"last_streak_date"`
}

type CategoryStats struct {
	CategoryID     int64 `json:"category_id"`
	TotalTasks     int   `json:"total_tasks"`
	CompletedTasks int   `json:"completed_tasks"`
	CompletionRate int   `json:"completion_rate"`
}

type StatisticsOverview struct {
	*Statistics
	CompletionPercentage int `json:"completion_percentage"`
}

// DayProductivity is one bar of the seven day productivity chart.
type DayProductivity struct {
	Date      string `json:"date"`
	Day       string `json:"day"`
	Created   int    `json:"created"`
	Completed int    `json:"completed"`
}

type TaskStats struct {
	TasksCreatedToday      int               `json:"tasks_created_today"`
	TasksCompletedToday    int               `json:"tasks_completed_today"`
	SubtasksCompletedToday int               `json:"subtasks_completed_today"`
	ProductivityChart      []DayProductivity `json:"productivity_chart"`
	TotalCompleted         int               `json:"total_completed"`
	WeeklyCompletionRate   int               `json:"weekly_completion_rate"`
}
