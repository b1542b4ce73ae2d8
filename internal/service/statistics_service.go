package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"math"
	"math/rand"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"

	"github.com/Raikadier/Captus-sub001/internal/achievements"
	errorvalues "github.com/Raikadier/Captus-sub001/internal/error_values"
	"github.com/Raikadier/Captus-sub001/internal/metrics"
	"github.com/Raikadier/Captus-sub001/internal/repository"
	"github.com/Raikadier/Captus-sub001/pkg/entity"
	"github.com/Raikadier/Captus-sub001/pkg/logging"
)

// DaySource selects which task timestamp decides that a task was completed "today".
type DaySource string

const (
	// DaySourceCreated counts completed tasks created today.
	DaySourceCreated DaySource = "created"
	// DaySourceCompleted counts completed tasks whose end date is today.
	DaySourceCompleted DaySource = "completed"
)

func ParseDaySource(s string) (DaySource, error) {
	switch DaySource(s) {
	case "", DaySourceCreated:
		return DaySourceCreated, nil
	case DaySourceCompleted:
		return DaySourceCompleted, nil
	}
	return "", fmt.Errorf("unknown streak day source %q", s)
}

type StatisticsService struct {
	statsRepo        repository.StatisticsRepositoryI
	tasksRepo        repository.TasksRepositoryI
	subtasksRepo     repository.SubtasksRepositoryI
	achievementsRepo repository.UserAchievementsRepositoryI

	catalog   *achievements.Catalog
	now       func() time.Time
	loc       *time.Location
	daySource DaySource
	intn      func(n int) int
	locks     *userLocks
}

type StatisticsOption func(*StatisticsService)

func WithCatalog(c *achievements.Catalog) StatisticsOption {
	return func(ss *StatisticsService) {
		ss.catalog = c
	}
}

func WithClock(now func() time.Time) StatisticsOption {
	return func(ss *StatisticsService) {
		ss.now = now
	}
}

// WithLocation sets the time zone calendar days are taken in.
func WithLocation(loc *time.Location) StatisticsOption {
	return func(ss *StatisticsService) {
		ss.loc = loc
	}
}

func WithDaySource(src DaySource) StatisticsOption {
	return func(ss *StatisticsService) {
		ss.daySource = src
	}
}

// WithRandom replaces the source used to pick motivational messages.
func WithRandom(intn func(n int) int) StatisticsOption {
	return func(ss *StatisticsService) {
		ss.intn = intn
	}
}

func NewStatisticsService(
	statsRepo repository.StatisticsRepositoryI,
	tasksRepo repository.TasksRepositoryI,
	subtasksRepo repository.SubtasksRepositoryI,
	achievementsRepo repository.UserAchievementsRepositoryI,
	opts ...StatisticsOption,
) *StatisticsService {
	switch {
	case statsRepo == nil:
		log.Fatal("provided nil statsRepo")
	case tasksRepo == nil:
		log.Fatal("provided nil tasksRepo")
	case subtasksRepo == nil:
		log.Fatal("provided nil subtasksRepo")
	case achievementsRepo == nil:
		log.Fatal("provided nil achievementsRepo")
	}
	ss := &StatisticsService{
		statsRepo:        statsRepo,
		tasksRepo:        tasksRepo,
		subtasksRepo:     subtasksRepo,
		achievementsRepo: achievementsRepo,
		catalog:          achievements.Default(),
		now:              time.Now,
		loc:              time.Local,
		daySource:        DaySourceCreated,
		intn:             rand.Intn,
		locks:            newUserLocks(),
	}
	for _, opt := range opts {
		opt(ss)
	}
	return ss
}

// EvaluateStreak credits or resets the user's daily streak, then evaluates achievements.
func (ss *StatisticsService) EvaluateStreak(ctx context.Context, uid uuid.UUID) error {
	unlock := ss.locks.lock(uid)
	defer unlock()
	timer := prometheus.NewTimer(metrics.EvaluationDuration.WithLabelValues("evaluate_streak"))
	defer timer.ObserveDuration()

	logger := logging.FromContext(ctx).With(slog.String("uid", uid.String()))
	stats, tasks, err := ss.evaluateStreak(ctx, uid)
	if err != nil {
		metrics.StreakEvaluations.WithLabelValues(metrics.ResultFailed).Inc()
		logger.Error("streak evaluation failed", slog.String("error", err.Error()))
		return err
	}
	metrics.StreakEvaluations.WithLabelValues(metrics.ResultOK).Inc()
	_, err = ss.evaluateAchievements(ctx, uid, stats, tasks)
	return err
}

func (ss *StatisticsService) evaluateStreak(ctx context.Context, uid uuid.UUID) (*entity.Statistics, []entity.Task, error) {
	stats, err := ss.loadOrCreate(ctx, uid)
	if err != nil {
		return nil, nil, err
	}
	tasks, err := ss.tasksRepo.GetAllByUser(ctx, uid)
	if err != nil {
		return nil, nil, repositoryError("loading tasks", err)
	}
	if advanceStreak(stats, ss.completedToday(tasks), ss.today()) {
		if err = ss.statsRepo.Save(ctx, stats); err != nil {
			return nil, nil, repositoryError("saving statistics", err)
		}
	}
	return stats, tasks, nil
}

// advanceStreak applies one streak check for today to stats and reports whether
// anything changed. today is a calendar day as returned by civilDay; it is also
// the value stored as lastStreakDate.
func advanceStreak(stats *entity.Statistics, completedToday int, today time.Time) bool {
	yesterday := today.AddDate(0, 0, -1)
	var last *time.Time
	if stats.LastStreakDate != nil {
		d := storedDay(*stats.LastStreakDate)
		last = &d
	}
	streak, lastDate := stats.Streak, last

	if completedToday < stats.DailyGoal {
		if last == nil || last.Before(yesterday) {
			streak, lastDate = 0, nil
		}
	} else if last == nil || last.Before(today) {
		if last != nil && last.Equal(yesterday) {
			streak++
		} else {
			streak = 1
		}
		lastDate = &today
	}

	changed := streak != stats.Streak || !sameDate(lastDate, stats.LastStreakDate)
	stats.Streak = streak
	stats.LastStreakDate = lastDate
	if stats.Streak > stats.BestStreak {
		stats.BestStreak = stats.Streak
		changed = true
	}
	return changed
}

// RefreshAggregates recounts task totals and the favourite category, then evaluates achievements.
func (ss *StatisticsService) RefreshAggregates(ctx context.Context, uid uuid.UUID) error {
	unlock := ss.locks.lock(uid)
	defer unlock()
	timer := prometheus.NewTimer(metrics.EvaluationDuration.WithLabelValues("refresh_aggregates"))
	defer timer.ObserveDuration()

	logger := logging.FromContext(ctx).With(slog.String("uid", uid.String()))
	stats, tasks, err := ss.refreshAggregates(ctx, uid)
	if err != nil {
		logger.Error("refreshing aggregates failed", slog.String("error", err.Error()))
		return err
	}
	_, err = ss.evaluateAchievements(ctx, uid, stats, tasks)
	return err
}

func (ss *StatisticsService) refreshAggregates(ctx context.Context, uid uuid.UUID) (*entity.Statistics, []entity.Task, error) {
	stats, err := ss.loadOrCreate(ctx, uid)
	if err != nil {
		return nil, nil, err
	}
	tasks, err := ss.tasksRepo.GetAllByUser(ctx, uid)
	if err != nil {
		return nil, nil, repositoryError("loading tasks", err)
	}
	stats.TotalTasks = len(tasks)
	stats.CompletedTasks = lo.CountBy(tasks, func(t entity.Task) bool { return t.State })
	if fav, ok := favoriteCategory(tasks); ok {
		stats.FavoriteCategory = &fav
	}
	if err = ss.statsRepo.Save(ctx, stats); err != nil {
		return nil, nil, repositoryError("saving statistics", err)
	}
	return stats, tasks, nil
}

// favoriteCategory returns the most used category. Ties go to the lowest id.
func favoriteCategory(tasks []entity.Task) (int64, bool) {
	counts := lo.CountValuesBy(
		lo.Filter(tasks, func(t entity.Task, _ int) bool { return t.CategoryID != nil }),
		func(t entity.Task) int64 { return *t.CategoryID },
	)
	if len(counts) == 0 {
		return 0, false
	}
	ids := lo.Keys(counts)
	slices.Sort(ids)
	best := ids[0]
	for _, id := range ids[1:] {
		if counts[id] > counts[best] {
			best = id
		}
	}
	return best, true
}

// UpdateDailyGoal stores a new daily goal and re-checks the streak against it.
func (ss *StatisticsService) UpdateDailyGoal(ctx context.Context, uid uuid.UUID, goal int) error {
	if err := validateStruct(DailyGoalRequest{DailyGoal: goal}); err != nil {
		return errors.Join(errorvalues.ErrInvalidDailyGoal, err)
	}
	unlock := ss.locks.lock(uid)
	defer unlock()

	logger := logging.FromContext(ctx).With(slog.String("uid", uid.String()))
	stats, err := ss.loadOrCreate(ctx, uid)
	if err != nil {
		logger.Error("updating daily goal failed", slog.String("error", err.Error()))
		return err
	}
	if stats.DailyGoal != goal {
		stats.DailyGoal = goal
		if err = ss.statsRepo.Save(ctx, stats); err != nil {
			err = repositoryError("saving statistics", err)
			logger.Error("updating daily goal failed", slog.String("error", err.Error()))
			return err
		}
	}
	stats, tasks, err := ss.evaluateStreak(ctx, uid)
	if err != nil {
		logger.Error("streak evaluation after goal update failed", slog.String("error", err.Error()))
		return err
	}
	_, err = ss.evaluateAchievements(ctx, uid, stats, tasks)
	return err
}

// GetStatistics returns the user's row, creating the default one if missing.
func (ss *StatisticsService) GetStatistics(ctx context.Context, uid uuid.UUID) (*entity.StatisticsOverview, error) {
	stats, err := ss.loadOrCreate(ctx, uid)
	if err != nil {
		return nil, err
	}
	return &entity.StatisticsOverview{
		Statistics:           stats,
		CompletionPercentage: percent(stats.CompletedTasks, stats.TotalTasks),
	}, nil
}

func (ss *StatisticsService) GetStreakStats(ctx context.Context, uid uuid.UUID) (*entity.StreakStats, error) {
	stats, err := ss.read(ctx, uid)
	if err != nil {
		return nil, err
	}
	return &entity.StreakStats{
		CurrentStreak:  stats.Streak,
		BestStreak:     stats.BestStreak,
		DailyGoal:      stats.DailyGoal,
		LastStreakDate: stats.LastStreakDate,
	}, nil
}

// GetWeeklyStats counts tasks created since the start of the current week (Sunday).
func (ss *StatisticsService) GetWeeklyStats(ctx context.Context, uid uuid.UUID) (*entity.WeeklyStats, error) {
	stats, err := ss.read(ctx, uid)
	if err != nil {
		return nil, err
	}
	tasks, err := ss.tasksRepo.GetAllByUser(ctx, uid)
	if err != nil {
		return nil, repositoryError("loading tasks", err)
	}
	today := ss.today()
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))
	weekly := lo.Filter(tasks, func(t entity.Task, _ int) bool {
		return !civilDay(t.CreationDate, ss.loc).Before(weekStart)
	})
	completed := lo.CountBy(weekly, func(t entity.Task) bool { return t.State })
	return &entity.WeeklyStats{
		TotalTasks:     len(weekly),
		CompletedTasks: completed,
		CompletionRate: percent(completed, len(weekly)),
		CurrentStreak:  stats.Streak,
		DailyGoal:      stats.DailyGoal,
	}, nil
}

// GetCategoryStats groups the user's tasks by category, ordered by category id.
func (ss *StatisticsService) GetCategoryStats(ctx context.Context, uid uuid.UUID) ([]entity.CategoryStats, error) {
	tasks, err := ss.tasksRepo.GetAllByUser(ctx, uid)
	if err != nil {
		return nil, repositoryError("loading tasks", err)
	}
	groups := lo.GroupBy(
		lo.Filter(tasks, func(t entity.Task, _ int) bool { return t.CategoryID != nil }),
		func(t entity.Task) int64 { return *t.CategoryID },
	)
	ids := lo.Keys(groups)
	slices.Sort(ids)
	result := make([]entity.CategoryStats, 0, len(ids))
	for _, id := range ids {
		group := groups[id]
		completed := lo.CountBy(group, func(t entity.Task) bool { return t.State })
		result = append(result, entity.CategoryStats{
			CategoryID:     id,
			TotalTasks:     len(group),
			CompletedTasks: completed,
			CompletionRate: percent(completed, len(group)),
		})
	}
	return result, nil
}

// productivityDays is the length of the task productivity chart, today included.
const productivityDays = 7

// GetTaskStats reports today's task activity and a per-day chart of the last week.
// Completion days come from EndDate, creation days from CreationDate, both in the
// configured location.
func (ss *StatisticsService) GetTaskStats(ctx context.Context, uid uuid.UUID) (*entity.TaskStats, error) {
	tasks, err := ss.tasksRepo.GetAllByUser(ctx, uid)
	if err != nil {
		return nil, repositoryError("loading tasks", err)
	}
	subtasks, err := ss.subtasksRepo.GetAllByUser(ctx, uid)
	if err != nil {
		return nil, repositoryError("loading subtasks", err)
	}
	dayKey := func(t time.Time) string { return civilDay(t, ss.loc).Format(time.DateOnly) }
	created := lo.CountValuesBy(tasks, func(t entity.Task) string { return dayKey(t.CreationDate) })
	completed := lo.CountValuesBy(
		lo.Filter(tasks, func(t entity.Task, _ int) bool { return t.State && t.EndDate != nil }),
		func(t entity.Task) string { return dayKey(*t.EndDate) },
	)
	today := ss.today()
	todayKey := today.Format(time.DateOnly)

	subtasksToday := lo.CountBy(subtasks, func(st entity.Subtask) bool {
		return st.State && st.EndDate != nil && dayKey(*st.EndDate) == todayKey
	})
	result := &entity.TaskStats{
		TasksCreatedToday:      created[todayKey],
		TasksCompletedToday:    completed[todayKey],
		SubtasksCompletedToday: subtasksToday,
		ProductivityChart:      make([]entity.DayProductivity, 0, productivityDays),
		TotalCompleted:         lo.CountBy(tasks, func(t entity.Task) bool { return t.State }),
	}
	var createdWeek, completedWeek int
	for i := productivityDays - 1; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		key := d.Format(time.DateOnly)
		result.ProductivityChart = append(result.ProductivityChart, entity.DayProductivity{
			Date:      key,
			Day:       d.Weekday().String()[:3],
			Created:   created[key],
			Completed: completed[key],
		})
		createdWeek += created[key]
		completedWeek += completed[key]
	}
	// tasks created earlier but finished this week may push the rate above 100
	result.WeeklyCompletionRate = percent(completedWeek, createdWeek)
	return result, nil
}

// GetMotivationalMessage picks a random message for the user's current streak.
func (ss *StatisticsService) GetMotivationalMessage(ctx context.Context, uid uuid.UUID) (string, error) {
	stats, err := ss.read(ctx, uid)
	if err != nil {
		return "", err
	}
	pool := achievements.MotivationalPool(stats.Streak)
	return pool[ss.intn(len(pool))], nil
}

// loadOrCreate returns the statistics row, inserting defaults on first use.
func (ss *StatisticsService) loadOrCreate(ctx context.Context, uid uuid.UUID) (*entity.Statistics, error) {
	stats, err := ss.statsRepo.GetByUser(ctx, uid)
	if err == nil {
		return stats, nil
	}
	if !errors.Is(err, errorvalues.ErrStatisticsNotFound) {
		return nil, repositoryError("loading statistics", err)
	}
	stats = entity.DefaultStatistics(uid, ss.now())
	id, err := ss.statsRepo.Create(ctx, stats)
	switch {
	case err == nil:
		stats.ID = id
		return stats, nil
	case errors.Is(err, errorvalues.ErrStatisticsExist):
		// created concurrently by another request
		stats, err = ss.statsRepo.GetByUser(ctx, uid)
		if err != nil {
			return nil, repositoryError("loading statistics", err)
		}
		return stats, nil
	case errors.Is(err, errorvalues.ErrUserNotFound):
		return nil, errorvalues.ErrUserNotFound
	}
	return nil, repositoryError("creating statistics", err)
}

// read is loadOrCreate without the write: missing rows are reported as defaults.
func (ss *StatisticsService) read(ctx context.Context, uid uuid.UUID) (*entity.Statistics, error) {
	stats, err := ss.statsRepo.GetByUser(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStatisticsNotFound) {
			return entity.DefaultStatistics(uid, ss.now()), nil
		}
		return nil, repositoryError("loading statistics", err)
	}
	return stats, nil
}

func (ss *StatisticsService) today() time.Time {
	return civilDay(ss.now(), ss.loc)
}

func (ss *StatisticsService) completedToday(tasks []entity.Task) int {
	today := ss.today()
	return lo.CountBy(tasks, func(t entity.Task) bool {
		if !t.State {
			return false
		}
		switch ss.daySource {
		case DaySourceCompleted:
			return t.EndDate != nil && civilDay(*t.EndDate, ss.loc).Equal(today)
		default:
			return civilDay(t.CreationDate, ss.loc).Equal(today)
		}
	})
}

// civilDay returns the calendar date of t in loc as UTC midnight. Local midnight
// may not exist on DST switch days, UTC midnight always does.
func civilDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// storedDay keeps the calendar date of a DATE column value as read back.
func storedDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// percent returns part/total as a rounded percentage, 0 for an empty total.
func percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

func repositoryError(op string, err error) error {
	return fmt.Errorf("%s: repository error: %w", op, err)
}
