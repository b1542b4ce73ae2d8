package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"

	"github.com/Raikadier/Captus-sub001/internal/achievements"
	errorvalues "github.com/Raikadier/Captus-sub001/internal/error_values"
	"github.com/Raikadier/Captus-sub001/internal/metrics"
	"github.com/Raikadier/Captus-sub001/pkg/entity"
	"github.com/Raikadier/Captus-sub001/pkg/logging"
)

type AchievementFailure struct {
	AchievementID string
	Err           error
}

// EvaluationReport describes one pass over the catalog.
type EvaluationReport struct {
	Unlocked   []string
	Progressed []string
	// Skipped holds achievements the user had already completed
	Skipped []string
	Failed  []AchievementFailure
}

// Err joins every per-achievement failure, nil if there were none.
func (r *EvaluationReport) Err() error {
	errs := lo.Map(r.Failed, func(f AchievementFailure, _ int) error {
		return fmt.Errorf("achievement %q: %w", f.AchievementID, f.Err)
	})
	return errors.Join(errs...)
}

// EvaluateAchievements unlocks every achievement whose metric reached its target
// and stores progress for the rest. A failing achievement never stops the pass.
func (ss *StatisticsService) EvaluateAchievements(ctx context.Context, uid uuid.UUID) (*EvaluationReport, error) {
	unlock := ss.locks.lock(uid)
	defer unlock()

	stats, err := ss.loadOrCreate(ctx, uid)
	if err != nil {
		logging.FromContext(ctx).Error("achievements evaluation failed",
			slog.String("uid", uid.String()), slog.String("error", err.Error()))
		return nil, err
	}
	tasks, err := ss.tasksRepo.GetAllByUser(ctx, uid)
	if err != nil {
		err = repositoryError("loading tasks", err)
		logging.FromContext(ctx).Error("achievements evaluation failed",
			slog.String("uid", uid.String()), slog.String("error", err.Error()))
		return nil, err
	}
	return ss.evaluateAchievements(ctx, uid, stats, tasks)
}

func (ss *StatisticsService) evaluateAchievements(ctx context.Context, uid uuid.UUID, stats *entity.Statistics, tasks []entity.Task) (*EvaluationReport, error) {
	timer := prometheus.NewTimer(metrics.EvaluationDuration.WithLabelValues("evaluate_achievements"))
	defer timer.ObserveDuration()
	logger := logging.FromContext(ctx).With(slog.String("uid", uid.String()))

	snapshot, err := ss.snapshot(ctx, uid, stats, tasks)
	if err != nil {
		logger.Error("achievements evaluation failed", slog.String("error", err.Error()))
		return nil, err
	}
	report := &EvaluationReport{}
	for _, def := range ss.catalog.All() {
		outcome, err := ss.evaluateOne(ctx, uid, def, snapshot)
		if err != nil {
			metrics.AchievementFailures.WithLabelValues(def.ID).Inc()
			logger.Error("achievement evaluation failed",
				slog.String("achievement", def.ID), slog.String("error", err.Error()))
			report.Failed = append(report.Failed, AchievementFailure{AchievementID: def.ID, Err: err})
			continue
		}
		switch outcome {
		case outcomeUnlocked:
			metrics.AchievementsUnlocked.WithLabelValues(def.ID).Inc()
			logger.Info("achievement unlocked", slog.String("achievement", def.ID))
			report.Unlocked = append(report.Unlocked, def.ID)
		case outcomeProgressed:
			metrics.AchievementProgressUpdates.Inc()
			report.Progressed = append(report.Progressed, def.ID)
		case outcomeSkipped:
			report.Skipped = append(report.Skipped, def.ID)
		}
	}
	return report, nil
}

type evaluationOutcome int

const (
	outcomeNone evaluationOutcome = iota
	outcomeSkipped
	outcomeUnlocked
	outcomeProgressed
)

func (ss *StatisticsService) evaluateOne(ctx context.Context, uid uuid.UUID, def achievements.Definition, s Snapshot) (evaluationOutcome, error) {
	has, err := ss.achievementsRepo.HasAchievement(ctx, uid, def.ID)
	if err != nil {
		return outcomeNone, repositoryError("checking achievement", err)
	}
	if has {
		return outcomeSkipped, nil
	}
	metric, ok := lookupMetric(def.Type)
	if !ok {
		return outcomeNone, fmt.Errorf("%w: %q", errorvalues.ErrUnknownMetric, def.Type)
	}
	current := metric.compute(s)
	if current >= def.TargetValue {
		if err = ss.achievementsRepo.Unlock(ctx, uid, def.ID, current); err != nil {
			return outcomeNone, repositoryError("unlocking achievement", err)
		}
		return outcomeUnlocked, nil
	}
	if !metric.progressTrackable {
		return outcomeNone, nil
	}
	if err = ss.achievementsRepo.UpdateProgress(ctx, uid, def.ID, current); err != nil {
		return outcomeNone, repositoryError("updating achievement progress", err)
	}
	return outcomeProgressed, nil
}

func (ss *StatisticsService) snapshot(ctx context.Context, uid uuid.UUID, stats *entity.Statistics, tasks []entity.Task) (Snapshot, error) {
	subtasks, err := ss.subtasksRepo.GetAllByUser(ctx, uid)
	if err != nil {
		return Snapshot{}, repositoryError("loading subtasks", err)
	}
	return Snapshot{
		Statistics: *stats,
		Tasks:      tasks,
		Subtasks:   subtasks,
		Location:   ss.loc,
	}, nil
}

// GetAchievementsView merges the catalog with the user's stored progress. Achievements
// never evaluated for the user get their progress computed on the fly. Nothing is written.
func (ss *StatisticsService) GetAchievementsView(ctx context.Context, uid uuid.UUID) ([]entity.AchievementView, error) {
	stored, err := ss.achievementsRepo.GetByUser(ctx, uid)
	if err != nil {
		return nil, repositoryError("loading user achievements", err)
	}
	byID := lo.KeyBy(stored, func(ua entity.UserAchievement) string { return ua.AchievementID })

	var snapshot *Snapshot
	view := make([]entity.AchievementView, 0, ss.catalog.Len())
	for _, def := range ss.catalog.All() {
		item := entity.AchievementView{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Icon:        def.Icon,
			Difficulty:  string(def.Difficulty),
			Color:       def.Color,
			TargetValue: def.TargetValue,
		}
		if ua, ok := byID[def.ID]; ok {
			item.CurrentProgress = ua.Progress
			item.IsCompleted = ua.IsCompleted
		} else {
			if snapshot == nil {
				s, err := ss.readSnapshot(ctx, uid)
				if err != nil {
					return nil, err
				}
				snapshot = &s
			}
			if metric, ok := lookupMetric(def.Type); ok {
				item.CurrentProgress = metric.compute(*snapshot)
			}
		}
		item.ProgressPercentage = progressPercentage(item.CurrentProgress, def.TargetValue)
		view = append(view, item)
	}
	return view, nil
}

func (ss *StatisticsService) readSnapshot(ctx context.Context, uid uuid.UUID) (Snapshot, error) {
	stats, err := ss.read(ctx, uid)
	if err != nil {
		return Snapshot{}, err
	}
	tasks, err := ss.tasksRepo.GetAllByUser(ctx, uid)
	if err != nil {
		return Snapshot{}, repositoryError("loading tasks", err)
	}
	return ss.snapshot(ctx, uid, stats, tasks)
}

// GetAchievementsSummary counts completed catalog achievements of the user.
func (ss *StatisticsService) GetAchievementsSummary(ctx context.Context, uid uuid.UUID) (*entity.AchievementsSummary, error) {
	stored, err := ss.achievementsRepo.GetByUser(ctx, uid)
	if err != nil {
		return nil, repositoryError("loading user achievements", err)
	}
	completed := lo.CountBy(stored, func(ua entity.UserAchievement) bool {
		_, known := ss.catalog.Get(ua.AchievementID)
		return known && ua.IsCompleted
	})
	total := ss.catalog.Len()
	return &entity.AchievementsSummary{
		TotalAchievements:     total,
		CompletedAchievements: completed,
		CompletionRate:        percent(completed, total),
	}, nil
}

func progressPercentage(current, target int) float64 {
	if target <= 0 {
		return 0
	}
	return math.Min(float64(current)/float64(target)*100, 100)
}
