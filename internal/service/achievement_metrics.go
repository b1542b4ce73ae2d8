package service

import (
	"time"

	"github.com/samber/lo"

	"github.com/Raikadier/Captus-sub001/internal/achievements"
	"github.com/Raikadier/Captus-sub001/pkg/entity"
)

const (
	// HighPriorityID is the id of the highest priority tier.
	HighPriorityID = 3
	// earlyHour is the first hour a completion no longer counts as early.
	earlyHour = 9
)

// Snapshot is everything a metric can look at while achievements are evaluated.
type Snapshot struct {
	Statistics entity.Statistics
	Tasks      []entity.Task
	Subtasks   []entity.Subtask
	Location   *time.Location
}

type metricDef struct {
	compute func(s Snapshot) int
	// progressTrackable metrics keep the stored progress current below the target
	progressTrackable bool
}

var metricRegistry = map[achievements.MetricType]metricDef{
	achievements.MetricCompletedTasks: {
		compute:           func(s Snapshot) int { return s.Statistics.CompletedTasks },
		progressTrackable: true,
	},
	achievements.MetricStreak: {
		compute:           func(s Snapshot) int { return s.Statistics.Streak },
		progressTrackable: true,
	},
	achievements.MetricTasksCreated: {
		compute:           func(s Snapshot) int { return s.Statistics.TotalTasks },
		progressTrackable: true,
	},
	achievements.MetricHighPriorityTasks: {
		compute:           highPriorityTasks,
		progressTrackable: true,
	},
	achievements.MetricSubtasksCreated: {
		compute:           func(s Snapshot) int { return len(s.Subtasks) },
		progressTrackable: true,
	},
	achievements.MetricEarlyTasks: {
		compute:           earlyTasks,
		progressTrackable: true,
	},
	achievements.MetricSubtasksCompleted: {
		compute: func(s Snapshot) int {
			return lo.CountBy(s.Subtasks, func(st entity.Subtask) bool { return st.State })
		},
		progressTrackable: true,
	},
	achievements.MetricTasksInDay: {
		compute:           maxTasksInDay,
		progressTrackable: true,
	},
	achievements.MetricSoloTasks: {
		compute:           soloTasks,
		progressTrackable: true,
	},
	achievements.MetricSundayTasks: {
		compute:           sundayTasks,
		progressTrackable: true,
	},
}

func lookupMetric(t achievements.MetricType) (metricDef, bool) {
	def, ok := metricRegistry[t]
	return def, ok
}

func (s Snapshot) location() *time.Location {
	if s.Location == nil {
		return time.Local
	}
	return s.Location
}

// finished lists completion times of completed tasks, in the snapshot location.
func (s Snapshot) finished() []time.Time {
	loc := s.location()
	return lo.FilterMap(s.Tasks, func(t entity.Task, _ int) (time.Time, bool) {
		if !t.State || t.EndDate == nil {
			return time.Time{}, false
		}
		return t.EndDate.In(loc), true
	})
}

func highPriorityTasks(s Snapshot) int {
	return lo.CountBy(s.Tasks, func(t entity.Task) bool { return t.PriorityID == HighPriorityID })
}

func earlyTasks(s Snapshot) int {
	return lo.CountBy(s.finished(), func(t time.Time) bool { return t.Hour() < earlyHour })
}

func sundayTasks(s Snapshot) int {
	return lo.CountBy(s.finished(), func(t time.Time) bool { return t.Weekday() == time.Sunday })
}

func maxTasksInDay(s Snapshot) int {
	perDay := lo.CountValuesBy(s.finished(), func(t time.Time) string { return t.Format(time.DateOnly) })
	return lo.Max(lo.Values(perDay))
}

func soloTasks(s Snapshot) int {
	withSubtasks := lo.Associate(s.Subtasks, func(st entity.Subtask) (int64, struct{}) {
		return st.TaskID, struct{}{}
	})
	return lo.CountBy(s.Tasks, func(t entity.Task) bool {
		if !t.State || t.HasSubtasks {
			return false
		}
		_, ok := withSubtasks[t.ID]
		return !ok
	})
}
