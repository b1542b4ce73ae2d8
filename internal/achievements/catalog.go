// Package achievements holds the static achievement catalog and the
// motivational messages shown for a streak.
package achievements

import (
	"errors"
	"fmt"

	errorvalues "github.com/Raikadier/Captus-sub001/internal/error_values"
)

type MetricType string

const (
	MetricCompletedTasks    MetricType = "completed_tasks"
	MetricStreak            MetricType = "streak"
	MetricTasksCreated      MetricType = "tasks_created"
	MetricHighPriorityTasks MetricType = "high_priority_tasks"
	MetricSubtasksCreated   MetricType = "subtasks_created"
	MetricEarlyTasks        MetricType = "early_tasks"
	MetricSubtasksCompleted MetricType = "subtasks_completed"
	MetricTasksInDay        MetricType = "tasks_in_day"
	MetricSoloTasks         MetricType = "solo_tasks"
	MetricSundayTasks       MetricType = "sunday_tasks"
)

// MetricTypes lists every metric kind a definition may target.
var MetricTypes = []MetricType{
	MetricCompletedTasks,
	MetricStreak,
	MetricTasksCreated,
	MetricHighPriorityTasks,
	MetricSubtasksCreated,
	MetricEarlyTasks,
	MetricSubtasksCompleted,
	MetricTasksInDay,
	MetricSoloTasks,
	MetricSundayTasks,
}

func (m MetricType) Valid() bool {
	for _, t := range MetricTypes {
		if t == m {
			return true
		}
	}
	return false
}

type Difficulty string

const (
	DifficultyEasy    Difficulty = "easy"
	DifficultyMedium  Difficulty = "medium"
	DifficultyHard    Difficulty = "hard"
	DifficultySpecial Difficulty = "special"
	DifficultyEpic    Difficulty = "epic"
)

type Definition struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Difficulty  Difficulty
	Color       string
	Type        MetricType
	TargetValue int
}

func (d Definition) validate() error {
	switch {
	case d.ID == "":
		return fmt.Errorf("%w: empty id", errorvalues.ErrInvalidDefinition)
	case !d.Type.Valid():
		return fmt.Errorf("%w: %q has type %q", errorvalues.ErrUnknownMetric, d.ID, d.Type)
	case d.TargetValue <= 0:
		return fmt.Errorf("%w: %q has non-positive target %d", errorvalues.ErrInvalidDefinition, d.ID, d.TargetValue)
	}
	return nil
}

// Catalog is an immutable, ordered set of achievement definitions.
type Catalog struct {
	defs  []Definition
	index map[string]int
}

// New builds a catalog keeping declaration order. All definitions are checked
// and every problem is reported at once.
func New(defs ...Definition) (*Catalog, error) {
	c := &Catalog{
		defs:  make([]Definition, 0, len(defs)),
		index: make(map[string]int, len(defs)),
	}
	var errs error
	for _, d := range defs {
		if err := d.validate(); err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		if _, ok := c.index[d.ID]; ok {
			errs = errors.Join(errs, fmt.Errorf("%w: %q", errorvalues.ErrDuplicatedAchievement, d.ID))
			continue
		}
		c.index[d.ID] = len(c.defs)
		c.defs = append(c.defs, d)
	}
	if errs != nil {
		return nil, errs
	}
	return c, nil
}

// MustNew is like New but panics on an invalid catalog. Meant for package level tables.
func MustNew(defs ...Definition) *Catalog {
	c, err := New(defs...)
	if err != nil {
		panic("achievements: " + err.Error())
	}
	return c
}

// All returns a copy of the definitions in declaration order.
func (c *Catalog) All() []Definition {
	out := make([]Definition, len(c.defs))
	copy(out, c.defs)
	return out
}

func (c *Catalog) Get(id string) (Definition, bool) {
	i, ok := c.index[id]
	if !ok {
		return Definition{}, false
	}
	return c.defs[i], true
}

func (c *Catalog) Len() int {
	return len(c.defs)
}
