package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/Raikadier/Captus-sub001/internal/error_values"
	"github.com/Raikadier/Captus-sub001/pkg/entity"
)

// In-memory repositories keeping state between engine calls.

type memStatsRepo struct {
	mu     sync.Mutex
	rows   map[uuid.UUID]entity.Statistics
	nextID int64
	saves  int
}

func newMemStatsRepo() *memStatsRepo {
	return &memStatsRepo{rows: make(map[uuid.UUID]entity.Statistics)}
}

func (r *memStatsRepo) GetByUser(_ context.Context, uid uuid.UUID) (*entity.Statistics, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.rows[uid]
	if !ok {
		return nil, errorvalues.ErrStatisticsNotFound
	}
	return &s, nil
}

func (r *memStatsRepo) Create(_ context.Context, stats *entity.Statistics) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[stats.UserID]; ok {
		return 0, errorvalues.ErrStatisticsExist
	}
	r.nextID++
	s := *stats
	s.ID = r.nextID
	r.rows[stats.UserID] = s
	return s.ID, nil
}

func (r *memStatsRepo) Save(_ context.Context, stats *entity.Statistics) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[stats.UserID]; !ok {
		return errorvalues.ErrStatisticsNotFound
	}
	r.saves++
	r.rows[stats.UserID] = *stats
	return nil
}

func (r *memStatsRepo) put(s entity.Statistics) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[s.UserID] = s
}

func (r *memStatsRepo) get(uid uuid.UUID) entity.Statistics {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[uid]
}

type memTasksRepo struct {
	mu       sync.Mutex
	tasks    map[uuid.UUID][]entity.Task
	subtasks map[uuid.UUID][]entity.Subtask
	nextID   int64
}

func newMemTasksRepo() *memTasksRepo {
	return &memTasksRepo{
		tasks:    make(map[uuid.UUID][]entity.Task),
		subtasks: make(map[uuid.UUID][]entity.Subtask),
	}
}

func (r *memTasksRepo) GetAllByUser(_ context.Context, uid uuid.UUID) ([]entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.Task(nil), r.tasks[uid]...), nil
}

func (r *memTasksRepo) add(uid uuid.UUID, t entity.Task) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	t.ID = r.nextID
	t.UserID = uid
	if t.PriorityID == 0 {
		t.PriorityID = 1
	}
	r.tasks[uid] = append(r.tasks[uid], t)
	return t.ID
}

func (r *memTasksRepo) addSubtask(uid uuid.UUID, st entity.Subtask) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subtasks[uid] = append(r.subtasks[uid], st)
	for i := range r.tasks[uid] {
		if r.tasks[uid][i].ID == st.TaskID {
			r.tasks[uid][i].HasSubtasks = true
		}
	}
}

// memSubtasksRepo reads the subtasks kept by memTasksRepo.
type memSubtasksRepo struct {
	tasks *memTasksRepo
}

func (r memSubtasksRepo) GetAllByUser(_ context.Context, uid uuid.UUID) ([]entity.Subtask, error) {
	r.tasks.mu.Lock()
	defer r.tasks.mu.Unlock()
	return append([]entity.Subtask(nil), r.tasks.subtasks[uid]...), nil
}

type achievementKey struct {
	uid uuid.UUID
	id  string
}

type memAchievementsRepo struct {
	mu      sync.Mutex
	rows    map[achievementKey]entity.UserAchievement
	now     func() time.Time
	unlocks int
}

func newMemAchievementsRepo(now func() time.Time) *memAchievementsRepo {
	return &memAchievementsRepo{
		rows: make(map[achievementKey]entity.UserAchievement),
		now:  now,
	}
}

func (r *memAchievementsRepo) HasAchievement(_ context.Context, uid uuid.UUID, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ua, ok := r.rows[achievementKey{uid, id}]
	return ok && ua.IsCompleted, nil
}

func (r *memAchievementsRepo) Unlock(_ context.Context, uid uuid.UUID, id string, progress int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := achievementKey{uid, id}
	if ua, ok := r.rows[key]; ok && ua.IsCompleted {
		return nil
	}
	at := r.now()
	r.unlocks++
	r.rows[key] = entity.UserAchievement{UserID: uid, AchievementID: id, Progress: progress, IsCompleted: true, UnlockedAt: &at}
	return nil
}

func (r *memAchievementsRepo) UpdateProgress(_ context.Context, uid uuid.UUID, id string, progress int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := achievementKey{uid, id}
	if ua, ok := r.rows[key]; ok && ua.IsCompleted {
		return nil
	}
	r.rows[key] = entity.UserAchievement{UserID: uid, AchievementID: id, Progress: progress}
	return nil
}

func (r *memAchievementsRepo) GetByUser(_ context.Context, uid uuid.UUID) ([]entity.UserAchievement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]entity.UserAchievement, 0)
	for key, ua := range r.rows {
		if key.uid == uid {
			result = append(result, ua)
		}
	}
	return result, nil
}

func (r *memAchievementsRepo) get(uid uuid.UUID, id string) (entity.UserAchievement, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ua, ok := r.rows[achievementKey{uid, id}]
	return ua, ok
}
