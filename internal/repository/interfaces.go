package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Raikadier/Captus-sub001/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates user together with its statistics row in one transaction. Returns id of the new user
	CreateWithStatistics(ctx context.Context, user *entity.User, stats *entity.Statistics) (uuid.UUID, error)
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user. Statistics and achievements are removed by cascade
	Delete(ctx context.Context, uid uuid.UUID) error
}

type StatisticsRepositoryI interface {
	// Returns statistics row of user or ErrStatisticsNotFound
	GetByUser(ctx context.Context, uid uuid.UUID) (*entity.Statistics, error)
	// Inserts new statistics row, returns its id
	Create(ctx context.Context, stats *entity.Statistics) (int64, error)
	// Overwrites the whole row of stats.UserID
	Save(ctx context.Context, stats *entity.Statistics) error
}

type TasksRepositoryI interface {
	// Lists every task owned by user, oldest first
	GetAllByUser(ctx context.Context, uid uuid.UUID) ([]entity.Task, error)
}

type SubtasksRepositoryI interface {
	// Lists every subtask of the tasks owned by user
	GetAllByUser(ctx context.Context, uid uuid.UUID) ([]entity.Subtask, error)
}

type UserAchievementsRepositoryI interface {
	// Reports if user has already completed the achievement
	HasAchievement(ctx context.Context, uid uuid.UUID, achievementID string) (bool, error)
	// Marks achievement completed, creating the row if needed. Completed rows are never touched again
	Unlock(ctx context.Context, uid uuid.UUID, achievementID string, progress int) error
	// Stores progress of an uncompleted achievement, creating the row if needed
	UpdateProgress(ctx context.Context, uid uuid.UUID, achievementID string, progress int) error
	// Lists every achievement row of user
	GetByUser(ctx context.Context, uid uuid.UUID) ([]entity.UserAchievement, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
