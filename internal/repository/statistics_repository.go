package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/Raikadier/Captus-sub001/internal/error_values"
	"github.com/Raikadier/Captus-sub001/pkg/entity"
)

const insertStatisticsQuery = `INSERT INTO statistics (user_id, start_date, end_date, last_streak_date, streak, best_streak, total_tasks, completed_tasks, daily_goal, favorite_category)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id;`

func statisticsInsertArgs(s *entity.Statistics) []any {
	return []any{
		s.UserID,
		s.StartDate,
		s.EndDate,
		s.LastStreakDate,
		s.Streak,
		s.BestStreak,
		s.TotalTasks,
		s.CompletedTasks,
		s.DailyGoal,
		s.FavoriteCategory,
	}
}

type StatisticsRepository struct {
	conn PgConnection
}

func NewStatisticsRepoWithConn(conn PgConnection) *StatisticsRepository {
	mustPing(conn, "statisticsRepo")
	return &StatisticsRepository{
		conn: conn,
	}
}

func (sr *StatisticsRepository) GetByUser(ctx context.Context, uid uuid.UUID) (*entity.Statistics, error) {
	var s entity.Statistics
	row := sr.conn.QueryRow(ctx, `SELECT id, user_id, start_date, end_date, last_streak_date, streak, best_streak, total_tasks, completed_tasks, daily_goal, favorite_category
		FROM statistics WHERE user_id = $1;`, uid)
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.StartDate,
		&s.EndDate,
		&s.LastStreakDate,
		&s.Streak,
		&s.BestStreak,
		&s.TotalTasks,
		&s.CompletedTasks,
		&s.DailyGoal,
		&s.FavoriteCategory,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrStatisticsNotFound
		}
		return nil, errors.New("getting statistics by uid error: " + err.Error())
	}
	return &s, nil
}

func (sr *StatisticsRepository) Create(ctx context.Context, stats *entity.Statistics) (int64, error) {
	var id int64
	row := sr.conn.QueryRow(ctx, insertStatisticsQuery, statisticsInsertArgs(stats)...)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return 0, errorvalues.ErrStatisticsExist
			// FK violation
			case "23503":
				return 0, errorvalues.ErrUserNotFound
			}
		}
		return 0, errors.New("creating statistics db error: " + err.Error())
	}
	return id, nil
}

func (sr *StatisticsRepository) Save(ctx context.Context, stats *entity.Statistics) error {
	ct, err := sr.conn.Exec(ctx, `UPDATE statistics SET start_date = $1, end_date = $2, last_streak_date = $3, streak = $4, best_streak = $5,
		total_tasks = $6, completed_tasks = $7, daily_goal = $8, favorite_category = $9 WHERE user_id = $10;`,
		stats.StartDate,
		stats.EndDate,
		stats.LastStreakDate,
		stats.Streak,
		stats.BestStreak,
		stats.TotalTasks,
		stats.CompletedTasks,
		stats.DailyGoal,
		stats.FavoriteCategory,
		stats.UserID,
	)
	if err != nil {
		return errors.New("saving statistics error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrStatisticsNotFound
	}
	return nil
}
