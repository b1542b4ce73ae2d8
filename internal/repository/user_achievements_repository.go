package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/Raikadier/Captus-sub001/internal/error_values"
	"github.com/Raikadier/Captus-sub001/pkg/entity"
)

type UserAchievementsRepository struct {
	conn PgConnection
}

func NewUserAchievementsRepoWithConn(conn PgConnection) *UserAchievementsRepository {
	mustPing(conn, "userAchievementsRepo")
	return &UserAchievementsRepository{
		conn: conn,
	}
}

func (ar *UserAchievementsRepository) HasAchievement(ctx context.Context, uid uuid.UUID, achievementID string) (bool, error) {
	var exists bool
	row := ar.conn.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM user_achievements WHERE user_id = $1 AND achievement_id = $2 AND is_completed);`,
		uid,
		achievementID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("inspecting if achievement exists error: " + err.Error())
	}
	return exists, nil
}

// Unlock upserts a completed row. The WHERE clause of the conflict branch keeps
// unlocked_at of an already completed row untouched.
func (ar *UserAchievementsRepository) Unlock(ctx context.Context, uid uuid.UUID, achievementID string, progress int) error {
	_, err := ar.conn.Exec(
		ctx,
		`INSERT INTO user_achievements (user_id, achievement_id, progress, is_completed, unlocked_at) VALUES ($1, $2, $3, TRUE, NOW())
		ON CONFLICT (user_id, achievement_id) DO UPDATE SET progress = EXCLUDED.progress, is_completed = TRUE, unlocked_at = NOW()
		WHERE user_achievements.is_completed = FALSE;`,
		uid,
		achievementID,
		progress,
	)
	if err != nil {
		return achievementWriteError("unlocking achievement error: ", err)
	}
	return nil
}

func (ar *UserAchievementsRepository) UpdateProgress(ctx context.Context, uid uuid.UUID, achievementID string, progress int) error {
	_, err := ar.conn.Exec(
		ctx,
		`INSERT INTO user_achievements (user_id, achievement_id, progress) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, achievement_id) DO UPDATE SET progress = EXCLUDED.progress
		WHERE user_achievements.is_completed = FALSE;`,
		uid,
		achievementID,
		progress,
	)
	if err != nil {
		return achievementWriteError("updating achievement progress error: ", err)
	}
	return nil
}

func (ar *UserAchievementsRepository) GetByUser(ctx context.Context, uid uuid.UUID) ([]entity.UserAchievement, error) {
	rows, err := ar.conn.Query(
		ctx,
		`SELECT user_id, achievement_id, progress, is_completed, unlocked_at FROM user_achievements WHERE user_id = $1 ORDER BY achievement_id;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("getting user achievements error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.UserAchievement, 0)
	for rows.Next() {
		ua := entity.UserAchievement{}
		err = rows.Scan(&ua.UserID, &ua.AchievementID, &ua.Progress, &ua.IsCompleted, &ua.UnlockedAt)
		if err != nil {
			return nil, errors.New("user achievement row parsing error: " + err.Error())
		}
		result = append(result, ua)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected user achievement rows error: " + err.Error())
	}
	return result, nil
}

func achievementWriteError(prefix string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		// FK violation
		case "23503":
			return errorvalues.ErrUserNotFound
		}
	}
	return errors.New(prefix + err.Error())
}
