package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/Raikadier/Captus-sub001/internal/error_values"
	"github.com/Raikadier/Captus-sub001/internal/repository"
	"github.com/Raikadier/Captus-sub001/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

func TestHasAchievement(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUserAchievementsRepoWithConn(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM user_achievements WHERE user_id = $1 AND achievement_id = $2 AND is_completed);`)
	t.Run("has", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(uid, "first_task").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		has, err := repo.HasAchievement(ctx, uid, "first_task")
		assert.NoError(t, err)
		assert.True(t, has)
	})
	t.Run("has not", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(uid, "maraton").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		has, err := repo.HasAchievement(ctx, uid, "maraton")
		assert.NoError(t, err)
		assert.False(t, has)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(uid, "maraton").
			WillReturnError(errors.New("db error"))
		_, err := repo.HasAchievement(ctx, uid, "maraton")
		assert.Error(t, err)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestUnlockAchievement(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUserAchievementsRepoWithConn(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`INSERT INTO user_achievements (user_id, achievement_id, progress, is_completed, unlocked_at) VALUES ($1, $2, $3, TRUE, NOW())`)
	t.Run("unlocked", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid, "productivo", 10).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.Unlock(ctx, uid, "productivo", 10))
	})
	t.Run("already completed is a no-op", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid, "productivo", 12).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))
		assert.NoError(t, repo.Unlock(ctx, uid, "productivo", 12))
	})
	t.Run("unknown user", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid, "productivo", 10).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		assert.ErrorIs(t, repo.Unlock(ctx, uid, "productivo", 10), errorvalues.ErrUserNotFound)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestUpdateAchievementProgress(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUserAchievementsRepoWithConn(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`INSERT INTO user_achievements (user_id, achievement_id, progress) VALUES ($1, $2, $3)`)
	t.Run("updated", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid, "maraton", 4).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.UpdateProgress(ctx, uid, "maraton", 4))
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid, "maraton", 4).
			WillReturnError(errors.New("db error"))
		err := repo.UpdateProgress(ctx, uid, "maraton", 4)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestGetUserAchievements(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUserAchievementsRepoWithConn(conn)
	uid := uuid.New()
	unlocked := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	expected := []entity.UserAchievement{
		{UserID: uid, AchievementID: "first_task", Progress: 1, IsCompleted: true, UnlockedAt: &unlocked},
		{UserID: uid, AchievementID: "maraton", Progress: 3},
	}
	query := regexp.QuoteMeta(`SELECT user_id, achievement_id, progress, is_completed, unlocked_at FROM user_achievements WHERE user_id = $1 ORDER BY achievement_id;`)
	t.Run("listed", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"user_id", "achievement_id", "progress", "is_completed", "unlocked_at"})
		for _, ua := range expected {
			rows.AddRow(ua.UserID, ua.AchievementID, ua.Progress, ua.IsCompleted, ua.UnlockedAt)
		}
		conn.ExpectQuery(query).WithArgs(uid).WillReturnRows(rows)
		result, err := repo.GetByUser(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, expected, result)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid).WillReturnError(errors.New("db error"))
		_, err := repo.GetByUser(ctx, uid)
		assert.Error(t, err)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}
