package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/Raikadier/Captus-sub001/internal/error_values"
	"github.com/Raikadier/Captus-sub001/internal/repository"
	"github.com/Raikadier/Captus-sub001/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

var (
	insertUserQuery  = regexp.QuoteMeta(`INSERT INTO users (name, password_hash) VALUES ($1, $2) RETURNING id;`)
	insertStatsQuery = regexp.QuoteMeta(`INSERT INTO statistics (user_id, start_date, end_date, last_streak_date, streak, best_streak, total_tasks, completed_tasks, daily_goal, favorite_category)`)
)

func TestCreateUserWithStatistics(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	uid := uuid.New()
	newUser := func() *entity.User {
		return &entity.User{
			Name:         "test_user",
			PasswordHash: "test_password_hash",
		}
	}
	statsArgs := func(id uuid.UUID) []any {
		return []any{id, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), 0, 0, 0, 0, entity.DefaultDailyGoal, pgxmock.AnyArg()}
	}
	t.Run("successfully created", func(t *testing.T) {
		user := newUser()
		stats := entity.DefaultStatistics(uuid.UUID{}, time.Now())
		conn.ExpectBegin()
		conn.ExpectQuery(insertUserQuery).
			WithArgs(user.Name, user.PasswordHash).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(uid))
		conn.ExpectQuery(insertStatsQuery).
			WithArgs(statsArgs(uid)...).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))
		conn.ExpectCommit()
		id, err := repo.CreateWithStatistics(ctx, user, stats)
		assert.NoError(t, err)
		assert.Equal(t, uid, id)
		assert.Equal(t, uid, user.ID)
		assert.Equal(t, uid, stats.UserID)
		assert.Equal(t, int64(7), stats.ID)
		assert.NoError(t, conn.ExpectationsWereMet())
	})
	t.Run("unique violation error", func(t *testing.T) {
		user := newUser()
		conn.ExpectBegin()
		conn.ExpectQuery(insertUserQuery).
			WithArgs(user.Name, user.PasswordHash).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		conn.ExpectRollback()
		_, err := repo.CreateWithStatistics(ctx, user, entity.DefaultStatistics(uuid.UUID{}, time.Now()))
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
		assert.NoError(t, conn.ExpectationsWereMet())
	})
	t.Run("statistics failure rolls user back", func(t *testing.T) {
		user := newUser()
		conn.ExpectBegin()
		conn.ExpectQuery(insertUserQuery).
			WithArgs(user.Name, user.PasswordHash).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(uid))
		conn.ExpectQuery(insertStatsQuery).
			WithArgs(statsArgs(uid)...).
			WillReturnError(errors.New("db error"))
		conn.ExpectRollback()
		_, err := repo.CreateWithStatistics(ctx, user, entity.DefaultStatistics(uuid.UUID{}, time.Now()))
		assert.Error(t, err)
		assert.Equal(t, uuid.UUID{}, user.ID)
		assert.NoError(t, conn.ExpectationsWereMet())
	})
	t.Run("begin error", func(t *testing.T) {
		conn.ExpectBegin().WillReturnError(errors.New("db error"))
		_, err := repo.CreateWithStatistics(ctx, newUser(), entity.DefaultStatistics(uuid.UUID{}, time.Now()))
		assert.Error(t, err)
	})
	t.Run("nil statistics", func(t *testing.T) {
		_, err := repo.CreateWithStatistics(ctx, newUser(), nil)
		assert.Error(t, err)
	})
}

func TestFindByName(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := entity.User{
		ID:           uuid.New(),
		Name:         "test_user",
		PasswordHash: "test_password_hash",
	}
	query := regexp.QuoteMeta(`SELECT id, name, password_hash FROM users WHERE name = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Name).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "password_hash"}).AddRow(user.ID, user.Name, user.PasswordHash))
		result, err := repo.FindByName(ctx, user.Name)
		assert.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Name).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByName(ctx, user.Name)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Name).
			WillReturnError(errors.New("db error"))
		_, err := repo.FindByName(ctx, user.Name)
		assert.Error(t, err)
	})
}

func TestFindByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := entity.User{
		ID:           uuid.New(),
		Name:         "test_user",
		PasswordHash: "test_password_hash",
	}
	query := regexp.QuoteMeta(`SELECT id, name, password_hash FROM users WHERE id = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "password_hash"}).AddRow(user.ID, user.Name, user.PasswordHash))
		result, err := repo.FindByID(ctx, user.ID)
		assert.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestUpdateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := entity.User{
		ID:           uuid.New(),
		Name:         "test_user",
		PasswordHash: "test_password_hash",
	}
	query := regexp.QuoteMeta(`UPDATE users SET name = $1, password_hash = $2 WHERE id = $3;`)
	t.Run("updated", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(user.Name, user.PasswordHash, user.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.Update(ctx, &user)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(user.Name, user.PasswordHash, user.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.Update(ctx, &user)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestDeleteUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM users WHERE id = $1;`)
	t.Run("deleted", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.Delete(ctx, uid)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.Delete(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid).
			WillReturnError(errors.New("db error"))
		err := repo.Delete(ctx, uid)
		assert.Error(t, err)
	})
}
