package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Raikadier/Captus-sub001/pkg/entity"
)

// TasksRepository is a read-only view over tasks; task CRUD lives in another service.
type TasksRepository struct {
	conn PgConnection
}

func NewTasksRepoWithConn(conn PgConnection) *TasksRepository {
	mustPing(conn, "tasksRepo")
	return &TasksRepository{
		conn: conn,
	}
}

func (tr *TasksRepository) GetAllByUser(ctx context.Context, uid uuid.UUID) ([]entity.Task, error) {
	rows, err := tr.conn.Query(ctx, `SELECT t.id, t.user_id, t.category_id, t.priority_id, t.state, t.creation_date, t.end_date, t.parent_id,
		EXISTS(SELECT 1 FROM subtasks s WHERE s.task_id = t.id) AS has_subtasks
		FROM tasks t WHERE t.user_id = $1 ORDER BY t.id;`, uid)
	if err != nil {
		return nil, errors.New("getting tasks by uid error: " + err.Error())
	}
	defer rows.Close()
	tasks := make([]entity.Task, 0)
	for rows.Next() {
		t := entity.Task{}
		err = rows.Scan(&t.ID, &t.UserID, &t.CategoryID, &t.PriorityID, &t.State, &t.CreationDate, &t.EndDate, &t.ParentID, &t.HasSubtasks)
		if err != nil {
			return nil, errors.New("unmarshalling task error: " + err.Error())
		}
		tasks = append(tasks, t)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning tasks: " + err.Error())
	}
	return tasks, nil
}

type SubtasksRepository struct {
	conn PgConnection
}

func NewSubtasksRepoWithConn(conn PgConnection) *SubtasksRepository {
	mustPing(conn, "subtasksRepo")
	return &SubtasksRepository{
		conn: conn,
	}
}

func (sr *SubtasksRepository) GetAllByUser(ctx context.Context, uid uuid.UUID) ([]entity.Subtask, error) {
	rows, err := sr.conn.Query(ctx, `SELECT s.id, s.task_id, s.state, s.creation_date, s.end_date
		FROM subtasks s JOIN tasks t ON t.id = s.task_id WHERE t.user_id = $1 ORDER BY s.id;`, uid)
	if err != nil {
		return nil, errors.New("getting subtasks by uid error: " + err.Error())
	}
	defer rows.Close()
	subtasks := make([]entity.Subtask, 0)
	for rows.Next() {
		s := entity.Subtask{}
		err = rows.Scan(&s.ID, &s.TaskID, &s.State, &s.CreationDate, &s.EndDate)
		if err != nil {
			return nil, errors.New("unmarshalling subtask error: " + err.Error())
		}
		subtasks = append(subtasks, s)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning subtasks: " + err.Error())
	}
	return subtasks, nil
}
