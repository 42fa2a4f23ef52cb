package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"todoapp/internal/core/domain"
	"todoapp/internal/core/ports"
)

const taskColumns = `id, user_id, title, description, priority, category, due_date, status, created_at, updated_at`

const getTaskQuery = `
SELECT ` + taskColumns + `
FROM tasks
WHERE id = ? AND user_id = ?;
`

const insertTaskQuery = `
INSERT INTO tasks (user_id, title, description, priority, category, due_date, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
`

const updateTaskQuery = `
UPDATE tasks
SET title = ?, description = ?, priority = ?, category = ?, due_date = ?, status = ?, updated_at = ?
WHERE id = ? AND user_id = ?;
`

const deleteTaskQuery = `DELETE FROM tasks WHERE id = ? AND user_id = ?;`

// Stats ignore any dashboard filter on purpose: they describe the whole set.
const taskStatsQuery = `
SELECT
  COUNT(*) AS total,
  COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0) AS pending,
  COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0) AS completed,
  COALESCE(SUM(CASE WHEN priority = 'high' THEN 1 ELSE 0 END), 0) AS high_priority
FROM tasks
WHERE user_id = ?;
`

// '!' is used as LIKE escape character because it needs no quoting in either
// MySQL or SQLite string literals.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64         `db:"id"`
	UserID      uint64         `db:"user_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Priority    string         `db:"priority"`
	Category    string         `db:"category"`
	DueDate     sql.NullTime   `db:"due_date"`
	Status      string         `db:"status"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type taskStatsRow struct {
	Total        int `db:"total"`
	Pending      int `db:"pending"`
	Completed    int `db:"completed"`
	HighPriority int `db:"high_priority"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListTasks(ctx context.Context, userID uint64, filter domain.TaskFilter) ([]domain.Task, error) {
	query, args := buildListTasksQuery(userID, filter)

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func buildListTasksQuery(userID uint64, filter domain.TaskFilter) (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT " + taskColumns + " FROM tasks WHERE user_id = ?")
	args := []any{userID}

	if filter.Status != "" && filter.Status != domain.StatusFilterAll {
		b.WriteString(" AND status = ?")
		args = append(args, string(filter.Status))
	}

	if filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(filter.Search) + "%"
		b.WriteString(" AND (LOWER(title) LIKE LOWER(?) ESCAPE '!' OR LOWER(COALESCE(description, '')) LIKE LOWER(?) ESCAPE '!')")
		args = append(args, pattern, pattern)
	}

	b.WriteString(" ORDER BY created_at DESC, id DESC")
	return b.String(), args
}

func (r *TaskRepository) TaskStats(ctx context.Context, userID uint64) (domain.TaskStats, error) {
	var row taskStatsRow
	if err := r.db.GetContext(ctx, &row, taskStatsQuery, userID); err != nil {
		return domain.TaskStats{}, err
	}

	return domain.TaskStats{
		Total:        row.Total,
		Pending:      row.Pending,
		Completed:    row.Completed,
		HighPriority: row.HighPriority,
	}, nil
}

func (r *TaskRepository) GetTask(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	return getTask(ctx, r.db, userID, taskID)
}

func (r *TaskRepository) CreateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	result, err := r.db.ExecContext(
		ctx,
		insertTaskQuery,
		task.UserID,
		task.Title,
		nullableString(task.Description),
		string(task.Priority),
		string(task.Category),
		nullableDate(task.DueDate),
		string(task.Status),
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}
	task.ID = uint64(id)

	return task, nil
}

// UpdateTask loads the owned task, applies mutate and writes it back in a
// single transaction. Concurrent writers are last-write-wins.
func (r *TaskRepository) UpdateTask(ctx context.Context, userID, taskID uint64, mutate ports.TaskMutation) (domain.Task, error) {
	var updated domain.Task
	err := withTxContext(ctx, r.db, func(tx *sqlx.Tx) error {
		task, err := getTask(ctx, tx, userID, taskID)
		if err != nil {
			return err
		}

		mutate(&task)

		_, err = tx.ExecContext(
			ctx,
			updateTaskQuery,
			task.Title,
			nullableString(task.Description),
			string(task.Priority),
			string(task.Category),
			nullableDate(task.DueDate),
			string(task.Status),
			task.UpdatedAt,
			task.ID,
			task.UserID,
		)
		if err != nil {
			return fmt.Errorf("update task %d: %w", taskID, err)
		}

		updated = task
		return nil
	})
	if err != nil {
		return domain.Task{}, err
	}

	return updated, nil
}

func (r *TaskRepository) DeleteTask(ctx context.Context, userID, taskID uint64) error {
	result, err := r.db.ExecContext(ctx, deleteTaskQuery, taskID, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func getTask(ctx context.Context, q sqlx.QueryerContext, userID, taskID uint64) (domain.Task, error) {
	var row taskRow
	if err := sqlx.GetContext(ctx, q, &row, getTaskQuery, taskID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		UserID:    row.UserID,
		Title:     row.Title,
		Priority:  domain.TaskPriority(row.Priority),
		Category:  domain.TaskCategory(row.Category),
		Status:    domain.TaskStatus(row.Status),
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time.UTC()
		task.DueDate = &value
	}

	return task
}

func nullableString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

// Dates are written as YYYY-MM-DD so both drivers store a plain calendar date.
func nullableDate(value *time.Time) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: value.Format("2006-01-02"), Valid: true}
}
