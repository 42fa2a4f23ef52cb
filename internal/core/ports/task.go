package ports

import (
	"context"

	"todoapp/internal/core/domain"
)

// TaskMutation is applied to a loaded task inside the repository transaction.
type TaskMutation func(task *domain.Task)

type TaskRepository interface {
	ListTasks(ctx context.Context, userID uint64, filter domain.TaskFilter) ([]domain.Task, error)
	TaskStats(ctx context.Context, userID uint64) (domain.TaskStats, error)
	GetTask(ctx context.Context, userID, taskID uint64) (domain.Task, error)
	CreateTask(ctx context.Context, task domain.Task) (domain.Task, error)
	UpdateTask(ctx context.Context, userID, taskID uint64, mutate TaskMutation) (domain.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uint64) error
}

type TaskService interface {
	Dashboard(ctx context.Context, userID uint64, filter domain.TaskFilter) (domain.Dashboard, error)
	GetTask(ctx context.Context, userID, taskID uint64) (domain.Task, error)
	CreateTask(ctx context.Context, userID uint64, input domain.TaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, userID, taskID uint64, input domain.TaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uint64) error
	ToggleTask(ctx context.Context, userID, taskID uint64) (domain.Task, error)
}
