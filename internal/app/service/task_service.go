package service

import (
	"context"
	"fmt"
	"time"

	"todoapp/internal/core/domain"
	"todoapp/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	now            func() time.Time
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{
		taskRepository: taskRepository,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source used for created_at/updated_at.
func (s *TaskService) WithClock(now func() time.Time) *TaskService {
	s.now = now
	return s
}

func (s *TaskService) Dashboard(ctx context.Context, userID uint64, filter domain.TaskFilter) (domain.Dashboard, error) {
	tasks, err := s.taskRepository.ListTasks(ctx, userID, filter)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("list tasks: %w", err)
	}

	stats, err := s.taskRepository.TaskStats(ctx, userID)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("task stats: %w", err)
	}

	return domain.Dashboard{Tasks: tasks, Stats: stats, Filter: filter}, nil
}

func (s *TaskService) GetTask(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	return s.taskRepository.GetTask(ctx, userID, taskID)
}

func (s *TaskService) CreateTask(ctx context.Context, userID uint64, input domain.TaskInput) (domain.Task, error) {
	return s.taskRepository.CreateTask(ctx, domain.NewTask(userID, input, s.now()))
}

func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID uint64, input domain.TaskInput) (domain.Task, error) {
	now := s.now()
	return s.taskRepository.UpdateTask(ctx, userID, taskID, func(task *domain.Task) {
		task.Apply(input, now)
	})
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID uint64) error {
	return s.taskRepository.DeleteTask(ctx, userID, taskID)
}

func (s *TaskService) ToggleTask(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	now := s.now()
	return s.taskRepository.UpdateTask(ctx, userID, taskID, func(task *domain.Task) {
		task.ToggleStatus(now)
	})
}

var _ ports.TaskService = (*TaskService)(nil)
