package service_test

import (
	"context"

	"todoapp/internal/core/domain"
	"todoapp/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) ListTasks(ctx context.Context, userID uint64, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, userID, filter)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) TaskStats(ctx context.Context, userID uint64) (domain.TaskStats, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.TaskStats), args.Error(1)
}

func (m *taskRepositoryMock) GetTask(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) CreateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(domain.Task), args.Error(1)
}

// UpdateTask runs the mutation against the task passed to Return, mimicking
// the repository applying it inside its transaction.
func (m *taskRepositoryMock) UpdateTask(ctx context.Context, userID, taskID uint64, mutate ports.TaskMutation) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID, mutate)
	if err := args.Error(1); err != nil {
		return domain.Task{}, err
	}
	task := args.Get(0).(domain.Task)
	mutate(&task)
	return task, nil
}

func (m *taskRepositoryMock) DeleteTask(ctx context.Context, userID, taskID uint64) error {
	args := m.Called(ctx, userID, taskID)
	return args.Error(0)
}

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *userRepositoryMock) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
