package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"todoapp/internal/core/domain"
)

var baseTime = time.Date(2026, 2, 13, 10, 0, 0, 0, time.UTC)

func strPtr(value string) *string { return &value }

func seedTask(t *testing.T, repo *TaskRepository, userID uint64, offset time.Duration, input domain.TaskInput) domain.Task {
	t.Helper()

	task, err := repo.CreateTask(context.Background(), domain.NewTask(userID, input, baseTime.Add(offset)))
	require.NoError(t, err)
	return task
}

func TestTaskRepository_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepository(db)
	user := createTestUser(t, db, "alice")
	due := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)

	created := seedTask(t, repo, user.ID, 0, domain.TaskInput{
		Title:       "Buy milk",
		Description: strPtr("two litres"),
		Priority:    domain.TaskPriorityHigh,
		Category:    domain.TaskCategoryShopping,
		DueDate:     &due,
	})
	require.NotZero(t, created.ID)

	got, err := repo.GetTask(context.Background(), user.ID, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Buy milk", got.Title)
	require.Equal(t, "two litres", *got.Description)
	require.Equal(t, domain.TaskPriorityHigh, got.Priority)
	require.Equal(t, domain.TaskCategoryShopping, got.Category)
	require.Equal(t, domain.TaskStatusPending, got.Status)
	require.Equal(t, "2026-02-20", got.DueDate.Format("2006-01-02"))
	require.True(t, baseTime.Equal(got.CreatedAt))
	require.True(t, baseTime.Equal(got.UpdatedAt))
}

func TestTaskRepository_GetTask_ScopedToOwner(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bobby")

	task := seedTask(t, repo, alice.ID, 0, domain.TaskInput{Title: "Secret"})

	_, err := repo.GetTask(context.Background(), bob.ID, task.ID)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)

	_, err = repo.UpdateTask(context.Background(), bob.ID, task.ID, func(task *domain.Task) {
		task.Title = "hijacked"
	})
	require.ErrorIs(t, err, domain.ErrTaskNotFound)

	require.ErrorIs(t, repo.DeleteTask(context.Background(), bob.ID, task.ID), domain.ErrTaskNotFound)

	got, err := repo.GetTask(context.Background(), alice.ID, task.ID)
	require.NoError(t, err)
	require.Equal(t, "Secret", got.Title)
}

func TestTaskRepository_ListTasks_FiltersAndOrders(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bobby")
	ctx := context.Background()

	first := seedTask(t, repo, alice.ID, 0, domain.TaskInput{Title: "Buy milk"})
	second := seedTask(t, repo, alice.ID, time.Minute, domain.TaskInput{Title: "Gym", Description: strPtr("Leg DAY at noon")})
	third := seedTask(t, repo, alice.ID, 2*time.Minute, domain.TaskInput{Title: "Write report", Priority: domain.TaskPriorityHigh})
	seedTask(t, repo, bob.ID, 3*time.Minute, domain.TaskInput{Title: "Buy bread"})

	_, err := repo.UpdateTask(ctx, alice.ID, third.ID, func(task *domain.Task) {
		task.ToggleStatus(baseTime.Add(time.Hour))
	})
	require.NoError(t, err)

	all, err := repo.ListTasks(ctx, alice.ID, domain.NewTaskFilter("all", ""))
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, []uint64{third.ID, second.ID, first.ID}, taskIDs(all))

	completed, err := repo.ListTasks(ctx, alice.ID, domain.NewTaskFilter("completed", ""))
	require.NoError(t, err)
	require.Equal(t, []uint64{third.ID}, taskIDs(completed))

	pending, err := repo.ListTasks(ctx, alice.ID, domain.NewTaskFilter("pending", ""))
	require.NoError(t, err)
	require.Equal(t, []uint64{second.ID, first.ID}, taskIDs(pending))

	byDescription, err := repo.ListTasks(ctx, alice.ID, domain.NewTaskFilter("all", "leg day"))
	require.NoError(t, err)
	require.Equal(t, []uint64{second.ID}, taskIDs(byDescription))

	byTitle, err := repo.ListTasks(ctx, alice.ID, domain.NewTaskFilter("all", "BUY"))
	require.NoError(t, err)
	require.Equal(t, []uint64{first.ID}, taskIDs(byTitle))

	combined, err := repo.ListTasks(ctx, alice.ID, domain.NewTaskFilter("completed", "buy"))
	require.NoError(t, err)
	require.Empty(t, combined)
}

func TestTaskRepository_ListTasks_SearchEscapesWildcards(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepository(db)
	alice := createTestUser(t, db, "alice")

	seedTask(t, repo, alice.ID, 0, domain.TaskInput{Title: "Grow 100% faster"})
	seedTask(t, repo, alice.ID, time.Minute, domain.TaskInput{Title: "Grow 1000 trees"})
	seedTask(t, repo, alice.ID, 2*time.Minute, domain.TaskInput{Title: "snake_case rename"})
	seedTask(t, repo, alice.ID, 3*time.Minute, domain.TaskInput{Title: "snakeXcase"})

	percent, err := repo.ListTasks(context.Background(), alice.ID, domain.NewTaskFilter("all", "100%"))
	require.NoError(t, err)
	require.Len(t, percent, 1)
	require.Equal(t, "Grow 100% faster", percent[0].Title)

	underscore, err := repo.ListTasks(context.Background(), alice.ID, domain.NewTaskFilter("all", "snake_"))
	require.NoError(t, err)
	require.Len(t, underscore, 1)
	require.Equal(t, "snake_case rename", underscore[0].Title)
}

func TestTaskRepository_TaskStats_IgnoresOtherUsers(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bobby")
	ctx := context.Background()

	empty, err := repo.TaskStats(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, domain.TaskStats{}, empty)

	seedTask(t, repo, alice.ID, 0, domain.TaskInput{Title: "a", Priority: domain.TaskPriorityHigh})
	done := seedTask(t, repo, alice.ID, time.Minute, domain.TaskInput{Title: "b", Priority: domain.TaskPriorityHigh})
	seedTask(t, repo, alice.ID, 2*time.Minute, domain.TaskInput{Title: "c", Priority: domain.TaskPriorityLow})
	seedTask(t, repo, bob.ID, 0, domain.TaskInput{Title: "d", Priority: domain.TaskPriorityHigh})

	_, err = repo.UpdateTask(ctx, alice.ID, done.ID, func(task *domain.Task) { task.ToggleStatus(baseTime) })
	require.NoError(t, err)

	stats, err := repo.TaskStats(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, domain.TaskStats{Total: 3, Pending: 2, Completed: 1, HighPriority: 2}, stats)
}

func TestTaskRepository_UpdateTask_PersistsMutation(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepository(db)
	alice := createTestUser(t, db, "alice")
	ctx := context.Background()
	task := seedTask(t, repo, alice.ID, 0, domain.TaskInput{Title: "Draft", Description: strPtr("v1")})

	editedAt := baseTime.Add(time.Hour)
	updated, err := repo.UpdateTask(ctx, alice.ID, task.ID, func(task *domain.Task) {
		task.Apply(domain.TaskInput{Title: "Final", Category: domain.TaskCategoryWork}, editedAt)
	})
	require.NoError(t, err)
	require.Equal(t, "Final", updated.Title)

	got, err := repo.GetTask(ctx, alice.ID, task.ID)
	require.NoError(t, err)
	require.Equal(t, "Final", got.Title)
	require.Nil(t, got.Description)
	require.Equal(t, domain.TaskCategoryWork, got.Category)
	require.Equal(t, domain.TaskPriorityMedium, got.Priority)
	require.True(t, editedAt.Equal(got.UpdatedAt))
	require.True(t, baseTime.Equal(got.CreatedAt))
}

func TestTaskRepository_DeleteTask(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepository(db)
	alice := createTestUser(t, db, "alice")
	task := seedTask(t, repo, alice.ID, 0, domain.TaskInput{Title: "Temp"})

	require.NoError(t, repo.DeleteTask(context.Background(), alice.ID, task.ID))
	require.ErrorIs(t, repo.DeleteTask(context.Background(), alice.ID, task.ID), domain.ErrTaskNotFound)

	_, err := repo.GetTask(context.Background(), alice.ID, task.ID)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestBuildListTasksQuery(t *testing.T) {
	query, args := buildListTasksQuery(3, domain.TaskFilter{Status: domain.StatusFilterPending, Search: "a_b"})

	require.Contains(t, query, "status = ?")
	require.Contains(t, query, "ESCAPE '!'")
	require.Contains(t, query, "ORDER BY created_at DESC, id DESC")
	require.Equal(t, []any{uint64(3), "pending", "%a!_b%", "%a!_b%"}, args)
}

func taskIDs(tasks []domain.Task) []uint64 {
	ids := make([]uint64, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	return ids
}
