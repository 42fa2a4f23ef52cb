package mapper

import (
	"time"

	"todoapp/internal/adapter/http/dto"
	"todoapp/internal/core/domain"
)

const dateLayout = "2006-01-02"

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Title:     task.Title,
		Status:    string(task.Status),
		Priority:  string(task.Priority),
		Category:  string(task.Category),
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
		UpdatedAt: task.UpdatedAt.Format(time.RFC3339),
		Completed: task.Status == domain.TaskStatusCompleted,
	}

	if task.Description != nil {
		item.Description = *task.Description
	}

	if task.DueDate != nil {
		item.DueDate = task.DueDate.Format(dateLayout)
	}

	return item
}

// ToTaskRequest pre-populates the edit form with the task's current values.
func ToTaskRequest(task domain.Task) dto.TaskRequest {
	req := dto.TaskRequest{
		Title:    task.Title,
		Priority: string(task.Priority),
		Category: string(task.Category),
	}

	if task.Description != nil {
		req.Description = *task.Description
	}

	if task.DueDate != nil {
		req.DueDate = task.DueDate.Format(dateLayout)
	}

	return req
}

func ToTaskStats(stats domain.TaskStats) dto.TaskStats {
	return dto.TaskStats{
		Total:        stats.Total,
		Pending:      stats.Pending,
		Completed:    stats.Completed,
		HighPriority: stats.HighPriority,
	}
}
