package domain

import (
	"strings"
	"time"
)

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// Toggled returns the opposite status. Anything that is not completed is
// considered pending.
func (s TaskStatus) Toggled() TaskStatus {
	if s == TaskStatusCompleted {
		return TaskStatusPending
	}
	return TaskStatusCompleted
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

var TaskPriorities = []TaskPriority{TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh}

type TaskCategory string

const (
	TaskCategoryPersonal TaskCategory = "personal"
	TaskCategoryWork     TaskCategory = "work"
	TaskCategoryShopping TaskCategory = "shopping"
	TaskCategoryHealth   TaskCategory = "health"
)

var TaskCategories = []TaskCategory{
	TaskCategoryPersonal,
	TaskCategoryWork,
	TaskCategoryShopping,
	TaskCategoryHealth,
}

const (
	DefaultTaskPriority = TaskPriorityMedium
	DefaultTaskCategory = TaskCategoryPersonal
	TaskTitleMaxLength  = 200
)

type Task struct {
	ID          uint64
	UserID      uint64
	Title       string
	Description *string
	Priority    TaskPriority
	Category    TaskCategory
	DueDate     *time.Time
	Status      TaskStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskInput carries the user-editable fields of a task.
type TaskInput struct {
	Title       string
	Description *string
	Priority    TaskPriority
	Category    TaskCategory
	DueDate     *time.Time
}

func NewTask(userID uint64, input TaskInput, now time.Time) Task {
	task := Task{
		UserID:    userID,
		Status:    TaskStatusPending,
		CreatedAt: now,
	}
	task.Apply(input, now)
	return task
}

// Apply overwrites the editable fields and bumps UpdatedAt. Status is left alone.
func (t *Task) Apply(input TaskInput, now time.Time) {
	t.Title = input.Title
	t.Description = input.Description
	t.Priority = input.Priority
	if t.Priority == "" {
		t.Priority = DefaultTaskPriority
	}
	t.Category = input.Category
	if t.Category == "" {
		t.Category = DefaultTaskCategory
	}
	t.DueDate = input.DueDate
	t.UpdatedAt = now
}

func (t *Task) ToggleStatus(now time.Time) {
	t.Status = t.Status.Toggled()
	t.UpdatedAt = now
}

type StatusFilter string

const (
	StatusFilterAll       StatusFilter = "all"
	StatusFilterPending   StatusFilter = "pending"
	StatusFilterCompleted StatusFilter = "completed"
)

// ParseStatusFilter maps a raw query value to a filter; unknown values mean all.
func ParseStatusFilter(value string) StatusFilter {
	switch StatusFilter(strings.ToLower(strings.TrimSpace(value))) {
	case StatusFilterPending:
		return StatusFilterPending
	case StatusFilterCompleted:
		return StatusFilterCompleted
	default:
		return StatusFilterAll
	}
}

type TaskFilter struct {
	Status StatusFilter
	Search string
}

func NewTaskFilter(status, search string) TaskFilter {
	return TaskFilter{
		Status: ParseStatusFilter(status),
		Search: strings.TrimSpace(search),
	}
}

// TaskStats is always computed over every task of a user, regardless of filter.
type TaskStats struct {
	Total        int
	Pending      int
	Completed    int
	HighPriority int
}

type Dashboard struct {
	Tasks  []Task
	Stats  TaskStats
	Filter TaskFilter
}
