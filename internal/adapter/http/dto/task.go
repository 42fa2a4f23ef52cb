package dto

// TaskItem is the view model of a task on the dashboard.
type TaskItem struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	DueDate     string `json:"due_date,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	Completed   bool   `json:"completed"`
}

type TaskStats struct {
	Total        int `json:"total"`
	Pending      int `json:"pending"`
	Completed    int `json:"completed"`
	HighPriority int `json:"high_priority"`
}

// TaskRequest is the add/edit task form.
type TaskRequest struct {
	Title       string `form:"title" binding:"required,max=200"`
	Description string `form:"description"`
	Priority    string `form:"priority" binding:"omitempty,oneof=low medium high"`
	Category    string `form:"category" binding:"omitempty,oneof=personal work shopping health"`
	DueDate     string `form:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

type ToggleTaskResponse struct {
	Status string `json:"status"`
}
