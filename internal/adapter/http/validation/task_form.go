package validation

import (
	"strings"
	"time"

	"todoapp/internal/adapter/http/dto"
	"todoapp/internal/core/domain"
)

const dateLayout = "2006-01-02"

// BuildTaskInput validates a submitted task form. Surrounding whitespace is
// trimmed before the rules run, so a blank title is reported as missing.
func BuildTaskInput(req dto.TaskRequest) (domain.TaskInput, FieldErrors) {
	req = normalizeTaskRequest(req)

	if fieldErrors := validateStruct(req); fieldErrors != nil {
		return domain.TaskInput{}, fieldErrors
	}

	input := domain.TaskInput{
		Title:    req.Title,
		Priority: domain.TaskPriority(req.Priority),
		Category: domain.TaskCategory(req.Category),
	}
	if input.Priority == "" {
		input.Priority = domain.DefaultTaskPriority
	}
	if input.Category == "" {
		input.Category = domain.DefaultTaskCategory
	}

	if req.Description != "" {
		description := req.Description
		input.Description = &description
	}

	if req.DueDate != "" {
		dueDate, err := time.Parse(dateLayout, req.DueDate)
		if err != nil {
			return domain.TaskInput{}, FieldErrors{"due_date": {MessageID: MsgInvalidDate}}
		}
		input.DueDate = &dueDate
	}

	return input, nil
}

func normalizeTaskRequest(req dto.TaskRequest) dto.TaskRequest {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.Priority = strings.ToLower(strings.TrimSpace(req.Priority))
	req.Category = strings.ToLower(strings.TrimSpace(req.Category))
	req.DueDate = strings.TrimSpace(req.DueDate)
	return req
}

// DefaultTaskRequest is the blank add-task form.
func DefaultTaskRequest() dto.TaskRequest {
	return dto.TaskRequest{
		Priority: string(domain.DefaultTaskPriority),
		Category: string(domain.DefaultTaskCategory),
	}
}
