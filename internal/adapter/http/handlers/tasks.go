package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"todoapp/internal/adapter/http/dto"
	"todoapp/internal/adapter/http/mapper"
	"todoapp/internal/adapter/http/middleware"
	"todoapp/internal/adapter/http/validation"
	"todoapp/internal/adapter/http/views"
	"todoapp/internal/core/domain"
	"todoapp/internal/core/ports"
	"todoapp/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) Dashboard(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	filter := domain.NewTaskFilter(c.Query("status"), c.Query("search"))
	dashboard, err := h.taskService.Dashboard(c.Request.Context(), userID, filter)
	if err != nil {
		zap.L().Error("failed to load dashboard", zap.Uint64("user_id", userID), zap.Error(err))
		renderError(c, http.StatusInternalServerError, apierrors.MsgFailLoadDashboard)
		return
	}

	render(c, http.StatusOK, "dashboard.html", views.Page{
		Title: "Dashboard",
		Data: views.DashboardData{
			Tasks:  mapper.ToTaskItems(dashboard.Tasks),
			Stats:  mapper.ToTaskStats(dashboard.Stats),
			Status: string(dashboard.Filter.Status),
			Search: dashboard.Filter.Search,
		},
	})
}

func (h *TaskHandler) ShowAddTask(c *gin.Context) {
	renderTaskForm(c, http.StatusOK, validation.DefaultTaskRequest(), nil, addTaskForm())
}

func (h *TaskHandler) AddTask(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req dto.TaskRequest
	if err := decodeForm(c, &req); err != nil {
		renderError(c, http.StatusBadRequest, apierrors.MsgFailCreateTask)
		return
	}

	input, fieldErrors := validation.BuildTaskInput(req)
	if fieldErrors != nil {
		renderTaskForm(c, http.StatusOK, req, fieldErrors, addTaskForm())
		return
	}

	if _, err := h.taskService.CreateTask(c.Request.Context(), userID, input); err != nil {
		zap.L().Error("failed to create task", zap.Uint64("user_id", userID), zap.Error(err))
		renderError(c, http.StatusInternalServerError, apierrors.MsgFailCreateTask)
		return
	}

	middleware.AddFlash(c, apierrors.MsgTaskAdded)
	c.Redirect(http.StatusFound, middleware.DashboardPath)
}

func (h *TaskHandler) ShowEditTask(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}
	taskID, ok := parseTaskID(c)
	if !ok {
		renderError(c, http.StatusNotFound, apierrors.MsgTaskNotFound)
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), userID, taskID)
	if err != nil {
		h.renderTaskError(c, err, taskID, apierrors.MsgInternalError)
		return
	}

	renderTaskForm(c, http.StatusOK, mapper.ToTaskRequest(task), nil, editTaskForm(taskID))
}

func (h *TaskHandler) EditTask(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}
	taskID, ok := parseTaskID(c)
	if !ok {
		renderError(c, http.StatusNotFound, apierrors.MsgTaskNotFound)
		return
	}

	var req dto.TaskRequest
	if err := decodeForm(c, &req); err != nil {
		renderError(c, http.StatusBadRequest, apierrors.MsgFailUpdateTask)
		return
	}

	input, fieldErrors := validation.BuildTaskInput(req)
	if fieldErrors != nil {
		// Only the owner may see the form again.
		if _, err := h.taskService.GetTask(c.Request.Context(), userID, taskID); err != nil {
			h.renderTaskError(c, err, taskID, apierrors.MsgFailUpdateTask)
			return
		}
		renderTaskForm(c, http.StatusOK, req, fieldErrors, editTaskForm(taskID))
		return
	}

	if _, err := h.taskService.UpdateTask(c.Request.Context(), userID, taskID, input); err != nil {
		h.renderTaskError(c, err, taskID, apierrors.MsgFailUpdateTask)
		return
	}

	middleware.AddFlash(c, apierrors.MsgTaskUpdated)
	c.Redirect(http.StatusFound, middleware.DashboardPath)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}
	taskID, ok := parseTaskID(c)
	if !ok {
		renderError(c, http.StatusNotFound, apierrors.MsgTaskNotFound)
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), userID, taskID); err != nil {
		h.renderTaskError(c, err, taskID, apierrors.MsgFailDeleteTask)
		return
	}

	middleware.AddFlash(c, apierrors.MsgTaskDeleted)
	c.Redirect(http.StatusFound, middleware.DashboardPath)
}

func (h *TaskHandler) ToggleTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID, ok := h.currentUser(c)
	if !ok {
		return
	}
	taskID, ok := parseTaskID(c)
	if !ok {
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
		)
		return
	}

	task, err := h.taskService.ToggleTask(c.Request.Context(), userID, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to toggle task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailToggleTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.ToggleTaskResponse{Status: string(task.Status)})
}

// currentUser aborts with 401 when the auth middleware did not run.
func (h *TaskHandler) currentUser(c *gin.Context) (uint64, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.AbortWithStatusJSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgAuthenticationRequired, middleware.GetLang(c)),
		)
	}
	return userID, ok
}

func (h *TaskHandler) renderTaskError(c *gin.Context, err error, taskID uint64, failMsg string) {
	if errors.Is(err, domain.ErrTaskNotFound) {
		renderError(c, http.StatusNotFound, apierrors.MsgTaskNotFound)
		return
	}

	zap.L().Error("task operation failed", zap.Uint64("task_id", taskID), zap.String("path", c.FullPath()), zap.Error(err))
	renderError(c, http.StatusInternalServerError, failMsg)
}

func renderTaskForm(c *gin.Context, status int, req dto.TaskRequest, fieldErrors validation.FieldErrors, data views.TaskFormData) {
	render(c, status, "task_form.html", views.Page{
		Title:  data.Heading,
		Form:   req,
		Errors: translateFieldErrors(fieldErrors, middleware.GetLang(c)),
		Data:   data,
	})
}

func addTaskForm() views.TaskFormData {
	return taskFormData("Add task", "/add_task", "Add task")
}

func editTaskForm(taskID uint64) views.TaskFormData {
	return taskFormData("Edit task", "/edit_task/"+strconv.FormatUint(taskID, 10), "Save changes")
}

func taskFormData(heading, action, submit string) views.TaskFormData {
	priorities := make([]string, 0, len(domain.TaskPriorities))
	for _, priority := range domain.TaskPriorities {
		priorities = append(priorities, string(priority))
	}
	categories := make([]string, 0, len(domain.TaskCategories))
	for _, category := range domain.TaskCategories {
		categories = append(categories, string(category))
	}

	return views.TaskFormData{
		Heading:    heading,
		Action:     action,
		Submit:     submit,
		Priorities: priorities,
		Categories: categories,
	}
}
