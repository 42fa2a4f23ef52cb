package http

import (
	"todoapp/internal/adapter/http/handlers"
	"todoapp/internal/adapter/http/middleware"
	"todoapp/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health *handlers.HealthHandler
	Auth   *handlers.AuthHandler
	Tasks  *handlers.TaskHandler
}

// RegisterRoutes mounts the health API, the public auth pages and the
// session-protected task pages.
func RegisterRoutes(r *gin.Engine, sessions ports.SessionManager, loginLimiter *middleware.RateLimiter, h Handlers) {
	r.Use(middleware.LanguageMiddleware())
	r.NoRoute(handlers.NotFound)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
	}

	public := r.Group("/")
	public.Use(middleware.RedirectIfAuthenticated(sessions))
	{
		public.GET("/login", h.Auth.ShowLogin)
		public.POST("/login", loginLimiter.Middleware(), h.Auth.Login)
		public.GET("/register", h.Auth.ShowRegister)
		public.POST("/register", loginLimiter.Middleware(), h.Auth.Register)
	}

	protected := r.Group("/")
	protected.Use(middleware.RequireAuth(sessions))
	{
		protected.GET("/logout", h.Auth.Logout)
		protected.GET("/", h.Tasks.Dashboard)
		protected.GET("/add_task", h.Tasks.ShowAddTask)
		protected.POST("/add_task", h.Tasks.AddTask)
		protected.GET("/edit_task/:id", h.Tasks.ShowEditTask)
		protected.POST("/edit_task/:id", h.Tasks.EditTask)
		protected.POST("/delete_task/:id", h.Tasks.DeleteTask)
		protected.POST("/toggle_task/:id", h.Tasks.ToggleTask)
	}
}
