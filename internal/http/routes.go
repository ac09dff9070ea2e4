package http

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	middleware "task-board.com/task-board/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, logger *zap.Logger, rateLimitPerMinute int) {
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.Metrics())
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute, logger))

	api := e.Group("/api")

	api.POST("/tasks", h.CreateTask)
	api.GET("/tasks", h.ListTasks)
	api.GET("/tasks/user/:userId", h.ListTasksByUser)
	api.GET("/tasks/:id", h.GetTask)
	api.PUT("/tasks/:id", h.UpdateTask)
	api.DELETE("/tasks/:id", h.DeleteTask)
	api.POST("/tasks/:id/apply", h.Apply)
	api.GET("/tasks/:id/applicants", h.ListApplicants)
	api.GET("/applications/user/:userId", h.ListApplicationsByUser)
	api.GET("/user/:userId/firstname", h.GetFirstName)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
