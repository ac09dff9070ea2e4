package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dto "task-board.com/task-board/internal/data_models"
	apperrors "task-board.com/task-board/internal/errors"
	"task-board.com/task-board/internal/http/validators"
	"task-board.com/task-board/internal/identity"
	"task-board.com/task-board/internal/services"
)

type Handler struct {
	taskService        *services.TaskService
	applicationService *services.ApplicationService
	identityClient     *identity.ClerkClient
	logger             *zap.Logger
}

func NewHandler(
	taskService *services.TaskService,
	applicationService *services.ApplicationService,
	identityClient *identity.ClerkClient,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		taskService:        taskService,
		applicationService: applicationService,
		identityClient:     identityClient,
		logger:             logger,
	}
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON payload"})
	}

	deadline, err := validators.ValidateCreateTaskRequest(&req)
	if err != nil {
		return h.respondError(c, err)
	}

	task, err := h.taskService.CreateTask(
		c.Request().Context(),
		req.Title, req.Description, req.Reward, deadline, req.PostedBy,
	)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context())
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := parseTaskID(c.Param("id"))
	if err != nil {
		return h.respondError(c, err)
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := parseTaskID(c.Param("id"))
	if err != nil {
		return h.respondError(c, err)
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON payload"})
	}

	deadline, err := validators.ValidateUpdateTaskRequest(&req)
	if err != nil {
		return h.respondError(c, err)
	}

	task, err := h.taskService.UpdateTask(
		c.Request().Context(),
		id, req.Title, req.Description, req.Reward, deadline,
	)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := parseTaskID(c.Param("id"))
	if err != nil {
		return h.respondError(c, err)
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Task deleted successfully"})
}

func (h *Handler) ListTasksByUser(c echo.Context) error {
	tasks, err := h.taskService.ListTasksByPoster(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) Apply(c echo.Context) error {
	var req dto.ApplyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON payload"})
	}

	if err := validators.ValidateApplyRequest(&req); err != nil {
		return h.respondError(c, err)
	}

	applicant, err := h.applicationService.Apply(c.Request().Context(), req.UserID, req.TaskID)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, applicant)
}

func (h *Handler) ListApplicants(c echo.Context) error {
	id, err := parseTaskID(c.Param("id"))
	if err != nil {
		return h.respondError(c, err)
	}

	applicants, err := h.applicationService.ListApplicantsForTask(c.Request().Context(), id)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, applicants)
}

func (h *Handler) ListApplicationsByUser(c echo.Context) error {
	applicants, err := h.applicationService.ListApplicationsForUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, applicants)
}

// GetFirstName always answers 200; the identity adapter falls back to the
// user id rather than failing.
func (h *Handler) GetFirstName(c echo.Context) error {
	userID := c.Param("userId")
	if userID == "" {
		return h.respondError(c, apperrors.ErrUserIDRequired)
	}

	firstName := h.identityClient.ResolveFirstName(c.Request().Context(), userID)

	return c.JSON(http.StatusOK, echo.Map{"firstName": firstName})
}

// respondError maps known exceptions to their status and collapses anything
// else to a generic 500. Internal detail is logged, never echoed.
func (h *Handler) respondError(c echo.Context, err error) error {
	status := apperrors.StatusCode(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.JSON(status, echo.Map{"error": "something went wrong"})
	}

	return c.JSON(status, echo.Map{"error": err.Error()})
}

func parseTaskID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperrors.ErrInvalidTaskID
	}
	return uint(id), nil
}
