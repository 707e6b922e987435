package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "todo/internal/delivery/context"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/delivery/http/response"
	"todo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createTaskRequest is the JSON body for POST /create.
// A JSON null description binds to the empty string and is rejected downstream.
type createTaskRequest struct {
	Description string `json:"description"`
}

// taskResponse is the public view of a task.
type taskResponse struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

// deleteResponse echoes the parsed id back, whether or not a row was deleted.
type deleteResponse struct {
	ID int64 `json:"id"`
}

// TaskHandler holds dependencies for task-related handlers.
type TaskHandler struct {
	uc     usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles GET /, returning every task ordered by id.
func (h *TaskHandler) List(c echo.Context) error {
	tasks, err := h.uc.ListTasks(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	// Always render a JSON array, never null.
	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskResponse{ID: t.ID, Description: t.Description})
	}

	return response.Success(c, http.StatusOK, out)
}

// Create handles POST /create for an authenticated caller.
func (h *TaskHandler) Create(c echo.Context) error {
	var input createTaskRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrTaskDescriptionMissing.WrapMessage("invalid task input")
	}

	task, err := h.uc.CreateTask(c.Request().Context(), &usecase.CreateTaskInput{
		Description: input.Description,
		OwnerEmail:  deliverycontext.GetAccountEmail(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, taskResponse{
		ID:          task.ID,
		Description: task.Description,
	})
}

// Delete handles DELETE /delete/:id for an authenticated caller.
// The id is validated before it reaches the query layer; a valid id with no
// matching row still succeeds.
func (h *TaskHandler) Delete(c echo.Context) error {
	id, err := h.uc.DeleteTask(c.Request().Context(), &usecase.DeleteTaskInput{
		RawID:      c.Param("id"),
		OwnerEmail: deliverycontext.GetAccountEmail(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deleteResponse{ID: id})
}
