package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	deliverycontext "todo/internal/delivery/context"
	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"
	"todo/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	taskRepo    repository.TaskRepository
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// TaskServiceParams holds dependencies for taskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TaskRepo    repository.TaskRepository
	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		taskRepo:    params.TaskRepo,
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListTasks returns every task ordered by id ascending.
func (srv *taskService) ListTasks(ctx context.Context) ([]*entity.Task, error) {
	tasks, err := srv.taskRepo.ListAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list tasks", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return tasks, nil
}

// CreateTask validates the description and persists a new task. The creator
// is recorded as owner when the claim's email still resolves to an account.
func (srv *taskService) CreateTask(ctx context.Context, input *usecase.CreateTaskInput) (*entity.Task, error) {
	if strings.TrimSpace(input.Description) == "" {
		srv.log(ctx).Warn("Task creation rejected, empty description")

		return nil, domainerrors.ErrTaskDescriptionMissing.WrapMessage("description must not be empty")
	}

	task := &entity.Task{Description: input.Description}

	if input.OwnerEmail != "" {
		owner, err := srv.accountRepo.FindByEmail(ctx, input.OwnerEmail)
		if err != nil {
			// The token was verified upstream; a vanished account only
			// costs us the owner column, not the whole request.
			srv.log(ctx).Warn("Could not resolve task owner", slog.String("email", input.OwnerEmail), slog.Any("error", err))
		} else {
			task.OwnerID = &owner.ID
		}
	}

	if err := srv.taskRepo.Create(ctx, task); err != nil {
		srv.log(ctx).Error("Failed to create task", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create task")
	}

	srv.log(ctx).Debug("Task created", slog.Int64("taskID", task.ID))

	return task, nil
}

// DeleteTask parses and validates the raw id before it reaches the query
// layer, then deletes the matching row. Deleting a non-existent id succeeds.
func (srv *taskService) DeleteTask(ctx context.Context, input *usecase.DeleteTaskInput) (int64, error) {
	id, err := strconv.ParseInt(input.RawID, 10, 64)
	if err != nil || id <= 0 {
		srv.log(ctx).Warn("Task deletion rejected, invalid id", slog.String("rawID", input.RawID))

		return 0, domainerrors.ErrInvalidTaskID.WrapMessage("id must be a positive integer")
	}

	if err := srv.taskRepo.DeleteByID(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete task", slog.Int64("taskID", id), slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to delete task")
	}

	srv.log(ctx).Debug("Task deleted", slog.Int64("taskID", id))

	return id, nil
}
