package usecase

import (
	"context"

	"todo/internal/domain/entity"
)

// CreateTaskInput defines the data required to create a task.
// OwnerEmail is the subject of the verified bearer token.
type CreateTaskInput struct {
	Description string
	OwnerEmail  string
}

// DeleteTaskInput carries the raw path segment for a delete request.
// RawID is validated as an integer before it goes anywhere near a query.
type DeleteTaskInput struct {
	RawID      string
	OwnerEmail string
}

// TaskUsecase defines the interface for task-related business operations.
type TaskUsecase interface {
	// ListTasks returns every task ordered by id ascending; an empty store
	// yields an empty slice, never an error.
	ListTasks(ctx context.Context) ([]*entity.Task, error)

	// CreateTask validates the description and persists a new task,
	// recording the creator as owner when resolvable.
	CreateTask(ctx context.Context, input *CreateTaskInput) (*entity.Task, error)

	// DeleteTask parses and validates the raw id, then deletes the matching
	// row. A syntactically valid id with no matching row still succeeds and
	// returns the parsed id.
	DeleteTask(ctx context.Context, input *DeleteTaskInput) (int64, error)
}
