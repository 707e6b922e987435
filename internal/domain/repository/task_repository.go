package repository

import (
	"context"

	"todo/internal/domain/entity"
)

// TaskRepository defines the standard operations for task persistence.
type TaskRepository interface {
	// ListAll retrieves every task, ordered by id ascending.
	ListAll(ctx context.Context) ([]*entity.Task, error)

	// Create persists a new task entity to the storage.
	Create(ctx context.Context, task *entity.Task) error

	// DeleteByID removes the task with the given id. Deleting a task that
	// does not exist is not an error.
	DeleteByID(ctx context.Context, id int64) error
}
