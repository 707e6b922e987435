package postgres

import (
	"context"

	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"
	"todo/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// taskRepository implements the domain.TaskRepository interface using GORM.
// Every query goes through GORM parameter binding; raw id text never reaches SQL.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

// ListAll retrieves every task, ordered by id ascending for a stable listing.
func (repo *taskRepository) ListAll(ctx context.Context) ([]*entity.Task, error) {
	var taskMs []model.TaskModel
	err := repo.db.WithContext(ctx).
		Order("id asc").
		Find(&taskMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	tasks := make([]*entity.Task, 0, len(taskMs))
	for i := range taskMs {
		tasks = append(tasks, toTaskDomain(&taskMs[i]))
	}

	return tasks, nil
}

// Create persists a new task entity to the database.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrTaskDescriptionMissing.WrapMessage("description must not be null")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid account reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	// Update the task entity with the generated ID and timestamp
	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt

	return nil
}

// DeleteByID removes the task with the given id. A missing row is not an
// error; deleting nothing is a successful no-op.
func (repo *taskRepository) DeleteByID(ctx context.Context, id int64) error {
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TaskModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete task")
	}

	return nil
}

func toTaskDomain(m *model.TaskModel) *entity.Task {
	return &entity.Task{
		ID:          m.ID,
		Description: m.Description,
		OwnerID:     m.AccountID,
		CreatedAt:   m.CreatedAt,
	}
}

func fromTaskDomain(t *entity.Task) *model.TaskModel {
	return &model.TaskModel{
		ID:          t.ID,
		Description: t.Description,
		AccountID:   t.OwnerID,
	}
}
