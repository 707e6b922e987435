package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"
	mockRepo "todo/internal/mocks/repository"
	"todo/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// taskServiceFixtures holds all test dependencies for task service tests.
type taskServiceFixtures struct {
	service     usecase.TaskUsecase
	taskRepo    *mockRepo.MockTaskRepository
	accountRepo *mockRepo.MockAccountRepository
}

func createTestTaskService(t *testing.T) taskServiceFixtures {
	taskRepo := mockRepo.NewMockTaskRepository(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewTaskService(TaskServiceParams{
		TaskRepo:    taskRepo,
		AccountRepo: accountRepo,
		Logger:      logger,
	})

	return taskServiceFixtures{
		service:     service,
		taskRepo:    taskRepo,
		accountRepo: accountRepo,
	}
}

func TestTaskService_ListTasks(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	stored := []*entity.Task{
		{ID: 1, Description: "buy milk"},
		{ID: 2, Description: "walk the dog"},
	}

	fx.taskRepo.EXPECT().ListAll(ctx).Return(stored, nil)

	tasks, err := fx.service.ListTasks(ctx)

	require.NoError(t, err)
	assert.Equal(t, stored, tasks)
}

func TestTaskService_ListTasks_Empty(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	fx.taskRepo.EXPECT().ListAll(ctx).Return([]*entity.Task{}, nil)

	tasks, err := fx.service.ListTasks(ctx)

	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestTaskService_ListTasks_RepoFailure(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	fx.taskRepo.EXPECT().ListAll(ctx).Return(nil, errors.New("connection reset"))

	tasks, err := fx.service.ListTasks(ctx)

	require.Error(t, err)
	assert.Nil(t, tasks)
}

func TestTaskService_CreateTask_Success(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	owner := &entity.Account{ID: 5, Email: "owner@example.com"}

	fx.accountRepo.EXPECT().FindByEmail(ctx, owner.Email).Return(owner, nil)
	fx.taskRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Task")).
		Run(func(ctx context.Context, task *entity.Task) {
			task.ID = 42
		}).
		Return(nil)

	task, err := fx.service.CreateTask(ctx, &usecase.CreateTaskInput{
		Description: "buy milk",
		OwnerEmail:  owner.Email,
	})

	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, int64(42), task.ID)
	assert.Equal(t, "buy milk", task.Description)
	require.NotNil(t, task.OwnerID)
	assert.Equal(t, owner.ID, *task.OwnerID)
}

func TestTaskService_CreateTask_EmptyDescription(t *testing.T) {
	tests := []struct {
		name        string
		description string
	}{
		{name: "empty", description: ""},
		{name: "whitespace only", description: "   \t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestTaskService(t)

			task, err := fx.service.CreateTask(context.Background(), &usecase.CreateTaskInput{
				Description: tt.description,
			})

			require.Error(t, err)
			assert.Nil(t, task)
			assert.ErrorIs(t, err, domainerrors.ErrTaskDescriptionMissing)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 500, appErr.HTTPCode())
		})
	}
}

func TestTaskService_CreateTask_OwnerLookupFails(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "gone@example.com").
		Return(nil, repository.ErrAccountNotFound)

	fx.taskRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Task")).
		Return(nil)

	// A vanished owner account still lets the task through, just unowned.
	task, err := fx.service.CreateTask(ctx, &usecase.CreateTaskInput{
		Description: "buy milk",
		OwnerEmail:  "gone@example.com",
	})

	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Nil(t, task.OwnerID)
}

func TestTaskService_DeleteTask_Success(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	fx.taskRepo.EXPECT().DeleteByID(ctx, int64(3)).Return(nil)

	id, err := fx.service.DeleteTask(ctx, &usecase.DeleteTaskInput{RawID: "3"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestTaskService_DeleteTask_NonExistentID(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	// Deleting an id with no matching row is still a success.
	fx.taskRepo.EXPECT().DeleteByID(ctx, int64(999)).Return(nil)

	id, err := fx.service.DeleteTask(ctx, &usecase.DeleteTaskInput{RawID: "999"})

	require.NoError(t, err)
	assert.Equal(t, int64(999), id)
}

func TestTaskService_DeleteTask_InvalidID(t *testing.T) {
	tests := []struct {
		name  string
		rawID string
	}{
		{name: "not a number", rawID: "abc"},
		{name: "sql injection attempt", rawID: "1; DROP TABLE task"},
		{name: "empty", rawID: ""},
		{name: "zero", rawID: "0"},
		{name: "negative", rawID: "-1"},
		{name: "float", rawID: "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestTaskService(t)

			// The repository must never see an unparsed id.
			id, err := fx.service.DeleteTask(context.Background(), &usecase.DeleteTaskInput{RawID: tt.rawID})

			require.Error(t, err)
			assert.Zero(t, id)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidTaskID)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 500, appErr.HTTPCode())
		})
	}
}

func TestTaskService_DeleteTask_RepoFailure(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	fx.taskRepo.EXPECT().DeleteByID(ctx, int64(3)).Return(errors.New("connection reset"))

	id, err := fx.service.DeleteTask(ctx, &usecase.DeleteTaskInput{RawID: "3"})

	require.Error(t, err)
	assert.Zero(t, id)
}
