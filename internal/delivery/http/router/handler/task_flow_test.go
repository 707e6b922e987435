package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"todo/config"
	"todo/internal/delivery/http/middleware"
	"todo/internal/domain/entity"
	"todo/internal/domain/repository"
	"todo/internal/infra/auth"
	"todo/internal/usecase/impl"

	"golang.org/x/crypto/bcrypt"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory repositories backing the full request flow below. They honor the
// same contracts as the gorm implementations: unique emails, generated ids,
// id-ordered listing, and delete as a no-op when no row matches.

type memAccountRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*entity.Account
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{nextID: 1, byID: make(map[int64]*entity.Account)}
}

func (r *memAccountRepo) FindByID(_ context.Context, id int64) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a, ok := r.byID[id]; ok {
		copied := *a

		return &copied, nil
	}

	return nil, repository.ErrAccountNotFound
}

func (r *memAccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.byID {
		if a.Email == email {
			copied := *a

			return &copied, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *memAccountRepo) Create(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account.ID = r.nextID
	r.nextID++
	copied := *account
	r.byID[account.ID] = &copied

	return nil
}

type memTaskRepo struct {
	mu     sync.Mutex
	nextID int64
	tasks  []*entity.Task
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{nextID: 1}
}

func (r *memTaskRepo) ListAll(_ context.Context) ([]*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		copied := *t
		out = append(out, &copied)
	}

	return out, nil
}

func (r *memTaskRepo) Create(_ context.Context, task *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task.ID = r.nextID
	r.nextID++
	copied := *task
	r.tasks = append(r.tasks, &copied)

	return nil
}

func (r *memTaskRepo) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.tasks {
		if t.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)

			break
		}
	}

	return nil
}

// memTxManager satisfies TransactionManager by running the callback against
// the shared in-memory repositories without any transactional machinery.
type memTxManager struct {
	accounts *memAccountRepo
	tasks    *memTaskRepo
}

func (m *memTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m)
}

func (m *memTxManager) AccountRepo() repository.AccountRepository { return m.accounts }

func (m *memTxManager) TaskRepo() repository.TaskRepository { return m.tasks }

// newFlowServer wires real usecases, real bcrypt and JWT services, and the
// production middleware chain over in-memory storage.
func newFlowServer(t *testing.T) *echo.Echo {
	t.Helper()

	accounts := newMemAccountRepo()
	tasks := newMemTaskRepo()
	txManager := &memTxManager{accounts: accounts, tasks: tasks}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.SecretKey.Access = "flow-test-secret"

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)

	userUC := impl.NewUserService(impl.UserServiceParams{
		TxManager:    txManager,
		AccountRepo:  accounts,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})
	taskUC := impl.NewTaskService(impl.TaskServiceParams{
		TaskRepo:    tasks,
		AccountRepo: accounts,
		Logger:      logger,
	})

	e := newTestEcho()
	authMW := middleware.NewAuthMiddleware(tokenService)
	userHandler := NewUserHandler(userUC, logger)
	taskHandler := NewTaskHandler(taskUC, logger)

	e.GET("/", taskHandler.List)
	e.POST("/create", taskHandler.Create, authMW.Authenticate)
	e.DELETE("/delete/:id", taskHandler.Delete, authMW.Authenticate)
	e.POST("/user/register", userHandler.Register)
	e.POST("/user/login", userHandler.Login)

	return e
}

func doRequest(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAccountAndTaskFlow(t *testing.T) {
	e := newFlowServer(t)

	// Register a fresh account.
	rec := doRequest(e, http.MethodPost, "/user/register", `{"email":"flow@example.com","password":"Password123!"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"email":"flow@example.com"}`, rec.Body.String())

	// Log in and capture the issued token.
	rec = doRequest(e, http.MethodPost, "/user/login", `{"email":"flow@example.com","password":"Password123!"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var loginBody struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loginBody))
	assert.Equal(t, int64(1), loginBody.ID)
	require.NotEmpty(t, loginBody.Token)

	// The wrong password never yields a token.
	rec = doRequest(e, http.MethodPost, "/user/login", `{"email":"flow@example.com","password":"nope"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotContains(t, rec.Body.String(), "token")

	// Create a task with the token.
	rec = doRequest(e, http.MethodPost, "/create", `{"description":"buy milk"}`, loginBody.Token)
	require.Equal(t, http.StatusOK, rec.Code)

	var created struct {
		ID          int64  `json:"id"`
		Description string `json:"description"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "buy milk", created.Description)
	require.NotZero(t, created.ID)

	// The listing now contains the created task.
	rec = doRequest(e, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"description":"buy milk"}]`, rec.Body.String())

	// A null description surfaces as a server error.
	rec = doRequest(e, http.MethodPost, "/create", `{"description":null}`, loginBody.Token)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Task description is required"}`, rec.Body.String())

	// Delete the task, then delete the same id again on the now-empty store;
	// both return {id}.
	rec = doRequest(e, http.MethodDelete, "/delete/1", "", loginBody.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1}`, rec.Body.String())

	rec = doRequest(e, http.MethodDelete, "/delete/1", "", loginBody.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1}`, rec.Body.String())

	rec = doRequest(e, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	// Mutations without a token stay locked out.
	rec = doRequest(e, http.MethodPost, "/create", `{"description":"no token"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
