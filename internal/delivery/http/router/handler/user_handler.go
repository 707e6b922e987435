// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	domainerrors "todo/internal/domain/errors"
	"todo/internal/delivery/http/response"
	"todo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// registerRequest is the JSON body for POST /user/register and /user/login.
type registerRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// accountResponse is the public view of an account; the password hash never leaves the store.
type accountResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// loginResponse extends accountResponse with the issued bearer token.
type loginResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var input registerRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("missing registration fields")
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, accountResponse{
		ID:    output.Account.ID,
		Email: output.Account.Email,
	})
}

// Login handles the login request.
func (h *UserHandler) Login(c echo.Context) error {
	var input registerRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("missing login fields")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse{
		ID:    output.Account.ID,
		Email: output.Account.Email,
		Token: output.Token,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
