package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the error payload every failing request renders.
// Clients depend on exactly this shape: a single "error" key with the message.
type ErrorBody struct {
	Error string `json:"error"`
}

// Success writes the payload as-is with the given status code.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Error writes an {error: message} body with the given status code.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorBody{Error: message})
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message)
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, message)
}
