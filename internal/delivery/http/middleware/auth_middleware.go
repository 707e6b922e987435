package middleware

import (
	"strings"

	deliverycontext "todo/internal/delivery/context"
	"todo/internal/delivery/http/response"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the bearer token.
// Existing clients send the raw token in the Authorization header, so the
// "Bearer " prefix is accepted but not required.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			// Rendered by the error middleware as 401 {error: message}.
			return domainerrors.ErrTokenInvalid.WrapMessage("token verification failed")
		}

		// Attach the verified identity for handlers to use.
		deliverycontext.SetAccountEmail(c, claims.Email())

		return next(c)
	}
}
