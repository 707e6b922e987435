package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "todo/internal/delivery/context"
	"todo/internal/domain/service"
	mockSvc "todo/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func claimsFor(email string) *service.Claims {
	return &service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: email},
	}
}

// runAuthenticated serves a request through the auth middleware with the
// production error handler, so failures render exactly as clients see them.
func runAuthenticated(t *testing.T, tokenSvc service.TokenService, authHeader string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	e := echo.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = NewErrorMiddleware(logger).HandleHTTPError

	var seenEmail string
	next := func(c echo.Context) error {
		seenEmail = deliverycontext.GetAccountEmail(c)

		return c.NoContent(http.StatusOK)
	}

	m := NewAuthMiddleware(tokenSvc)
	e.POST("/create", next, m.Authenticate)

	req := httptest.NewRequest(http.MethodPost, "/create", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec, seenEmail
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, _ := runAuthenticated(t, tokenSvc, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Authorization header is missing"}`, rec.Body.String())
}

func TestAuthMiddleware_RawToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("raw-token").Return(claimsFor("test@example.com"), nil)

	rec, seenEmail := runAuthenticated(t, tokenSvc, "raw-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test@example.com", seenEmail)
}

func TestAuthMiddleware_BearerPrefix(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("prefixed-token").Return(claimsFor("test@example.com"), nil)

	// The prefix is stripped before validation.
	rec, seenEmail := runAuthenticated(t, tokenSvc, "Bearer prefixed-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test@example.com", seenEmail)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("garbage").Return(nil, errors.New("failed to parse token structure"))

	rec, _ := runAuthenticated(t, tokenSvc, "garbage")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid or malformed token"}`, rec.Body.String())
}
