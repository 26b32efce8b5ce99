package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fooddelivery/internal/config"
	"fooddelivery/internal/middleware"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "middleware_test_secret"

func newGuardedServer() *echo.Echo {
	cfg := config.Config{StaffJWTSecret: testSecret}

	e := echo.New()
	e.GET("/guarded", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"staffId": c.Get(middleware.CtxStaffIDKey).(string),
			"role":    c.Get(middleware.CtxStaffRoleKey).(string),
		})
	}, middleware.StaffJWT(cfg))
	return e
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func request(e *echo.Echo, authz string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestStaffJWT_OK(t *testing.T) {
	e := newGuardedServer()

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":  "staff-1",
		"role": "staff",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	rec := request(e, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"staffId":"staff-1"`)
	assert.Contains(t, rec.Body.String(), `"role":"staff"`)
}

func TestStaffJWT_AdminRoleAllowed(t *testing.T) {
	e := newGuardedServer()

	token := signToken(t, testSecret, jwt.MapClaims{"sub": "admin-1", "role": "admin"})
	rec := request(e, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStaffJWT_MissingOrMalformedHeader(t *testing.T) {
	e := newGuardedServer()

	assert.Equal(t, http.StatusUnauthorized, request(e, "").Code)
	assert.Equal(t, http.StatusUnauthorized, request(e, "Bearer").Code)
	assert.Equal(t, http.StatusUnauthorized, request(e, "Basic abc").Code)
	assert.Equal(t, http.StatusUnauthorized, request(e, "Bearer  ").Code)
}

func TestStaffJWT_WrongSecret(t *testing.T) {
	e := newGuardedServer()

	token := signToken(t, "other_secret", jwt.MapClaims{"sub": "staff-1", "role": "staff"})
	assert.Equal(t, http.StatusUnauthorized, request(e, "Bearer "+token).Code)
}

func TestStaffJWT_ExpiredToken(t *testing.T) {
	e := newGuardedServer()

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":  "staff-1",
		"role": "staff",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})
	assert.Equal(t, http.StatusUnauthorized, request(e, "Bearer "+token).Code)
}

func TestStaffJWT_MissingSub(t *testing.T) {
	e := newGuardedServer()

	token := signToken(t, testSecret, jwt.MapClaims{"role": "staff"})
	assert.Equal(t, http.StatusUnauthorized, request(e, "Bearer "+token).Code)
}

func TestStaffJWT_CustomerRoleForbidden(t *testing.T) {
	e := newGuardedServer()

	token := signToken(t, testSecret, jwt.MapClaims{"sub": "user-1", "role": "customer"})
	assert.Equal(t, http.StatusForbidden, request(e, "Bearer "+token).Code)
}
