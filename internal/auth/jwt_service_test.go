package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"snadaily/internal/model"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateToken(4, "judge.rahmat", model.RoleJudge)
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(4), claims.UserID)
	assert.Equal(t, "judge.rahmat", claims.Username)
	assert.Equal(t, model.RoleJudge, claims.Role)
	assert.WithinDuration(t, time.Now().Add(TokenExpiry), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").GenerateToken(1, "dewi", model.RoleUser)
	assert.NoError(t, err)

	_, err = NewJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	svc := NewJWTService("test-secret")

	claims := &Claims{
		UserID: 1,
		Role:   model.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-13 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	assert.Error(t, err)
}

func TestRequireRole(t *testing.T) {
	handlerCalled := false
	next := func(c echo.Context) error {
		handlerCalled = true
		return c.NoContent(http.StatusOK)
	}

	newContext := func(claims *Claims) echo.Context {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if claims != nil {
			c.Set("user", &jwt.Token{Claims: claims, Valid: true})
		}
		return c
	}

	t.Run("role allowed", func(t *testing.T) {
		handlerCalled = false
		c := newContext(&Claims{UserID: 4, Role: model.RoleJudge})
		err := RequireRole(model.RoleJudge)(next)(c)
		assert.NoError(t, err)
		assert.True(t, handlerCalled)
	})

	t.Run("role denied", func(t *testing.T) {
		handlerCalled = false
		c := newContext(&Claims{UserID: 7, Role: model.RoleUser})
		err := RequireRole(model.RoleAdmin)(next)(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
		assert.False(t, handlerCalled)
	})

	t.Run("missing token", func(t *testing.T) {
		handlerCalled = false
		c := newContext(nil)
		err := RequireRole(model.RoleAdmin)(next)(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
		assert.False(t, handlerCalled)
	})
}
