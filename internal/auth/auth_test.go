package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService("test-signing-key", logrus.New())
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateToken("user-1", "ana@example.com", "Ana", time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "Ana", claims.Name)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateToken("user-1", "ana@example.com", "Ana", -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongKey(t *testing.T) {
	token, err := NewService("other-key", logrus.New()).
		GenerateToken("user-1", "ana@example.com", "Ana", time.Hour)
	require.NoError(t, err)

	_, err = newTestService().ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := newTestService().ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func middlewareRequest(t *testing.T, svc *Service, header string) (*httptest.ResponseRecorder, *Claims) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var seen *Claims
	router := gin.New()
	router.GET("/protected", svc.Middleware(), func(c *gin.Context) {
		seen = CurrentUser(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec, seen
}

func TestMiddleware(t *testing.T) {
	svc := newTestService()
	token, err := svc.GenerateToken("user-1", "ana@example.com", "Ana", time.Hour)
	require.NoError(t, err)

	rec, claims := middlewareRequest(t, svc, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, claims)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestMiddleware_Rejections(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"malformed header", "token-without-scheme"},
		{"wrong scheme", "Basic abc"},
		{"invalid token", "Bearer not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, claims := middlewareRequest(t, svc, tt.header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Nil(t, claims)
		})
	}
}
