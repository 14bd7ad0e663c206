package middelware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kotseai-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLogger satisfies logger.Logger without recording anything
type stubLogger struct{}

func (stubLogger) Debug(args ...interface{})                 {}
func (stubLogger) Debugf(format string, args ...interface{}) {}
func (stubLogger) Info(args ...interface{})                  {}
func (stubLogger) Infof(format string, args ...interface{})  {}
func (stubLogger) Warn(args ...interface{})                  {}
func (stubLogger) Warnf(format string, args ...interface{})  {}
func (stubLogger) Error(args ...interface{})                 {}
func (stubLogger) Errorf(format string, args ...interface{}) {}
func (stubLogger) Fatal(args ...interface{})                 {}
func (stubLogger) Fatalf(format string, args ...interface{}) {}

func newTestJWTManager() *JWTManager {
	cfg := &models.Config{
		AppName:      "kotseai-backend",
		JWTSecret:    "test-secret-please-change",
		JWTExpiresIn: time.Hour,
	}
	return NewJWTManager(cfg, stubLogger{})
}

func testUser() *models.User {
	return &models.User{
		ID:       "user-123",
		Email:    "owner@example.com",
		Username: "owner",
		Status:   models.UserStatusActive,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	manager := newTestJWTManager()

	token, err := manager.GenerateToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.Equal(t, models.UserStatusActive, claims.Status)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	manager := newTestJWTManager()
	token, err := manager.GenerateToken(testUser())
	require.NoError(t, err)

	other := newTestJWTManager()
	other.Config.JWTSecret = "a-different-secret"

	claims, err := other.ValidateToken(token)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestValidateTokenRejectsInactiveUser(t *testing.T) {
	manager := newTestJWTManager()
	user := testUser()
	user.Status = models.UserStatusInactive

	token, err := manager.GenerateToken(user)
	require.NoError(t, err)

	claims, err := manager.ValidateToken(token)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	manager := newTestJWTManager()

	claims, err := manager.ValidateToken("not-a-jwt")
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func setupAuthRouter(manager *JWTManager, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", manager.AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	r.POST("/open", manager.OptionalAuthMiddleware(), handler)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	manager := newTestJWTManager()
	router := setupAuthRouter(manager, func(c *gin.Context) { c.Status(http.StatusOK) })

	token, err := manager.GenerateToken(testUser())
	require.NoError(t, err)

	t.Run("valid token passes", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "user-123")
	})

	t.Run("missing header rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOptionalAuthMiddleware(t *testing.T) {
	manager := newTestJWTManager()
	router := setupAuthRouter(manager, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})

	token, err := manager.GenerateToken(testUser())
	require.NoError(t, err)

	t.Run("valid token sets identity", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/open", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "user-123")
	})

	t.Run("no token still passes", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/open", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":""`)
	})

	t.Run("invalid token ignored", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/open", nil)
		req.Header.Set("Authorization", "Bearer bogus")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":""`)
	})
}
