package middelware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"kotseai-backend/models"
	"kotseai-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTManager handles JWT token operations
type JWTManager struct {
	Config *models.Config
	Logger logger.Logger
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(cfg *models.Config, log logger.Logger) *JWTManager {
	return &JWTManager{
		Config: cfg,
		Logger: log,
	}
}

// GenerateToken generates a JWT token for a user
func (j *JWTManager) GenerateToken(user *models.User) (string, error) {
	claims := models.JWTClaims{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
		Status:   user.Status,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   user.ID,
			Issuer:    j.Config.AppName,
			Audience:  jwt.ClaimStrings{j.Config.AppName},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.Config.JWTExpiresIn)),
			NotBefore: jwt.NewNumericDate(time.Now()),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(j.Config.JWTSecret))
	if err != nil {
		j.Logger.Errorf("Failed to sign JWT token: %v", err)
		return "", err
	}

	j.Logger.Debugf("Generated JWT token for user: %s", user.ID)

	return tokenString, nil
}

// ValidateToken validates a JWT token and returns the claims
func (j *JWTManager) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Prevent algorithm confusion attacks
		if method, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		} else if method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("invalid signing algorithm: %v", method.Alg())
		}
		return []byte(j.Config.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	if claims.Status != models.UserStatusActive {
		return nil, fmt.Errorf("user account is %s", claims.Status)
	}

	return claims, nil
}

// AuthMiddleware requires a valid bearer token
func (j *JWTManager) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := j.claimsFromHeader(c)
		if err != nil {
			j.Logger.Errorf("Authentication failed: %v", err)
			c.JSON(http.StatusUnauthorized, models.APIResponse{
				Status:  "error",
				Code:    http.StatusUnauthorized,
				Message: "Invalid or missing token",
				Error: &models.APIError{
					Type:    "AuthenticationError",
					Details: err.Error(),
				},
			})
			c.Abort()
			return
		}

		setUserContext(c, claims)
		j.Logger.Debugf("User authenticated: %s", claims.UserID)
		c.Next()
	}
}

// OptionalAuthMiddleware sets user context when a valid bearer token is
// present and passes the request through untouched otherwise. Checklist
// generation works for anonymous callers; only persistence needs identity.
func (j *JWTManager) OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			claims, err := j.claimsFromHeader(c)
			if err != nil {
				j.Logger.Warnf("Ignoring invalid bearer token on optional-auth route: %v", err)
			} else {
				setUserContext(c, claims)
			}
		}
		c.Next()
	}
}

func (j *JWTManager) claimsFromHeader(c *gin.Context) (*models.JWTClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("authorization header is required")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
		return nil, fmt.Errorf("authorization header must be in format: Bearer <token>")
	}

	return j.ValidateToken(strings.TrimSpace(parts[1]))
}

func setUserContext(c *gin.Context, claims *models.JWTClaims) {
	c.Set("user_id", claims.UserID)
	c.Set("user_email", claims.Email)
	c.Set("jwt_claims", claims)
}
