package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"kotseai-backend/middelware"
	"kotseai-backend/models"
	"kotseai-backend/repository"
	"kotseai-backend/utils"
	"kotseai-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	ctx        context.Context
	config     *models.Config
	userRepo   repository.UserRepositoryInterface
	jwtManager *middelware.JWTManager
	logger     logger.Logger
}

func NewUserController(ctx context.Context, cfg *models.Config, userRepo repository.UserRepositoryInterface, jwtManager *middelware.JWTManager, log logger.Logger) *UserController {
	return &UserController{
		ctx:        ctx,
		config:     cfg,
		userRepo:   userRepo,
		jwtManager: jwtManager,
		logger:     log,
	}
}

// Register handles POST /api/v1/auth/register
// @Summary Register a new user
// @Description Create a new car owner account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration request"
// @Success 201 {object} models.APIResponse "User registered successfully"
// @Failure 400 {object} models.APIResponse "Bad Request - Invalid registration data"
// @Failure 409 {object} models.APIResponse "Conflict - Email already registered"
// @Failure 500 {object} models.APIResponse "Internal Server Error - Registration failed"
// @Router /auth/register [post]
func (h *UserController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind registration JSON:", err)
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Invalid request",
			Error: &models.APIError{
				Type:    "ValidationError",
				Details: err.Error(),
			},
		})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		h.logger.Errorf("Failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Failed to register user",
			Error: &models.APIError{
				Type:    "InternalError",
				Details: "could not process credentials",
			},
		})
		return
	}

	user, err := h.userRepo.CreateUser(h.ctx, &models.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			c.JSON(http.StatusConflict, models.APIResponse{
				Status:  "error",
				Code:    http.StatusConflict,
				Message: "Email already registered",
				Error: &models.APIError{
					Type:    "ConflictError",
					Details: err.Error(),
				},
			})
			return
		}
		h.logger.Errorf("Failed to create user: %v", err)
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Failed to register user",
			Error: &models.APIError{
				Type:    "DatabaseError",
				Details: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, models.APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: "User registered successfully",
		Data:    user,
	})
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Exchange email and password for a JWT
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.APIResponse "Login successful"
// @Failure 400 {object} models.APIResponse "Bad Request - Invalid login data"
// @Failure 401 {object} models.APIResponse "Unauthorized - Invalid credentials"
// @Router /auth/login [post]
func (h *UserController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind login JSON:", err)
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Invalid request",
			Error: &models.APIError{
				Type:    "ValidationError",
				Details: err.Error(),
			},
		})
		return
	}

	user, err := h.userRepo.GetUserByEmail(h.ctx, req.Email)
	if err != nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		// Same response for unknown email and wrong password.
		c.JSON(http.StatusUnauthorized, models.APIResponse{
			Status:  "error",
			Code:    http.StatusUnauthorized,
			Message: "Invalid email or password",
			Error: &models.APIError{
				Type:    "AuthenticationError",
				Details: "invalid credentials",
			},
		})
		return
	}

	if user.Status != models.UserStatusActive {
		c.JSON(http.StatusUnauthorized, models.APIResponse{
			Status:  "error",
			Code:    http.StatusUnauthorized,
			Message: "Account is not active",
			Error: &models.APIError{
				Type:    "AuthenticationError",
				Details: "account is not active",
			},
		})
		return
	}

	token, err := h.jwtManager.GenerateToken(user)
	if err != nil {
		h.logger.Errorf("Failed to generate token for %s: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Failed to log in",
			Error: &models.APIError{
				Type:    "InternalError",
				Details: "could not issue token",
			},
		})
		return
	}

	if err := h.userRepo.RecordLogin(h.ctx, user.ID); err != nil {
		h.logger.Warnf("Failed to record login for %s: %v", user.ID, err)
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Login successful",
		Data: models.LoginResponse{
			Token:     token,
			ExpiresAt: time.Now().Add(h.config.JWTExpiresIn),
			User:      user,
		},
	})
}
