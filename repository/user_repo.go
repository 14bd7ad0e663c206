package repository

import (
	"context"
	"errors"
	"time"

	"kotseai-backend/dal"
	"kotseai-backend/models"
	"kotseai-backend/utils"
	"kotseai-backend/utils/logger"
)

var (
	// ErrEmailTaken is returned when a registration reuses an existing email
	ErrEmailTaken = errors.New("user with this email already exists")
	// ErrUserNotFound is returned when no user matches the lookup key
	ErrUserNotFound = errors.New("user not found")
)

type UserRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *UserRepository) tableName() string {
	return r.config.DynamoDBTablePrefix + "_users"
}

// CreateUser stores a new user after checking the email is unused
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	existing, err := r.GetUserByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	now := time.Now().UTC()
	user.ID = utils.GenerateUUID()
	user.Status = models.UserStatusActive
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := r.db.PutItem(ctx, r.tableName(), user); err != nil {
		r.logger.Errorf("Failed to create user: %v", err)
		return nil, err
	}

	r.logger.Infof("User created successfully: %s", user.ID)
	return user, nil
}

// GetUserByEmail looks a user up through the email GSI
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var users []*models.User
	err := r.db.QueryByIndex(ctx, models.QueryConfig{
		TableName: r.tableName(),
		IndexName: "email-index",
		KeyName:   "email",
		KeyValue:  email,
		Limit:     1,
	}, &users)
	if err != nil {
		r.logger.Errorf("Failed to query user by email: %v", err)
		return nil, err
	}
	if len(users) == 0 || users[0].ID == "" {
		return nil, ErrUserNotFound
	}
	return users[0], nil
}

// GetUserByID fetches a user by primary key
func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user := &models.User{}
	if err := r.db.GetItem(ctx, r.tableName(), "id", id, user); err != nil {
		r.logger.Errorf("Failed to get user %s: %v", id, err)
		return nil, err
	}
	if user.ID == "" {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// RecordLogin stamps the last successful login time
func (r *UserRepository) RecordLogin(ctx context.Context, userID string) error {
	now := time.Now().UTC()
	return r.db.UpdateItem(ctx, r.tableName(), "id", userID, map[string]interface{}{
		"last_login_at": now,
		"updated_at":    now,
	})
}
