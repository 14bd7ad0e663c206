package models

import "time"

// UserStatus represents the status of a user account
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// User represents a registered car owner
type User struct {
	ID           string     `json:"id" dynamodbav:"id"`
	Email        string     `json:"email" dynamodbav:"email"`
	Username     string     `json:"username" dynamodbav:"username"`
	PasswordHash string     `json:"-" dynamodbav:"password_hash"`
	Status       UserStatus `json:"status" dynamodbav:"status"`
	CreatedAt    time.Time  `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" dynamodbav:"updated_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty" dynamodbav:"last_login_at,omitempty"`
}

// RegisterRequest is the payload for user registration
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token together with the user record
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      *User     `json:"user"`
}
