package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserStatus represents a user's account lifecycle status
type UserStatus string

const (
	UserStatusPendingVerification UserStatus = "pending_verification"
	UserStatusActive              UserStatus = "active"
	UserStatusOnboarding          UserStatus = "onboarding"
	UserStatusCompleted           UserStatus = "completed"
	UserStatusSuspended           UserStatus = "suspended"
)

// User represents a platform account
type User struct {
	ID           uuid.UUID   `json:"id"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	SessionToken null.String `json:"-"`
	Status       UserStatus  `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// SignUpInput represents input for user registration
type SignUpInput struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	CompanyName string `json:"companyName" binding:"required,min=2,max=255"`
}

// SignInInput represents input for user login
type SignInInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents a successful authentication
type AuthResponse struct {
	Token     string `json:"token"`
	SessionID string `json:"sessionId,omitempty"`
	User      *User  `json:"user"`
}

// UpdateUserInput represents input for updating a user. Status changes go
// through UpdateUserStatusInput.
type UpdateUserInput struct {
	Email *string `json:"email" binding:"omitempty,email"`
}

// UpdateUserStatusInput represents input for a user status change
type UpdateUserStatusInput struct {
	Status UserStatus `json:"status" binding:"required,oneof=pending_verification active onboarding completed suspended"`
}
