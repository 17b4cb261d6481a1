package models

import (
	"time"
)

// User represents a user record in the database.
type User struct {
	ID             int64      `json:"id" db:"id"`                     // Primary key
	Email          string     `json:"email" db:"email"`               // Unique email, token subject
	FullName       string     `json:"full_name" db:"full_name"`       // Display name
	HashedPassword string     `json:"-" db:"hashed_password"`         // Encoded credential, never serialized
	IsActive       bool       `json:"is_active" db:"is_active"`       // Inactive users cannot authenticate
	IsSuperuser    bool       `json:"is_superuser" db:"is_superuser"` // Admin flag
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`     // Last update timestamp
	LastLogin      *time.Time `json:"last_login" db:"last_login"`     // Last successful authentication
}

// UserCreate carries the fields needed to insert a user.
type UserCreate struct {
	Email       string
	FullName    string
	Password    string // optional; empty leaves the account without a usable password
	IsActive    bool
	IsSuperuser bool
}

// UserUpdate is a partial update; nil fields are left untouched.
type UserUpdate struct {
	Email    *string
	FullName *string
	IsActive *bool
}

// UserFilter selects a page of users.
type UserFilter struct {
	Skip     uint64
	Limit    uint64
	IsActive *bool
}

// UserPage is a page of users plus the total matching count.
// swagger:model UserPage
type UserPage struct {
	Total int64  `json:"total"`
	Skip  uint64 `json:"skip"`
	Limit uint64 `json:"limit"`
	Items []User `json:"items"`
}

// UserCreateRequest is the JSON body for user creation
// swagger:model UserCreateRequest
type UserCreateRequest struct {
	// User email address
	// required: true
	// example: user@example.com
	Email string `json:"email" validate:"required,email,max=255" example:"user@example.com"`

	// User full name
	// required: true
	// example: John Doe
	FullName string `json:"full_name" validate:"required,min=1,max=255" example:"John Doe"`

	// Optional password, enables token login
	// example: secret123
	Password string `json:"password,omitempty" validate:"omitempty,min=8,max=128" example:"secret123"`

	// Whether the account is active (default true)
	IsActive *bool `json:"is_active,omitempty" example:"true"`
}

// ToCreate converts the request into a service payload.
func (r UserCreateRequest) ToCreate() UserCreate {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return UserCreate{
		Email:    r.Email,
		FullName: r.FullName,
		Password: r.Password,
		IsActive: active,
	}
}

// UserUpdateRequest is the JSON body for a partial user update
// swagger:model UserUpdateRequest
type UserUpdateRequest struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255" example:"newemail@example.com"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=1,max=255" example:"Jane Doe"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// ToUpdate converts the request into a typed partial update.
func (r UserUpdateRequest) ToUpdate() UserUpdate {
	return UserUpdate{Email: r.Email, FullName: r.FullName, IsActive: r.IsActive}
}
