package dto

import "time"

// CreateUserRequest defines the structure for creating a new staff account.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,notblank,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4,max=72"`
	Phone    string `json:"phone" validate:"omitempty,max=10"`
	Role     string `json:"role" validate:"required,oneof=admin hr Manager Recruiter"`
}

// UpdateUserRequest replaces a user's profile. Password is changed only when set.
type UpdateUserRequest struct {
	ID       int64  `json:"-"`
	Name     string `json:"name" validate:"required,notblank,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=4,max=72"`
	Phone    string `json:"phone" validate:"omitempty,max=10"`
	Role     string `json:"role" validate:"required,oneof=admin hr Manager Recruiter"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProfileResponse echoes the claims of the caller's token.
type ProfileResponse struct {
	UserID    int64     `json:"userId"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expiresAt"`
}
