package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password,omitempty"`
	Active       bool      `json:"active"`
	RoleID       int       `json:"role_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UpdateUserRequest altera apenas os campos informados
type UpdateUserRequest struct {
	ID     int     `json:"-"`
	Name   *string `json:"name"`
	Active *bool   `json:"active"`
	RoleID *int    `json:"role_id"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type Claims struct {
	UserID     int
	UserName   string
	UserEmail  string
	UserRoleID int
	jwt.RegisteredClaims
}
