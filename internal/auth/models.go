package auth

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account record. The password hash never leaves this
// package; responses only ever carry the public view.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// PublicUser is the outward-facing user shape
type PublicUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Public returns the serializable view of the user
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID.String(),
		Email: u.Email,
	}
}

// RegisterRequest is the request payload for creating an account
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the request payload for authenticating
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned after successful registration or login
type AuthResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}
