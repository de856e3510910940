package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserRef: yazı ve yorumlarda çözülen yazar alanları.
type UserRef struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type RegisterRequest struct {
	Username string `json:"username" example:"testuser"`
	Email    string `json:"email"    example:"user@example.com"`
	Password string `json:"password" example:"user123"`
}

type LoginRequest struct {
	Email    string `json:"email"    example:"admin@penlink.com"`
	Password string `json:"password" example:"admin123"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
