package model

import "github.com/golang-jwt/jwt/v5"

// UserClaims are JWT claims for form authors
type UserClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// RegisterRequest is the request body for registration
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned after successful register or login
type AuthResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// PublicUser is the caller-visible slice of a User
type PublicUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
