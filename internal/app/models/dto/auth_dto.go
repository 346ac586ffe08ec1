package dto

import "github.com/videobelajar/backend/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// RegisterRequest represents a registration payload
type RegisterRequest struct {
	Fullname string `json:"fullname" binding:"required,min=2"`
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginData is the payload returned by a successful login.
type LoginData struct {
	User  AuthUserResponse `json:"user"`
	Token string           `json:"token"`
}

// AuthUserResponse is the trimmed user shape returned by auth endpoints.
type AuthUserResponse struct {
	ID       int64   `json:"id"`
	Fullname string  `json:"fullname"`
	Username string  `json:"username,omitempty"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	Avatar   *string `json:"avatar,omitempty"`
}

// FromUserAuth maps a store record to the auth response shape.
func FromUserAuth(user *models.User) AuthUserResponse {
	return AuthUserResponse{
		ID:       user.ID,
		Fullname: user.Name,
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
		Avatar:   user.Avatar,
	}
}
