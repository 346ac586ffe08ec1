package dto

import "github.com/videobelajar/backend/internal/app/models"

// UserResponse is the user shape returned by the users resource. The password
// column never appears here.
type UserResponse struct {
	ID       int64   `json:"id"`
	Fullname string  `json:"fullname"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
	Gender   *string `json:"gender"`
	Role     string  `json:"role"`
	Avatar   *string `json:"avatar"`
}

// FromUser maps a store record to the response shape.
func FromUser(user *models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Fullname: user.Name,
		Username: user.Username,
		Email:    user.Email,
		Phone:    user.Phone,
		Gender:   user.Gender,
		Role:     string(user.Role),
		Avatar:   user.Avatar,
	}
}

// FromUsers maps a list of store records.
func FromUsers(users []*models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

// CreateUserRequest represents an admin-side user creation payload.
type CreateUserRequest struct {
	Fullname string  `json:"fullname" binding:"required,min=2"`
	Username string  `json:"username" binding:"required,min=3"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Phone    *string `json:"phone"`
	Gender   *string `json:"gender" binding:"omitempty,oneof=Laki-laki Perempuan"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin user student"`
	Avatar   *string `json:"avatar"`
}

// UpdateUserRequest represents a partial update; only keys present in the
// payload are applied.
type UpdateUserRequest struct {
	Fullname *string `json:"fullname" binding:"omitempty,min=2"`
	Username *string `json:"username" binding:"omitempty,min=3"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
	Gender   *string `json:"gender" binding:"omitempty,oneof=Laki-laki Perempuan"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin user student"`
	Avatar   *string `json:"avatar"`
}

// IsEmpty reports whether no recognized field was supplied.
func (r *UpdateUserRequest) IsEmpty() bool {
	return r.Fullname == nil && r.Username == nil && r.Email == nil &&
		r.Phone == nil && r.Gender == nil && r.Role == nil && r.Avatar == nil
}

// ResetPasswordRequest represents a password overwrite for a user.
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}
