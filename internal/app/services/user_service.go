package services

import (
	"context"
	"fmt"

	"github.com/videobelajar/backend/internal/app/models"
	"github.com/videobelajar/backend/internal/app/models/dto"
	"github.com/videobelajar/backend/internal/app/repositories"
	"github.com/videobelajar/backend/internal/pkg/apperrors"
	"github.com/videobelajar/backend/internal/pkg/auth"
	"github.com/videobelajar/backend/internal/pkg/logger"
	"github.com/videobelajar/backend/internal/pkg/validation"
)

// IUserService defines user management operations.
type IUserService interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context, filter repositories.UserListFilter) ([]*models.User, int64, error)
	UpdateUser(ctx context.Context, id int64, req dto.UpdateUserRequest) (*models.User, error)
	ResetPassword(ctx context.Context, id int64, newPassword string) error
	DeleteUser(ctx context.Context, id int64) error
}

// UserService handles the users resource.
type UserService struct {
	userRepo repositories.IUserRepository
	hasher   *auth.PasswordHasher
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository, hasher *auth.PasswordHasher) *UserService {
	return &UserService{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// CreateUser creates an account on behalf of an administrator. Unlike
// self-registration the account is created already verified.
func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*models.User, error) {
	role := models.RoleStudent
	if req.Role != nil {
		role = models.Role(*req.Role)
	}
	if !role.IsValid() {
		return nil, apperrors.ErrBadRequest
	}
	if req.Gender != nil && !models.IsValidGender(*req.Gender) {
		return nil, apperrors.ErrBadRequest
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	avatar := req.Avatar
	if avatar == nil {
		a := randomAvatar()
		avatar = &a
	}

	user := &models.User{
		Name:     req.Fullname,
		Username: req.Username,
		Email:    validation.NormalizeEmail(req.Email),
		Password: hashed,
		Phone:    req.Phone,
		Gender:   req.Gender,
		Role:     role,
		Avatar:   avatar,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser retrieves a single user by ID.
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ListUsers retrieves users matching the filter plus the total matching count.
func (s *UserService) ListUsers(ctx context.Context, filter repositories.UserListFilter) ([]*models.User, int64, error) {
	return s.userRepo.List(ctx, filter)
}

// UpdateUser applies a partial update. An empty payload is rejected so a
// malformed request body does not silently succeed.
func (s *UserService) UpdateUser(ctx context.Context, id int64, req dto.UpdateUserRequest) (*models.User, error) {
	if req.IsEmpty() {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	fields := map[string]interface{}{}
	if req.Fullname != nil {
		fields["name"] = *req.Fullname
	}
	if req.Username != nil {
		fields["username"] = *req.Username
	}
	if req.Email != nil {
		if !validation.IsValidEmail(*req.Email) {
			return nil, apperrors.ErrBadRequest
		}
		fields["email"] = validation.NormalizeEmail(*req.Email)
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Gender != nil {
		if !models.IsValidGender(*req.Gender) {
			return nil, apperrors.ErrBadRequest
		}
		fields["gender"] = *req.Gender
	}
	if req.Role != nil {
		if !models.Role(*req.Role).IsValid() {
			return nil, apperrors.ErrBadRequest
		}
		fields["role"] = *req.Role
	}
	if req.Avatar != nil {
		fields["avatar"] = *req.Avatar
	}

	return s.userRepo.UpdateFields(ctx, id, fields)
}

// ResetPassword overwrites the user's password with a fresh hash. Existing
// tokens stay valid until they expire; issuance is stateless.
func (s *UserService) ResetPassword(ctx context.Context, id int64, newPassword string) error {
	if !validation.MeetsMinLength(newPassword, validation.MinPasswordLength) {
		return apperrors.ErrBadRequest
	}

	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.UpdatePassword(ctx, id, hashed)
}

// DeleteUser removes a user. Admin accounts cannot be deleted through the
// API, which keeps the system from locking itself out.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if user.Role == models.RoleAdmin {
		return apperrors.ErrAdminNotDeletable
	}

	return s.userRepo.Delete(ctx, id)
}
