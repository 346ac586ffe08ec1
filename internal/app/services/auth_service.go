package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/videobelajar/backend/internal/app/models"
	"github.com/videobelajar/backend/internal/app/models/dto"
	"github.com/videobelajar/backend/internal/app/repositories"
	"github.com/videobelajar/backend/internal/pkg/apperrors"
	"github.com/videobelajar/backend/internal/pkg/auth"
	"github.com/videobelajar/backend/internal/pkg/email"
	"github.com/videobelajar/backend/internal/pkg/logger"
	"github.com/videobelajar/backend/internal/pkg/validation"
)

// avatarGallery is the portrait set a new account's avatar is drawn from.
const (
	avatarGalleryURL  = "https://cdn.jsdelivr.net/gh/faker-js/assets-person-portrait/male/512/%d.jpg"
	avatarGallerySize = 100
)

// IAuthService defines authentication operations.
type IAuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*models.User, string, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error)
	CurrentUser(ctx context.Context, claims *auth.Claims) (*models.User, error)
	VerifyEmail(ctx context.Context, token string) (*models.User, error)
}

// AuthService handles login, registration and email verification.
type AuthService struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
	hasher     *auth.PasswordHasher
	bootstrap  *auth.BootstrapProvider
	mailer     email.Sender
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	jwtService *auth.JWTService,
	hasher *auth.PasswordHasher,
	bootstrap *auth.BootstrapProvider,
	mailer email.Sender,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		hasher:     hasher,
		bootstrap:  bootstrap,
		mailer:     mailer,
	}
}

// Login authenticates credentials and returns the user with a signed token.
// Bootstrap accounts are checked before the store so the application is usable
// on an empty database.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*models.User, string, error) {
	emailAddr := validation.NormalizeEmail(req.Email)

	if identity, ok := s.bootstrap.Authenticate(emailAddr, req.Password); ok {
		token, err := s.jwtService.GenerateToken(identity.ID, identity.Email, identity.Role)
		if err != nil {
			logger.Error().Err(err).Str("email", identity.Email).Msg("Failed to sign token for bootstrap account")
			return nil, "", fmt.Errorf("failed to generate token: %w", err)
		}
		return bootstrapUser(identity), token, nil
	}

	user, err := s.userRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.ParseStoredPassword(user.Password).Verify(req.Password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to sign token")
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Register creates a new student account and sends the verification email.
// Email delivery is best effort; a failed send never fails the registration.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	emailAddr := validation.NormalizeEmail(req.Email)

	exists, err := s.userRepo.EmailOrUsernameExists(ctx, emailAddr, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	token := uuid.New().String()
	avatar := randomAvatar()

	user := &models.User{
		Name:              req.Fullname,
		Username:          req.Username,
		Email:             emailAddr,
		Password:          hashed,
		Role:              models.RoleStudent,
		Avatar:            &avatar,
		VerificationToken: &token,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.mailer.SendVerificationEmail(user.Email, user.Name, token); err != nil {
		logger.Warn().Err(err).Str("email", user.Email).Msg("Verification email could not be delivered")
	}

	return user, nil
}

// CurrentUser resolves token claims back to a live account. Bootstrap
// identities carry negative IDs and have no store row, so a stale token for
// one is rejected rather than looked up.
func (s *AuthService) CurrentUser(ctx context.Context, claims *auth.Claims) (*models.User, error) {
	if claims.UserID < 0 {
		if identity, ok := s.bootstrap.Lookup(claims.UserID); ok {
			return bootstrapUser(identity), nil
		}
		return nil, apperrors.ErrUserNotFound
	}

	return s.userRepo.GetByID(ctx, claims.UserID)
}

// VerifyEmail consumes a verification token. The token is cleared atomically,
// so a second use of the same link fails.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, apperrors.ErrInvalidVerificationToken
	}

	user, err := s.userRepo.ClearVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidVerificationToken
		}
		return nil, err
	}

	logger.Info().Int64("userID", user.ID).Msg("Email verified")
	return user, nil
}

func bootstrapUser(identity *auth.BootstrapIdentity) *models.User {
	return &models.User{
		ID:    identity.ID,
		Name:  identity.Name,
		Email: identity.Email,
		Role:  models.Role(identity.Role),
	}
}

func randomAvatar() string {
	return fmt.Sprintf(avatarGalleryURL, rand.Intn(avatarGallerySize)+1)
}
