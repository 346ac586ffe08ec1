package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/videobelajar/backend/internal/app/models/dto"
	"github.com/videobelajar/backend/internal/app/services"
	"github.com/videobelajar/backend/internal/middleware"
	"github.com/videobelajar/backend/internal/pkg/apperrors"
)

// AuthController handles authentication endpoints
type AuthController struct {
	authService services.IAuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.IAuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login handles POST /auth/login
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(dto.HandleValidationError(err)))
		return
	}

	user, token, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Login successful", dto.LoginData{
		User:  dto.FromUserAuth(user),
		Token: token,
	}))
}

// Register handles POST /auth/register
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(dto.HandleValidationError(err)))
		return
	}

	user, err := c.authService.Register(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Email sudah terdaftar. Silakan gunakan email lain."))
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Pendaftaran berhasil, silakan verifikasi email Anda", dto.FromUserAuth(user)))
}

// VerifyToken handles GET /auth/verify. The account is re-fetched so profile
// or role changes since token issuance are reflected, and a token for a
// deleted account fails.
func (c *AuthController) VerifyToken(ctx *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Token tidak valid"))
		return
	}

	user, err := c.authService.CurrentUser(ctx.Request.Context(), claims)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("User tidak ditemukan"))
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Token valid", dto.FromUserAuth(user)))
}

// VerifyEmail handles GET /auth/verify-email?token=
func (c *AuthController) VerifyEmail(ctx *gin.Context) {
	token := ctx.Query("token")

	if _, err := c.authService.VerifyEmail(ctx.Request.Context(), token); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Email Verified Successfully"))
}
