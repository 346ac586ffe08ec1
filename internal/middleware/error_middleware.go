package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/videobelajar/backend/internal/app/models/dto"
	"github.com/videobelajar/backend/internal/pkg/apperrors"
	"github.com/videobelajar/backend/internal/pkg/logger"
)

// HandleAPIError maps service and repository errors onto the response
// envelope. Internal detail is logged, never returned to the client.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Email atau password salah"))
	case errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrTokenNotFound):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Token tidak valid"))
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("User tidak ditemukan"))
	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Course tidak ditemukan"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Data tidak ditemukan"))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Email sudah digunakan oleh user lain"))
	case errors.Is(err, apperrors.ErrUsernameAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Username sudah digunakan oleh user lain"))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Data sudah terdaftar"))
	case errors.Is(err, apperrors.ErrNoFieldsToUpdate):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Tidak ada data yang diupdate"))
	case errors.Is(err, apperrors.ErrInvalidCategory):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Kategori tidak valid"))
	case errors.Is(err, apperrors.ErrInvalidVerificationToken):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid Verification Token"))
	case errors.Is(err, apperrors.ErrAdminNotDeletable):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse("Admin user tidak dapat dihapus"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse("Akses ditolak"))
	case errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Permintaan tidak valid"))
	default:
		logger.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error in request handler")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Terjadi kesalahan pada server"))
	}
}
