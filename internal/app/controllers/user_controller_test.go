package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videobelajar/backend/internal/app/models"
	"github.com/videobelajar/backend/internal/app/models/dto"
	"github.com/videobelajar/backend/internal/app/repositories"
	"github.com/videobelajar/backend/internal/pkg/apperrors"
)

type stubUserService struct {
	createFn        func(ctx context.Context, req dto.CreateUserRequest) (*models.User, error)
	getFn           func(ctx context.Context, id int64) (*models.User, error)
	listFn          func(ctx context.Context, filter repositories.UserListFilter) ([]*models.User, int64, error)
	updateFn        func(ctx context.Context, id int64, req dto.UpdateUserRequest) (*models.User, error)
	resetPasswordFn func(ctx context.Context, id int64, newPassword string) error
	deleteFn        func(ctx context.Context, id int64) error
}

func (s *stubUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*models.User, error) {
	return s.createFn(ctx, req)
}
func (s *stubUserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.getFn(ctx, id)
}
func (s *stubUserService) ListUsers(ctx context.Context, filter repositories.UserListFilter) ([]*models.User, int64, error) {
	return s.listFn(ctx, filter)
}
func (s *stubUserService) UpdateUser(ctx context.Context, id int64, req dto.UpdateUserRequest) (*models.User, error) {
	return s.updateFn(ctx, id, req)
}
func (s *stubUserService) ResetPassword(ctx context.Context, id int64, newPassword string) error {
	return s.resetPasswordFn(ctx, id, newPassword)
}
func (s *stubUserService) DeleteUser(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func newUserRouter(svc *stubUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewUserController(svc)

	users := router.Group("/api/users")
	users.GET("", controller.ListUsers)
	users.GET("/:id", controller.GetUser)
	users.POST("", controller.CreateUser)
	users.PUT("/:id", controller.UpdateUser)
	users.PUT("/:id/reset-password", controller.ResetPassword)
	users.DELETE("/:id", controller.DeleteUser)
	return router
}

func TestListUsersForwardsFilters(t *testing.T) {
	svc := &stubUserService{
		listFn: func(ctx context.Context, filter repositories.UserListFilter) ([]*models.User, int64, error) {
			require.NotNil(t, filter.Role)
			assert.Equal(t, "student", *filter.Role)
			require.NotNil(t, filter.Search)
			assert.Equal(t, "siswa", *filter.Search)
			assert.Equal(t, "name", filter.SortBy)
			assert.Equal(t, "ASC", filter.SortDir)
			return []*models.User{{ID: 1, Name: "Siswa"}}, 1, nil
		},
	}
	router := newUserRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users?role=student&search=siswa&sortBy=name&sort=asc", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeEnvelope(t, w)
	assert.Equal(t, "Users retrieved successfully", body["message"])
}

func TestGetUserResponseOmitsPassword(t *testing.T) {
	svc := &stubUserService{
		getFn: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, Name: "Siswa", Email: "siswa@example.com", Password: "$2a$hash"}, nil
		},
	}
	router := newUserRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/3", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "$2a$hash")
	assert.NotContains(t, w.Body.String(), "password")
}

func TestDeleteAdminForbidden(t *testing.T) {
	svc := &stubUserService{
		deleteFn: func(ctx context.Context, id int64) error {
			return apperrors.ErrAdminNotDeletable
		},
	}
	router := newUserRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/users/1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
	body := decodeEnvelope(t, w)
	assert.Equal(t, "Admin user tidak dapat dihapus", body["message"])
}

func TestResetPasswordTooShort(t *testing.T) {
	router := newUserRouter(&stubUserService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/users/3/reset-password",
		strings.NewReader(`{"newPassword":"12345"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeEnvelope(t, w)
	assert.Equal(t, "Validation failed", body["message"])
}

func TestResetPasswordOK(t *testing.T) {
	svc := &stubUserService{
		resetPasswordFn: func(ctx context.Context, id int64, newPassword string) error {
			assert.Equal(t, int64(3), id)
			assert.Equal(t, "barurahasia", newPassword)
			return nil
		},
	}
	router := newUserRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/users/3/reset-password",
		strings.NewReader(`{"newPassword":"barurahasia"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeEnvelope(t, w)
	assert.Equal(t, "Password reset successfully", body["message"])
}

func TestUpdateUserDuplicateUsername(t *testing.T) {
	svc := &stubUserService{
		updateFn: func(ctx context.Context, id int64, req dto.UpdateUserRequest) (*models.User, error) {
			return nil, apperrors.ErrUsernameAlreadyExists
		},
	}
	router := newUserRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/users/4",
		strings.NewReader(`{"username":"sudahada"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeEnvelope(t, w)
	assert.Equal(t, "Username sudah digunakan oleh user lain", body["message"])
}
