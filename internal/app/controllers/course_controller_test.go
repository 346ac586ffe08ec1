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
	"github.com/videobelajar/backend/internal/seed"
)

type stubCourseService struct {
	createFn        func(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error)
	getFn           func(ctx context.Context, id int64) (*models.Course, error)
	getByCategoryFn func(ctx context.Context, category string) ([]*models.Course, error)
	listFn          func(ctx context.Context, filter repositories.CourseListFilter) ([]*models.Course, int64, error)
	updateFn        func(ctx context.Context, id int64, req dto.UpdateCourseRequest) (*models.Course, error)
	deleteFn        func(ctx context.Context, id int64) error
	resetFn         func(ctx context.Context) ([]*models.Course, error)
}

func (s *stubCourseService) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	return s.createFn(ctx, req)
}
func (s *stubCourseService) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	return s.getFn(ctx, id)
}
func (s *stubCourseService) GetCoursesByCategory(ctx context.Context, category string) ([]*models.Course, error) {
	return s.getByCategoryFn(ctx, category)
}
func (s *stubCourseService) ListCourses(ctx context.Context, filter repositories.CourseListFilter) ([]*models.Course, int64, error) {
	return s.listFn(ctx, filter)
}
func (s *stubCourseService) UpdateCourse(ctx context.Context, id int64, req dto.UpdateCourseRequest) (*models.Course, error) {
	return s.updateFn(ctx, id, req)
}
func (s *stubCourseService) DeleteCourse(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}
func (s *stubCourseService) ResetCourses(ctx context.Context) ([]*models.Course, error) {
	return s.resetFn(ctx)
}

func newCourseRouter(svc *stubCourseService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewCourseController(svc)

	courses := router.Group("/api/courses")
	courses.GET("", controller.ListCourses)
	courses.GET("/:id", controller.GetCourse)
	courses.GET("/category/:category", controller.GetCoursesByCategory)
	courses.POST("", controller.CreateCourse)
	courses.POST("/reset", controller.ResetCourses)
	courses.PUT("/:id", controller.UpdateCourse)
	courses.DELETE("/:id", controller.DeleteCourse)
	return router
}

func TestListCoursesPaginationEnvelope(t *testing.T) {
	svc := &stubCourseService{
		listFn: func(ctx context.Context, filter repositories.CourseListFilter) ([]*models.Course, int64, error) {
			require.NotNil(t, filter.Limit)
			assert.Equal(t, 2, *filter.Limit)
			require.NotNil(t, filter.Offset)
			assert.Equal(t, 4, *filter.Offset)
			assert.Equal(t, "price", filter.SortBy)
			assert.Equal(t, "ASC", filter.SortDir)
			return []*models.Course{{ID: 5}, {ID: 6}}, 9, nil
		},
	}
	router := newCourseRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/courses?limit=2&offset=4&sortBy=price&sort=ASC", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeEnvelope(t, w)
	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(9), pagination["total"])
	assert.Equal(t, float64(2), pagination["count"])
	assert.Equal(t, float64(2), pagination["limit"])
	assert.Equal(t, float64(4), pagination["offset"])
}

func TestListCoursesSortDirection(t *testing.T) {
	var captured repositories.CourseListFilter
	svc := &stubCourseService{
		listFn: func(ctx context.Context, filter repositories.CourseListFilter) ([]*models.Course, int64, error) {
			captured = filter
			return []*models.Course{}, 0, nil
		},
	}
	router := newCourseRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/courses?category=Bisnis&sortBy=price&sort=ASC&limit=2", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, captured.Category)
	assert.Equal(t, "Bisnis", *captured.Category)
	assert.Equal(t, "price", captured.SortBy)
	assert.Equal(t, "ASC", captured.SortDir)

	// lowercase direction is accepted the same way
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/courses?sortBy=price&sort=asc", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ASC", captured.SortDir)
}

func TestGetCoursesByCategoryMessage(t *testing.T) {
	svc := &stubCourseService{
		getByCategoryFn: func(ctx context.Context, category string) ([]*models.Course, error) {
			assert.Equal(t, "Bisnis", category)
			return []*models.Course{{ID: 1, Category: category}}, nil
		},
	}
	router := newCourseRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/courses/category/Bisnis", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeEnvelope(t, w)
	assert.Equal(t, "Courses in category 'Bisnis' retrieved successfully", body["message"])
}

func TestGetCoursesByUnknownCategory(t *testing.T) {
	svc := &stubCourseService{
		getByCategoryFn: func(ctx context.Context, category string) ([]*models.Course, error) {
			return nil, apperrors.ErrInvalidCategory
		},
	}
	router := newCourseRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/courses/category/Memasak", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCourseNotFound(t *testing.T) {
	svc := &stubCourseService{
		getFn: func(ctx context.Context, id int64) (*models.Course, error) {
			return nil, apperrors.ErrCourseNotFound
		},
	}
	router := newCourseRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/courses/404", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	body := decodeEnvelope(t, w)
	assert.Equal(t, "Course tidak ditemukan", body["message"])
}

func TestGetCourseInvalidID(t *testing.T) {
	router := newCourseRouter(&stubCourseService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/courses/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCourseRejectsUnknownCategory(t *testing.T) {
	router := newCourseRouter(&stubCourseService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/courses",
		strings.NewReader(`{"title":"X","description":"Y","mentor":"M","rolementor":"R","company":"C","price":"100K","category":"Memasak"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeEnvelope(t, w)
	assert.Equal(t, "Validation failed", body["message"])
}

func TestUpdateCourseEmptyPayload(t *testing.T) {
	svc := &stubCourseService{
		updateFn: func(ctx context.Context, id int64, req dto.UpdateCourseRequest) (*models.Course, error) {
			return nil, apperrors.ErrNoFieldsToUpdate
		},
	}
	router := newCourseRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/courses/1", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeEnvelope(t, w)
	assert.Equal(t, "Tidak ada data yang diupdate", body["message"])
}

func TestResetCoursesEnvelope(t *testing.T) {
	svc := &stubCourseService{
		resetFn: func(ctx context.Context) ([]*models.Course, error) {
			return seed.DefaultCourses(), nil
		},
	}
	router := newCourseRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/courses/reset", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeEnvelope(t, w)
	assert.Equal(t, "Courses reset to default successfully", body["message"])
	assert.Len(t, body["data"], 3)
}
