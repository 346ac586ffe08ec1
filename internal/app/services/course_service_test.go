package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videobelajar/backend/internal/app/models"
	"github.com/videobelajar/backend/internal/app/models/dto"
	"github.com/videobelajar/backend/internal/app/repositories"
	"github.com/videobelajar/backend/internal/pkg/apperrors"
)

func TestCreateCourseDefaults(t *testing.T) {
	var created *models.Course
	repo := &mockCourseRepo{
		createFn: func(ctx context.Context, course *models.Course) error {
			course.ID = 1
			created = course
			return nil
		},
	}
	svc := NewCourseService(repo)

	course, err := svc.CreateCourse(context.Background(), dto.CreateCourseRequest{
		Title:       "Kursus Baru",
		Description: "Deskripsi",
		Mentor:      "Mentor",
		RoleMentor:  "Senior Mentor",
		Company:     "Gojek",
		Price:       "150K",
		Category:    models.CategoryBusiness,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, created.Rating)
	assert.Equal(t, 0, created.ReviewCount)
	assert.Equal(t, int64(1), course.ID)
}

func TestGetCoursesByCategoryRejectsUnknown(t *testing.T) {
	svc := NewCourseService(&mockCourseRepo{})

	_, err := svc.GetCoursesByCategory(context.Background(), "Memasak")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCategory)
}

func TestGetCoursesByCategoryValid(t *testing.T) {
	repo := &mockCourseRepo{
		getByCategoryFn: func(ctx context.Context, category string) ([]*models.Course, error) {
			assert.Equal(t, models.CategoryDesign, category)
			return []*models.Course{{ID: 2, Category: category}}, nil
		},
	}
	svc := NewCourseService(repo)

	courses, err := svc.GetCoursesByCategory(context.Background(), models.CategoryDesign)
	require.NoError(t, err)
	assert.Len(t, courses, 1)
}

func TestListCoursesRejectsUnknownCategoryFilter(t *testing.T) {
	svc := NewCourseService(&mockCourseRepo{})

	bad := "Memasak"
	_, _, err := svc.ListCourses(context.Background(), repositories.CourseListFilter{Category: &bad})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCategory)
}

func TestUpdateCourseEmptyPayload(t *testing.T) {
	svc := NewCourseService(&mockCourseRepo{})

	_, err := svc.UpdateCourse(context.Background(), 1, dto.UpdateCourseRequest{})
	assert.ErrorIs(t, err, apperrors.ErrNoFieldsToUpdate)
}

func TestUpdateCourseMapsOnlyProvidedFields(t *testing.T) {
	var gotFields map[string]interface{}
	repo := &mockCourseRepo{
		updateFieldsFn: func(ctx context.Context, id int64, fields map[string]interface{}) (*models.Course, error) {
			gotFields = fields
			return &models.Course{ID: id}, nil
		},
	}
	svc := NewCourseService(repo)

	price := "500K"
	rating := 4.9
	_, err := svc.UpdateCourse(context.Background(), 3, dto.UpdateCourseRequest{
		Price:  &price,
		Rating: &rating,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"price":  "500K",
		"rating": 4.9,
	}, gotFields)
}

func TestResetCoursesUsesDefaultCatalog(t *testing.T) {
	repo := &mockCourseRepo{
		resetToDefaultsFn: func(ctx context.Context, defaults []*models.Course) ([]*models.Course, error) {
			require.Len(t, defaults, 3)
			assert.Equal(t, "Big 4 Auditor Financial Analyst", defaults[0].Title)
			return defaults, nil
		},
	}
	svc := NewCourseService(repo)

	courses, err := svc.ResetCourses(context.Background())
	require.NoError(t, err)
	assert.Len(t, courses, 3)
}

func TestDeleteCourseNotFound(t *testing.T) {
	repo := &mockCourseRepo{
		deleteFn: func(ctx context.Context, id int64) error {
			return apperrors.ErrCourseNotFound
		},
	}
	svc := NewCourseService(repo)

	assert.ErrorIs(t, svc.DeleteCourse(context.Background(), 404), apperrors.ErrCourseNotFound)
}
