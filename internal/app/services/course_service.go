package services

import (
	"context"

	"github.com/videobelajar/backend/internal/app/models"
	"github.com/videobelajar/backend/internal/app/models/dto"
	"github.com/videobelajar/backend/internal/app/repositories"
	"github.com/videobelajar/backend/internal/pkg/apperrors"
	"github.com/videobelajar/backend/internal/seed"
)

// ICourseService defines catalog operations.
type ICourseService interface {
	CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error)
	GetCourse(ctx context.Context, id int64) (*models.Course, error)
	GetCoursesByCategory(ctx context.Context, category string) ([]*models.Course, error)
	ListCourses(ctx context.Context, filter repositories.CourseListFilter) ([]*models.Course, int64, error)
	UpdateCourse(ctx context.Context, id int64, req dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
	ResetCourses(ctx context.Context) ([]*models.Course, error)
}

// CourseService handles the course catalog.
type CourseService struct {
	courseRepo repositories.ICourseRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo repositories.ICourseRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

// CreateCourse adds a course to the catalog.
func (s *CourseService) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	rating := 0.0
	if req.Rating != nil {
		rating = *req.Rating
	}
	reviewCount := 0
	if req.ReviewCount != nil {
		reviewCount = *req.ReviewCount
	}

	course := &models.Course{
		Title:       req.Title,
		Description: req.Description,
		Photos:      req.Photos,
		Mentor:      req.Mentor,
		RoleMentor:  req.RoleMentor,
		Avatar:      req.Avatar,
		Company:     req.Company,
		Rating:      rating,
		ReviewCount: reviewCount,
		Price:       req.Price,
		Category:    req.Category,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// GetCourse retrieves a single course by ID.
func (s *CourseService) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// GetCoursesByCategory returns the courses of one category, newest first. An
// unknown category is a client error, not an empty list.
func (s *CourseService) GetCoursesByCategory(ctx context.Context, category string) ([]*models.Course, error) {
	if !models.IsValidCategory(category) {
		return nil, apperrors.ErrInvalidCategory
	}
	return s.courseRepo.GetByCategory(ctx, category)
}

// ListCourses retrieves courses matching the filter plus the total count.
func (s *CourseService) ListCourses(ctx context.Context, filter repositories.CourseListFilter) ([]*models.Course, int64, error) {
	if filter.Category != nil && !models.IsValidCategory(*filter.Category) {
		return nil, 0, apperrors.ErrInvalidCategory
	}
	return s.courseRepo.List(ctx, filter)
}

// UpdateCourse applies a partial update to a course.
func (s *CourseService) UpdateCourse(ctx context.Context, id int64, req dto.UpdateCourseRequest) (*models.Course, error) {
	if req.IsEmpty() {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Photos != nil {
		fields["photos"] = *req.Photos
	}
	if req.Mentor != nil {
		fields["mentor"] = *req.Mentor
	}
	if req.RoleMentor != nil {
		fields["rolementor"] = *req.RoleMentor
	}
	if req.Avatar != nil {
		fields["avatar"] = *req.Avatar
	}
	if req.Company != nil {
		fields["company"] = *req.Company
	}
	if req.Rating != nil {
		fields["rating"] = *req.Rating
	}
	if req.ReviewCount != nil {
		fields["review_count"] = *req.ReviewCount
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}

	return s.courseRepo.UpdateFields(ctx, id, fields)
}

// DeleteCourse removes a course by ID.
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	return s.courseRepo.Delete(ctx, id)
}

// ResetCourses restores the catalog to the built-in defaults.
func (s *CourseService) ResetCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.ResetToDefaults(ctx, seed.DefaultCourses())
}
