package services

import (
	"context"

	"github.com/videobelajar/backend/internal/app/models"
	"github.com/videobelajar/backend/internal/app/repositories"
	"github.com/videobelajar/backend/internal/pkg/apperrors"
)

type mockUserRepo struct {
	createFn                 func(ctx context.Context, user *models.User) error
	getByIDFn                func(ctx context.Context, id int64) (*models.User, error)
	getByEmailFn             func(ctx context.Context, email string) (*models.User, error)
	listFn                   func(ctx context.Context, filter repositories.UserListFilter) ([]*models.User, int64, error)
	updateFieldsFn           func(ctx context.Context, id int64, fields map[string]interface{}) (*models.User, error)
	updatePasswordFn         func(ctx context.Context, id int64, hashedPassword string) error
	deleteFn                 func(ctx context.Context, id int64) error
	emailOrUsernameExistsFn  func(ctx context.Context, email, username string) (bool, error)
	clearVerificationTokenFn func(ctx context.Context, token string) (*models.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	user.ID = 1
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockUserRepo) List(ctx context.Context, filter repositories.UserListFilter) ([]*models.User, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockUserRepo) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) (*models.User, error) {
	if m.updateFieldsFn != nil {
		return m.updateFieldsFn(ctx, id, fields)
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	if m.updatePasswordFn != nil {
		return m.updatePasswordFn(ctx, id, hashedPassword)
	}
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockUserRepo) EmailOrUsernameExists(ctx context.Context, email, username string) (bool, error) {
	if m.emailOrUsernameExistsFn != nil {
		return m.emailOrUsernameExistsFn(ctx, email, username)
	}
	return false, nil
}

func (m *mockUserRepo) ClearVerificationToken(ctx context.Context, token string) (*models.User, error) {
	if m.clearVerificationTokenFn != nil {
		return m.clearVerificationTokenFn(ctx, token)
	}
	return nil, apperrors.ErrUserNotFound
}

type mockCourseRepo struct {
	createFn          func(ctx context.Context, course *models.Course) error
	getByIDFn         func(ctx context.Context, id int64) (*models.Course, error)
	getByCategoryFn   func(ctx context.Context, category string) ([]*models.Course, error)
	listFn            func(ctx context.Context, filter repositories.CourseListFilter) ([]*models.Course, int64, error)
	updateFieldsFn    func(ctx context.Context, id int64, fields map[string]interface{}) (*models.Course, error)
	deleteFn          func(ctx context.Context, id int64) error
	resetToDefaultsFn func(ctx context.Context, defaults []*models.Course) ([]*models.Course, error)
}

func (m *mockCourseRepo) Create(ctx context.Context, course *models.Course) error {
	if m.createFn != nil {
		return m.createFn(ctx, course)
	}
	course.ID = 1
	return nil
}

func (m *mockCourseRepo) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, apperrors.ErrCourseNotFound
}

func (m *mockCourseRepo) GetByCategory(ctx context.Context, category string) ([]*models.Course, error) {
	if m.getByCategoryFn != nil {
		return m.getByCategoryFn(ctx, category)
	}
	return nil, nil
}

func (m *mockCourseRepo) List(ctx context.Context, filter repositories.CourseListFilter) ([]*models.Course, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockCourseRepo) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) (*models.Course, error) {
	if m.updateFieldsFn != nil {
		return m.updateFieldsFn(ctx, id, fields)
	}
	return nil, apperrors.ErrCourseNotFound
}

func (m *mockCourseRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockCourseRepo) ResetToDefaults(ctx context.Context, defaults []*models.Course) ([]*models.Course, error) {
	if m.resetToDefaultsFn != nil {
		return m.resetToDefaultsFn(ctx, defaults)
	}
	return defaults, nil
}

type mockMailer struct {
	sent []string
	err  error
}

func (m *mockMailer) SendVerificationEmail(toEmail, toName, token string) error {
	m.sent = append(m.sent, toEmail)
	return m.err
}
