package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/videobelajar/backend/internal/app/models"
	"github.com/videobelajar/backend/internal/app/models/dto"
	"github.com/videobelajar/backend/internal/app/repositories"
	"github.com/videobelajar/backend/internal/pkg/apperrors"
	"github.com/videobelajar/backend/internal/pkg/auth"
)

func newUserService(repo *mockUserRepo) *UserService {
	return NewUserService(repo, auth.NewPasswordHasher(bcrypt.MinCost))
}

func strp(s string) *string { return &s }

func TestCreateUserDefaultsToStudent(t *testing.T) {
	var created *models.User
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, user *models.User) error {
			user.ID = 2
			created = user
			return nil
		},
	}
	svc := newUserService(repo)

	user, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Fullname: "Pengguna",
		Username: "pengguna",
		Email:    "Pengguna@Example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.Equal(t, "pengguna@example.com", user.Email)
	assert.NotNil(t, user.Avatar)
	assert.True(t, auth.ParseStoredPassword(created.Password).Verify("secret123"))
}

func TestCreateUserExplicitRole(t *testing.T) {
	svc := newUserService(&mockUserRepo{})

	user, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Fullname: "Pengelola",
		Username: "pengelola",
		Email:    "pengelola@example.com",
		Password: "secret123",
		Role:     strp("admin"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	svc := newUserService(&mockUserRepo{})

	_, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Fullname: "Pengguna",
		Username: "pengguna",
		Email:    "pengguna@example.com",
		Password: "secret123",
		Role:     strp("superuser"),
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestCreateUserRejectsUnknownGender(t *testing.T) {
	svc := newUserService(&mockUserRepo{})

	_, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Fullname: "Pengguna",
		Username: "pengguna",
		Email:    "pengguna@example.com",
		Password: "secret123",
		Gender:   strp("Lainnya"),
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestUpdateUserRejectsInvalidValues(t *testing.T) {
	svc := newUserService(&mockUserRepo{})

	_, err := svc.UpdateUser(context.Background(), 1, dto.UpdateUserRequest{Email: strp("not-an-email")})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = svc.UpdateUser(context.Background(), 1, dto.UpdateUserRequest{Gender: strp("Lainnya")})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = svc.UpdateUser(context.Background(), 1, dto.UpdateUserRequest{Role: strp("superuser")})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestResetPasswordTooShortRejected(t *testing.T) {
	svc := newUserService(&mockUserRepo{})

	err := svc.ResetPassword(context.Background(), 1, "abc")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestUpdateUserEmptyPayload(t *testing.T) {
	svc := newUserService(&mockUserRepo{})

	_, err := svc.UpdateUser(context.Background(), 1, dto.UpdateUserRequest{})
	assert.ErrorIs(t, err, apperrors.ErrNoFieldsToUpdate)
}

func TestUpdateUserMapsOnlyProvidedFields(t *testing.T) {
	var gotFields map[string]interface{}
	repo := &mockUserRepo{
		updateFieldsFn: func(ctx context.Context, id int64, fields map[string]interface{}) (*models.User, error) {
			gotFields = fields
			return &models.User{ID: id, Name: "Nama Baru"}, nil
		},
	}
	svc := newUserService(repo)

	_, err := svc.UpdateUser(context.Background(), 4, dto.UpdateUserRequest{
		Fullname: strp("Nama Baru"),
		Email:    strp(" Baru@Example.com "),
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"name":  "Nama Baru",
		"email": "baru@example.com",
	}, gotFields)
}

func TestDeleteUserAdminGuard(t *testing.T) {
	deleted := false
	repo := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleAdmin}, nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			deleted = true
			return nil
		},
	}
	svc := newUserService(repo)

	err := svc.DeleteUser(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrAdminNotDeletable)
	assert.False(t, deleted)
}

func TestDeleteUserNonAdmin(t *testing.T) {
	repo := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleStudent}, nil
		},
	}
	svc := newUserService(repo)

	assert.NoError(t, svc.DeleteUser(context.Background(), 8))
}

func TestDeleteUserNotFound(t *testing.T) {
	svc := newUserService(&mockUserRepo{})
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), 99), apperrors.ErrUserNotFound)
}

func TestResetPasswordStoresHash(t *testing.T) {
	var storedHash string
	repo := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleStudent}, nil
		},
		updatePasswordFn: func(ctx context.Context, id int64, hashedPassword string) error {
			storedHash = hashedPassword
			return nil
		},
	}
	svc := newUserService(repo)

	require.NoError(t, svc.ResetPassword(context.Background(), 3, "barurahasia"))
	assert.NotEqual(t, "barurahasia", storedHash)
	assert.True(t, auth.ParseStoredPassword(storedHash).Verify("barurahasia"))
}

func TestResetPasswordUnknownUser(t *testing.T) {
	svc := newUserService(&mockUserRepo{})
	assert.ErrorIs(t, svc.ResetPassword(context.Background(), 42, "barurahasia"), apperrors.ErrUserNotFound)
}

func TestListUsersPassesFilter(t *testing.T) {
	limit := 10
	repo := &mockUserRepo{
		listFn: func(ctx context.Context, filter repositories.UserListFilter) ([]*models.User, int64, error) {
			assert.Equal(t, "admin", *filter.Role)
			assert.Equal(t, &limit, filter.Limit)
			return []*models.User{{ID: 1}}, 25, nil
		},
	}
	svc := newUserService(repo)

	users, total, err := svc.ListUsers(context.Background(), repositories.UserListFilter{
		Role:  strp("admin"),
		Limit: &limit,
	})
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, int64(25), total)
}
