package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/videobelajar/backend/internal/app/models"
	"github.com/videobelajar/backend/internal/pkg/apperrors"
	"github.com/videobelajar/backend/internal/pkg/dberrors"
	"github.com/videobelajar/backend/internal/pkg/logger"
)

// Unique constraint names from 001_init.sql.
const (
	userEmailConstraint    = "users_email_key"
	userUsernameConstraint = "users_username_key"
)

// userColumns is the scan order shared by every user query.
var userColumns = []string{
	"id", "name", "username", "email", "password", "phone", "gender",
	"role", "avatar", "verification_token", "created_at", "updated_at",
}

// userSortColumns is the allow-list for the list endpoint's sortBy parameter.
var userSortColumns = map[string]string{
	"created_at": "created_at",
	"name":       "name",
	"email":      "email",
}

// UserListFilter captures the optional list query parameters.
type UserListFilter struct {
	Role    *string
	Search  *string
	SortBy  string
	SortDir string
	Limit   *int
	Offset  *int
}

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, filter UserListFilter) ([]*models.User, int64, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) (*models.User, error)
	UpdatePassword(ctx context.Context, id int64, hashedPassword string) error
	Delete(ctx context.Context, id int64) error
	EmailOrUsernameExists(ctx context.Context, email, username string) (bool, error)
	ClearVerificationToken(ctx context.Context, token string) (*models.User, error)
}

// UserRepository implements IUserRepository on a pgx pool.
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Name, &user.Username, &user.Email, &user.Password,
		&user.Phone, &user.Gender, &user.Role, &user.Avatar,
		&user.VerificationToken, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// mapUserConstraintError translates a unique violation into the matching
// domain error.
func mapUserConstraintError(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, userEmailConstraint):
		return apperrors.ErrEmailAlreadyExists
	case dberrors.IsDuplicateConstraintError(err, userUsernameConstraint):
		return apperrors.ErrUsernameAlreadyExists
	case dberrors.IsUniqueViolation(err):
		return apperrors.ErrConflict
	}
	return err
}

// Create inserts a new user. Uniqueness of email and username is enforced by
// the table constraints; any pre-check done by the caller is only an
// optimization.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	sql, args, err := r.sb.Insert("users").
		Columns("name", "username", "email", "password", "phone", "gender", "role", "avatar", "verification_token").
		Values(user.Name, user.Username, user.Email, user.Password, user.Phone,
			user.Gender, user.Role, user.Avatar, user.VerificationToken).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create user query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if mapped := mapUserConstraintError(err); mapped != err {
			return mapped
		}
		logger.Error().Err(err).Msg("Error executing create user query")
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by ID: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by normalized email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user by email query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error scanning user row by email")
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}

	return user, nil
}

// List retrieves users matching the filter, along with the full matching count.
func (r *UserRepository) List(ctx context.Context, filter UserListFilter) ([]*models.User, int64, error) {
	conds := squirrel.And{}
	if filter.Role != nil {
		conds = append(conds, squirrel.Eq{"role": *filter.Role})
	}
	if filter.Search != nil && *filter.Search != "" {
		conds = append(conds, squirrel.ILike{"name": "%" + *filter.Search + "%"})
	}

	countBuilder := r.sb.Select("COUNT(*)").From("users")
	if len(conds) > 0 {
		countBuilder = countBuilder.Where(conds)
	}
	countSql, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count users query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting users")
		return nil, 0, fmt.Errorf("error counting users: %w", err)
	}

	sortColumn, ok := userSortColumns[filter.SortBy]
	if !ok {
		sortColumn = "created_at"
	}
	direction := "DESC"
	if filter.SortDir == "ASC" {
		direction = "ASC"
	}

	builder := r.sb.Select(userColumns...).
		From("users").
		OrderBy(sortColumn + " " + direction)
	if len(conds) > 0 {
		builder = builder.Where(conds)
	}
	if filter.Limit != nil {
		builder = builder.Limit(uint64(*filter.Limit))
	}
	if filter.Offset != nil {
		builder = builder.Offset(uint64(*filter.Offset))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list users query")
		return nil, 0, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, total, nil
}

// UpdateFields applies a partial update and returns the updated record. The
// caller guarantees the map only holds allow-listed column names.
func (r *UserRepository) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) (*models.User, error) {
	if len(fields) == 0 {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	sql, args, err := r.sb.Update("users").
		SetMap(fields).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(userColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		if mapped := mapUserConstraintError(err); mapped != err {
			return nil, mapped
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error executing update user query")
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	return user, nil
}

// UpdatePassword overwrites the stored password value with a fresh hash.
func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	sql, args, err := r.sb.Update("users").
		Set("password", hashedPassword).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update password query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", id).Msg("Error executing update password query")
		return fmt.Errorf("error updating password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// Delete removes a user by ID. The admin guard lives in the service layer.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete user query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", id).Msg("Error executing delete user query")
		return fmt.Errorf("error deleting user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// EmailOrUsernameExists checks both unique fields in a single query. This is a
// best-effort pre-check: two concurrent registrations can both pass it, and
// the loser is caught by the unique constraint in Create.
func (r *UserRepository) EmailOrUsernameExists(ctx context.Context, email, username string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("users").
		Where(squirrel.Or{
			squirrel.Eq{"email": email},
			squirrel.Eq{"username": username},
		}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build existence query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Msg("Error checking email/username existence")
		return false, fmt.Errorf("error checking existence: %w", err)
	}

	return exists, nil
}

// ClearVerificationToken atomically clears a matching verification token and
// returns the verified user. A second call with the same token finds no row,
// which makes verification single-use.
func (r *UserRepository) ClearVerificationToken(ctx context.Context, token string) (*models.User, error) {
	sql, args, err := r.sb.Update("users").
		Set("verification_token", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"verification_token": token}).
		Suffix("RETURNING " + joinColumns(userColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build clear verification token query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvalidVerificationToken
		}
		logger.Error().Err(err).Msg("Error executing clear verification token query")
		return nil, fmt.Errorf("error clearing verification token: %w", err)
	}

	return user, nil
}
