package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/videobelajar/backend/internal/app/models"
	"github.com/videobelajar/backend/internal/db"
	"github.com/videobelajar/backend/internal/pkg/apperrors"
	"github.com/videobelajar/backend/internal/pkg/logger"
)

// courseColumns is the scan order shared by every course query.
var courseColumns = []string{
	"id", "title", "description", "photos", "mentor", "rolementor", "avatar",
	"company", "rating", "review_count", "price", "category", "created_at", "updated_at",
}

// courseSortColumns is the allow-list for the list endpoint's sortBy parameter.
var courseSortColumns = map[string]string{
	"created_at": "created_at",
	"title":      "title",
	"price":      "price",
	"rating":     "rating",
}

// CourseListFilter captures the optional list query parameters.
type CourseListFilter struct {
	Category *string
	Search   *string
	SortBy   string
	SortDir  string
	Limit    *int
	Offset   *int
}

// ICourseRepository defines the interface for course-related database operations
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetByCategory(ctx context.Context, category string) ([]*models.Course, error)
	List(ctx context.Context, filter CourseListFilter) ([]*models.Course, int64, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) (*models.Course, error)
	Delete(ctx context.Context, id int64) error
	ResetToDefaults(ctx context.Context, defaults []*models.Course) ([]*models.Course, error)
}

// CourseRepository implements ICourseRepository on a pgx pool.
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	course := &models.Course{}
	err := row.Scan(
		&course.ID, &course.Title, &course.Description, &course.Photos,
		&course.Mentor, &course.RoleMentor, &course.Avatar, &course.Company,
		&course.Rating, &course.ReviewCount, &course.Price, &course.Category,
		&course.CreatedAt, &course.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return course, nil
}

// Create inserts a new course.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Insert("courses").
		Columns("title", "description", "photos", "mentor", "rolementor",
			"avatar", "company", "rating", "review_count", "price", "category").
		Values(course.Title, course.Description, course.Photos, course.Mentor,
			course.RoleMentor, course.Avatar, course.Company, course.Rating,
			course.ReviewCount, course.Price, course.Category).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create course query")
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	return course, nil
}

// GetByCategory retrieves all courses in a category, newest first.
func (r *CourseRepository) GetByCategory(ctx context.Context, category string) ([]*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"category": category}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get courses by category query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("category", category).Msg("Error querying courses by category")
		return nil, fmt.Errorf("error querying courses by category: %w", err)
	}
	defer rows.Close()

	return collectCourses(rows)
}

// List retrieves courses matching the filter, along with the full matching
// count so pagination.total reflects more than the returned page.
func (r *CourseRepository) List(ctx context.Context, filter CourseListFilter) ([]*models.Course, int64, error) {
	conds := squirrel.And{}
	if filter.Category != nil {
		conds = append(conds, squirrel.Eq{"category": *filter.Category})
	}
	if filter.Search != nil && *filter.Search != "" {
		conds = append(conds, squirrel.ILike{"title": "%" + *filter.Search + "%"})
	}

	countBuilder := r.sb.Select("COUNT(*)").From("courses")
	if len(conds) > 0 {
		countBuilder = countBuilder.Where(conds)
	}
	countSql, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count courses query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting courses")
		return nil, 0, fmt.Errorf("error counting courses: %w", err)
	}

	sortColumn, ok := courseSortColumns[filter.SortBy]
	if !ok {
		sortColumn = "created_at"
	}
	direction := "DESC"
	if filter.SortDir == "ASC" {
		direction = "ASC"
	}

	builder := r.sb.Select(courseColumns...).
		From("courses").
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
		return nil, 0, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, 0, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses, err := collectCourses(rows)
	if err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

// UpdateFields applies a partial update and returns the updated record. The
// caller guarantees the map only holds allow-listed column names.
func (r *CourseRepository) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) (*models.Course, error) {
	if len(fields) == 0 {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	sql, args, err := r.sb.Update("courses").
		SetMap(fields).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(courseColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing update course query")
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	return course, nil
}

// Delete removes a course by ID.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// ResetToDefaults truncates the catalog and reseeds it in one transaction, so
// a failed reseed never leaves an empty catalog behind.
func (r *CourseRepository) ResetToDefaults(ctx context.Context, defaults []*models.Course) ([]*models.Course, error) {
	created := make([]*models.Course, 0, len(defaults))

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "DELETE FROM courses"); err != nil {
			return fmt.Errorf("error truncating courses: %w", err)
		}

		for _, course := range defaults {
			c := *course
			sql, args, err := r.sb.Insert("courses").
				Columns("title", "description", "photos", "mentor", "rolementor",
					"avatar", "company", "rating", "review_count", "price", "category").
				Values(c.Title, c.Description, c.Photos, c.Mentor, c.RoleMentor,
					c.Avatar, c.Company, c.Rating, c.ReviewCount, c.Price, c.Category).
				Suffix("RETURNING id, created_at, updated_at").
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build reseed query: %w", err)
			}

			if err := tx.QueryRow(ctx, sql, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
				return fmt.Errorf("error reseeding course: %w", err)
			}
			created = append(created, &c)
		}

		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("Error resetting courses to defaults")
		return nil, err
	}

	return created, nil
}

func collectCourses(rows pgx.Rows) ([]*models.Course, error) {
	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}
	return courses, nil
}
