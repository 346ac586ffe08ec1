package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/videobelajar/backend/internal/app/models"
	"github.com/videobelajar/backend/internal/app/repositories"
	"github.com/videobelajar/backend/internal/pkg/logger"
)

func strPtr(s string) *string { return &s }

// DefaultCourses returns the built-in catalog used for first-run seeding and
// for the catalog reset endpoint. Callers receive fresh copies.
func DefaultCourses() []*models.Course {
	return []*models.Course{
		{
			Title:       "Big 4 Auditor Financial Analyst",
			Description: "Mulai transformasi dengan instruktur profesional, harga yang terjangkau, dan sistem pembelajaran yang mudah dipahami.",
			Photos:      strPtr("/images/cards/card1.png"),
			Mentor:      "Jenna Ortega",
			RoleMentor:  "Senior Accountant",
			Avatar:      strPtr("/images/tutors/tutor-card1.png"),
			Company:     "Gojek",
			Rating:      4.5,
			ReviewCount: 126,
			Price:       "300K",
			Category:    models.CategoryBusiness,
		},
		{
			Title:       "Digital Marketing Strategy",
			Description: "Pelajari strategi pemasaran digital yang efektif untuk meningkatkan brand awareness dan konversi.",
			Photos:      strPtr("/images/cards/card2.png"),
			Mentor:      "Sarah Johnson",
			RoleMentor:  "Marketing Director",
			Avatar:      strPtr("/images/tutors/tutor-card2.png"),
			Company:     "Tokopedia",
			Rating:      4.2,
			ReviewCount: 98,
			Price:       "250K",
			Category:    models.CategoryMarketing,
		},
		{
			Title:       "UI/UX Design Fundamentals",
			Description: "Kuasai dasar-dasar desain UI/UX untuk menciptakan pengalaman pengguna yang luar biasa.",
			Photos:      strPtr("/images/cards/card3.png"),
			Mentor:      "Michael Chen",
			RoleMentor:  "Lead Designer",
			Avatar:      strPtr("/images/tutors/tutor-card3.png"),
			Company:     "Grab",
			Rating:      4.7,
			ReviewCount: 204,
			Price:       "400K",
			Category:    models.CategoryDesign,
		},
	}
}

// EnsureDefaultCourses seeds the catalog when it is empty, so a fresh
// deployment starts with browsable content. A non-empty catalog is left alone.
func EnsureDefaultCourses(ctx context.Context, dbPool *pgxpool.Pool) error {
	var count int64
	if err := dbPool.QueryRow(ctx, "SELECT COUNT(*) FROM courses").Scan(&count); err != nil {
		return fmt.Errorf("error counting courses: %w", err)
	}
	if count > 0 {
		return nil
	}

	logger.Info().Msg("Course catalog empty, seeding default courses")

	courseRepo := repositories.NewCourseRepository(dbPool)
	for _, course := range DefaultCourses() {
		if err := courseRepo.Create(ctx, course); err != nil {
			return fmt.Errorf("error seeding course %q: %w", course.Title, err)
		}
	}

	return nil
}
