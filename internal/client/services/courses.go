package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/smementor/internal/client/models"
)

var (
	Categories   = []string{"financial_literacy", "scalability", "sustainability"}
	Difficulties = []string{"beginner", "intermediate", "advanced"}
	Stages       = []string{"idea", "startup", "growth", "expansion"}
)

// CourseFilter narrows the catalog on the client side. Empty fields match
// everything.
type CourseFilter struct {
	Category   string
	Difficulty string
	Stage      string
	Search     string
}

func (f CourseFilter) Active() bool {
	return f.Category != "" || f.Difficulty != "" || f.Stage != "" || f.Search != ""
}

// FilterCourses keeps the courses matching every set criterion. Search is a
// case-insensitive substring match over title or description. The input is
// never modified, and an inactive filter returns it as is.
func FilterCourses(courses []models.Course, f CourseFilter) []models.Course {
	if !f.Active() {
		return courses
	}

	search := strings.ToLower(f.Search)
	out := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if f.Category != "" && c.Category != f.Category {
			continue
		}
		if f.Difficulty != "" && c.DifficultyLevel != f.Difficulty {
			continue
		}
		if f.Stage != "" && c.TargetStage != f.Stage {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Title), search) &&
			!strings.Contains(strings.ToLower(c.Description), search) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// CatalogService backs the course list screen.
type CatalogService struct {
	api CoursesAPI
}

func NewCatalogService(api CoursesAPI) *CatalogService {
	return &CatalogService{api: api}
}

// List fetches the whole catalog and filters it locally.
func (s *CatalogService) List(ctx context.Context, f CourseFilter) ([]models.Course, error) {
	all, err := s.api.GetAllCourses(ctx, models.CourseQuery{})
	if err != nil {
		return nil, err
	}
	return FilterCourses(all, f), nil
}

// MyCourses lists the enrollments of the current user.
func (s *CatalogService) MyCourses(ctx context.Context) ([]models.CourseProgress, error) {
	return s.api.GetMyCourses(ctx)
}
