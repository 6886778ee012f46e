package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/smementor/internal/client/models"
	"golang.org/x/sync/errgroup"
)

// Greeting picks the salutation for the hour of t.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Good Morning"
	case h < 18:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}

type DashboardView struct {
	Greeting    string
	MyCourses   []models.CourseProgress
	Recommended []models.Course
	// Score is nil when the backend has none or could not return one.
	Score *models.InvestorScore
}

func (v *DashboardView) Completed() int {
	n := 0
	for _, p := range v.MyCourses {
		if p.IsCompleted {
			n++
		}
	}
	return n
}

func (v *DashboardView) InProgress() []models.CourseProgress {
	out := make([]models.CourseProgress, 0, len(v.MyCourses))
	for _, p := range v.MyCourses {
		if !p.IsCompleted {
			out = append(out, p)
		}
	}
	return out
}

type DashboardService struct {
	courses CoursesAPI
	mentor  MentorAPI
	now     func() time.Time
}

func NewDashboardService(courses CoursesAPI, mentor MentorAPI) *DashboardService {
	return &DashboardService{courses: courses, mentor: mentor, now: time.Now}
}

// Load fetches enrollments and recommendations concurrently, then tries the
// investor score. A score failure of any kind leaves Score nil.
func (s *DashboardService) Load(ctx context.Context) (*DashboardView, error) {
	v := &DashboardView{Greeting: Greeting(s.now())}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.courses.GetMyCourses(gctx)
		v.MyCourses = p
		return err
	})
	g.Go(func() error {
		r, err := s.courses.GetRecommendedCourses(gctx)
		v.Recommended = r
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if score, err := s.mentor.GetInvestorScore(ctx); err == nil {
		v.Score = score
	}
	return v, nil
}
