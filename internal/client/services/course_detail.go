package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/smementor/internal/client/models"
	"golang.org/x/sync/errgroup"
)

var ErrModuleNotFound = errors.New("module not found in course")

// CourseView is one loaded course together with the caller's progress in it.
type CourseView struct {
	Course *models.Course
	// Progress is nil when the user is not enrolled.
	Progress *models.CourseProgress
	// Active indexes Course.Modules; -1 when no module is open.
	Active int
}

func (v *CourseView) Enrolled() bool { return v.Progress != nil }

func (v *CourseView) ActiveModule() *models.Module {
	if v.Active < 0 || v.Active >= len(v.Course.Modules) {
		return nil
	}
	return &v.Course.Modules[v.Active]
}

// Select opens the module with the given id.
func (v *CourseView) Select(moduleID int64) error {
	for i, m := range v.Course.Modules {
		if m.ID == moduleID {
			v.Active = i
			return nil
		}
	}
	return fmt.Errorf("%w: %d", ErrModuleNotFound, moduleID)
}

// Next moves to the following module. It reports false at the last one.
func (v *CourseView) Next() bool {
	if v.Active+1 >= len(v.Course.Modules) {
		return false
	}
	v.Active++
	return true
}

// Prev moves to the preceding module. It reports false at the first one.
func (v *CourseView) Prev() bool {
	if v.Active <= 0 {
		return false
	}
	v.Active--
	return true
}

// CourseDetailService backs the course detail screen.
type CourseDetailService struct {
	api CoursesAPI
}

func NewCourseDetailService(api CoursesAPI) *CourseDetailService {
	return &CourseDetailService{api: api}
}

// Load fetches the course and the user's enrollments concurrently. Modules
// come back sorted by order. When enrolled, the first incomplete module is
// active, or the first module if all are done.
func (s *CourseDetailService) Load(ctx context.Context, courseID int64) (*CourseView, error) {
	var (
		course *models.Course
		mine   []models.CourseProgress
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.api.GetCourse(gctx, courseID)
		if err != nil {
			return err
		}
		course = c
		return nil
	})
	g.Go(func() error {
		p, err := s.api.GetMyCourses(gctx)
		if err != nil {
			return err
		}
		mine = p
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(course.Modules, func(a, b models.Module) int {
		return a.Order - b.Order
	})

	v := &CourseView{Course: course, Active: -1}
	for i := range mine {
		if mine[i].CourseID == courseID {
			p := mine[i]
			v.Progress = &p
			break
		}
	}

	if v.Enrolled() && len(course.Modules) > 0 {
		v.Active = 0
		for i, m := range course.Modules {
			if !m.IsCompleted {
				v.Active = i
				break
			}
		}
	}
	return v, nil
}

// Enroll enrolls the user and reloads the course.
func (s *CourseDetailService) Enroll(ctx context.Context, courseID int64) (*CourseView, error) {
	if err := s.api.EnrollInCourse(ctx, courseID); err != nil {
		return nil, err
	}
	return s.Load(ctx, courseID)
}

// CompleteModule marks the module done and reloads its course.
func (s *CourseDetailService) CompleteModule(ctx context.Context, courseID, moduleID int64) (*CourseView, error) {
	if err := s.api.CompleteModule(ctx, moduleID); err != nil {
		return nil, err
	}
	return s.Load(ctx, courseID)
}

// SubmitQuiz sends one option index per question.
func (s *CourseDetailService) SubmitQuiz(ctx context.Context, moduleID int64, answers []int) (*models.QuizResult, error) {
	return s.api.SubmitQuiz(ctx, moduleID, answers)
}
