package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/smementor/internal/client/models"
)

// CoursesEndpoints groups /api/courses.
type CoursesEndpoints struct {
	c *Client
}

func (e *CoursesEndpoints) GetAllCourses(ctx context.Context, q models.CourseQuery) ([]models.Course, error) {
	var out []models.Course
	if err := e.c.do(ctx, http.MethodGet, "/api/courses", q.Values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *CoursesEndpoints) GetRecommendedCourses(ctx context.Context) ([]models.Course, error) {
	var out []models.Course
	if err := e.c.do(ctx, http.MethodGet, "/api/courses/recommended", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *CoursesEndpoints) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	var out models.Course
	if err := e.c.do(ctx, http.MethodGet, fmt.Sprintf("/api/courses/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *CoursesEndpoints) EnrollInCourse(ctx context.Context, id int64) error {
	return e.c.do(ctx, http.MethodPost, fmt.Sprintf("/api/courses/%d/enroll", id), nil, nil, nil)
}

func (e *CoursesEndpoints) GetMyCourses(ctx context.Context) ([]models.CourseProgress, error) {
	var out []models.CourseProgress
	if err := e.c.do(ctx, http.MethodGet, "/api/courses/progress/my-courses", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *CoursesEndpoints) CompleteModule(ctx context.Context, moduleID int64) error {
	return e.c.do(ctx, http.MethodPost, fmt.Sprintf("/api/courses/modules/%d/complete", moduleID), nil, nil, nil)
}

func (e *CoursesEndpoints) SubmitQuiz(ctx context.Context, moduleID int64, answers []int) (*models.QuizResult, error) {
	in := models.QuizSubmission{ModuleID: moduleID, Answers: answers}
	var out models.QuizResult
	if err := e.c.do(ctx, http.MethodPost, fmt.Sprintf("/api/courses/modules/%d/quiz", moduleID), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
