package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/smementor/internal/client/models"
)

// fakeBackend implements CoursesAPI and MentorAPI for unit tests.
type fakeBackend struct {
	mu sync.Mutex

	courses       []models.Course
	coursesErr    error
	recommended   []models.Course
	recErr        error
	course        map[int64]*models.Course
	courseErr     error
	myCourses     []models.CourseProgress
	myCoursesErr  error
	enrollErr     error
	completeErr   error
	quizResult    *models.QuizResult
	quizErr       error
	chatReply     *models.ChatMessage
	chatErr       error
	history       []models.ChatMessage
	historyErr    error
	score         *models.InvestorScore
	scoreErr      error
	recalcScore   *models.InvestorScore
	recalcErr     error
	onChat        func()
	lastQuery     models.CourseQuery
	enrolled      []int64
	completed     []int64
	quizAnswers   []int
	lastChatCtx   models.ChatContext
	lastChatMsg   string
	getCourseHits int
}

func (f *fakeBackend) GetAllCourses(_ context.Context, q models.CourseQuery) ([]models.Course, error) {
	f.lastQuery = q
	return f.courses, f.coursesErr
}

func (f *fakeBackend) GetRecommendedCourses(context.Context) ([]models.Course, error) {
	return f.recommended, f.recErr
}

func (f *fakeBackend) GetCourse(_ context.Context, id int64) (*models.Course, error) {
	f.mu.Lock()
	f.getCourseHits++
	f.mu.Unlock()
	if f.courseErr != nil {
		return nil, f.courseErr
	}
	c, ok := f.course[id]
	if !ok {
		return nil, errNotFoundForTest
	}
	cp := *c
	cp.Modules = append([]models.Module(nil), c.Modules...)
	return &cp, nil
}

func (f *fakeBackend) EnrollInCourse(_ context.Context, id int64) error {
	if f.enrollErr != nil {
		return f.enrollErr
	}
	f.enrolled = append(f.enrolled, id)
	f.myCourses = append(f.myCourses, models.CourseProgress{CourseID: id})
	return nil
}

func (f *fakeBackend) GetMyCourses(context.Context) ([]models.CourseProgress, error) {
	return f.myCourses, f.myCoursesErr
}

func (f *fakeBackend) CompleteModule(_ context.Context, moduleID int64) error {
	if f.completeErr != nil {
		return f.completeErr
	}
	f.completed = append(f.completed, moduleID)
	for _, c := range f.course {
		for i := range c.Modules {
			if c.Modules[i].ID == moduleID {
				c.Modules[i].IsCompleted = true
			}
		}
	}
	return nil
}

func (f *fakeBackend) SubmitQuiz(_ context.Context, _ int64, answers []int) (*models.QuizResult, error) {
	f.quizAnswers = answers
	return f.quizResult, f.quizErr
}

func (f *fakeBackend) Chat(_ context.Context, msg string, c models.ChatContext) (*models.ChatMessage, error) {
	f.lastChatMsg = msg
	f.lastChatCtx = c
	if f.onChat != nil {
		f.onChat()
	}
	return f.chatReply, f.chatErr
}

func (f *fakeBackend) GetChatHistory(context.Context) ([]models.ChatMessage, error) {
	return f.history, f.historyErr
}

func (f *fakeBackend) GetInvestorScore(context.Context) (*models.InvestorScore, error) {
	return f.score, f.scoreErr
}

func (f *fakeBackend) RecalculateScore(context.Context) (*models.InvestorScore, error) {
	return f.recalcScore, f.recalcErr
}
