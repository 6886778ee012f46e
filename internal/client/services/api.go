package services

import (
	"context"

	"github.com/dmitrijs2005/smementor/internal/client/models"
)

// CoursesAPI is satisfied by *api.CoursesEndpoints.
type CoursesAPI interface {
	GetAllCourses(ctx context.Context, q models.CourseQuery) ([]models.Course, error)
	GetRecommendedCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, id int64) (*models.Course, error)
	EnrollInCourse(ctx context.Context, id int64) error
	GetMyCourses(ctx context.Context) ([]models.CourseProgress, error)
	CompleteModule(ctx context.Context, moduleID int64) error
	SubmitQuiz(ctx context.Context, moduleID int64, answers []int) (*models.QuizResult, error)
}

// MentorAPI is satisfied by *api.MentorEndpoints.
type MentorAPI interface {
	Chat(ctx context.Context, message string, chatCtx models.ChatContext) (*models.ChatMessage, error)
	GetChatHistory(ctx context.Context) ([]models.ChatMessage, error)
	GetInvestorScore(ctx context.Context) (*models.InvestorScore, error)
	RecalculateScore(ctx context.Context) (*models.InvestorScore, error)
}

// ProfileAPI is satisfied by *api.AuthEndpoints.
type ProfileAPI interface {
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)
}

// UserRefresher is satisfied by *session.Session.
type UserRefresher interface {
	Refresh(ctx context.Context) error
}
