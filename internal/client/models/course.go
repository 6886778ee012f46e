package models

import (
	"net/url"
	"strings"
)

type Course struct {
	ID                int64    `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Category          string   `json:"category"`
	DifficultyLevel   string   `json:"difficulty_level"`
	TargetStage       string   `json:"target_stage,omitempty"`
	EstimatedDuration int      `json:"estimated_duration"` // minutes
	ThumbnailURL      string   `json:"thumbnail_url,omitempty"`
	Modules           []Module `json:"modules,omitempty"`
}

// CategoryLabel renders "financial_literacy" as "FINANCIAL LITERACY".
func (c Course) CategoryLabel() string {
	return strings.ToUpper(strings.ReplaceAll(c.Category, "_", " "))
}

// Module is a single learning unit within a course.
type Module struct {
	ID            int64          `json:"id"`
	CourseID      int64          `json:"course_id"`
	Title         string         `json:"title"`
	Content       string         `json:"content"`
	VideoURL      string         `json:"video_url,omitempty"`
	Order         int            `json:"order"`
	QuizQuestions []QuizQuestion `json:"quiz_questions,omitempty"`
	IsCompleted   bool           `json:"is_completed"`
}

func (m Module) HasQuiz() bool { return len(m.QuizQuestions) > 0 }

type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// CourseProgress joins a user and a course.
type CourseProgress struct {
	ID                   int64   `json:"id"`
	UserID               int64   `json:"user_id"`
	CourseID             int64   `json:"course_id"`
	Course               *Course `json:"course,omitempty"`
	CompletionPercentage float64 `json:"completion_percentage"`
	IsCompleted          bool    `json:"is_completed"`
	EnrolledAt           string  `json:"enrolled_at,omitempty"`
}

// CourseQuery holds the optional server-side filters for the course list.
type CourseQuery struct {
	Category        string
	DifficultyLevel string
	TargetStage     string
}

// Values encodes the non-empty fields as query parameters.
func (q CourseQuery) Values() url.Values {
	v := url.Values{}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.DifficultyLevel != "" {
		v.Set("difficulty_level", q.DifficultyLevel)
	}
	if q.TargetStage != "" {
		v.Set("target_stage", q.TargetStage)
	}
	return v
}

// QuizSubmission carries the selected option index for each question.
type QuizSubmission struct {
	ModuleID int64 `json:"module_id"`
	Answers  []int `json:"answers"`
}

type QuizResult struct {
	Score          float64 `json:"score"`
	Passed         bool    `json:"passed"`
	CorrectAnswers int     `json:"correct_answers"`
	TotalQuestions int     `json:"total_questions"`
}
