package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/dmitrijs2005/smementor/internal/client/models"
	"github.com/gorilla/mux"
)

// fakePlatform is a small in-memory backend speaking the platform's REST API.
type fakePlatform struct {
	mu  sync.Mutex
	srv *httptest.Server

	password string
	token    string
	user     models.User

	courses     map[int64]*models.Course
	progress    map[int64]*models.CourseProgress
	history     []models.ChatMessage
	score       *models.InvestorScore
	mentorDown  bool
	lastProfile models.ProfileUpdate
	lastQuiz    models.QuizSubmission
}

func newFakePlatform(t *testing.T) *fakePlatform {
	t.Helper()
	p := &fakePlatform{
		password: "pw",
		token:    "tok-1",
		user: models.User{
			ID: 1, Email: "amina@biz.ke", FullName: "Amina Njeri",
			BusinessName: "Njeri Foods", County: "Nairobi", Points: 40,
		},
		courses: map[int64]*models.Course{
			1: {ID: 1, Title: "Cash Flow Basics", Description: "Track money in and out", Category: "financial_literacy",
				DifficultyLevel: "beginner", TargetStage: "idea", EstimatedDuration: 30,
				Modules: []models.Module{
					{ID: 12, CourseID: 1, Title: "Forecasting", Content: "Plan ahead.", Order: 2,
						QuizQuestions: []models.QuizQuestion{{Question: "Best horizon?", Options: []string{"1 day", "13 weeks"}}}},
					{ID: 11, CourseID: 1, Title: "Why cash matters", Content: "Cash is king.", Order: 1},
				}},
			2: {ID: 2, Title: "Scaling Your Team", Description: "Hiring for growth", Category: "scalability",
				DifficultyLevel: "intermediate", TargetStage: "growth", EstimatedDuration: 45},
		},
		progress: map[int64]*models.CourseProgress{},
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/auth/login", p.login).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/register", p.register).Methods(http.MethodPost)

	authed := r.PathPrefix("/api").Subrouter()
	authed.Use(p.requireToken)
	authed.HandleFunc("/auth/me", p.me).Methods(http.MethodGet)
	authed.HandleFunc("/auth/profile", p.updateProfile).Methods(http.MethodPut)
	authed.HandleFunc("/courses", p.listCourses).Methods(http.MethodGet)
	authed.HandleFunc("/courses/recommended", p.recommended).Methods(http.MethodGet)
	authed.HandleFunc("/courses/progress/my-courses", p.myCourses).Methods(http.MethodGet)
	authed.HandleFunc("/courses/modules/{id:[0-9]+}/complete", p.complete).Methods(http.MethodPost)
	authed.HandleFunc("/courses/modules/{id:[0-9]+}/quiz", p.quiz).Methods(http.MethodPost)
	authed.HandleFunc("/courses/{id:[0-9]+}", p.getCourse).Methods(http.MethodGet)
	authed.HandleFunc("/courses/{id:[0-9]+}/enroll", p.enroll).Methods(http.MethodPost)
	authed.HandleFunc("/ai-mentor/chat", p.chat).Methods(http.MethodPost)
	authed.HandleFunc("/ai-mentor/chat/history", p.chatHistory).Methods(http.MethodGet)
	authed.HandleFunc("/ai-mentor/investor-score", p.getScore).Methods(http.MethodGet)
	authed.HandleFunc("/ai-mentor/investor-score/recalculate", p.recalc).Methods(http.MethodPost)

	p.srv = httptest.NewServer(r)
	t.Cleanup(p.srv.Close)
	return p
}

// revoke makes every authenticated call answer 401.
func (p *fakePlatform) revoke() {
	p.mu.Lock()
	p.token = "revoked"
	p.mu.Unlock()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func detail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"detail": msg})
}

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

func (p *fakePlatform) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.mu.Lock()
		ok := r.Header.Get("Authorization") == "Bearer "+p.token
		p.mu.Unlock()
		if !ok {
			detail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (p *fakePlatform) login(w http.ResponseWriter, r *http.Request) {
	var c models.Credentials
	_ = json.NewDecoder(r.Body).Decode(&c)
	p.mu.Lock()
	defer p.mu.Unlock()
	if c.Email != p.user.Email || c.Password != p.password {
		detail(w, http.StatusUnauthorized, "Incorrect email or password")
		return
	}
	u := p.user
	writeJSON(w, http.StatusOK, models.AuthResponse{AccessToken: p.token, TokenType: "bearer", User: &u})
}

func (p *fakePlatform) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	p.mu.Lock()
	defer p.mu.Unlock()
	if req.Email == p.user.Email {
		detail(w, http.StatusBadRequest, "Email already registered")
		return
	}
	p.user = models.User{
		ID: 2, Email: req.Email, FullName: req.FullName, PhoneNumber: req.PhoneNumber,
		BusinessName: req.BusinessName, Sector: req.Sector, County: req.County,
		LanguagePreference: req.LanguagePreference,
	}
	p.password = req.Password
	u := p.user
	writeJSON(w, http.StatusOK, models.AuthResponse{AccessToken: p.token, TokenType: "bearer", User: &u})
}

func (p *fakePlatform) me(w http.ResponseWriter, _ *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	writeJSON(w, http.StatusOK, p.user)
}

func (p *fakePlatform) updateProfile(w http.ResponseWriter, r *http.Request) {
	var upd models.ProfileUpdate
	_ = json.NewDecoder(r.Body).Decode(&upd)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastProfile = upd
	p.user.FullName = upd.FullName
	p.user.BusinessName = upd.BusinessName
	p.user.Sector = upd.Sector
	p.user.County = upd.County
	p.user.LanguagePreference = upd.LanguagePreference
	writeJSON(w, http.StatusOK, p.user)
}

func (p *fakePlatform) listCourses(w http.ResponseWriter, _ *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := []models.Course{*p.courses[1], *p.courses[2]}
	writeJSON(w, http.StatusOK, out)
}

func (p *fakePlatform) recommended(w http.ResponseWriter, _ *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	writeJSON(w, http.StatusOK, []models.Course{*p.courses[2]})
}

func (p *fakePlatform) getCourse(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := p.courses[pathID(r)]
	if !ok {
		detail(w, http.StatusNotFound, "Course not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (p *fakePlatform) enroll(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.courses[id]; !ok {
		detail(w, http.StatusNotFound, "Course not found")
		return
	}
	if _, ok := p.progress[id]; ok {
		detail(w, http.StatusBadRequest, "Already enrolled")
		return
	}
	p.progress[id] = &models.CourseProgress{ID: id, UserID: p.user.ID, CourseID: id, Course: p.courses[id]}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Enrolled"})
}

func (p *fakePlatform) myCourses(w http.ResponseWriter, _ *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.CourseProgress, 0, len(p.progress))
	for _, id := range []int64{1, 2} {
		if pr, ok := p.progress[id]; ok {
			out = append(out, *pr)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (p *fakePlatform) complete(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, c := range p.courses {
		for i := range c.Modules {
			if c.Modules[i].ID != id {
				continue
			}
			c.Modules[i].IsCompleted = true
			done := 0
			for _, m := range c.Modules {
				if m.IsCompleted {
					done++
				}
			}
			if pr, ok := p.progress[c.ID]; ok {
				pr.CompletionPercentage = float64(done) / float64(len(c.Modules)) * 100
				pr.IsCompleted = done == len(c.Modules)
			}
			writeJSON(w, http.StatusOK, map[string]string{"message": "Module completed"})
			return
		}
	}
	detail(w, http.StatusNotFound, "Module not found")
}

func (p *fakePlatform) quiz(w http.ResponseWriter, r *http.Request) {
	var sub models.QuizSubmission
	_ = json.NewDecoder(r.Body).Decode(&sub)
	p.mu.Lock()
	p.lastQuiz = sub
	p.mu.Unlock()
	correct := 0
	if len(sub.Answers) == 1 && sub.Answers[0] == 1 {
		correct = 1
	}
	writeJSON(w, http.StatusOK, models.QuizResult{
		Score: float64(correct) * 100, Passed: correct == 1, CorrectAnswers: correct, TotalQuestions: 1,
	})
}

func (p *fakePlatform) chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mentorDown {
		detail(w, http.StatusServiceUnavailable, "Mentor is resting")
		return
	}
	msg := models.ChatMessage{
		ID: int64(len(p.history) + 1), Message: req.Message,
		Response: "Mentor says: " + req.Message, CreatedAt: "2025-03-01T10:00:00",
	}
	p.history = append(p.history, msg)
	writeJSON(w, http.StatusOK, msg)
}

func (p *fakePlatform) chatHistory(w http.ResponseWriter, _ *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := append([]models.ChatMessage{}, p.history...)
	writeJSON(w, http.StatusOK, out)
}

func (p *fakePlatform) getScore(w http.ResponseWriter, _ *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.score == nil {
		detail(w, http.StatusNotFound, "Investor score not found")
		return
	}
	writeJSON(w, http.StatusOK, p.score)
}

func (p *fakePlatform) recalc(w http.ResponseWriter, _ *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.score = &models.InvestorScore{
		EducationScore: 60, FinancialLiteracyScore: 70, BusinessModelScore: 50, SustainabilityScore: 40,
		OverallScore: 55, ReadinessLevel: models.ReadinessNeedsImprovement,
		Strengths: []string{"Consistent learning"}, Weaknesses: []string{"Thin financial records"},
		Recommendations: []string{"Complete Cash Flow Basics"},
	}
	writeJSON(w, http.StatusOK, p.score)
}
