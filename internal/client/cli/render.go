package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/smementor/internal/client/models"
	"github.com/dmitrijs2005/smementor/internal/client/services"
)

const barWidth = 20

// progressBar renders pct (0..100) as a fixed-width bar.
func progressBar(pct float64) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * barWidth)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled) + "]"
}

func titleWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (a *App) renderCourseRow(c models.Course) {
	a.printf("#%-4d %s\n", c.ID, c.Title)
	a.printf("      %s · %s · %d min\n", c.CategoryLabel(), titleWord(c.DifficultyLevel), c.EstimatedDuration)
	if c.Description != "" {
		a.printf("      %s\n", c.Description)
	}
}

func (a *App) renderProgressRow(p models.CourseProgress) {
	title := fmt.Sprintf("course #%d", p.CourseID)
	if p.Course != nil {
		title = p.Course.Title
	}
	state := fmt.Sprintf("%.0f%%", p.CompletionPercentage)
	if p.IsCompleted {
		state = "completed"
	}
	a.printf("#%-4d %s %s %s\n", p.CourseID, progressBar(p.CompletionPercentage), state, title)
}

func (a *App) renderCourseView(v *services.CourseView) {
	c := v.Course
	a.printf("\n%s\n", c.Title)
	a.printf("%s · %d minutes · %d modules · %s\n", c.CategoryLabel(), c.EstimatedDuration, len(c.Modules), c.DifficultyLevel)
	if c.Description != "" {
		a.println(c.Description)
	}

	if !v.Enrolled() {
		a.println("")
		a.println("Enroll now to access all course materials and track your progress.")
		a.printf("Type 'enroll %d'.\n", c.ID)
		return
	}

	a.renderProgress(v)
	a.println("\nModules:")
	for i, m := range c.Modules {
		mark := " "
		if m.IsCompleted {
			mark = "✓"
		}
		cursor := " "
		if i == v.Active {
			cursor = ">"
		}
		quiz := ""
		if m.HasQuiz() {
			quiz = " (quiz)"
		}
		a.printf("%s %s %d. %s [#%d]%s\n", cursor, mark, i+1, m.Title, m.ID, quiz)
	}
	a.renderModule(v)
}

func (a *App) renderProgress(v *services.CourseView) {
	p := v.Progress
	if p == nil {
		return
	}
	a.printf("Completion %s %.0f%%\n", progressBar(p.CompletionPercentage), p.CompletionPercentage)
	if p.IsCompleted {
		a.println("Course Completed!")
	}
}

func (a *App) renderModule(v *services.CourseView) {
	m := v.ActiveModule()
	if m == nil {
		return
	}
	a.printf("\n== %s ==\n", m.Title)
	if m.VideoURL != "" {
		a.printf("Video: %s\n", m.VideoURL)
	}
	a.println(m.Content)

	var hints []string
	if !m.IsCompleted {
		hints = append(hints, fmt.Sprintf("complete %d", m.ID))
	}
	if m.HasQuiz() {
		hints = append(hints, fmt.Sprintf("quiz %d", m.ID))
	}
	if v.Active > 0 {
		hints = append(hints, "prev")
	}
	if v.Active < len(v.Course.Modules)-1 {
		hints = append(hints, "next")
	}
	if len(hints) > 0 {
		a.printf("\n(%s)\n", strings.Join(hints, " | "))
	}
}

func (a *App) renderScore(s *models.InvestorScore) {
	a.printf("Overall: %.0f%%  %s\n", s.OverallScore, s.ReadinessLevel.Label())
	a.printf("  Education          %s %.0f%%\n", progressBar(s.EducationScore), s.EducationScore)
	a.printf("  Financial literacy %s %.0f%%\n", progressBar(s.FinancialLiteracyScore), s.FinancialLiteracyScore)
	a.printf("  Business model     %s %.0f%%\n", progressBar(s.BusinessModelScore), s.BusinessModelScore)
	a.printf("  Sustainability     %s %.0f%%\n", progressBar(s.SustainabilityScore), s.SustainabilityScore)
	a.renderList("Strengths", s.Strengths)
	a.renderList("Areas for improvement", s.Weaknesses)
	a.renderList("Recommendations", s.Recommendations)
	if s.CalculatedAt != "" {
		a.printf("Last calculated: %s\n", s.CalculatedAt)
	}
}

func (a *App) renderList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	a.printf("%s:\n", title)
	for _, it := range items {
		a.printf("  - %s\n", it)
	}
}

func (a *App) renderChatMessage(m models.ChatMessage) {
	a.printf("you:    %s\n", m.Message)
	switch {
	case m.Pending:
		a.println("mentor: ...")
	case m.Response != "":
		a.printf("mentor: %s\n", m.Response)
	}
}
