package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/smementor/internal/client/session"
)

func (a *App) Dashboard(ctx context.Context) error {
	v, err := a.dashboard.Load(ctx)
	if err != nil {
		a.notifyError(err, "Failed to load dashboard")
		return err
	}

	// A 401 while loading signs the user out.
	u := session.FromContext(ctx).User()
	if u == nil {
		return nil
	}
	a.printf("%s, %s! 👋\n", v.Greeting, u.DisplayName())
	a.println(u.BusinessOrDefault())
	a.println("")

	score := "N/A"
	if v.Score != nil {
		score = fmt.Sprintf("%.0f%%", v.Score.OverallScore)
	}
	a.printf("Enrolled courses: %d   Completed: %d   Points: %d   Investor score: %s\n",
		len(v.MyCourses), v.Completed(), u.Points, score)

	if inProgress := v.InProgress(); len(inProgress) > 0 {
		a.println("\nContinue learning:")
		for _, p := range inProgress {
			a.renderProgressRow(p)
		}
	}

	if len(v.Recommended) > 0 {
		a.println("\nRecommended for you:")
		for _, c := range v.Recommended {
			a.renderCourseRow(c)
		}
	}
	return nil
}
