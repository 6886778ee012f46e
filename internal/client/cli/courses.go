package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/smementor/internal/client/models"
	"github.com/dmitrijs2005/smementor/internal/client/services"
)

var (
	errUsage         = errors.New("usage")
	errNoOpenCourse  = errors.New("no course open")
	errInvalidAnswer = errors.New("invalid answer")
)

// parseCourseFilter reads key=value pairs for category, difficulty and
// stage. Every other word becomes part of the search text.
func parseCourseFilter(args []string) (services.CourseFilter, error) {
	var f services.CourseFilter
	var search []string

	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			search = append(search, arg)
			continue
		}
		switch key {
		case "category":
			if !slices.Contains(services.Categories, value) {
				return f, fmt.Errorf("unknown category %q (one of %s)", value, strings.Join(services.Categories, ", "))
			}
			f.Category = value
		case "difficulty", "level":
			if !slices.Contains(services.Difficulties, value) {
				return f, fmt.Errorf("unknown difficulty %q (one of %s)", value, strings.Join(services.Difficulties, ", "))
			}
			f.Difficulty = value
		case "stage":
			if !slices.Contains(services.Stages, value) {
				return f, fmt.Errorf("unknown stage %q (one of %s)", value, strings.Join(services.Stages, ", "))
			}
			f.Stage = value
		default:
			search = append(search, arg)
		}
	}
	f.Search = strings.Join(search, " ")
	return f, nil
}

func parseID(args []string, usage string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: %s", errUsage, usage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s", errUsage, usage)
	}
	return id, nil
}

func (a *App) Courses(ctx context.Context, args []string) error {
	f, err := parseCourseFilter(args)
	if err != nil {
		a.println(err.Error())
		return err
	}

	courses, err := a.catalog.List(ctx, f)
	if err != nil {
		a.notifyError(err, "Failed to load courses")
		return err
	}

	a.println("Explore Courses")
	a.printf("Showing %d course(s)\n", len(courses))
	if len(courses) == 0 {
		a.println("No courses found. Try adjusting your filters.")
		return nil
	}
	for _, c := range courses {
		a.renderCourseRow(c)
	}
	return nil
}

func (a *App) MyCourses(ctx context.Context) error {
	mine, err := a.catalog.MyCourses(ctx)
	if err != nil {
		a.notifyError(err, "Failed to load your courses")
		return err
	}
	if len(mine) == 0 {
		a.println("You are not enrolled in any course yet. Try 'courses'.")
		return nil
	}
	for _, p := range mine {
		a.renderProgressRow(p)
	}
	return nil
}

// Course opens a course and shows its active module.
func (a *App) Course(ctx context.Context, args []string) error {
	id, err := parseID(args, "course <id>")
	if err != nil {
		a.println(err.Error())
		return err
	}

	v, err := a.detail.Load(ctx, id)
	if err != nil {
		a.notifyError(err, "Failed to load course")
		return err
	}
	a.current = v
	a.renderCourseView(v)
	return nil
}

func (a *App) Module(_ context.Context, args []string) error {
	if err := a.requireEnrolledCourse(); err != nil {
		return err
	}
	id, err := parseID(args, "module <id>")
	if err != nil {
		a.println(err.Error())
		return err
	}
	if err := a.current.Select(id); err != nil {
		a.println(err.Error())
		return err
	}
	a.renderModule(a.current)
	return nil
}

func (a *App) Next(context.Context) error {
	if err := a.requireEnrolledCourse(); err != nil {
		return err
	}
	if !a.current.Next() {
		a.println("This is the last module.")
		return nil
	}
	a.renderModule(a.current)
	return nil
}

func (a *App) Prev(context.Context) error {
	if err := a.requireEnrolledCourse(); err != nil {
		return err
	}
	if !a.current.Prev() {
		a.println("This is the first module.")
		return nil
	}
	a.renderModule(a.current)
	return nil
}

func (a *App) Enroll(ctx context.Context, args []string) error {
	id, err := parseID(args, "enroll <id>")
	if err != nil {
		a.println(err.Error())
		return err
	}

	v, err := a.detail.Enroll(ctx, id)
	if err != nil {
		a.notifyError(err, "Failed to enroll")
		return err
	}
	a.notifySuccess("Successfully enrolled!")
	a.current = v
	a.renderCourseView(v)
	return nil
}

func (a *App) Complete(ctx context.Context, args []string) error {
	if err := a.requireEnrolledCourse(); err != nil {
		return err
	}
	id, err := parseID(args, "complete <module-id>")
	if err != nil {
		a.println(err.Error())
		return err
	}

	v, err := a.detail.CompleteModule(ctx, a.current.Course.ID, id)
	if err != nil {
		a.notifyError(err, "Failed to mark as complete")
		return err
	}
	a.notifySuccess("Module completed! 🎉")
	a.current = v
	a.renderProgress(v)
	return nil
}

// Quiz walks through the questions of a module of the open course and
// submits one option per question.
func (a *App) Quiz(ctx context.Context, args []string) error {
	if err := a.requireEnrolledCourse(); err != nil {
		return err
	}
	id, err := parseID(args, "quiz <module-id>")
	if err != nil {
		a.println(err.Error())
		return err
	}

	idx := slices.IndexFunc(a.current.Course.Modules, func(m models.Module) bool { return m.ID == id })
	if idx < 0 {
		err := fmt.Errorf("%w: %d", services.ErrModuleNotFound, id)
		a.println(err.Error())
		return err
	}
	m := a.current.Course.Modules[idx]
	if !m.HasQuiz() {
		a.println("This module has no quiz.")
		return nil
	}

	answers := make([]int, 0, len(m.QuizQuestions))
	for qi, q := range m.QuizQuestions {
		a.printf("\nQ%d. %s\n", qi+1, q.Question)
		for oi, opt := range q.Options {
			a.printf("  %d) %s\n", oi+1, opt)
		}
		raw, err := a.ask("Your answer")
		if err != nil {
			return err
		}
		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n < 1 || n > len(q.Options) {
			a.printf("Answer must be a number between 1 and %d.\n", len(q.Options))
			return errInvalidAnswer
		}
		answers = append(answers, n-1)
	}

	res, err := a.detail.SubmitQuiz(ctx, id, answers)
	if err != nil {
		a.notifyError(err, "Failed to submit quiz")
		return err
	}
	a.printf("Score: %.0f%% (%d/%d correct)\n", res.Score, res.CorrectAnswers, res.TotalQuestions)
	if res.Passed {
		a.notifySuccess("Quiz passed!")
	} else {
		a.println("Not passed yet. Review the module and try again.")
	}
	return nil
}

func (a *App) requireEnrolledCourse() error {
	if a.current == nil {
		a.println("Open a course first: course <id>")
		return errNoOpenCourse
	}
	if !a.current.Enrolled() {
		a.printf("Enroll first: enroll %d\n", a.current.Course.ID)
		return errNoOpenCourse
	}
	return nil
}
