package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/smementor/internal/client/api"
	"github.com/dmitrijs2005/smementor/internal/client/services"
	"github.com/dmitrijs2005/smementor/internal/client/session"
	"github.com/dmitrijs2005/smementor/internal/logging"
)

// TokenInspector exposes what is known about the stored token.
type TokenInspector interface {
	Info(ctx context.Context) (*session.TokenInfo, error)
}

// Deps is everything App needs. Tokens may be nil.
type Deps struct {
	Session   *session.Session
	Catalog   *services.CatalogService
	Detail    *services.CourseDetailService
	Dashboard *services.DashboardService
	Score     *services.InvestorScoreService
	Profile   *services.ProfileService
	Mentor    services.MentorAPI
	Tokens    TokenInspector
	BaseURL   string
	Log       logging.Logger
}

type App struct {
	session   *session.Session
	catalog   *services.CatalogService
	detail    *services.CourseDetailService
	dashboard *services.DashboardService
	score     *services.InvestorScoreService
	profile   *services.ProfileService
	mentor    services.MentorAPI
	tokens    TokenInspector
	baseURL   string
	log       logging.Logger

	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time

	// current is the course opened with "course <id>".
	current *services.CourseView
}

func NewApp(d Deps) *App {
	log := d.Log
	if log == nil {
		log = logging.NewNop()
	}
	return &App{
		session:   d.Session,
		catalog:   d.Catalog,
		detail:    d.Detail,
		dashboard: d.Dashboard,
		score:     d.Score,
		profile:   d.Profile,
		mentor:    d.Mentor,
		tokens:    d.Tokens,
		baseURL:   d.BaseURL,
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		now:       time.Now,
	}
}

// Run resolves the stored session and starts the REPL. It returns when the
// user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	ctx = session.NewContext(ctx, a.session)

	a.session.Init(ctx)
	a.log.Debug(ctx, "session initialised", "authenticated", a.session.Authenticated())

	if u := a.session.User(); u != nil {
		a.printf("Welcome back, %s!\n", u.DisplayName())
	} else {
		a.landing()
	}

	runREPL(ctx, a, a.status, a.reader)
}

// Navigate handles forced navigation from the API client. The only route
// it receives is the login view, after the token was rejected.
func (a *App) Navigate(ctx context.Context, route string) {
	if route != api.LoginRoute {
		return
	}
	s := session.FromContext(ctx)
	wasIn := s.Authenticated()
	s.Invalidate()
	a.current = nil
	if wasIn {
		a.println("Your session has expired. Please log in again (type 'login').")
	}
	a.log.Info(ctx, "redirected to login", "route", route)
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

func (a *App) status() string {
	u := a.session.User()
	if u == nil {
		return ""
	}
	return fmt.Sprintf("(%s online)", u.DisplayName())
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) ask(prompt string) (string, error) {
	return getSimpleText(a.reader, prompt, a.out)
}

func (a *App) askDefault(prompt, def string) (string, error) {
	return GetWithDefault(a.reader, prompt, def, a.out)
}

// getSimpleText and getPassword are indirections used in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)
