package cli

import (
	"context"
	"time"

	"github.com/dmitrijs2005/smementor/internal/client/models"
	"github.com/dmitrijs2005/smementor/internal/client/session"
)

// Register prompts for the sign-up form and creates the account. The new
// user is signed in right away.
func (a *App) Register(ctx context.Context) error {
	var req models.RegisterRequest
	var err error

	if req.Email, err = a.ask("Email"); err != nil {
		return err
	}
	if req.Password, err = getPassword(a.out); err != nil {
		return err
	}
	if req.FullName, err = a.ask("Full name"); err != nil {
		return err
	}
	if req.PhoneNumber, err = a.ask("Phone number (optional)"); err != nil {
		return err
	}
	if req.BusinessName, err = a.ask("Business name (optional)"); err != nil {
		return err
	}
	if req.Sector, err = a.ask("Sector (optional)"); err != nil {
		return err
	}
	if req.County, err = a.ask("County (optional)"); err != nil {
		return err
	}
	if req.LanguagePreference, err = a.askDefault("Language (en/sw)", models.DefaultLanguage); err != nil {
		return err
	}

	if _, err := session.FromContext(ctx).Register(ctx, req); err != nil {
		a.log.Debug(ctx, "register failed", "error", err)
		a.notifyError(err, "Your Registration failed")
		return err
	}
	a.notifySuccess("Registration successful!")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := a.ask("Email")
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	u, err := session.FromContext(ctx).Login(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		a.log.Debug(ctx, "login failed", "error", err)
		a.notifyError(err, "Login failed")
		return err
	}
	a.notifySuccess("Welcome back!")
	if u != nil {
		a.printf("Signed in as %s <%s>\n", u.DisplayName(), u.Email)
	}
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	session.FromContext(ctx).Logout(ctx)
	a.current = nil
	a.notifySuccess("Logged out successfully")
	return nil
}

// Status prints the connection target and what the client knows about the
// current session.
func (a *App) Status(ctx context.Context) error {
	a.printf("Server:  %s\n", a.baseURL)

	u := session.FromContext(ctx).User()
	if u == nil {
		a.println("Session: signed out")
	} else {
		a.printf("Session: %s <%s>, %d points\n", u.DisplayName(), u.Email, u.Points)
	}

	if a.tokens == nil {
		return nil
	}
	info, err := a.tokens.Info(ctx)
	if err != nil {
		a.log.Warn(ctx, "failed to read token info", "error", err)
		return err
	}
	if info == nil {
		a.println("Token:   none stored")
		return nil
	}
	a.printf("Token:   saved %s\n", info.SavedAt.Format(time.DateTime))
	if info.Subject != "" {
		a.printf("         subject %s\n", info.Subject)
	}
	if !info.ExpiresAt.IsZero() {
		state := "valid until"
		if !a.now().Before(info.ExpiresAt) {
			state = "expired at"
		}
		a.printf("         %s %s\n", state, info.ExpiresAt.Format(time.DateTime))
	}
	return nil
}

func (a *App) landing() {
	a.println("Empower Your Business with AI")
	a.println("Education, mentorship and AI-powered guidance for Kenyan entrepreneurs.")
	a.println("")
	a.println("  Courses        financial literacy, scaling and sustainability")
	a.println("  AI Mentor      personalised business advice, in English & Swahili")
	a.println("  Investor Score your readiness to attract funding")
	a.println("")
	a.println("Type 'register' to get started free, or 'login' to sign in.")
}
