package cli

import (
	"context"

	"github.com/dmitrijs2005/smementor/internal/client/services"
	"github.com/dmitrijs2005/smementor/internal/client/session"
)

func (a *App) Profile(ctx context.Context) error {
	u := session.FromContext(ctx).User()
	if u == nil {
		return nil
	}
	a.printf("%s\n%s\n\n", u.DisplayName(), u.BusinessOrDefault())
	a.printf("Email:     %s\n", u.Email)
	a.printf("Phone:     %s\n", orDash(u.PhoneNumber))
	a.printf("Business:  %s\n", orDash(u.BusinessName))
	a.printf("Sector:    %s\n", orDash(u.Sector))
	a.printf("County:    %s\n", orDash(u.County))
	a.printf("Language:  %s\n", orDash(u.LanguagePreference))
	a.printf("Points:    %d\n", u.Points)
	return nil
}

// EditProfile prompts for each editable field; Enter keeps the current
// value.
func (a *App) EditProfile(ctx context.Context) error {
	form := services.FormFromUser(session.FromContext(ctx).User())

	fields := []struct {
		prompt string
		value  *string
	}{
		{"Full name", &form.FullName},
		{"Business name", &form.BusinessName},
		{"Sector", &form.Sector},
		{"County", &form.County},
		{"Language (en/sw)", &form.LanguagePreference},
	}
	for _, f := range fields {
		v, err := a.askDefault(f.prompt, *f.value)
		if err != nil {
			return err
		}
		*f.value = v
	}

	if err := a.profile.Save(ctx, form); err != nil {
		a.notifyError(err, "Failed to update profile")
		return err
	}
	a.notifySuccess("Profile updated successfully!")
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
