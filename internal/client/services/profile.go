package services

import (
	"context"

	"github.com/dmitrijs2005/smementor/internal/client/models"
)

// FormFromUser pre-fills the edit form. A nil user yields an empty form
// with the default language.
func FormFromUser(u *models.User) models.ProfileUpdate {
	f := models.ProfileUpdate{LanguagePreference: models.DefaultLanguage}
	if u == nil {
		return f
	}
	f.FullName = u.FullName
	f.BusinessName = u.BusinessName
	f.Sector = u.Sector
	f.County = u.County
	if u.LanguagePreference != "" {
		f.LanguagePreference = u.LanguagePreference
	}
	return f
}

type ProfileService struct {
	api     ProfileAPI
	session UserRefresher
}

func NewProfileService(api ProfileAPI, session UserRefresher) *ProfileService {
	return &ProfileService{api: api, session: session}
}

// Save sends the form and then re-reads the current user so every screen
// sees the new values.
func (s *ProfileService) Save(ctx context.Context, f models.ProfileUpdate) error {
	if _, err := s.api.UpdateProfile(ctx, f); err != nil {
		return err
	}
	return s.session.Refresh(ctx)
}
