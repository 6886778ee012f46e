package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/smementor/internal/client/models"
)

// AuthEndpoints groups /api/auth.
type AuthEndpoints struct {
	c *Client
}

func (a *AuthEndpoints) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := a.c.do(ctx, http.MethodPost, "/api/auth/register", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthEndpoints) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := a.c.do(ctx, http.MethodPost, "/api/auth/login", nil, creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthEndpoints) GetCurrentUser(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := a.c.do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthEndpoints) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	var out models.User
	if err := a.c.do(ctx, http.MethodPut, "/api/auth/profile", nil, upd, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
