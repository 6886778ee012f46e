package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/smementor/internal/client/models"
	"github.com/dmitrijs2005/smementor/internal/logging"
)

// ErrNoAccessToken is returned when a login or register response carries
// no access_token.
var ErrNoAccessToken = errors.New("auth response has no access token")

// AuthAPI is the slice of the auth endpoints a Session needs.
type AuthAPI interface {
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	GetCurrentUser(ctx context.Context) (*models.User, error)
}

// Session holds the current user and is the only thing that writes it.
type Session struct {
	auth   AuthAPI
	tokens TokenStore
	log    logging.Logger

	mu      sync.RWMutex
	user    *models.User
	loading bool
}

// New returns a session in the loading state. Call Init before reading
// User.
func New(auth AuthAPI, tokens TokenStore, log logging.Logger) *Session {
	if log == nil {
		log = logging.NewNop()
	}
	return &Session{
		auth:    auth,
		tokens:  tokens,
		log:     log,
		loading: true,
	}
}

// Init resolves the user for a persisted token, if any. A token the backend
// rejects is cleared. Loading is false afterwards in every case.
func (s *Session) Init(ctx context.Context) {
	defer s.setLoading(false)

	token, err := s.tokens.Token(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to read stored token", "error", err)
		s.setUser(nil)
		return
	}
	if token == "" {
		s.setUser(nil)
		return
	}

	u, err := s.auth.GetCurrentUser(ctx)
	if err != nil {
		s.log.Info(ctx, "stored token rejected", "error", err)
		s.clearToken(ctx)
		s.setUser(nil)
		return
	}
	s.setUser(u)
}

func (s *Session) Login(ctx context.Context, creds models.Credentials) (*models.User, error) {
	resp, err := s.auth.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	return s.accept(ctx, resp)
}

func (s *Session) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	resp, err := s.auth.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.accept(ctx, resp)
}

func (s *Session) accept(ctx context.Context, resp *models.AuthResponse) (*models.User, error) {
	if resp == nil || resp.AccessToken == "" {
		return nil, ErrNoAccessToken
	}
	if err := s.tokens.SetToken(ctx, resp.AccessToken); err != nil {
		return nil, fmt.Errorf("persist token: %w", err)
	}
	s.setUser(resp.User)
	return s.User(), nil
}

// Logout drops the token and the user. It never fails.
func (s *Session) Logout(ctx context.Context) {
	s.clearToken(ctx)
	s.setUser(nil)
}

// Refresh re-reads the current user from the backend.
func (s *Session) Refresh(ctx context.Context) error {
	u, err := s.auth.GetCurrentUser(ctx)
	if err != nil {
		return err
	}
	s.setUser(u)
	return nil
}

// Invalidate forgets the in-memory user without touching the token store.
// It is used after the API client has already cleared the token on 401.
func (s *Session) Invalidate() {
	s.setUser(nil)
}

// User returns a copy of the current user, or nil.
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Session) setUser(u *models.User) {
	var cp *models.User
	if u != nil {
		v := *u
		cp = &v
	}
	s.mu.Lock()
	s.user = cp
	s.mu.Unlock()
}

func (s *Session) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *Session) clearToken(ctx context.Context) {
	if err := s.tokens.ClearToken(ctx); err != nil {
		s.log.Warn(ctx, "failed to clear stored token", "error", err)
	}
}
