package session

import (
	"context"
	"database/sql"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrijs2005/smementor/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/smementor/internal/dbx"
)

// TokenKey is the fixed metadata key of the persisted token.
const TokenKey = "token"

const (
	subjectKey   = "token_subject"
	expiresAtKey = "token_expires_at"
)

// TokenStore persists the bearer token.
type TokenStore interface {
	// Token returns "" when nothing is stored.
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

// TokenInfo describes the stored token for status screens.
type TokenInfo struct {
	SavedAt   time.Time
	Subject   string
	ExpiresAt time.Time
}

// SQLiteStore keeps the token in the metadata table. Alongside the token it
// records the subject and expiry decoded from it, written in the same
// transaction so the three keys never disagree.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	e, err := metadata.NewSQLiteRepository(s.db).Get(ctx, TokenKey)
	if err != nil || e == nil {
		return "", err
	}
	return string(e.Value), nil
}

func (s *SQLiteStore) SetToken(ctx context.Context, token string) error {
	claims, _ := ParseTokenClaims(token) // opaque tokens are fine

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, TokenKey, []byte(token)); err != nil {
			return err
		}
		if claims == nil {
			if err := repo.Delete(ctx, subjectKey); err != nil {
				return err
			}
			return repo.Delete(ctx, expiresAtKey)
		}
		if err := repo.Set(ctx, subjectKey, []byte(claims.Subject)); err != nil {
			return err
		}
		var exp int64
		if !claims.ExpiresAt.IsZero() {
			exp = claims.ExpiresAt.Unix()
		}
		return repo.Set(ctx, expiresAtKey, []byte(strconv.FormatInt(exp, 10)))
	})
}

func (s *SQLiteStore) ClearToken(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		for _, k := range []string{TokenKey, subjectKey, expiresAtKey} {
			if err := repo.Delete(ctx, k); err != nil {
				return err
			}
		}
		return nil
	})
}

// Info returns nil when no token is stored.
func (s *SQLiteStore) Info(ctx context.Context) (*TokenInfo, error) {
	repo := metadata.NewSQLiteRepository(s.db)

	tok, err := repo.Get(ctx, TokenKey)
	if err != nil || tok == nil {
		return nil, err
	}
	info := &TokenInfo{SavedAt: tok.UpdatedAt}

	sub, err := repo.Get(ctx, subjectKey)
	if err != nil {
		return nil, err
	}
	if sub != nil {
		info.Subject = string(sub.Value)
	}

	exp, err := repo.Get(ctx, expiresAtKey)
	if err != nil {
		return nil, err
	}
	if exp != nil {
		if n, convErr := strconv.ParseInt(string(exp.Value), 10, 64); convErr == nil && n > 0 {
			info.ExpiresAt = time.Unix(n, 0)
		}
	}
	return info, nil
}

// MemoryStore is a TokenStore that lives for the process only.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token}
}

func (m *MemoryStore) Token(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryStore) SetToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryStore) ClearToken(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
