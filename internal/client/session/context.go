package session

import "context"

type ctxKey struct{}

// NewContext returns a copy of ctx that carries s.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session carried by ctx. It panics when there is
// none: auth state must be provided, never defaulted.
func FromContext(ctx context.Context) *Session {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	if !ok || s == nil {
		panic("session: FromContext called without a session in scope")
	}
	return s
}
