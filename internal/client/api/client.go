package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/smementor/internal/logging"
)

// LoginRoute is where the client navigates after an unauthorized response.
const LoginRoute = "/login"

// TokenStore is the persisted session token as seen by the transport.
type TokenStore interface {
	// Token returns "" when no token is stored.
	Token(ctx context.Context) (string, error)
	ClearToken(ctx context.Context) error
}

// Navigator receives forced navigation events.
type Navigator interface {
	Navigate(ctx context.Context, route string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, route string)

func (f NavigatorFunc) Navigate(ctx context.Context, route string) { f(ctx, route) }

type Client struct {
	baseURL   string
	http      *http.Client
	tokens    TokenStore
	navigator Navigator
	log       logging.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets a per-request timeout on the default transport client.
// Zero keeps the transport defaults.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http = &http.Client{Timeout: d}
		}
	}
}

func WithTokenStore(ts TokenStore) Option {
	return func(c *Client) { c.tokens = ts }
}

func WithNavigator(n Navigator) Option {
	return func(c *Client) { c.navigator = n }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New builds a Client for baseURL (e.g. "http://localhost:8000").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		log:     logging.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) Auth() *AuthEndpoints       { return &AuthEndpoints{c: c} }
func (c *Client) Courses() *CoursesEndpoints { return &CoursesEndpoints{c: c} }
func (c *Client) Mentor() *MentorEndpoints   { return &MentorEndpoints{c: c} }

// authorize attaches the bearer token when one is stored. A failing store
// is logged and the request goes out anonymously.
func (c *Client) authorize(ctx context.Context, req *http.Request) {
	if c.tokens == nil {
		return
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		c.log.Warn(ctx, "read session token", "error", err)
		return
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// handleUnauthorized tears the session down and sends the user to login.
func (c *Client) handleUnauthorized(ctx context.Context, method, path string) {
	c.log.Warn(ctx, "unauthorized response, clearing session", "method", method, "path", path)

	if c.tokens != nil {
		if err := c.tokens.ClearToken(ctx); err != nil {
			c.log.Error(ctx, "clear session token", "error", err)
		}
	}
	if c.navigator != nil {
		c.navigator.Navigate(ctx, LoginRoute)
	}
}

// do sends one JSON request. in is encoded as the body when non-nil; out
// receives the decoded 2xx body when non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	c.authorize(ctx, req)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s %s: %w", method, path, ctxErr)
		}
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "api response", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized(ctx, method, path)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return &Error{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Detail:     parseDetail(raw),
			Body:       raw,
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
