// Package apix is a thin client for the FamDo backend API. It mirrors the
// server's JSON wire format and reports failures as typed *Error values.
//
// The client performs no policy decisions of its own. Authorization lives on
// the server; this package only carries requests and translates responses.
package apix

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Client is an unauthenticated handle to the backend. Use Login or Register
// to obtain a Session for the endpoints that require a bearer token.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Limiter paces outgoing requests so a chatty sync loop cannot hammer
	// the backend. Nil disables pacing.
	Limiter *rate.Limiter
}

// NewClient creates a backend client with sane defaults.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		Limiter: rate.NewLimiter(rate.Limit(10), 20),
	}
}

// WithToken wraps an existing bearer token in a Session. The token is used
// as-is; the server decides whether it is still acceptable.
func (c *Client) WithToken(token string) *Session {
	return &Session{client: c, token: token}
}

// Session is an authenticated handle bound to one bearer token.
type Session struct {
	client *Client
	token  string
}

// Token returns the bearer token backing this session.
func (s *Session) Token() string {
	return s.token
}
