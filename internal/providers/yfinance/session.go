package yfinance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/seenimoa/stockinfo/internal/infra"
)

// session holds the crumb paired with the consent cookie kept in the
// client's jar. It is set at most once per provider, plus resets after 401.
type session struct {
	mu       sync.Mutex
	value    string
	http     *infra.Client
	authURL  string
	crumbURL string
}

func newSession(client *infra.Client, authURL, crumbURL string) *session {
	return &session{http: client, authURL: authURL, crumbURL: crumbURL}
}

// crumb returns the cached crumb or fetches a new one.
func (s *session) crumb(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.value != "" {
		return s.value, nil
	}

	// The cookie endpoint usually answers 404 while still setting the cookie.
	body, _, err := s.http.DoGet(ctx, s.authURL, nil)
	if err == nil {
		body.Close()
	} else if !isHTTPError(err) {
		return "", fmt.Errorf("session cookie: %w", err)
	}

	data, err := s.http.GetBytes(ctx, s.crumbURL, map[string]string{"Accept": "text/plain"})
	if err != nil {
		return "", fmt.Errorf("session crumb: %w", err)
	}
	crumb := strings.TrimSpace(string(data))
	if crumb == "" || strings.ContainsAny(crumb, "<{ ") {
		return "", fmt.Errorf("session crumb: unexpected response %q", truncate(crumb, 64))
	}

	zerolog.Ctx(ctx).Debug().Str("provider", providerName).Msg("session established")
	s.value = crumb
	return crumb, nil
}

// reset drops the crumb so the next call fetches a fresh one.
func (s *session) reset() {
	s.mu.Lock()
	s.value = ""
	s.mu.Unlock()
}

func isHTTPError(err error) bool {
	var httpErr *infra.ErrHTTP
	return errors.As(err, &httpErr)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
