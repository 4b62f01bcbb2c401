// Package auth handles the Yahoo OAuth2 flow: the one-time browser
// authorization with a local callback listener, the on-disk token store, and
// an http.Client that refreshes tokens and writes them back.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"github.com/cd1zz/yahoo-ffb-api/config"
	"github.com/go-chi/chi/v5"
	"github.com/itbasis/go-clock"
	"golang.org/x/oauth2"
)

// Yahoo OAuth2 endpoints.
const (
	AuthURL  = "https://api.login.yahoo.com/oauth2/request_auth"
	TokenURL = "https://api.login.yahoo.com/oauth2/get_token"
)

// Manager owns the OAuth configuration and token persistence for one set of
// credentials.
type Manager struct {
	cfg   *oauth2.Config
	store *TokenStore
	clock clock.Clock
}

func New(settings *config.Settings, clk clock.Clock) *Manager {
	return &Manager{
		cfg: &oauth2.Config{
			ClientID:     settings.ClientID,
			ClientSecret: settings.ClientSecret,
			RedirectURL:  settings.RedirectURL,
			Scopes:       []string{settings.Scope},
			Endpoint: oauth2.Endpoint{
				AuthURL:  AuthURL,
				TokenURL: TokenURL,
			},
		},
		store: NewTokenStore(settings.TokenPath),
		clock: clk,
	}
}

// NewForTest builds a Manager pointed at a fake token endpoint.
func NewForTest(settings *config.Settings, tokenURL string, clk clock.Clock) *Manager {
	m := New(settings, clk)
	m.cfg.Endpoint = oauth2.Endpoint{AuthURL: tokenURL, TokenURL: tokenURL}
	return m
}

// AuthCodeURL builds the browser authorization URL for the given state.
func (m *Manager) AuthCodeURL(state string) string {
	return m.cfg.AuthCodeURL(state)
}

// HasToken reports whether a stored token exists.
func (m *Manager) HasToken() bool {
	t, err := m.store.Load()
	return err == nil && t != nil
}

// ClearToken removes any stored token.
func (m *Manager) ClearToken() error {
	return m.store.Clear()
}

// Authorize runs the interactive flow: start a listener on the redirect URL,
// print the authorization URL for the user to open, wait for the callback,
// exchange the code, and persist the token.
func (m *Manager) Authorize(ctx context.Context) error {
	redirect, err := url.Parse(m.cfg.RedirectURL)
	if err != nil {
		return fmt.Errorf("bad redirect URL: %w", err)
	}

	state := randomState()
	type callback struct {
		code string
		err  error
	}
	results := make(chan callback, 1)

	r := chi.NewRouter()
	r.Get(redirect.Path, func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		if errMsg := q.Get("error"); errMsg != "" {
			http.Error(w, "authorization failed", http.StatusBadRequest)
			results <- callback{err: fmt.Errorf("authorization denied: %s", errMsg)}
			return
		}
		if q.Get("state") != state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			results <- callback{err: errors.New("state parameter is not valid")}
			return
		}
		code := q.Get("code")
		if code == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			results <- callback{err: errors.New("callback carried no code")}
			return
		}
		fmt.Fprintln(w, "Authorization complete. You can close this window.")
		results <- callback{code: code}
	})

	srv := &http.Server{Addr: redirect.Host, Handler: r}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			results <- callback{err: fmt.Errorf("callback listener: %w", err)}
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	fmt.Printf("Open this URL in your browser to authorize:\n\n  %s\n\n", m.AuthCodeURL(state))

	var cb callback
	select {
	case cb = <-results:
	case <-ctx.Done():
		return ctx.Err()
	}
	if cb.err != nil {
		return cb.err
	}

	token, err := m.cfg.Exchange(ctx, cb.code)
	if err != nil {
		return fmt.Errorf("error exchanging code: %w", err)
	}
	if err := m.store.Save(token); err != nil {
		return err
	}
	log.Printf("token saved to %s", m.store.path)
	return nil
}

// Token loads the stored token, refreshing and saving it back when expired.
// The refresh is done manually so the updated token can be persisted; a
// background refresh inside oauth2.Client never hands the new token back.
func (m *Manager) Token(ctx context.Context) (*oauth2.Token, error) {
	t, err := m.store.Load()
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.New("no stored token, run authorization first")
	}

	if t.Expiry.Before(m.clock.Now()) {
		log.Printf("refreshing expired oauth token")
		t, err = m.cfg.TokenSource(ctx, t).Token()
		if err != nil {
			return nil, fmt.Errorf("error refreshing token: %w", err)
		}
		if err := m.store.Save(t); err != nil {
			return nil, fmt.Errorf("error saving refreshed token: %w", err)
		}
	}

	return t, nil
}

// HTTPClient returns an http.Client that injects the bearer token and
// persists any token the refresh flow produces.
func (m *Manager) HTTPClient(ctx context.Context) (*http.Client, error) {
	t, err := m.Token(ctx)
	if err != nil {
		return nil, err
	}
	src := &savingSource{
		src:   m.cfg.TokenSource(ctx, t),
		store: m.store,
		last:  t,
	}
	return oauth2.NewClient(ctx, src), nil
}

type savingSource struct {
	src   oauth2.TokenSource
	store *TokenStore
	last  *oauth2.Token
}

func (s *savingSource) Token() (*oauth2.Token, error) {
	t, err := s.src.Token()
	if err != nil {
		return nil, err
	}
	if s.last == nil || t.AccessToken != s.last.AccessToken {
		if err := s.store.Save(t); err != nil {
			log.Printf("error saving refreshed token: %v", err)
		}
		s.last = t
	}
	return t, nil
}

func randomState() string {
	var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	b := make([]rune, 15)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
