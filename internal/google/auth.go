package google

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/magscene/magsav-api/internal/domain"
)

var (
	ErrNotConfigured = errors.New("google client id and secret are not configured")
	ErrInvalidState  = errors.New("unknown or expired oauth state")
)

const stateTTL = 15 * time.Minute

// Endpoints are the OAuth2 URLs of the Google authorization server.
type Endpoints struct {
	AuthURL  string
	TokenURL string
}

// Authenticator builds OAuth2 configs from the stored Google configuration
// and tracks the state values handed out with authorization URLs.
type Authenticator struct {
	endpoints  Endpoints
	httpClient *http.Client

	mu     sync.Mutex
	states map[string]time.Time
	now    func() time.Time
}

func NewAuthenticator(endpoints Endpoints, httpClient *http.Client) *Authenticator {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Authenticator{
		endpoints:  endpoints,
		httpClient: httpClient,
		states:     make(map[string]time.Time),
		now:        time.Now,
	}
}

func (a *Authenticator) oauthConfig(c domain.GoogleServicesConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RedirectURL:  c.RedirectURI,
		Scopes:       c.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:   a.endpoints.AuthURL,
			TokenURL:  a.endpoints.TokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// context carries the base HTTP client used for token exchange and refresh.
func (a *Authenticator) context(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, a.httpClient)
}

// AuthorizationURL returns the consent screen URL asking for offline access.
func (a *Authenticator) AuthorizationURL(c domain.GoogleServicesConfig) (string, error) {
	if !c.IsConfigured() {
		return "", ErrNotConfigured
	}

	state := uuid.NewString()

	a.mu.Lock()
	now := a.now()
	for s, issued := range a.states {
		if now.Sub(issued) > stateTTL {
			delete(a.states, s)
		}
	}
	a.states[state] = now
	a.mu.Unlock()

	return a.oauthConfig(c).AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce), nil
}

// Exchange trades an authorization code for tokens. The state must be one
// issued by AuthorizationURL and is consumed.
func (a *Authenticator) Exchange(ctx context.Context, c domain.GoogleServicesConfig, code, state string) (*oauth2.Token, error) {
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}
	if state == "" {
		return nil, ErrInvalidState
	}

	a.mu.Lock()
	issued, ok := a.states[state]
	delete(a.states, state)
	a.mu.Unlock()

	if !ok || a.now().Sub(issued) > stateTTL {
		return nil, ErrInvalidState
	}

	return a.oauthConfig(c).Exchange(a.context(ctx), code)
}

// Client returns an HTTP client authorized with the stored tokens. Refreshed
// tokens are handed to save.
func (a *Authenticator) Client(c domain.GoogleServicesConfig, save func(*oauth2.Token)) *http.Client {
	ctx := a.context(context.Background())

	current := &oauth2.Token{
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
		TokenType:    c.TokenType,
		Expiry:       c.TokenExpiry,
	}
	source := &persistingTokenSource{
		base: a.oauthConfig(c).TokenSource(ctx, current),
		last: c.AccessToken,
		save: save,
	}

	return oauth2.NewClient(ctx, source)
}

type persistingTokenSource struct {
	base oauth2.TokenSource
	save func(*oauth2.Token)

	mu   sync.Mutex
	last string
}

func (s *persistingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.base.Token()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	changed := tok.AccessToken != s.last
	s.last = tok.AccessToken
	s.mu.Unlock()

	if changed && s.save != nil {
		s.save(tok)
	}

	return tok, nil
}
