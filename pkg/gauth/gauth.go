// Package gauth exchanges Google OAuth2 authorization codes for tokens and the
// identity they belong to.
package gauth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleoauth "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

var (
	ErrEmptyCode       = errors.New("authorization code is empty")
	ErrMissingIdentity = errors.New("google did not return a user id")
)

// Scopes requested by the frontend's sign-in flow.
var DefaultScopes = []string{
	"openid",
	googleoauth.UserinfoEmailScope,
	"https://www.googleapis.com/auth/calendar.events.readonly",
	"https://www.googleapis.com/auth/calendar.readonly",
	"https://www.googleapis.com/auth/calendar.events.owned",
}

// Config is the OAuth client the service is registered as.
type Config struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
	TokenURI     string
	Scopes       []string
}

// Identity is the Google account a token was issued for.
type Identity struct {
	UID   string
	Email string
}

//go:generate mockery --name Exchanger
type Exchanger interface {
	Exchange(ctx context.Context, code string) (Identity, *oauth2.Token, error)
}

type exchanger struct {
	config *oauth2.Config
	opts   []option.ClientOption
}

// New creates an Exchanger. opts are applied to the userinfo client, e.g. option.WithEndpoint in tests.
func New(cfg Config, opts ...option.ClientOption) Exchanger {
	return &exchanger{
		config: cfg.oauthConfig(),
		opts:   opts,
	}
}

// AuthCodeURL is the consent page that hands an authorization code to the callback URL.
// Offline access is requested so that Google also issues a refresh token.
func AuthCodeURL(cfg Config, state string) string {
	return cfg.oauthConfig().AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

func (cfg Config) oauthConfig() *oauth2.Config {
	endpoint := google.Endpoint
	if cfg.TokenURI != "" {
		endpoint.TokenURL = cfg.TokenURI
	}
	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = DefaultScopes
	}

	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.CallbackURL,
		Scopes:       scopes,
		Endpoint:     endpoint,
	}
}

// Exchange trades code for a token, then asks Google who the token belongs to.
func (e *exchanger) Exchange(ctx context.Context, code string) (Identity, *oauth2.Token, error) {
	if code == "" {
		return Identity{}, nil, ErrEmptyCode
	}

	tok, err := e.config.Exchange(ctx, code, oauth2.AccessTypeOffline)
	if err != nil {
		return Identity{}, nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	opts := append([]option.ClientOption{option.WithTokenSource(e.config.TokenSource(ctx, tok))}, e.opts...)
	svc, err := googleoauth.NewService(ctx, opts...)
	if err != nil {
		return Identity{}, nil, fmt.Errorf("failed to create userinfo service: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return Identity{}, nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	if info.Id == "" {
		return Identity{}, nil, ErrMissingIdentity
	}

	return Identity{UID: info.Id, Email: info.Email}, tok, nil
}
