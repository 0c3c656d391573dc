package model

import "time"

// ProviderGoogle is the only social provider the service supports.
const ProviderGoogle = "google"

// User is a local identity created on first login.
type User struct {
	ID        string
	Email     string
	CreatedAt time.Time
}

// SocialAccount links a User to an external identity.
type SocialAccount struct {
	ID        string
	UserID    string
	Provider  string
	UID       string // subject id at the provider
	Email     string
	CreatedAt time.Time
}

// SocialToken is the OAuth token pair stored for a SocialAccount.
type SocialToken struct {
	ID          string
	AccountID   string
	Token       string // access token
	TokenSecret string // refresh token
	ExpiresAt   time.Time
	UpdatedAt   time.Time
}

// AuthToken is the opaque API key a client sends as "Authorization: Token <key>".
type AuthToken struct {
	Key       string
	UserID    string
	CreatedAt time.Time
}
