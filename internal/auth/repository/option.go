package repository

import "time"

type CreateUserOptions struct {
	Email string
}

// GetOneUserOptions filters a single User. All non-empty fields are AND-ed.
type GetOneUserOptions struct {
	ID string
}

type CreateSocialAccountOptions struct {
	UserID   string
	Provider string
	UID      string
	Email    string
}

// CreateUserWithSocialAccountOptions describes a first login: a new user with Email
// and its account for Provider/UID.
type CreateUserWithSocialAccountOptions struct {
	Provider string
	UID      string
	Email    string
}

// GetOneSocialAccountOptions filters a single SocialAccount. All non-empty fields are AND-ed.
type GetOneSocialAccountOptions struct {
	UserID   string
	Provider string
	UID      string
}

// UpsertSocialTokenOptions writes the token of an account.
// An empty TokenSecret keeps the refresh token already stored.
type UpsertSocialTokenOptions struct {
	AccountID   string
	Token       string
	TokenSecret string
	ExpiresAt   time.Time
}

type GetOneSocialTokenOptions struct {
	AccountID string
}
