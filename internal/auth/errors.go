package auth

import "errors"

var (
	ErrEmptyCode          = errors.New("authorization code is required")
	ErrCodeExchangeFailed = errors.New("failed to exchange authorization code")
	ErrNoSocialAccount    = errors.New("User does not have a google social account.")
	ErrNoSocialToken      = errors.New("User does not have a google social token.")
	ErrInvalidKey         = errors.New("invalid API key")
)
