package event

import "errors"

var (
	ErrNoGoogleAccount = errors.New("User does not have a google social account.")
	ErrNoGoogleToken   = errors.New("User does not have a google social token.")
)
