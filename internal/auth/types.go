package auth

import "golang.org/x/oauth2"

type LoginInput struct {
	Code string
}

type LoginOutput struct {
	Key string
}

type ExchangeCodeOutput struct {
	UserID string
	Token  *oauth2.Token
}
