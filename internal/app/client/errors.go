package client

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated, login first")
	ErrNoRefreshToken   = errors.New("no refresh token stored")
)
