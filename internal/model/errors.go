package model

import "errors"

var (
	// ErrNotFound is returned by stores when no matching row exists.
	ErrNotFound = errors.New("not found")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")

	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("invalid token")

	ErrNoChartData = errors.New("no data found for the selected period")
	ErrChartRender = errors.New("failed to generate chart")
)
