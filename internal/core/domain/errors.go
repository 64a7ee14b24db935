package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInternalServer     = errors.New("internal server error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// Auth errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserInactive = errors.New("user account is inactive")
	ErrLoginLocked  = errors.New("too many login attempts")
)

// Record errors
var (
	ErrCostNotFound = errors.New("cost entry not found")
	ErrTourNotFound = errors.New("tour program not found")
	ErrNotOwner     = errors.New("record belongs to another user")
)
