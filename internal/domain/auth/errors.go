package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid or malformed token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
	ErrNoEmployeeIdentity  = errors.New("account is not linked to an employee")
	ErrOAuthStateMismatch  = errors.New("oauth state mismatch")
)
