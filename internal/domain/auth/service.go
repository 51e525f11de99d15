package auth

import (
	"context"
)

// AuthService is the access gate: it turns credentials into tokens and tokens
// back into employee identities.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error

	// GoogleLoginURL returns the consent URL and the state to pin.
	GoogleLoginURL(ctx context.Context) (url string, state string, err error)

	// GoogleCallback exchanges the OAuth code for application tokens.
	GoogleCallback(ctx context.Context, code string) (TokenResponse, error)
}
