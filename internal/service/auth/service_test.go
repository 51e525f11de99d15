package auth

import (
	"context"
	"testing"

	"github.com/kelora-hr/kelora-backend-go/internal/domain/auth"
	"github.com/kelora-hr/kelora-backend-go/internal/domain/user"
	"github.com/kelora-hr/kelora-backend-go/internal/pkg/database"
	"github.com/kelora-hr/kelora-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepository struct {
	users map[string]user.User
}

func (f *fakeUserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepository) GetByGoogleID(ctx context.Context, googleID string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	return u, nil
}

func (f *fakeUserRepository) LinkGoogleID(ctx context.Context, id string, googleID string) error {
	return nil
}

type fakeTokenRepository struct {
	revoked map[string]bool
}

func newFakeTokenRepository() *fakeTokenRepository {
	return &fakeTokenRepository{revoked: make(map[string]bool)}
}

func (f *fakeTokenRepository) CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64) error {
	return nil
}

func (f *fakeTokenRepository) IsRefreshTokenRevoked(ctx context.Context, token string) (bool, error) {
	return f.revoked[token], nil
}

func (f *fakeTokenRepository) RevokeRefreshToken(ctx context.Context, token string) error {
	f.revoked[token] = true
	return nil
}

func newTestAuthService(tokens *fakeTokenRepository) (*AuthServiceImpl, jwt.Service) {
	jwtSvc := jwt.NewJWTService("test-secret", "15m", "720h")
	users := &fakeUserRepository{users: map[string]user.User{
		"user-1": {ID: "user-1", Email: "ana@example.com", Role: user.RoleEmployee, IsActive: true},
	}}
	svc := &AuthServiceImpl{
		db:              &database.DB{},
		UserRepository:  users,
		Service:         jwtSvc,
		TokenRepository: tokens,
	}
	return svc, jwtSvc
}

func TestAuthService_Refresh_InMemoryRevocation(t *testing.T) {
	tokens := newFakeTokenRepository()
	svc, jwtSvc := newTestAuthService(tokens)

	refreshToken, _, err := jwtSvc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	// The ledger has not caught up yet; the in-process set alone must reject.
	jwtSvc.RevokeToken(refreshToken)

	_, err = svc.Refresh(context.Background(), refreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestAuthService_Refresh_LedgerRevocation(t *testing.T) {
	tokens := newFakeTokenRepository()
	svc, jwtSvc := newTestAuthService(tokens)

	refreshToken, _, err := jwtSvc.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	tokens.revoked[refreshToken] = true

	_, err = svc.Refresh(context.Background(), refreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	tokens := newFakeTokenRepository()
	svc, jwtSvc := newTestAuthService(tokens)

	accessToken, _, err := jwtSvc.GenerateAccessToken("user-1", "ana@example.com", nil, user.RoleEmployee)
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), accessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Logout_RevokesBothSets(t *testing.T) {
	tokens := newFakeTokenRepository()
	svc, jwtSvc := newTestAuthService(tokens)

	refreshToken, _, err := jwtSvc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), refreshToken))

	assert.True(t, tokens.revoked[refreshToken])
	assert.True(t, jwtSvc.IsTokenRevoked(refreshToken))

	_, err = svc.Refresh(context.Background(), refreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}
