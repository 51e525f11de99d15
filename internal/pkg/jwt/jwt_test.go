package jwt

import (
	"testing"
	"time"
)

func newTestJWTService(t *testing.T) *JWTService {
	t.Helper()
	return NewJWTService("test-secret", "15m", "720h").(*JWTService)
}

func TestRevokeToken_IsTokenRevoked(t *testing.T) {
	svc := newTestJWTService(t)

	token, _, err := svc.GenerateRefreshToken("user-1")
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	if svc.IsTokenRevoked(token) {
		t.Fatal("fresh token reported as revoked")
	}

	svc.RevokeToken(token)
	if !svc.IsTokenRevoked(token) {
		t.Fatal("revoked token not reported as revoked")
	}
	if svc.IsTokenRevoked("some-other-token") {
		t.Fatal("unrelated token reported as revoked")
	}
}

func TestRevokeToken_PrunesExpiredEntries(t *testing.T) {
	svc := newTestJWTService(t)

	// An entry revoked longer ago than the refresh TTL cannot verify anymore
	// and must be dropped on the next revocation.
	staleAt := time.Now().Add(-721 * time.Hour).Unix()
	svc.revokedTokens["stale-token"] = staleAt
	svc.revokedTokens["recent-token"] = time.Now().Unix()

	svc.RevokeToken("new-token")

	if svc.IsTokenRevoked("stale-token") {
		t.Error("stale entry survived pruning")
	}
	if !svc.IsTokenRevoked("recent-token") {
		t.Error("recent entry was pruned")
	}
	if !svc.IsTokenRevoked("new-token") {
		t.Error("new entry missing")
	}
}
