package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/famdoapp/famdo/internal/famdo/domain"
	"github.com/famdoapp/famdo/internal/famdo/store"
	"github.com/famdoapp/famdo/internal/famdo/store/drivers/sqlite"
)

// testNow is a Monday noon, handy for the weekly report windows.
var testNow = time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

func clockAt(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

// testToken mints a syntactically real bearer token; only its unverified
// claims matter to the session layer.
func testToken(t *testing.T, sub string, expiresAt time.Time) string {
	t.Helper()

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"exp": expiresAt.Unix(),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return raw
}

// nonNumericExpiryToken mints a decodable token whose exp claim is a string.
func nonNumericExpiryToken(t *testing.T) string {
	t.Helper()

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u-alice",
		"exp": "tomorrow-ish",
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return raw
}

var (
	alice = domain.Identity{ID: "u-alice", Username: "alice", Email: "alice@example.com"}
	bob   = domain.Identity{ID: "u-bob", Username: "bob", Email: "bob@example.com"}
	carol = domain.Identity{ID: "u-carol", Username: "carol", Email: "carol@example.com"}
)
