package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/famdoapp/famdo/internal/famdo/domain"
	"github.com/famdoapp/famdo/internal/famdo/store"
	"github.com/famdoapp/famdo/pkg/jwtx"
	"github.com/famdoapp/famdo/pkg/slogx"
)

// Keys for the persisted session pair in the durable KV store. The pair
// lives and dies together; Restore never leaves one half behind.
const (
	kvSessionToken    = "session.token"
	kvSessionIdentity = "session.identity"
)

// SessionManager owns the client-side session lifecycle: restore from the
// durable store at startup, establish after a login/registration exchange,
// clear on logout or detected expiry. It performs no network I/O.
//
// The token's expiry claim is decoded without verification and used only to
// avoid sending a token the client already knows is stale. It is never an
// access-control decision; the server remains the trust authority.
type SessionManager struct {
	KV store.KV

	// Now is the clock, injectable for deterministic expiry tests.
	// Defaults to time.Now.
	Now func() time.Time
}

func (m *SessionManager) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

// Restore loads the persisted session pair. A missing pair, a malformed
// token payload, a non-numeric or past expiry, or a corrupt identity all
// yield ErrUnauthenticated, and any partial state is wiped before
// returning. Expiry handling is silent: it never surfaces as a user-facing
// error, only as a transition back to the unauthenticated state.
func (m *SessionManager) Restore(ctx context.Context) (domain.Session, error) {
	log := slogx.FromContext(ctx)

	token, err := m.KV.Get(ctx, kvSessionToken)
	if errors.Is(err, store.ErrNotFound) {
		// Token absent: also drop a stray identity so no partial pair survives.
		return domain.Session{}, m.failClosed(ctx, "")
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("read session token: %w", err)
	}

	rawIdentity, err := m.KV.Get(ctx, kvSessionIdentity)
	if errors.Is(err, store.ErrNotFound) {
		log.Warn("session token present without identity, clearing session")
		return domain.Session{}, m.failClosed(ctx, "")
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("read session identity: %w", err)
	}

	exp, err := jwtx.PeekExpiry(token)
	if err != nil {
		// Malformed payload, or an expiry claim that is missing or not a
		// number. Never "valid forever".
		return domain.Session{}, m.failClosed(ctx, "stored token is malformed")
	}
	if !exp.After(m.now()) {
		return domain.Session{}, m.failClosed(ctx, "stored token has expired")
	}

	var identity domain.Identity
	if err := json.Unmarshal([]byte(rawIdentity), &identity); err != nil || identity.IsZero() {
		return domain.Session{}, m.failClosed(ctx, "stored identity is corrupt")
	}

	log.Debug("session restored",
		slog.String("user_id", identity.ID),
		slog.Time("token_expires_at", exp),
	)
	return domain.Session{Identity: identity, Token: token}, nil
}

// Establish persists the (token, identity) pair after a successful login or
// registration exchange and transitions to the authenticated state.
func (m *SessionManager) Establish(ctx context.Context, identity domain.Identity, token string) error {
	log := slogx.FromContext(ctx)

	if identity.IsZero() || token == "" {
		return ErrMalformed
	}

	encoded, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}

	if err := m.KV.Set(ctx, kvSessionToken, token); err != nil {
		return fmt.Errorf("persist session token: %w", err)
	}
	if err := m.KV.Set(ctx, kvSessionIdentity, string(encoded)); err != nil {
		return fmt.Errorf("persist session identity: %w", err)
	}

	log.Info("session established", slog.String("user_id", identity.ID))
	return nil
}

// Clear wipes the persisted pair and transitions to the unauthenticated
// state. Used on explicit logout and on detected expiry.
func (m *SessionManager) Clear(ctx context.Context) error {
	if err := m.KV.Delete(ctx, kvSessionToken); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	if err := m.KV.Delete(ctx, kvSessionIdentity); err != nil {
		return fmt.Errorf("clear session identity: %w", err)
	}
	return nil
}

// failClosed wipes the persisted pair and reports ErrUnauthenticated.
// A wipe failure is logged but does not change the outcome.
func (m *SessionManager) failClosed(ctx context.Context, reason string) error {
	log := slogx.FromContext(ctx)
	if reason != "" {
		log.Warn("clearing session", slog.String("reason", reason))
	}
	if err := m.Clear(ctx); err != nil {
		log.Error("failed to clear session state", slog.Any("error", err))
	}
	return ErrUnauthenticated
}
