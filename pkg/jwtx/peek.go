// Package jwtx decodes the self-describing parts of a bearer token without
// verifying its signature. The server is the trust authority; everything in
// here is an advisory peek so the client can avoid sending a token it
// already knows is stale. Never use these results for access control.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformed reports a token whose payload could not be decoded, or whose
// expiry claim is missing or not a number. Callers treat it exactly like an
// expired token: a token without a sane expiry is never "valid forever".
var ErrMalformed = errors.New("jwtx: malformed token")

// PeekExpiry extracts the unverified "exp" claim from a compact JWT.
func PeekExpiry(raw string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return time.Time{}, ErrMalformed
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, ErrMalformed
	}

	return exp.Time, nil
}

// PeekSubject extracts the unverified "sub" claim. Empty when absent.
func PeekSubject(raw string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return "", ErrMalformed
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", ErrMalformed
	}
	return sub, nil
}
