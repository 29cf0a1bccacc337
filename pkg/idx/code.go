package idx

import (
	"crypto/rand"
	"fmt"
)

// codeAlphabet is Crockford base32 (uppercase, no I/L/O/U) so invitation
// codes survive being read aloud or retyped from a screenshot.
const codeAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// DefaultCodeLength is the canonical invitation code length.
const DefaultCodeLength = 6

// NewCode returns a random uppercase code of n characters drawn from the
// Crockford base32 alphabet. Codes are short, so collisions are possible;
// the caller retries.
func NewCode(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("idx: code length must be positive, got %d", n)
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("idx: failed to generate code: %w", err)
	}

	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}

// MustNewCode is like NewCode but panics on error. Use only where failure
// of the system randomness source is unrecoverable anyway.
func MustNewCode(n int) string {
	code, err := NewCode(n)
	if err != nil {
		panic(err)
	}
	return code
}
