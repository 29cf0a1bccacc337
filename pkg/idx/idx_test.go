package idx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewProducesUniqueSortedIDs(t *testing.T) {
	t.Parallel()

	const n = 1000
	seen := make(map[ID]struct{}, n)
	var prev ID
	for i := 0; i < n; i++ {
		id := New()
		require.NotEmpty(t, id)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}

		if prev != Zero {
			require.LessOrEqual(t, prev.String(), id.String())
		}
		prev = id
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	id := New()
	parsed, err := Parse("  " + id.String() + "  ")
	require.NoError(t, err)
	require.Equal(t, id, parsed)

	_, err = Parse("")
	require.ErrorIs(t, err, ErrInvalid)

	_, err = Parse("not-a-ulid")
	require.ErrorIs(t, err, ErrInvalid)
}

func TestIDTime(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	id := NewAt(at)
	require.WithinDuration(t, at, id.Time(), time.Millisecond)

	require.True(t, Zero.Time().IsZero())
}

func TestNewCode(t *testing.T) {
	t.Parallel()

	code, err := NewCode(DefaultCodeLength)
	require.NoError(t, err)
	require.Len(t, code, DefaultCodeLength)
	require.Equal(t, strings.ToUpper(code), code)
	for _, r := range code {
		require.Contains(t, codeAlphabet, string(r))
	}

	_, err = NewCode(0)
	require.Error(t, err)
}
