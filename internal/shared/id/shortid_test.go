package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	s, err := Generate(DefaultLength)
	require.NoError(t, err)
	assert.Len(t, s, DefaultLength)

	for _, c := range s {
		assert.Contains(t, alphabet, string(c))
	}

	// Zero length falls back to the default
	s, err = Generate(0)
	require.NoError(t, err)
	assert.Len(t, s, DefaultLength)
}

func TestGenerate_Uniqueness(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		s, err := Generate(DefaultLength)
		require.NoError(t, err)
		_, dup := seen[s]
		require.False(t, dup, "duplicate ID generated: %s", s)
		seen[s] = struct{}{}
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	s, err := GenerateWithPrefix(PrefixDock)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s, "dk_"))
	assert.Len(t, s, len(PrefixDock)+1+DefaultLength)
}

func TestParsePrefixedID(t *testing.T) {
	prefix, shortID, err := ParsePrefixedID("sh_aB3xY9kQ2mN7")
	require.NoError(t, err)
	assert.Equal(t, "sh", prefix)
	assert.Equal(t, "aB3xY9kQ2mN7", shortID)

	for _, bad := range []string{"", "noprefix", "_abc", "sh_"} {
		_, _, err := ParsePrefixedID(bad)
		assert.Error(t, err, "expected error for %q", bad)
	}
}

func TestValidatePrefix(t *testing.T) {
	assert.NoError(t, ValidatePrefix("dk_aB3xY9kQ2mN7", PrefixDock))
	assert.Error(t, ValidatePrefix("hl_aB3xY9kQ2mN7", PrefixDock))
	assert.Error(t, ValidatePrefix("garbage", PrefixDock))
}
