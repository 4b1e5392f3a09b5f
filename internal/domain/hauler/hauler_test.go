package hauler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHauler(t *testing.T) {
	h, err := NewHauler("Tideline Freight", 3)
	require.NoError(t, err)
	assert.Equal(t, "Tideline Freight", h.Name())
	assert.Equal(t, 3, h.Capacity())
	assert.Equal(t, 1, h.Version())
	assert.True(t, strings.HasPrefix(h.SID(), "hl_"))

	_, err = NewHauler("", 3)
	assert.Error(t, err)

	_, err = NewHauler("Tideline Freight", 0)
	assert.Error(t, err)

	_, err = NewHauler("Tideline Freight", -1)
	assert.Error(t, err)
}

func TestHauler_UpdateCapacity(t *testing.T) {
	h, err := NewHauler("Tideline Freight", 3)
	require.NoError(t, err)

	require.NoError(t, h.UpdateCapacity(2))
	assert.Equal(t, 2, h.Capacity())
	assert.Equal(t, 2, h.Version())

	require.NoError(t, h.UpdateCapacity(2))
	assert.Equal(t, 2, h.Version())

	assert.Error(t, h.UpdateCapacity(0))
}

func TestHauler_UpdateName(t *testing.T) {
	h, err := NewHauler("Tideline Freight", 3)
	require.NoError(t, err)

	require.NoError(t, h.UpdateName("Tideline & Co"))
	assert.Equal(t, "Tideline & Co", h.Name())

	assert.Error(t, h.UpdateName(""))
	assert.Error(t, h.UpdateName(strings.Repeat("x", 101)))
}
