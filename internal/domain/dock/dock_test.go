package dock

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDock(t *testing.T) {
	tests := []struct {
		name     string
		location string
		capacity int
		wantErr  string
	}{
		{name: "valid", location: "Pier 4", capacity: 3},
		{name: "capacity of one", location: "Pier 5", capacity: 1},
		{name: "empty location", location: "", capacity: 3, wantErr: "location is required"},
		{name: "zero capacity", location: "Pier 4", capacity: 0, wantErr: "positive integer"},
		{name: "negative capacity", location: "Pier 4", capacity: -2, wantErr: "positive integer"},
		{name: "location too long", location: strings.Repeat("x", 201), capacity: 3, wantErr: "exceeds 200 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDock(tt.location, tt.capacity, "")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.location, d.Location())
			assert.Equal(t, tt.capacity, d.Capacity())
			assert.Equal(t, StatusActive, d.Status())
			assert.Equal(t, 1, d.Version())
			assert.True(t, strings.HasPrefix(d.SID(), "dk_"))
		})
	}
}

func TestDock_SetIDOnce(t *testing.T) {
	d, err := NewDock("Pier 4", 3, "")
	require.NoError(t, err)

	require.NoError(t, d.SetID(7))
	assert.Equal(t, uint(7), d.ID())

	assert.Error(t, d.SetID(8))
	assert.Error(t, d.SetID(0))
}

func TestDock_UpdateCapacity(t *testing.T) {
	d, err := NewDock("Pier 4", 3, "")
	require.NoError(t, err)

	require.NoError(t, d.UpdateCapacity(5))
	assert.Equal(t, 5, d.Capacity())
	assert.Equal(t, 2, d.Version())

	// Same value is a no-op and does not bump the version
	require.NoError(t, d.UpdateCapacity(5))
	assert.Equal(t, 2, d.Version())

	assert.Error(t, d.UpdateCapacity(0))
	assert.Error(t, d.UpdateCapacity(-1))
	assert.Equal(t, 5, d.Capacity())
}

func TestDock_StatusTransitions(t *testing.T) {
	d, err := NewDock("Pier 4", 3, "")
	require.NoError(t, err)
	require.True(t, d.IsActive())

	d.Deactivate()
	assert.False(t, d.IsActive())
	assert.Equal(t, StatusInactive, d.Status())
	assert.Equal(t, 2, d.Version())

	// Idempotent
	d.Deactivate()
	assert.Equal(t, 2, d.Version())

	d.Activate()
	assert.True(t, d.IsActive())
	assert.Equal(t, 3, d.Version())
}

func TestDock_UpdateNotes(t *testing.T) {
	d, err := NewDock("Pier 4", 3, "old notes")
	require.NoError(t, err)

	d.UpdateNotes("**new** notes")
	assert.Equal(t, "**new** notes", d.Notes())
	assert.Equal(t, 2, d.Version())

	d.UpdateNotes("**new** notes")
	assert.Equal(t, 2, d.Version())
}

func TestReconstruct(t *testing.T) {
	d, err := NewDock("Pier 4", 3, "notes")
	require.NoError(t, err)
	require.NoError(t, d.SetID(12))

	restored, err := Reconstruct(d.ID(), d.SID(), d.Location(), d.Notes(), d.Capacity(), d.Status().String(), d.CreatedAt(), d.UpdatedAt(), d.Version())
	require.NoError(t, err)
	assert.Equal(t, d.ID(), restored.ID())
	assert.Equal(t, d.SID(), restored.SID())
	assert.Equal(t, d.Capacity(), restored.Capacity())

	_, err = Reconstruct(0, d.SID(), d.Location(), "", 3, "active", d.CreatedAt(), d.UpdatedAt(), 1)
	assert.Error(t, err)

	_, err = Reconstruct(12, d.SID(), d.Location(), "", 3, "scuttled", d.CreatedAt(), d.UpdatedAt(), 1)
	assert.Error(t, err)
}
