package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harbormaster/internal/domain/hauler"
	"harbormaster/internal/domain/ship"
)

func TestGetHaulerWithShipsUseCase_ExecuteBySID(t *testing.T) {
	now := time.Now()
	h, err := hauler.Reconstruct(1, "hl_aB3xY9kQ2mN7", "Tideline Freight", 2, now, now, 1)
	require.NoError(t, err)

	haulerID := uint(1)
	shipA, err := ship.Reconstruct(1, "sh_aB3xY9kQ2mN7", "Meridian Star", "container", nil, &haulerID, nil, now, now, 1)
	require.NoError(t, err)

	haulers := &stubHaulerRepo{bySID: map[string]*hauler.Hauler{h.SID(): h}}
	ships := &stubShipRepo{byHauler: map[uint][]*ship.Ship{1: {shipA}}}

	useCase := NewGetHaulerWithShipsUseCase(haulers, ships, noopLogger{})
	result, err := useCase.ExecuteBySID(context.Background(), h.SID())

	require.NoError(t, err)
	assert.Equal(t, "Tideline Freight", result.Name)
	assert.Equal(t, 2, result.Capacity)
	assert.Equal(t, 1, result.Occupancy)
	assert.Equal(t, 1, result.FreeCapacity)
	require.Len(t, result.Ships, 1)
	require.NotNil(t, result.Ships[0].HaulerSID)
	assert.Equal(t, h.SID(), *result.Ships[0].HaulerSID)
}

func TestGetHaulerWithShipsUseCase_NotFound(t *testing.T) {
	haulers := &stubHaulerRepo{bySID: map[string]*hauler.Hauler{}}
	ships := &stubShipRepo{}

	useCase := NewGetHaulerWithShipsUseCase(haulers, ships, noopLogger{})
	result, err := useCase.ExecuteBySID(context.Background(), "hl_doesnotexist")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, hauler.ErrHaulerNotFound)
}
