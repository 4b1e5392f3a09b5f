package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harbormaster/internal/application/dock/dto"
	"harbormaster/internal/domain/assignment"
	"harbormaster/internal/domain/dock"
)

// stubRegistry answers the engine's occupancy and capacity reads from
// fixed maps.
type stubRegistry struct {
	occupancy map[uint]int64
	capacity  map[uint]int
}

func (s *stubRegistry) CountOccupants(ctx context.Context, kind assignment.ResourceKind, resourceID uint) (int64, error) {
	return s.occupancy[resourceID], nil
}

func (s *stubRegistry) ResourceCapacity(ctx context.Context, kind assignment.ResourceKind, resourceID uint) (int, bool, error) {
	capacity, ok := s.capacity[resourceID]
	if !ok {
		return 0, false, assignment.ErrResourceNotFound
	}
	return capacity, true, nil
}

func reconstructDock(t *testing.T, dockID uint, location string, capacity int) *dock.Dock {
	t.Helper()
	now := time.Now()
	d, err := dock.Reconstruct(dockID, "dk_aB3xY9kQ2mN7", location, "", capacity, "active", now, now, 1)
	require.NoError(t, err)
	return d
}

func newUpdateFixture(d *dock.Dock, occupancy int64) (*UpdateDockUseCase, *mockDockRepository) {
	registry := &stubRegistry{
		occupancy: map[uint]int64{d.ID(): occupancy},
		capacity:  map[uint]int{d.ID(): d.Capacity()},
	}
	mockRepo := &mockDockRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*dock.Dock, error) {
			if sid == d.SID() {
				return d, nil
			}
			return nil, nil
		},
	}
	engine := assignment.NewEngine(registry, registry)
	useCase := NewUpdateDockUseCase(mockRepo, engine, assignment.NewGuard(), &mockLogger{})
	return useCase, mockRepo
}

func TestUpdateDockUseCase_ShrinkAboveOccupancy(t *testing.T) {
	// Five berths, three occupied: shrinking to three is allowed.
	d := reconstructDock(t, 1, "Pier 4", 5)
	useCase, mockRepo := newUpdateFixture(d, 3)

	var updated *dock.Dock
	mockRepo.UpdateFunc = func(ctx context.Context, d *dock.Dock) error {
		updated = d
		return nil
	}

	newCapacity := 3
	result, err := useCase.ExecuteBySID(context.Background(), d.SID(), dto.UpdateDockRequest{Capacity: &newCapacity})

	require.NoError(t, err)
	assert.Equal(t, 3, result.Capacity)
	require.NotNil(t, updated)
	assert.Equal(t, 3, updated.Capacity())
}

func TestUpdateDockUseCase_ShrinkBelowOccupancy(t *testing.T) {
	// Five berths, three occupied: shrinking to two would strand a ship.
	d := reconstructDock(t, 1, "Pier 4", 5)
	useCase, mockRepo := newUpdateFixture(d, 3)

	updateCalled := false
	mockRepo.UpdateFunc = func(ctx context.Context, d *dock.Dock) error {
		updateCalled = true
		return nil
	}

	newCapacity := 2
	result, err := useCase.ExecuteBySID(context.Background(), d.SID(), dto.UpdateDockRequest{Capacity: &newCapacity})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, assignment.ErrCapacityViolation)
	assert.False(t, updateCalled)
	assert.Equal(t, 5, d.Capacity())
}

func TestUpdateDockUseCase_GrowSkipsOccupancyCheck(t *testing.T) {
	d := reconstructDock(t, 1, "Pier 4", 2)
	useCase, mockRepo := newUpdateFixture(d, 2)
	mockRepo.UpdateFunc = func(ctx context.Context, d *dock.Dock) error { return nil }

	newCapacity := 6
	result, err := useCase.ExecuteBySID(context.Background(), d.SID(), dto.UpdateDockRequest{Capacity: &newCapacity})

	require.NoError(t, err)
	assert.Equal(t, 6, result.Capacity)
}

func TestUpdateDockUseCase_ZeroCapacityRejected(t *testing.T) {
	d := reconstructDock(t, 1, "Pier 4", 5)
	useCase, _ := newUpdateFixture(d, 0)

	newCapacity := 0
	result, err := useCase.ExecuteBySID(context.Background(), d.SID(), dto.UpdateDockRequest{Capacity: &newCapacity})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "positive integer")
}

func TestUpdateDockUseCase_NotFound(t *testing.T) {
	d := reconstructDock(t, 1, "Pier 4", 5)
	useCase, _ := newUpdateFixture(d, 0)

	result, err := useCase.ExecuteBySID(context.Background(), "dk_doesnotexist", dto.UpdateDockRequest{})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, dock.ErrDockNotFound)
}

func TestUpdateDockUseCase_LocationConflict(t *testing.T) {
	d := reconstructDock(t, 1, "Pier 4", 5)
	useCase, mockRepo := newUpdateFixture(d, 0)
	mockRepo.ExistsByLocationFunc = func(ctx context.Context, location string) (bool, error) {
		return location == "Pier 9", nil
	}

	taken := "Pier 9"
	result, err := useCase.ExecuteBySID(context.Background(), d.SID(), dto.UpdateDockRequest{Location: &taken})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, dock.ErrDockLocationExists)
}

func TestUpdateDockUseCase_NotesOnly(t *testing.T) {
	d := reconstructDock(t, 1, "Pier 4", 5)
	useCase, mockRepo := newUpdateFixture(d, 0)
	mockRepo.UpdateFunc = func(ctx context.Context, d *dock.Dock) error { return nil }

	notes := "**dredged** March"
	result, err := useCase.ExecuteBySID(context.Background(), d.SID(), dto.UpdateDockRequest{Notes: &notes})

	require.NoError(t, err)
	assert.Equal(t, notes, result.Notes)
	assert.Equal(t, 5, result.Capacity)
}
