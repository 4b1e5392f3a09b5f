package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harbormaster/internal/application/common"
	"harbormaster/internal/application/ship/dto"
	"harbormaster/internal/domain/assignment"
	"harbormaster/internal/domain/dock"
	"harbormaster/internal/domain/hauler"
	"harbormaster/internal/domain/ship"
	apperrors "harbormaster/internal/shared/errors"
)

const (
	testDockSID   = "dk_aB3xY9kQ2mN7"
	testHaulerSID = "hl_aB3xY9kQ2mN7"
	testShipSID   = "sh_aB3xY9kQ2mN7"
)

func reconstructDock(t *testing.T, dockID uint, capacity int, status string) *dock.Dock {
	t.Helper()
	now := time.Now()
	d, err := dock.Reconstruct(dockID, testDockSID, "Pier 4", "", capacity, status, now, now, 1)
	require.NoError(t, err)
	return d
}

func reconstructHauler(t *testing.T, haulerID uint, capacity int) *hauler.Hauler {
	t.Helper()
	now := time.Now()
	h, err := hauler.Reconstruct(haulerID, testHaulerSID, "Tideline Freight", capacity, now, now, 1)
	require.NoError(t, err)
	return h
}

type createShipFixture struct {
	ships   *mockShipRepository
	docks   *mockDockRepository
	haulers *mockHaulerRepository
	useCase *CreateShipUseCase
}

func newCreateShipFixture() *createShipFixture {
	f := &createShipFixture{
		ships:   &mockShipRepository{},
		docks:   &mockDockRepository{},
		haulers: &mockHaulerRepository{},
	}
	registry := common.NewAssignmentRegistry(f.ships, f.docks, f.haulers)
	engine := assignment.NewEngine(registry, registry)
	f.useCase = NewCreateShipUseCase(f.ships, f.docks, f.haulers, engine, assignment.NewGuard(), &mockLogger{})
	return f
}

func TestCreateShipUseCase_Execute_Unassigned(t *testing.T) {
	f := newCreateShipFixture()

	var created *ship.Ship
	f.ships.CreateFunc = func(ctx context.Context, s *ship.Ship) error {
		created = s
		return s.SetID(1)
	}

	result, err := f.useCase.Execute(context.Background(), dto.CreateShipRequest{
		Name: "Meridian Star",
		Type: "container",
	})

	require.NoError(t, err)
	assert.Equal(t, "Meridian Star", result.Name)
	assert.Nil(t, result.DockSID)
	assert.Nil(t, result.HaulerSID)
	require.NotNil(t, created)
	assert.False(t, created.IsDocked())
}

func TestCreateShipUseCase_Execute_PreAssigned(t *testing.T) {
	f := newCreateShipFixture()
	d := reconstructDock(t, 1, 2, "active")
	h := reconstructHauler(t, 1, 1)

	f.docks.GetBySIDFunc = func(ctx context.Context, sid string) (*dock.Dock, error) {
		return d, nil
	}
	f.docks.GetByIDFunc = func(ctx context.Context, id uint) (*dock.Dock, error) {
		return d, nil
	}
	f.haulers.GetBySIDFunc = func(ctx context.Context, sid string) (*hauler.Hauler, error) {
		return h, nil
	}
	f.haulers.GetByIDFunc = func(ctx context.Context, id uint) (*hauler.Hauler, error) {
		return h, nil
	}
	f.ships.CountByDockIDFunc = func(ctx context.Context, dockID uint) (int64, error) {
		return 1, nil
	}
	f.ships.CreateFunc = func(ctx context.Context, s *ship.Ship) error {
		return s.SetID(1)
	}

	dockSID := testDockSID
	haulerSID := testHaulerSID
	result, err := f.useCase.Execute(context.Background(), dto.CreateShipRequest{
		Name:      "Meridian Star",
		Type:      "container",
		DockSID:   &dockSID,
		HaulerSID: &haulerSID,
	})

	require.NoError(t, err)
	require.NotNil(t, result.DockSID)
	assert.Equal(t, testDockSID, *result.DockSID)
	require.NotNil(t, result.HaulerSID)
	assert.Equal(t, testHaulerSID, *result.HaulerSID)
}

func TestCreateShipUseCase_Execute_DockAtCapacity(t *testing.T) {
	f := newCreateShipFixture()
	d := reconstructDock(t, 1, 2, "active")

	f.docks.GetBySIDFunc = func(ctx context.Context, sid string) (*dock.Dock, error) {
		return d, nil
	}
	f.docks.GetByIDFunc = func(ctx context.Context, id uint) (*dock.Dock, error) {
		return d, nil
	}
	f.ships.CountByDockIDFunc = func(ctx context.Context, dockID uint) (int64, error) {
		return 2, nil
	}

	createCalled := false
	f.ships.CreateFunc = func(ctx context.Context, s *ship.Ship) error {
		createCalled = true
		return nil
	}

	dockSID := testDockSID
	result, err := f.useCase.Execute(context.Background(), dto.CreateShipRequest{
		Name:    "Meridian Star",
		Type:    "container",
		DockSID: &dockSID,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, assignment.ErrCapacityExceeded)
	assert.False(t, createCalled)
}

func TestCreateShipUseCase_Execute_InactiveDock(t *testing.T) {
	f := newCreateShipFixture()
	d := reconstructDock(t, 1, 2, "inactive")

	f.docks.GetBySIDFunc = func(ctx context.Context, sid string) (*dock.Dock, error) {
		return d, nil
	}
	f.docks.GetByIDFunc = func(ctx context.Context, id uint) (*dock.Dock, error) {
		return d, nil
	}

	dockSID := testDockSID
	result, err := f.useCase.Execute(context.Background(), dto.CreateShipRequest{
		Name:    "Meridian Star",
		Type:    "container",
		DockSID: &dockSID,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, assignment.ErrResourceInactive)
}

func TestCreateShipUseCase_Execute_BadDockPrefix(t *testing.T) {
	f := newCreateShipFixture()

	wrongPrefix := testHaulerSID
	result, err := f.useCase.Execute(context.Background(), dto.CreateShipRequest{
		Name:    "Meridian Star",
		Type:    "container",
		DockSID: &wrongPrefix,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Contains(t, err.Error(), "dk_")
}

func TestCreateShipUseCase_Execute_DockNotFound(t *testing.T) {
	f := newCreateShipFixture()

	dockSID := testDockSID
	result, err := f.useCase.Execute(context.Background(), dto.CreateShipRequest{
		Name:    "Meridian Star",
		Type:    "container",
		DockSID: &dockSID,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, assignment.ErrResourceNotFound)
}

func TestCreateShipUseCase_Execute_InvalidName(t *testing.T) {
	f := newCreateShipFixture()

	result, err := f.useCase.Execute(context.Background(), dto.CreateShipRequest{
		Name: "",
		Type: "container",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
}
