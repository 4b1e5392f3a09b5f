package usecases

import (
	"context"

	"harbormaster/internal/domain/dock"
	"harbormaster/internal/domain/hauler"
	"harbormaster/internal/domain/ship"
	"harbormaster/internal/shared/logger"
)

type mockShipRepository struct {
	CreateFunc          func(ctx context.Context, s *ship.Ship) error
	UpdateFunc          func(ctx context.Context, s *ship.Ship) error
	GetByIDFunc         func(ctx context.Context, id uint) (*ship.Ship, error)
	GetBySIDFunc        func(ctx context.Context, sid string) (*ship.Ship, error)
	ListFunc            func(ctx context.Context, filter ship.ListFilter) ([]*ship.Ship, int64, error)
	ListByDockIDFunc    func(ctx context.Context, dockID uint) ([]*ship.Ship, error)
	ListByHaulerIDFunc  func(ctx context.Context, haulerID uint) ([]*ship.Ship, error)
	CountByDockIDFunc   func(ctx context.Context, dockID uint) (int64, error)
	CountByHaulerIDFunc func(ctx context.Context, haulerID uint) (int64, error)
}

func (m *mockShipRepository) Create(ctx context.Context, s *ship.Ship) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, s)
	}
	return nil
}

func (m *mockShipRepository) Update(ctx context.Context, s *ship.Ship) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockShipRepository) GetByID(ctx context.Context, id uint) (*ship.Ship, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockShipRepository) GetBySID(ctx context.Context, sid string) (*ship.Ship, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockShipRepository) List(ctx context.Context, filter ship.ListFilter) ([]*ship.Ship, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockShipRepository) ListByDockID(ctx context.Context, dockID uint) ([]*ship.Ship, error) {
	if m.ListByDockIDFunc != nil {
		return m.ListByDockIDFunc(ctx, dockID)
	}
	return nil, nil
}

func (m *mockShipRepository) ListByHaulerID(ctx context.Context, haulerID uint) ([]*ship.Ship, error) {
	if m.ListByHaulerIDFunc != nil {
		return m.ListByHaulerIDFunc(ctx, haulerID)
	}
	return nil, nil
}

func (m *mockShipRepository) CountByDockID(ctx context.Context, dockID uint) (int64, error) {
	if m.CountByDockIDFunc != nil {
		return m.CountByDockIDFunc(ctx, dockID)
	}
	return 0, nil
}

func (m *mockShipRepository) CountByHaulerID(ctx context.Context, haulerID uint) (int64, error) {
	if m.CountByHaulerIDFunc != nil {
		return m.CountByHaulerIDFunc(ctx, haulerID)
	}
	return 0, nil
}

type mockDockRepository struct {
	CreateFunc           func(ctx context.Context, d *dock.Dock) error
	UpdateFunc           func(ctx context.Context, d *dock.Dock) error
	GetByIDFunc          func(ctx context.Context, id uint) (*dock.Dock, error)
	GetBySIDFunc         func(ctx context.Context, sid string) (*dock.Dock, error)
	ListFunc             func(ctx context.Context, filter dock.ListFilter) ([]*dock.Dock, int64, error)
	GetSIDsByIDsFunc     func(ctx context.Context, ids []uint) (map[uint]string, error)
	ExistsByLocationFunc func(ctx context.Context, location string) (bool, error)
}

func (m *mockDockRepository) Create(ctx context.Context, d *dock.Dock) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, d)
	}
	return nil
}

func (m *mockDockRepository) Update(ctx context.Context, d *dock.Dock) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, d)
	}
	return nil
}

func (m *mockDockRepository) GetByID(ctx context.Context, id uint) (*dock.Dock, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDockRepository) GetBySID(ctx context.Context, sid string) (*dock.Dock, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockDockRepository) List(ctx context.Context, filter dock.ListFilter) ([]*dock.Dock, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockDockRepository) GetSIDsByIDs(ctx context.Context, ids []uint) (map[uint]string, error) {
	if m.GetSIDsByIDsFunc != nil {
		return m.GetSIDsByIDsFunc(ctx, ids)
	}
	return map[uint]string{}, nil
}

func (m *mockDockRepository) ExistsByLocation(ctx context.Context, location string) (bool, error) {
	if m.ExistsByLocationFunc != nil {
		return m.ExistsByLocationFunc(ctx, location)
	}
	return false, nil
}

type mockHaulerRepository struct {
	CreateFunc       func(ctx context.Context, h *hauler.Hauler) error
	UpdateFunc       func(ctx context.Context, h *hauler.Hauler) error
	GetByIDFunc      func(ctx context.Context, id uint) (*hauler.Hauler, error)
	GetBySIDFunc     func(ctx context.Context, sid string) (*hauler.Hauler, error)
	GetSIDsByIDsFunc func(ctx context.Context, ids []uint) (map[uint]string, error)
	ListFunc         func(ctx context.Context, filter hauler.ListFilter) ([]*hauler.Hauler, int64, error)
}

func (m *mockHaulerRepository) Create(ctx context.Context, h *hauler.Hauler) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, h)
	}
	return nil
}

func (m *mockHaulerRepository) Update(ctx context.Context, h *hauler.Hauler) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, h)
	}
	return nil
}

func (m *mockHaulerRepository) GetByID(ctx context.Context, id uint) (*hauler.Hauler, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockHaulerRepository) GetBySID(ctx context.Context, sid string) (*hauler.Hauler, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockHaulerRepository) GetSIDsByIDs(ctx context.Context, ids []uint) (map[uint]string, error) {
	if m.GetSIDsByIDsFunc != nil {
		return m.GetSIDsByIDsFunc(ctx, ids)
	}
	return map[uint]string{}, nil
}

func (m *mockHaulerRepository) List(ctx context.Context, filter hauler.ListFilter) ([]*hauler.Hauler, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockLogger struct{}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
