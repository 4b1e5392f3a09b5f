package usecases

import (
	"context"

	"harbormaster/internal/domain/dock"
	"harbormaster/internal/shared/logger"
)

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

type mockLogger struct{}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
