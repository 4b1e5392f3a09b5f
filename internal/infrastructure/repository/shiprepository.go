package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"harbormaster/internal/domain/ship"
	"harbormaster/internal/infrastructure/persistence/mappers"
	"harbormaster/internal/infrastructure/persistence/models"
	"harbormaster/internal/shared/db"
	"harbormaster/internal/shared/logger"
)

// ShipRepositoryImpl implements the ship.Repository interface.
type ShipRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ShipMapper
	logger logger.Interface
}

// NewShipRepository creates a new ship repository instance.
func NewShipRepository(database *gorm.DB, logger logger.Interface) ship.Repository {
	return &ShipRepositoryImpl{
		db:     database,
		mapper: mappers.NewShipMapper(),
		logger: logger,
	}
}

func (r *ShipRepositoryImpl) Create(ctx context.Context, s *ship.Ship) error {
	model, err := r.mapper.ToModel(s)
	if err != nil {
		return fmt.Errorf("failed to map ship: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ship: %w", err)
	}

	if err := s.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set ship ID: %w", err)
	}
	return nil
}

// Update persists changes with an optimistic version check. The dock and
// hauler columns are written unconditionally so releases (nil) land.
func (r *ShipRepositoryImpl) Update(ctx context.Context, s *ship.Ship) error {
	model, err := r.mapper.ToModel(s)
	if err != nil {
		return fmt.Errorf("failed to map ship: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.ShipModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"type":       model.Type,
			"dock_id":    model.DockID,
			"hauler_id":  model.HaulerID,
			"manifest":   model.Manifest,
			"updated_at": model.UpdatedAt,
			"version":    model.Version,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update ship: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ship.ErrVersionConflict
	}
	return nil
}

func (r *ShipRepositoryImpl) GetByID(ctx context.Context, id uint) (*ship.Ship, error) {
	var model models.ShipModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ship: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ShipRepositoryImpl) GetBySID(ctx context.Context, sid string) (*ship.Ship, error) {
	var model models.ShipModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ship by SID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ShipRepositoryImpl) List(ctx context.Context, filter ship.ListFilter) ([]*ship.Ship, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ShipModel{})

	if filter.DockID != nil {
		query = query.Where("dock_id = ?", *filter.DockID)
	}
	if filter.HaulerID != nil {
		query = query.Where("hauler_id = ?", *filter.HaulerID)
	}
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count ships: %w", err)
	}

	var modelList []*models.ShipModel
	query = query.Order("id ASC")
	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list ships: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *ShipRepositoryImpl) ListByDockID(ctx context.Context, dockID uint) ([]*ship.Ship, error) {
	var modelList []*models.ShipModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("dock_id = ?", dockID).
		Order("id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list ships by dock: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *ShipRepositoryImpl) ListByHaulerID(ctx context.Context, haulerID uint) ([]*ship.Ship, error) {
	var modelList []*models.ShipModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("hauler_id = ?", haulerID).
		Order("id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list ships by hauler: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *ShipRepositoryImpl) CountByDockID(ctx context.Context, dockID uint) (int64, error) {
	var count int64

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.ShipModel{}).
		Where("dock_id = ?", dockID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count ships by dock: %w", err)
	}
	return count, nil
}

func (r *ShipRepositoryImpl) CountByHaulerID(ctx context.Context, haulerID uint) (int64, error) {
	var count int64

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.ShipModel{}).
		Where("hauler_id = ?", haulerID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count ships by hauler: %w", err)
	}
	return count, nil
}
