package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"harbormaster/internal/domain/hauler"
	"harbormaster/internal/infrastructure/persistence/mappers"
	"harbormaster/internal/infrastructure/persistence/models"
	"harbormaster/internal/shared/db"
	"harbormaster/internal/shared/logger"
)

// HaulerRepositoryImpl implements the hauler.Repository interface.
type HaulerRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.HaulerMapper
	logger logger.Interface
}

// NewHaulerRepository creates a new hauler repository instance.
func NewHaulerRepository(database *gorm.DB, logger logger.Interface) hauler.Repository {
	return &HaulerRepositoryImpl{
		db:     database,
		mapper: mappers.NewHaulerMapper(),
		logger: logger,
	}
}

func (r *HaulerRepositoryImpl) Create(ctx context.Context, h *hauler.Hauler) error {
	model, err := r.mapper.ToModel(h)
	if err != nil {
		return fmt.Errorf("failed to map hauler: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create hauler: %w", err)
	}

	if err := h.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set hauler ID: %w", err)
	}
	return nil
}

func (r *HaulerRepositoryImpl) Update(ctx context.Context, h *hauler.Hauler) error {
	model, err := r.mapper.ToModel(h)
	if err != nil {
		return fmt.Errorf("failed to map hauler: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.HaulerModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"capacity":   model.Capacity,
			"updated_at": model.UpdatedAt,
			"version":    model.Version,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update hauler: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return hauler.ErrVersionConflict
	}
	return nil
}

func (r *HaulerRepositoryImpl) GetByID(ctx context.Context, id uint) (*hauler.Hauler, error) {
	var model models.HaulerModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hauler: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *HaulerRepositoryImpl) GetBySID(ctx context.Context, sid string) (*hauler.Hauler, error) {
	var model models.HaulerModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hauler by SID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *HaulerRepositoryImpl) List(ctx context.Context, filter hauler.ListFilter) ([]*hauler.Hauler, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.HaulerModel{})

	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count haulers: %w", err)
	}

	var modelList []*models.HaulerModel
	query = query.Order("id ASC")
	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list haulers: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *HaulerRepositoryImpl) GetSIDsByIDs(ctx context.Context, ids []uint) (map[uint]string, error) {
	if len(ids) == 0 {
		return map[uint]string{}, nil
	}

	var rows []struct {
		ID  uint
		SID string `gorm:"column:sid"`
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.HaulerModel{}).
		Select("id", "sid").
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get hauler SIDs: %w", err)
	}

	result := make(map[uint]string, len(rows))
	for _, row := range rows {
		result[row.ID] = row.SID
	}
	return result, nil
}
