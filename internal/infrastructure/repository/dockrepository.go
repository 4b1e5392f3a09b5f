package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"harbormaster/internal/domain/dock"
	"harbormaster/internal/infrastructure/persistence/mappers"
	"harbormaster/internal/infrastructure/persistence/models"
	"harbormaster/internal/shared/db"
	"harbormaster/internal/shared/logger"
)

// DockRepositoryImpl implements the dock.Repository interface.
type DockRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.DockMapper
	logger logger.Interface
}

// NewDockRepository creates a new dock repository instance.
func NewDockRepository(database *gorm.DB, logger logger.Interface) dock.Repository {
	return &DockRepositoryImpl{
		db:     database,
		mapper: mappers.NewDockMapper(),
		logger: logger,
	}
}

func (r *DockRepositoryImpl) Create(ctx context.Context, d *dock.Dock) error {
	model, err := r.mapper.ToModel(d)
	if err != nil {
		return fmt.Errorf("failed to map dock: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create dock: %w", err)
	}

	if err := d.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set dock ID: %w", err)
	}
	return nil
}

// Update persists changes with an optimistic version check. The version in
// the WHERE clause is the pre-mutation one; the aggregate already
// incremented its copy.
func (r *DockRepositoryImpl) Update(ctx context.Context, d *dock.Dock) error {
	model, err := r.mapper.ToModel(d)
	if err != nil {
		return fmt.Errorf("failed to map dock: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.DockModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]interface{}{
			"location":   model.Location,
			"notes":      model.Notes,
			"capacity":   model.Capacity,
			"status":     model.Status,
			"updated_at": model.UpdatedAt,
			"version":    model.Version,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update dock: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return dock.ErrVersionConflict
	}
	return nil
}

func (r *DockRepositoryImpl) GetByID(ctx context.Context, id uint) (*dock.Dock, error) {
	var model models.DockModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dock: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *DockRepositoryImpl) GetBySID(ctx context.Context, sid string) (*dock.Dock, error) {
	var model models.DockModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dock by SID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *DockRepositoryImpl) List(ctx context.Context, filter dock.ListFilter) ([]*dock.Dock, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.DockModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Search != "" {
		query = query.Where("location LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count docks: %w", err)
	}

	var modelList []*models.DockModel
	query = query.Order("id ASC")
	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list docks: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *DockRepositoryImpl) GetSIDsByIDs(ctx context.Context, ids []uint) (map[uint]string, error) {
	if len(ids) == 0 {
		return map[uint]string{}, nil
	}

	var rows []struct {
		ID  uint
		SID string `gorm:"column:sid"`
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.DockModel{}).
		Select("id", "sid").
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get dock SIDs: %w", err)
	}

	result := make(map[uint]string, len(rows))
	for _, row := range rows {
		result[row.ID] = row.SID
	}
	return result, nil
}

func (r *DockRepositoryImpl) ExistsByLocation(ctx context.Context, location string) (bool, error) {
	var count int64

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.DockModel{}).
		Where("location = ?", location).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check dock location: %w", err)
	}
	return count > 0, nil
}
