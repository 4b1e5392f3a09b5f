package mappers

import (
	"fmt"

	"harbormaster/internal/domain/dock"
	"harbormaster/internal/infrastructure/persistence/models"
	"harbormaster/internal/shared/mapper"
)

type DockMapper interface {
	ToEntity(model *models.DockModel) (*dock.Dock, error)
	ToModel(entity *dock.Dock) (*models.DockModel, error)
	ToEntities(models []*models.DockModel) ([]*dock.Dock, error)
}

type DockMapperImpl struct{}

func NewDockMapper() DockMapper {
	return &DockMapperImpl{}
}

func (m *DockMapperImpl) ToEntity(model *models.DockModel) (*dock.Dock, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := dock.Reconstruct(
		model.ID,
		model.SID,
		model.Location,
		model.Notes,
		model.Capacity,
		model.Status,
		model.CreatedAt,
		model.UpdatedAt,
		model.Version,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct dock entity: %w", err)
	}

	return entity, nil
}

func (m *DockMapperImpl) ToModel(entity *dock.Dock) (*models.DockModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.DockModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		Location:  entity.Location(),
		Notes:     entity.Notes(),
		Capacity:  entity.Capacity(),
		Status:    entity.Status().String(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
		Version:   entity.Version(),
	}, nil
}

func (m *DockMapperImpl) ToEntities(modelList []*models.DockModel) ([]*dock.Dock, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.DockModel) uint { return model.ID })
}
