package mappers

import (
	"fmt"

	"harbormaster/internal/domain/hauler"
	"harbormaster/internal/infrastructure/persistence/models"
	"harbormaster/internal/shared/mapper"
)

type HaulerMapper interface {
	ToEntity(model *models.HaulerModel) (*hauler.Hauler, error)
	ToModel(entity *hauler.Hauler) (*models.HaulerModel, error)
	ToEntities(models []*models.HaulerModel) ([]*hauler.Hauler, error)
}

type HaulerMapperImpl struct{}

func NewHaulerMapper() HaulerMapper {
	return &HaulerMapperImpl{}
}

func (m *HaulerMapperImpl) ToEntity(model *models.HaulerModel) (*hauler.Hauler, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := hauler.Reconstruct(
		model.ID,
		model.SID,
		model.Name,
		model.Capacity,
		model.CreatedAt,
		model.UpdatedAt,
		model.Version,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct hauler entity: %w", err)
	}

	return entity, nil
}

func (m *HaulerMapperImpl) ToModel(entity *hauler.Hauler) (*models.HaulerModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.HaulerModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		Name:      entity.Name(),
		Capacity:  entity.Capacity(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
		Version:   entity.Version(),
	}, nil
}

func (m *HaulerMapperImpl) ToEntities(modelList []*models.HaulerModel) ([]*hauler.Hauler, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.HaulerModel) uint { return model.ID })
}
