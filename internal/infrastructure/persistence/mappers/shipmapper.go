package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"harbormaster/internal/domain/ship"
	"harbormaster/internal/infrastructure/persistence/models"
	"harbormaster/internal/shared/mapper"
)

type ShipMapper interface {
	ToEntity(model *models.ShipModel) (*ship.Ship, error)
	ToModel(entity *ship.Ship) (*models.ShipModel, error)
	ToEntities(models []*models.ShipModel) ([]*ship.Ship, error)
}

type ShipMapperImpl struct{}

func NewShipMapper() ShipMapper {
	return &ShipMapperImpl{}
}

func (m *ShipMapperImpl) ToEntity(model *models.ShipModel) (*ship.Ship, error) {
	if model == nil {
		return nil, nil
	}

	var manifest json.RawMessage
	if len(model.Manifest) > 0 {
		manifest = json.RawMessage(model.Manifest)
	}

	entity, err := ship.Reconstruct(
		model.ID,
		model.SID,
		model.Name,
		model.Type,
		model.DockID,
		model.HaulerID,
		manifest,
		model.CreatedAt,
		model.UpdatedAt,
		model.Version,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ship entity: %w", err)
	}

	return entity, nil
}

func (m *ShipMapperImpl) ToModel(entity *ship.Ship) (*models.ShipModel, error) {
	if entity == nil {
		return nil, nil
	}

	model := &models.ShipModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		Name:      entity.Name(),
		Type:      entity.Type(),
		DockID:    entity.DockID(),
		HaulerID:  entity.HaulerID(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
		Version:   entity.Version(),
	}

	if len(entity.Manifest()) > 0 {
		model.Manifest = datatypes.JSON(entity.Manifest())
	}

	return model, nil
}

func (m *ShipMapperImpl) ToEntities(modelList []*models.ShipModel) ([]*ship.Ship, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.ShipModel) uint { return model.ID })
}
