package mappers

import (
	"rolehub/internal/domain/organization"
	"rolehub/internal/infrastructure/persistence/models"
)

// PositionMapper handles the conversion between domain entities and persistence models.
type PositionMapper interface {
	ToEntity(model *models.PositionModel) (*organization.Position, error)
	ToModel(entity *organization.Position) (*models.PositionModel, error)
	ToEntities(models []*models.PositionModel) ([]*organization.Position, error)
}

// PositionMapperImpl is the concrete implementation of PositionMapper.
type PositionMapperImpl struct{}

// NewPositionMapper creates a new position mapper.
func NewPositionMapper() PositionMapper {
	return &PositionMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *PositionMapperImpl) ToEntity(model *models.PositionModel) (*organization.Position, error) {
	if model == nil {
		return nil, nil
	}

	return organization.ReconstructPosition(
		model.ID,
		model.Title,
		model.Code,
		model.HierarchyLevel,
		model.Description,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

// ToModel converts a domain entity to a persistence model.
func (m *PositionMapperImpl) ToModel(entity *organization.Position) (*models.PositionModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.PositionModel{
		ID:             entity.ID(),
		Title:          entity.Title(),
		Code:           entity.Code(),
		HierarchyLevel: entity.HierarchyLevel(),
		Description:    entity.Description(),
		IsActive:       entity.IsActive(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities.
func (m *PositionMapperImpl) ToEntities(list []*models.PositionModel) ([]*organization.Position, error) {
	entities := make([]*organization.Position, 0, len(list))
	for _, model := range list {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
