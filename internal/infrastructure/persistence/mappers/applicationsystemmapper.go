package mappers

import (
	"rolehub/internal/domain/access"
	"rolehub/internal/infrastructure/persistence/models"
)

// ApplicationSystemMapper handles the conversion between domain entities and persistence models.
type ApplicationSystemMapper interface {
	ToEntity(model *models.ApplicationSystemModel) (*access.ApplicationSystem, error)
	ToModel(entity *access.ApplicationSystem) (*models.ApplicationSystemModel, error)
	ToEntities(models []*models.ApplicationSystemModel) ([]*access.ApplicationSystem, error)
}

// ApplicationSystemMapperImpl is the concrete implementation of ApplicationSystemMapper.
type ApplicationSystemMapperImpl struct{}

// NewApplicationSystemMapper creates a new application system mapper.
func NewApplicationSystemMapper() ApplicationSystemMapper {
	return &ApplicationSystemMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *ApplicationSystemMapperImpl) ToEntity(model *models.ApplicationSystemModel) (*access.ApplicationSystem, error) {
	if model == nil {
		return nil, nil
	}

	return access.ReconstructApplicationSystem(
		model.ID,
		model.Name,
		model.Code,
		model.Description,
		model.Criticality,
		access.SystemType(model.SystemType),
		model.OwnerID,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

// ToModel converts a domain entity to a persistence model.
func (m *ApplicationSystemMapperImpl) ToModel(entity *access.ApplicationSystem) (*models.ApplicationSystemModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ApplicationSystemModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Code:        entity.Code(),
		Description: entity.Description(),
		Criticality: entity.Criticality(),
		SystemType:  string(entity.SystemType()),
		OwnerID:     entity.OwnerID(),
		IsActive:    entity.IsActive(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities.
func (m *ApplicationSystemMapperImpl) ToEntities(list []*models.ApplicationSystemModel) ([]*access.ApplicationSystem, error) {
	entities := make([]*access.ApplicationSystem, 0, len(list))
	for _, model := range list {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
