package mappers

import (
	"rolehub/internal/domain/access"
	"rolehub/internal/infrastructure/persistence/models"
)

// AccessMapper handles the conversion between domain entities and persistence models.
type AccessMapper interface {
	ToEntity(model *models.AccessModel) (*access.Access, error)
	ToModel(entity *access.Access) (*models.AccessModel, error)
	ToEntities(models []*models.AccessModel) ([]*access.Access, error)
}

// AccessMapperImpl is the concrete implementation of AccessMapper.
type AccessMapperImpl struct{}

// NewAccessMapper creates a new access mapper.
func NewAccessMapper() AccessMapper {
	return &AccessMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *AccessMapperImpl) ToEntity(model *models.AccessModel) (*access.Access, error) {
	if model == nil {
		return nil, nil
	}

	return access.ReconstructAccess(
		model.ID,
		model.SystemID,
		model.RoleName,
		model.Criticality,
		model.Description,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

// ToModel converts a domain entity to a persistence model.
func (m *AccessMapperImpl) ToModel(entity *access.Access) (*models.AccessModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.AccessModel{
		ID:          entity.ID(),
		SystemID:    entity.SystemID(),
		RoleName:    entity.RoleName(),
		Criticality: entity.Criticality(),
		Description: entity.Description(),
		IsActive:    entity.IsActive(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities.
func (m *AccessMapperImpl) ToEntities(list []*models.AccessModel) ([]*access.Access, error) {
	entities := make([]*access.Access, 0, len(list))
	for _, model := range list {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
