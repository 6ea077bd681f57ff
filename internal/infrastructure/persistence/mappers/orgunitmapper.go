package mappers

import (
	"fmt"

	"rolehub/internal/domain/organization"
	"rolehub/internal/infrastructure/persistence/models"
)

// OrgUnitMapper handles the conversion between domain entities and persistence models.
type OrgUnitMapper interface {
	ToEntity(model *models.OrgUnitModel) (*organization.OrgUnit, error)
	ToModel(entity *organization.OrgUnit) (*models.OrgUnitModel, error)
	ToEntities(models []*models.OrgUnitModel) ([]*organization.OrgUnit, error)
}

// OrgUnitMapperImpl is the concrete implementation of OrgUnitMapper.
type OrgUnitMapperImpl struct{}

// NewOrgUnitMapper creates a new org unit mapper.
func NewOrgUnitMapper() OrgUnitMapper {
	return &OrgUnitMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *OrgUnitMapperImpl) ToEntity(model *models.OrgUnitModel) (*organization.OrgUnit, error) {
	if model == nil {
		return nil, nil
	}

	unitType := organization.UnitType(model.UnitType)
	if !unitType.IsValid() {
		return nil, fmt.Errorf("invalid org unit type: %s", model.UnitType)
	}

	return organization.ReconstructOrgUnit(
		model.ID,
		model.Name,
		model.Code,
		unitType,
		model.ParentID,
		model.Level,
		model.Path,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

// ToModel converts a domain entity to a persistence model.
func (m *OrgUnitMapperImpl) ToModel(entity *organization.OrgUnit) (*models.OrgUnitModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.OrgUnitModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Code:      entity.Code(),
		UnitType:  string(entity.UnitType()),
		ParentID:  entity.ParentID(),
		Level:     entity.Level(),
		Path:      entity.Path(),
		IsActive:  entity.IsActive(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities.
func (m *OrgUnitMapperImpl) ToEntities(list []*models.OrgUnitModel) ([]*organization.OrgUnit, error) {
	entities := make([]*organization.OrgUnit, 0, len(list))
	for _, model := range list {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
