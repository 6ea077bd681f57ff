package mappers

import (
	"fmt"

	"rolehub/internal/domain/organization"
	"rolehub/internal/infrastructure/persistence/models"
)

// AgileMapper converts the agile hierarchy (tribe, product, team) between
// domain entities and persistence models.
type AgileMapper interface {
	TribeToEntity(model *models.TribeModel) (*organization.Tribe, error)
	TribeToModel(entity *organization.Tribe) (*models.TribeModel, error)
	TribesToEntities(models []*models.TribeModel) ([]*organization.Tribe, error)

	ProductToEntity(model *models.ProductModel) (*organization.Product, error)
	ProductToModel(entity *organization.Product) (*models.ProductModel, error)
	ProductsToEntities(models []*models.ProductModel) ([]*organization.Product, error)

	TeamToEntity(model *models.AgileTeamModel) (*organization.AgileTeam, error)
	TeamToModel(entity *organization.AgileTeam) (*models.AgileTeamModel, error)
	TeamsToEntities(models []*models.AgileTeamModel) ([]*organization.AgileTeam, error)
}

// AgileMapperImpl is the concrete implementation of AgileMapper.
type AgileMapperImpl struct{}

// NewAgileMapper creates a new agile hierarchy mapper.
func NewAgileMapper() AgileMapper {
	return &AgileMapperImpl{}
}

func (m *AgileMapperImpl) TribeToEntity(model *models.TribeModel) (*organization.Tribe, error) {
	if model == nil {
		return nil, nil
	}
	return organization.ReconstructTribe(
		model.ID,
		model.Name,
		model.Description,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *AgileMapperImpl) TribeToModel(entity *organization.Tribe) (*models.TribeModel, error) {
	if entity == nil {
		return nil, nil
	}
	return &models.TribeModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		IsActive:    entity.IsActive(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *AgileMapperImpl) TribesToEntities(list []*models.TribeModel) ([]*organization.Tribe, error) {
	entities := make([]*organization.Tribe, 0, len(list))
	for _, model := range list {
		entity, err := m.TribeToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *AgileMapperImpl) ProductToEntity(model *models.ProductModel) (*organization.Product, error) {
	if model == nil {
		return nil, nil
	}
	return organization.ReconstructProduct(
		model.ID,
		model.Name,
		model.TribeID,
		model.ProductType,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *AgileMapperImpl) ProductToModel(entity *organization.Product) (*models.ProductModel, error) {
	if entity == nil {
		return nil, nil
	}
	return &models.ProductModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		TribeID:     entity.TribeID(),
		ProductType: entity.ProductType(),
		IsActive:    entity.IsActive(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *AgileMapperImpl) ProductsToEntities(list []*models.ProductModel) ([]*organization.Product, error) {
	entities := make([]*organization.Product, 0, len(list))
	for _, model := range list {
		entity, err := m.ProductToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *AgileMapperImpl) TeamToEntity(model *models.AgileTeamModel) (*organization.AgileTeam, error) {
	if model == nil {
		return nil, nil
	}

	teamType := organization.TeamType(model.TeamType)
	if !teamType.IsValid() {
		return nil, fmt.Errorf("invalid team type: %s", model.TeamType)
	}

	return organization.ReconstructAgileTeam(
		model.ID,
		model.Name,
		model.ProductID,
		teamType,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *AgileMapperImpl) TeamToModel(entity *organization.AgileTeam) (*models.AgileTeamModel, error) {
	if entity == nil {
		return nil, nil
	}
	return &models.AgileTeamModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		ProductID: entity.ProductID(),
		TeamType:  string(entity.TeamType()),
		IsActive:  entity.IsActive(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *AgileMapperImpl) TeamsToEntities(list []*models.AgileTeamModel) ([]*organization.AgileTeam, error) {
	entities := make([]*organization.AgileTeam, 0, len(list))
	for _, model := range list {
		entity, err := m.TeamToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
