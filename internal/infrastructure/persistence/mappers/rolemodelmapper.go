package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"rolehub/internal/domain/rolemodel"
	"rolehub/internal/infrastructure/persistence/models"
)

// RoleModelMapper converts role models, profiles and profile access links
// between domain entities and persistence models.
type RoleModelMapper interface {
	ToEntity(model *models.RoleModelModel) (*rolemodel.RoleModel, error)
	ToModel(entity *rolemodel.RoleModel) (*models.RoleModelModel, error)
	ToEntities(models []*models.RoleModelModel) ([]*rolemodel.RoleModel, error)

	ProfileToEntity(model *models.RoleProfileModel) (*rolemodel.RoleProfile, error)
	ProfileToModel(entity *rolemodel.RoleProfile) (*models.RoleProfileModel, error)
	ProfilesToEntities(models []*models.RoleProfileModel) ([]*rolemodel.RoleProfile, error)

	LinkToEntity(model *models.ProfileAccessModel) (*rolemodel.ProfileAccess, error)
	LinkToModel(entity *rolemodel.ProfileAccess) (*models.ProfileAccessModel, error)
	LinksToEntities(models []*models.ProfileAccessModel) ([]*rolemodel.ProfileAccess, error)
}

// RoleModelMapperImpl is the concrete implementation of RoleModelMapper.
type RoleModelMapperImpl struct{}

// NewRoleModelMapper creates a new role model mapper.
func NewRoleModelMapper() RoleModelMapper {
	return &RoleModelMapperImpl{}
}

func (m *RoleModelMapperImpl) ToEntity(model *models.RoleModelModel) (*rolemodel.RoleModel, error) {
	if model == nil {
		return nil, nil
	}
	return rolemodel.ReconstructRoleModel(
		model.ID,
		model.Name,
		model.Description,
		model.Author,
		model.Version,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *RoleModelMapperImpl) ToModel(entity *rolemodel.RoleModel) (*models.RoleModelModel, error) {
	if entity == nil {
		return nil, nil
	}
	return &models.RoleModelModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		Author:      entity.Author(),
		Version:     entity.Version(),
		IsActive:    entity.IsActive(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *RoleModelMapperImpl) ToEntities(list []*models.RoleModelModel) ([]*rolemodel.RoleModel, error) {
	entities := make([]*rolemodel.RoleModel, 0, len(list))
	for _, model := range list {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *RoleModelMapperImpl) ProfileToEntity(model *models.RoleProfileModel) (*rolemodel.RoleProfile, error) {
	if model == nil {
		return nil, nil
	}

	var criteria rolemodel.Criteria
	if len(model.Criteria) > 0 {
		if err := json.Unmarshal(model.Criteria, &criteria); err != nil {
			return nil, fmt.Errorf("failed to parse criteria: %w", err)
		}
	}

	return rolemodel.ReconstructRoleProfile(
		model.ID,
		model.RoleModelID,
		model.Name,
		model.Description,
		criteria,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *RoleModelMapperImpl) ProfileToModel(entity *rolemodel.RoleProfile) (*models.RoleProfileModel, error) {
	if entity == nil {
		return nil, nil
	}

	criteria, err := json.Marshal(entity.Criteria())
	if err != nil {
		return nil, fmt.Errorf("failed to encode criteria: %w", err)
	}

	return &models.RoleProfileModel{
		ID:          entity.ID(),
		RoleModelID: entity.RoleModelID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		Criteria:    datatypes.JSON(criteria),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *RoleModelMapperImpl) ProfilesToEntities(list []*models.RoleProfileModel) ([]*rolemodel.RoleProfile, error) {
	entities := make([]*rolemodel.RoleProfile, 0, len(list))
	for _, model := range list {
		entity, err := m.ProfileToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *RoleModelMapperImpl) LinkToEntity(model *models.ProfileAccessModel) (*rolemodel.ProfileAccess, error) {
	if model == nil {
		return nil, nil
	}
	return rolemodel.ReconstructProfileAccess(
		model.ID,
		model.RoleProfileID,
		model.AccessID,
		model.CreatedAt,
	), nil
}

func (m *RoleModelMapperImpl) LinkToModel(entity *rolemodel.ProfileAccess) (*models.ProfileAccessModel, error) {
	if entity == nil {
		return nil, nil
	}
	return &models.ProfileAccessModel{
		ID:            entity.ID(),
		RoleProfileID: entity.RoleProfileID(),
		AccessID:      entity.AccessID(),
		CreatedAt:     entity.CreatedAt(),
	}, nil
}

func (m *RoleModelMapperImpl) LinksToEntities(list []*models.ProfileAccessModel) ([]*rolemodel.ProfileAccess, error) {
	entities := make([]*rolemodel.ProfileAccess, 0, len(list))
	for _, model := range list {
		entity, err := m.LinkToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
