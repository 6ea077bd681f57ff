package mappers

import (
	"rolehub/internal/domain/organization"
	"rolehub/internal/infrastructure/persistence/models"
)

// ReferenceMapper converts the flat reference catalogs (employee profiles,
// employee types, team roles) between domain entities and their models.
// The three catalogs share the NamedRef shape, so the mapper is one type.
type ReferenceMapper struct{}

// NewReferenceMapper creates a new reference catalog mapper.
func NewReferenceMapper() *ReferenceMapper {
	return &ReferenceMapper{}
}

func (m *ReferenceMapper) ProfileToEntity(model *models.EmployeeProfileModel) *organization.NamedRef {
	if model == nil {
		return nil
	}
	return organization.ReconstructNamedRef(model.ID, model.Name, model.CreatedAt, model.UpdatedAt)
}

func (m *ReferenceMapper) ProfileToModel(entity *organization.NamedRef) *models.EmployeeProfileModel {
	if entity == nil {
		return nil
	}
	return &models.EmployeeProfileModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *ReferenceMapper) TypeToEntity(model *models.EmployeeTypeModel) *organization.NamedRef {
	if model == nil {
		return nil
	}
	return organization.ReconstructNamedRef(model.ID, model.Name, model.CreatedAt, model.UpdatedAt)
}

func (m *ReferenceMapper) TypeToModel(entity *organization.NamedRef) *models.EmployeeTypeModel {
	if entity == nil {
		return nil
	}
	return &models.EmployeeTypeModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *ReferenceMapper) TeamRoleToEntity(model *models.TeamRoleModel) *organization.NamedRef {
	if model == nil {
		return nil
	}
	return organization.ReconstructNamedRef(model.ID, model.Name, model.CreatedAt, model.UpdatedAt)
}

func (m *ReferenceMapper) TeamRoleToModel(entity *organization.NamedRef) *models.TeamRoleModel {
	if entity == nil {
		return nil
	}
	return &models.TeamRoleModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}
