package mappers

import (
	"fmt"

	"rolehub/internal/domain/access"
	"rolehub/internal/infrastructure/persistence/models"
)

// EmployeeAccessMapper handles the conversion between domain entities and persistence models.
type EmployeeAccessMapper interface {
	ToEntity(model *models.EmployeeAccessModel) (*access.EmployeeAccess, error)
	ToModel(entity *access.EmployeeAccess) (*models.EmployeeAccessModel, error)
	ToEntities(models []*models.EmployeeAccessModel) ([]*access.EmployeeAccess, error)
}

// EmployeeAccessMapperImpl is the concrete implementation of EmployeeAccessMapper.
type EmployeeAccessMapperImpl struct{}

// NewEmployeeAccessMapper creates a new employee access mapper.
func NewEmployeeAccessMapper() EmployeeAccessMapper {
	return &EmployeeAccessMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *EmployeeAccessMapperImpl) ToEntity(model *models.EmployeeAccessModel) (*access.EmployeeAccess, error) {
	if model == nil {
		return nil, nil
	}

	assignmentType := access.AssignmentType(model.AssignmentType)
	if assignmentType != access.AssignmentAutoRole && assignmentType != access.AssignmentManualRequest {
		return nil, fmt.Errorf("invalid assignment type: %s", model.AssignmentType)
	}

	return access.ReconstructEmployeeAccess(
		model.ID,
		model.EmployeeID,
		model.AccessID,
		assignmentType,
		model.RoleProfileID,
		model.AssignedAt,
		model.LastUsed,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

// ToModel converts a domain entity to a persistence model.
func (m *EmployeeAccessMapperImpl) ToModel(entity *access.EmployeeAccess) (*models.EmployeeAccessModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.EmployeeAccessModel{
		ID:             entity.ID(),
		EmployeeID:     entity.EmployeeID(),
		AccessID:       entity.AccessID(),
		AssignmentType: string(entity.AssignmentType()),
		RoleProfileID:  entity.RoleProfileID(),
		AssignedAt:     entity.AssignedAt(),
		LastUsed:       entity.LastUsed(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities.
func (m *EmployeeAccessMapperImpl) ToEntities(list []*models.EmployeeAccessModel) ([]*access.EmployeeAccess, error) {
	entities := make([]*access.EmployeeAccess, 0, len(list))
	for _, model := range list {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
