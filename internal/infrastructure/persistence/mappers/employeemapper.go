package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"rolehub/internal/domain/employee"
	"rolehub/internal/infrastructure/persistence/models"
)

// EmployeeMapper handles the conversion between domain entities and persistence models.
type EmployeeMapper interface {
	ToEntity(model *models.EmployeeModel) (*employee.Employee, error)
	ToModel(entity *employee.Employee) (*models.EmployeeModel, error)
	ToEntities(models []*models.EmployeeModel) ([]*employee.Employee, error)
}

// EmployeeMapperImpl is the concrete implementation of EmployeeMapper.
type EmployeeMapperImpl struct{}

// NewEmployeeMapper creates a new employee mapper.
func NewEmployeeMapper() EmployeeMapper {
	return &EmployeeMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *EmployeeMapperImpl) ToEntity(model *models.EmployeeModel) (*employee.Employee, error) {
	if model == nil {
		return nil, nil
	}

	techStack, err := decodeStringSlice(model.TechStack)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tech_stack: %w", err)
	}
	skills, err := decodeStringSlice(model.Skills)
	if err != nil {
		return nil, fmt.Errorf("failed to parse skills: %w", err)
	}

	number := ""
	if model.EmployeeNumber != nil {
		number = *model.EmployeeNumber
	}

	return employee.ReconstructEmployee(
		model.ID,
		number,
		model.FullName,
		model.OrgUnitID,
		model.PositionID,
		model.ProfileID,
		model.EmployeeTypeID,
		model.AgileTeamID,
		model.TeamRoleID,
		techStack,
		skills,
		model.ExperienceYears,
		model.CompanyTenureMonths,
		model.Email,
		model.Phone,
		employee.Status(model.Status),
		model.HireDate,
		model.TerminationDate,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

// ToModel converts a domain entity to a persistence model.
func (m *EmployeeMapperImpl) ToModel(entity *employee.Employee) (*models.EmployeeModel, error) {
	if entity == nil {
		return nil, nil
	}

	techStack, err := encodeStringSlice(entity.TechStack())
	if err != nil {
		return nil, fmt.Errorf("failed to encode tech_stack: %w", err)
	}
	skills, err := encodeStringSlice(entity.Skills())
	if err != nil {
		return nil, fmt.Errorf("failed to encode skills: %w", err)
	}

	// An absent number persists as NULL, not "", so the unique index
	// only constrains employees that actually have one.
	var number *string
	if n := entity.EmployeeNumber(); n != "" {
		number = &n
	}

	return &models.EmployeeModel{
		ID:                  entity.ID(),
		EmployeeNumber:      number,
		FullName:            entity.FullName(),
		OrgUnitID:           entity.OrgUnitID(),
		PositionID:          entity.PositionID(),
		ProfileID:           entity.ProfileID(),
		EmployeeTypeID:      entity.EmployeeTypeID(),
		AgileTeamID:         entity.AgileTeamID(),
		TeamRoleID:          entity.TeamRoleID(),
		TechStack:           techStack,
		Skills:              skills,
		ExperienceYears:     entity.ExperienceYears(),
		CompanyTenureMonths: entity.CompanyTenureMonths(),
		Email:               entity.Email(),
		Phone:               entity.Phone(),
		Status:              string(entity.Status()),
		HireDate:            entity.HireDate(),
		TerminationDate:     entity.TerminationDate(),
		CreatedAt:           entity.CreatedAt(),
		UpdatedAt:           entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities.
func (m *EmployeeMapperImpl) ToEntities(list []*models.EmployeeModel) ([]*employee.Employee, error) {
	entities := make([]*employee.Employee, 0, len(list))
	for _, model := range list {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func decodeStringSlice(data datatypes.JSON) ([]string, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func encodeStringSlice(values []string) (datatypes.JSON, error) {
	if len(values) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}
