// Package dto provides data transfer objects for the employee context.
package dto

import (
	"time"

	"rolehub/internal/domain/employee"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// EmployeeDTO represents the data transfer object for employees.
type EmployeeDTO struct {
	ID                  uint     `json:"id"`
	EmployeeNumber      string   `json:"employee_number,omitempty"`
	FullName            string   `json:"full_name"`
	OrgUnitID           uint     `json:"org_unit_id"`
	PositionID          uint     `json:"position_id"`
	ProfileID           uint     `json:"profile_id"`
	EmployeeTypeID      uint     `json:"employee_type_id"`
	AgileTeamID         *uint    `json:"agile_team_id,omitempty"`
	TeamRoleID          *uint    `json:"team_role_id,omitempty"`
	TechStack           []string `json:"tech_stack,omitempty"`
	Skills              []string `json:"skills,omitempty"`
	ExperienceYears     *int     `json:"experience_years,omitempty"`
	CompanyTenureMonths *int     `json:"company_tenure_months,omitempty"`
	Email               string   `json:"email,omitempty"`
	Phone               string   `json:"phone,omitempty"`
	Status              string   `json:"status"`
	HireDate            *string  `json:"hire_date,omitempty"`
	TerminationDate     *string  `json:"termination_date,omitempty"`
	CreatedAt           string   `json:"created_at"`
	UpdatedAt           string   `json:"updated_at"`
}

// ToEmployeeDTO converts a domain employee to DTO.
func ToEmployeeDTO(emp *employee.Employee) *EmployeeDTO {
	if emp == nil {
		return nil
	}
	return &EmployeeDTO{
		ID:                  emp.ID(),
		EmployeeNumber:      emp.EmployeeNumber(),
		FullName:            emp.FullName(),
		OrgUnitID:           emp.OrgUnitID(),
		PositionID:          emp.PositionID(),
		ProfileID:           emp.ProfileID(),
		EmployeeTypeID:      emp.EmployeeTypeID(),
		AgileTeamID:         emp.AgileTeamID(),
		TeamRoleID:          emp.TeamRoleID(),
		TechStack:           emp.TechStack(),
		Skills:              emp.Skills(),
		ExperienceYears:     emp.ExperienceYears(),
		CompanyTenureMonths: emp.CompanyTenureMonths(),
		Email:               emp.Email(),
		Phone:               emp.Phone(),
		Status:              string(emp.Status()),
		HireDate:            formatDate(emp.HireDate()),
		TerminationDate:     formatDate(emp.TerminationDate()),
		CreatedAt:           emp.CreatedAt().Format(timeLayout),
		UpdatedAt:           emp.UpdatedAt().Format(timeLayout),
	}
}

// ToEmployeeDTOs converts a list of domain employees to DTOs.
func ToEmployeeDTOs(emps []*employee.Employee) []*EmployeeDTO {
	dtos := make([]*EmployeeDTO, 0, len(emps))
	for _, emp := range emps {
		dtos = append(dtos, ToEmployeeDTO(emp))
	}
	return dtos
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

// CreateEmployeeRequest carries the payload for creating an employee.
type CreateEmployeeRequest struct {
	EmployeeNumber      string   `json:"employee_number" binding:"max=32"`
	FullName            string   `json:"full_name" binding:"required,max=255"`
	OrgUnitID           uint     `json:"org_unit_id" binding:"required"`
	PositionID          uint     `json:"position_id" binding:"required"`
	ProfileID           uint     `json:"profile_id" binding:"required"`
	EmployeeTypeID      uint     `json:"employee_type_id" binding:"required"`
	AgileTeamID         *uint    `json:"agile_team_id"`
	TeamRoleID          *uint    `json:"team_role_id"`
	TechStack           []string `json:"tech_stack"`
	Skills              []string `json:"skills"`
	ExperienceYears     *int     `json:"experience_years"`
	CompanyTenureMonths *int     `json:"company_tenure_months"`
	Email               string   `json:"email" binding:"omitempty,email"`
	Phone               string   `json:"phone" binding:"max=50"`
	HireDate            *string  `json:"hire_date"` // YYYY-MM-DD
}

// UpdateEmployeeRequest carries the payload for updating an employee.
type UpdateEmployeeRequest struct {
	FullName            string   `json:"full_name" binding:"required,max=255"`
	OrgUnitID           uint     `json:"org_unit_id" binding:"required"`
	PositionID          uint     `json:"position_id" binding:"required"`
	ProfileID           uint     `json:"profile_id" binding:"required"`
	EmployeeTypeID      uint     `json:"employee_type_id" binding:"required"`
	AgileTeamID         *uint    `json:"agile_team_id"`
	TeamRoleID          *uint    `json:"team_role_id"`
	TechStack           []string `json:"tech_stack"`
	Skills              []string `json:"skills"`
	ExperienceYears     *int     `json:"experience_years"`
	CompanyTenureMonths *int     `json:"company_tenure_months"`
	Email               string   `json:"email" binding:"omitempty,email"`
	Phone               string   `json:"phone" binding:"max=50"`
}

// ChangeEmployeeStatusRequest carries the payload for status transitions.
type ChangeEmployeeStatusRequest struct {
	Status          string  `json:"status" binding:"required,oneof=active inactive terminated"`
	TerminationDate *string `json:"termination_date"` // YYYY-MM-DD, terminated only
}
