package dto

import (
	"rolehub/internal/domain/rolemodel"
)

// MatchedEmployeeDTO is one employee matched by profile criteria, with
// enough context to preview the match without extra lookups.
type MatchedEmployeeDTO struct {
	ID             uint   `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
	PositionTitle  string `json:"position_title"`
	OrgUnitName    string `json:"org_unit_name"`
}

// MatchCountDTO reports how many employees a profile's criteria match.
type MatchCountDTO struct {
	MatchedEmployeesCount int64 `json:"matched_employees_count"`
}

// ToMatchedEmployeeDTOs converts matcher projections to DTOs.
func ToMatchedEmployeeDTOs(list []rolemodel.MatchedEmployee) []*MatchedEmployeeDTO {
	dtos := make([]*MatchedEmployeeDTO, 0, len(list))
	for _, m := range list {
		dtos = append(dtos, &MatchedEmployeeDTO{
			ID:             m.ID,
			EmployeeNumber: m.EmployeeNumber,
			FullName:       m.FullName,
			PositionTitle:  m.PositionTitle,
			OrgUnitName:    m.OrgUnitName,
		})
	}
	return dtos
}
