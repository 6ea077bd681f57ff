package dto

import (
	"rolehub/internal/domain/access"
)

// EmployeeAccessDTO represents the data transfer object for granted accesses.
type EmployeeAccessDTO struct {
	ID             uint    `json:"id"`
	EmployeeID     uint    `json:"employee_id"`
	AccessID       uint    `json:"access_id"`
	AssignmentType string  `json:"assignment_type"` // auto_role, manual_request
	RoleProfileID  *uint   `json:"role_profile_id,omitempty"`
	AssignedAt     string  `json:"assigned_at"`
	LastUsed       *string `json:"last_used,omitempty"`
}

// ToEmployeeAccessDTO converts a domain grant to DTO.
func ToEmployeeAccessDTO(ea *access.EmployeeAccess) *EmployeeAccessDTO {
	if ea == nil {
		return nil
	}
	d := &EmployeeAccessDTO{
		ID:             ea.ID(),
		EmployeeID:     ea.EmployeeID(),
		AccessID:       ea.AccessID(),
		AssignmentType: string(ea.AssignmentType()),
		RoleProfileID:  ea.RoleProfileID(),
		AssignedAt:     ea.AssignedAt().Format(timeLayout),
	}
	if lastUsed := ea.LastUsed(); lastUsed != nil {
		s := lastUsed.Format(timeLayout)
		d.LastUsed = &s
	}
	return d
}

// ToEmployeeAccessDTOs converts a list of domain grants to DTOs.
func ToEmployeeAccessDTOs(list []*access.EmployeeAccess) []*EmployeeAccessDTO {
	dtos := make([]*EmployeeAccessDTO, 0, len(list))
	for _, ea := range list {
		dtos = append(dtos, ToEmployeeAccessDTO(ea))
	}
	return dtos
}

// AssignRequest carries the payload for granting a single access.
type AssignRequest struct {
	EmployeeID     uint   `json:"employee_id" binding:"required"`
	AccessID       uint   `json:"access_id" binding:"required"`
	AssignmentType string `json:"assignment_type" binding:"required,oneof=auto_role manual_request"`
	RoleProfileID  *uint  `json:"role_profile_id"`
}

// BulkAssignRequest carries the payload for a bulk grant operation.
type BulkAssignRequest struct {
	EmployeeIDs    []uint `json:"employee_ids" binding:"required,min=1"`
	AccessIDs      []uint `json:"access_ids" binding:"required,min=1"`
	AssignmentType string `json:"assignment_type" binding:"required,oneof=auto_role manual_request"`
	RoleProfileID  *uint  `json:"role_profile_id"`
}

// BulkAssignResult reports the outcome of a bulk grant operation.
type BulkAssignResult struct {
	Created int64 `json:"created"`
	Skipped int64 `json:"skipped"`
}

// BulkRevokeRequest carries the payload for a bulk revocation. Reason is
// audit text and is not interpreted.
type BulkRevokeRequest struct {
	EmployeeIDs []uint  `json:"employee_ids" binding:"required,min=1"`
	AccessIDs   []uint  `json:"access_ids" binding:"required,min=1"`
	Reason      *string `json:"reason"`
}

// BulkRevokeResult reports the outcome of a bulk revocation.
type BulkRevokeResult struct {
	Revoked int64 `json:"revoked"`
}
