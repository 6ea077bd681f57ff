// Package services implements the employee application services.
package services

import (
	"context"
	"errors"
	"time"

	"rolehub/internal/application/employee/dto"
	"rolehub/internal/domain/employee"
	"rolehub/internal/domain/organization"
	apperrors "rolehub/internal/shared/errors"
	"rolehub/internal/shared/logger"
)

// EmployeeService manages employee records. Organizational references are
// checked on create and update so employees never point at missing
// catalog rows, which would silently shrink criteria match sets.
type EmployeeService struct {
	repo     employee.Repository
	orgRepo  organization.OrgUnitRepository
	posRepo  organization.PositionRepository
	refRepo  organization.ReferenceRepository
	teamRepo organization.AgileRepository
	logger   logger.Interface
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(
	repo employee.Repository,
	orgRepo organization.OrgUnitRepository,
	posRepo organization.PositionRepository,
	refRepo organization.ReferenceRepository,
	teamRepo organization.AgileRepository,
	log logger.Interface,
) *EmployeeService {
	return &EmployeeService{
		repo:     repo,
		orgRepo:  orgRepo,
		posRepo:  posRepo,
		refRepo:  refRepo,
		teamRepo: teamRepo,
		logger:   log,
	}
}

// Create creates a new employee.
func (s *EmployeeService) Create(ctx context.Context, req dto.CreateEmployeeRequest) (*dto.EmployeeDTO, error) {
	if err := s.checkReferences(ctx, req.OrgUnitID, req.PositionID, req.ProfileID, req.EmployeeTypeID, req.AgileTeamID, req.TeamRoleID); err != nil {
		return nil, err
	}

	emp, err := employee.NewEmployee(req.FullName, req.OrgUnitID, req.PositionID, req.ProfileID, req.EmployeeTypeID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if req.EmployeeNumber != "" {
		emp.SetEmployeeNumber(req.EmployeeNumber)
	}
	emp.AssignToTeam(req.AgileTeamID, req.TeamRoleID)
	emp.SetContacts(req.Email, req.Phone)
	emp.SetSkills(req.TechStack, req.Skills)
	emp.SetExperience(req.ExperienceYears, req.CompanyTenureMonths)

	if req.HireDate != nil {
		hireDate, err := parseDate(*req.HireDate)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid hire_date, expected YYYY-MM-DD")
		}
		emp.SetHireDate(&hireDate)
	}

	if err := s.repo.Create(ctx, emp); err != nil {
		if errors.Is(err, employee.ErrDuplicateEmployeeNumber) {
			return nil, apperrors.NewConflictError("employee number already exists")
		}
		s.logger.Errorw("failed to create employee", "full_name", req.FullName, "error", err)
		return nil, apperrors.NewInternalError("failed to create employee")
	}

	return dto.ToEmployeeDTO(emp), nil
}

// Get retrieves one employee.
func (s *EmployeeService) Get(ctx context.Context, id uint) (*dto.EmployeeDTO, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, apperrors.NewNotFoundError("employee not found")
		}
		return nil, apperrors.NewInternalError("failed to get employee")
	}
	return dto.ToEmployeeDTO(emp), nil
}

// List retrieves employees matching the filter with their total count.
func (s *EmployeeService) List(ctx context.Context, filter employee.Filter) ([]*dto.EmployeeDTO, int64, error) {
	emps, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.NewInternalError("failed to list employees")
	}
	return dto.ToEmployeeDTOs(emps), total, nil
}

// Update replaces the mutable attributes of an employee.
func (s *EmployeeService) Update(ctx context.Context, id uint, req dto.UpdateEmployeeRequest) (*dto.EmployeeDTO, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, apperrors.NewNotFoundError("employee not found")
		}
		return nil, apperrors.NewInternalError("failed to get employee")
	}

	if err := s.checkReferences(ctx, req.OrgUnitID, req.PositionID, req.ProfileID, req.EmployeeTypeID, req.AgileTeamID, req.TeamRoleID); err != nil {
		return nil, err
	}

	if err := emp.Rename(req.FullName); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := emp.Relocate(req.OrgUnitID, req.PositionID, req.ProfileID, req.EmployeeTypeID); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	emp.AssignToTeam(req.AgileTeamID, req.TeamRoleID)
	emp.SetContacts(req.Email, req.Phone)
	emp.SetSkills(req.TechStack, req.Skills)
	emp.SetExperience(req.ExperienceYears, req.CompanyTenureMonths)

	if err := s.repo.Update(ctx, emp); err != nil {
		if errors.Is(err, employee.ErrDuplicateEmployeeNumber) {
			return nil, apperrors.NewConflictError("employee number already exists")
		}
		s.logger.Errorw("failed to update employee", "id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to update employee")
	}

	return dto.ToEmployeeDTO(emp), nil
}

// ChangeStatus transitions the employment status.
func (s *EmployeeService) ChangeStatus(ctx context.Context, id uint, req dto.ChangeEmployeeStatusRequest) (*dto.EmployeeDTO, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, apperrors.NewNotFoundError("employee not found")
		}
		return nil, apperrors.NewInternalError("failed to get employee")
	}

	var terminationDate *time.Time
	if req.TerminationDate != nil {
		parsed, err := parseDate(*req.TerminationDate)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid termination_date, expected YYYY-MM-DD")
		}
		terminationDate = &parsed
	}

	if err := emp.ChangeStatus(employee.Status(req.Status), terminationDate); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, emp); err != nil {
		s.logger.Errorw("failed to change employee status", "id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to change employee status")
	}

	return dto.ToEmployeeDTO(emp), nil
}

// Delete removes an employee record.
func (s *EmployeeService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return apperrors.NewNotFoundError("employee not found")
		}
		s.logger.Errorw("failed to delete employee", "id", id, "error", err)
		return apperrors.NewInternalError("failed to delete employee")
	}
	return nil
}

// Stats reports the total headcount and its breakdown by employment status.
func (s *EmployeeService) Stats(ctx context.Context) (*dto.EmployeeStatsDTO, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		s.logger.Errorw("failed to compute employee stats", "error", err)
		return nil, apperrors.NewInternalError("failed to compute employee stats")
	}

	stats := &dto.EmployeeStatsDTO{ByStatus: make(map[string]int64, len(counts))}
	for status, count := range counts {
		stats.ByStatus[string(status)] = count
		stats.Total += count
	}
	return stats, nil
}

func (s *EmployeeService) checkReferences(ctx context.Context, orgUnitID, positionID, profileID, typeID uint, teamID, teamRoleID *uint) error {
	if _, err := s.orgRepo.GetByID(ctx, orgUnitID); err != nil {
		if errors.Is(err, organization.ErrOrgUnitNotFound) {
			return apperrors.NewNotFoundError("org unit not found")
		}
		return apperrors.NewInternalError("failed to resolve org unit")
	}
	if _, err := s.posRepo.GetByID(ctx, positionID); err != nil {
		if errors.Is(err, organization.ErrPositionNotFound) {
			return apperrors.NewNotFoundError("position not found")
		}
		return apperrors.NewInternalError("failed to resolve position")
	}
	if _, err := s.refRepo.GetByID(ctx, organization.RefEmployeeProfile, profileID); err != nil {
		if errors.Is(err, organization.ErrRefNotFound) {
			return apperrors.NewNotFoundError("employee profile not found")
		}
		return apperrors.NewInternalError("failed to resolve employee profile")
	}
	if _, err := s.refRepo.GetByID(ctx, organization.RefEmployeeType, typeID); err != nil {
		if errors.Is(err, organization.ErrRefNotFound) {
			return apperrors.NewNotFoundError("employee type not found")
		}
		return apperrors.NewInternalError("failed to resolve employee type")
	}
	if teamID != nil {
		if _, err := s.teamRepo.GetAgileTeamByID(ctx, *teamID); err != nil {
			if errors.Is(err, organization.ErrAgileTeamNotFound) {
				return apperrors.NewNotFoundError("agile team not found")
			}
			return apperrors.NewInternalError("failed to resolve agile team")
		}
	}
	if teamRoleID != nil {
		if _, err := s.refRepo.GetByID(ctx, organization.RefTeamRole, *teamRoleID); err != nil {
			if errors.Is(err, organization.ErrRefNotFound) {
				return apperrors.NewNotFoundError("team role not found")
			}
			return apperrors.NewInternalError("failed to resolve team role")
		}
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
