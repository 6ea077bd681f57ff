package services

import (
	"context"
	"errors"
	"fmt"

	"rolehub/internal/application/access/dto"
	"rolehub/internal/domain/access"
	"rolehub/internal/domain/employee"
	"rolehub/internal/domain/rolemodel"
	"rolehub/internal/shared/db"
	apperrors "rolehub/internal/shared/errors"
	"rolehub/internal/shared/logger"
)

// ReconcilerService applies bulk and criteria-driven grant and revoke
// operations while preserving the one-grant-per-(employee, access) rule.
//
// Assign is additive and idempotent: pairs that already hold a grant are
// skipped, never overwritten, so re-running a profile reconciliation after
// a criteria change cannot duplicate rows or clobber manually requested
// access. Revocation is a separate, explicit operation.
type ReconcilerService struct {
	assignments access.AssignmentRepository
	employees   employee.Repository
	accesses    access.AccessRepository
	profiles    rolemodel.ProfileRepository
	links       rolemodel.ProfileAccessRepository
	matcher     rolemodel.EmployeeMatcher
	tx          *db.TransactionManager
	logger      logger.Interface
}

// NewReconcilerService creates a new assignment reconciler.
func NewReconcilerService(
	assignments access.AssignmentRepository,
	employees employee.Repository,
	accesses access.AccessRepository,
	profiles rolemodel.ProfileRepository,
	links rolemodel.ProfileAccessRepository,
	matcher rolemodel.EmployeeMatcher,
	tx *db.TransactionManager,
	log logger.Interface,
) *ReconcilerService {
	return &ReconcilerService{
		assignments: assignments,
		employees:   employees,
		accesses:    accesses,
		profiles:    profiles,
		links:       links,
		matcher:     matcher,
		tx:          tx,
		logger:      log,
	}
}

// Assign grants every (employee, access) pair in the cross product,
// skipping pairs that already hold a grant. All referenced employees and
// accesses must exist; a single missing id aborts the whole call before
// any write.
func (s *ReconcilerService) Assign(ctx context.Context, req dto.BulkAssignRequest) (*dto.BulkAssignResult, error) {
	assignmentType := access.AssignmentType(req.AssignmentType)
	if assignmentType != access.AssignmentAutoRole && req.RoleProfileID != nil {
		return nil, apperrors.NewValidationError("role_profile_id is only valid with assignment_type auto_role")
	}

	// Repeated ids in the request must not inflate the pair count the
	// skipped number is derived from.
	employeeIDs := uniqueIDs(req.EmployeeIDs)
	accessIDs := uniqueIDs(req.AccessIDs)

	var result *dto.BulkAssignResult
	err := s.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := s.validateInputs(txCtx, employeeIDs, accessIDs, req.RoleProfileID); err != nil {
			return err
		}

		created, err := s.assignments.BulkAssign(txCtx, employeeIDs, accessIDs, assignmentType, req.RoleProfileID)
		if err != nil {
			return err
		}

		total := int64(len(employeeIDs)) * int64(len(accessIDs))
		result = &dto.BulkAssignResult{
			Created: created,
			Skipped: total - created,
		}
		return nil
	})
	if err != nil {
		return nil, s.wrapError(err, "failed to assign accesses")
	}

	s.logger.Infow("bulk assign completed",
		"employees", len(employeeIDs),
		"accesses", len(accessIDs),
		"created", result.Created,
		"skipped", result.Skipped,
	)
	return result, nil
}

// AssignSingle grants one access to one employee. Unlike bulk assignment,
// a pair that already holds a grant is a conflict rather than a silent skip.
func (s *ReconcilerService) AssignSingle(ctx context.Context, req dto.AssignRequest) (*dto.EmployeeAccessDTO, error) {
	assignmentType := access.AssignmentType(req.AssignmentType)
	if assignmentType != access.AssignmentAutoRole && req.RoleProfileID != nil {
		return nil, apperrors.NewValidationError("role_profile_id is only valid with assignment_type auto_role")
	}

	var grant *access.EmployeeAccess
	err := s.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := s.validateInputs(txCtx, []uint{req.EmployeeID}, []uint{req.AccessID}, req.RoleProfileID); err != nil {
			return err
		}

		created, err := s.assignments.BulkAssign(txCtx, []uint{req.EmployeeID}, []uint{req.AccessID}, assignmentType, req.RoleProfileID)
		if err != nil {
			return err
		}
		if created == 0 {
			return apperrors.NewConflictError("employee already holds this access")
		}

		list, _, err := s.assignments.List(txCtx, access.AssignmentFilter{
			EmployeeID: &req.EmployeeID,
			AccessID:   &req.AccessID,
			Page:       1,
			Size:       1,
		})
		if err != nil {
			return err
		}
		if len(list) == 0 {
			return fmt.Errorf("grant for employee %d and access %d not found after create", req.EmployeeID, req.AccessID)
		}
		grant = list[0]
		return nil
	})
	if err != nil {
		return nil, s.wrapError(err, "failed to assign access")
	}

	s.logger.Infow("access assigned",
		"employee_id", req.EmployeeID,
		"access_id", req.AccessID,
		"assignment_type", req.AssignmentType,
	)
	return dto.ToEmployeeAccessDTO(grant), nil
}

// AssignFromProfile resolves a profile's matching employees and declared
// accesses, then grants the cross product as auto_role with the profile
// recorded as provenance. A profile whose criteria match nobody, or that
// declares no accesses, succeeds with zero created and zero skipped.
func (s *ReconcilerService) AssignFromProfile(ctx context.Context, roleProfileID uint) (*dto.BulkAssignResult, error) {
	var result *dto.BulkAssignResult
	err := s.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		profile, err := s.profiles.GetByID(txCtx, roleProfileID)
		if err != nil {
			return err
		}

		employeeIDs, err := s.matcher.MatchingIDs(txCtx, profile.Criteria())
		if err != nil {
			return err
		}

		links, err := s.links.ListByProfile(txCtx, roleProfileID)
		if err != nil {
			return err
		}
		accessIDs := make([]uint, 0, len(links))
		for _, link := range links {
			accessIDs = append(accessIDs, link.AccessID())
		}

		if len(employeeIDs) == 0 || len(accessIDs) == 0 {
			result = &dto.BulkAssignResult{}
			return nil
		}

		profileID := roleProfileID
		created, err := s.assignments.BulkAssign(txCtx, employeeIDs, accessIDs, access.AssignmentAutoRole, &profileID)
		if err != nil {
			return err
		}

		total := int64(len(employeeIDs)) * int64(len(accessIDs))
		result = &dto.BulkAssignResult{
			Created: created,
			Skipped: total - created,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, rolemodel.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("role profile not found")
		}
		return nil, s.wrapError(err, "failed to assign accesses from profile")
	}

	s.logger.Infow("profile reconciliation completed",
		"role_profile_id", roleProfileID,
		"created", result.Created,
		"skipped", result.Skipped,
	)
	return result, nil
}

// RevokeBulk deletes every grant in the (employee, access) cross product,
// regardless of how it was assigned. The revoked count comes from the
// delete itself, so it stays accurate under concurrent writers.
func (s *ReconcilerService) RevokeBulk(ctx context.Context, req dto.BulkRevokeRequest) (*dto.BulkRevokeResult, error) {
	revoked, err := s.assignments.BulkRevoke(ctx, req.EmployeeIDs, req.AccessIDs)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to revoke accesses")
	}

	reason := ""
	if req.Reason != nil {
		reason = *req.Reason
	}
	s.logger.Infow("bulk revoke completed",
		"employees", len(req.EmployeeIDs),
		"accesses", len(req.AccessIDs),
		"revoked", revoked,
		"reason", reason,
	)
	return &dto.BulkRevokeResult{Revoked: revoked}, nil
}

// RevokeSingle deletes one grant by its row id. Returns false when the id
// did not exist; a repeated revoke is not an error.
func (s *ReconcilerService) RevokeSingle(ctx context.Context, assignmentID uint) (bool, error) {
	if err := s.assignments.Delete(ctx, assignmentID); err != nil {
		if errors.Is(err, access.ErrAssignmentNotFound) {
			return false, nil
		}
		return false, apperrors.NewInternalError("failed to revoke access")
	}
	return true, nil
}

// ListAssignments retrieves grants matching the filter with their total count.
func (s *ReconcilerService) ListAssignments(ctx context.Context, filter access.AssignmentFilter) ([]*dto.EmployeeAccessDTO, int64, error) {
	list, total, err := s.assignments.List(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.NewInternalError("failed to list assignments")
	}
	return dto.ToEmployeeAccessDTOs(list), total, nil
}

// validateInputs checks every referenced entity before any write.
func (s *ReconcilerService) validateInputs(ctx context.Context, employeeIDs, accessIDs []uint, roleProfileID *uint) error {
	existing, err := s.employees.ExistingIDs(ctx, employeeIDs)
	if err != nil {
		return err
	}
	if missing := missingIDs(employeeIDs, existing); len(missing) > 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("employee %d not found", missing[0]))
	}

	accesses, err := s.accesses.GetByIDs(ctx, accessIDs)
	if err != nil {
		return err
	}
	found := make([]uint, 0, len(accesses))
	for _, a := range accesses {
		found = append(found, a.ID())
	}
	if missing := missingIDs(accessIDs, found); len(missing) > 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("access %d not found", missing[0]))
	}

	if roleProfileID != nil {
		if _, err := s.profiles.GetByID(ctx, *roleProfileID); err != nil {
			if errors.Is(err, rolemodel.ErrProfileNotFound) {
				return apperrors.NewNotFoundError("role profile not found")
			}
			return err
		}
	}

	return nil
}

func (s *ReconcilerService) wrapError(err error, message string) error {
	if apperrors.IsAppError(err) {
		return err
	}
	s.logger.Errorw(message, "error", err)
	return apperrors.NewInternalError(message)
}

// uniqueIDs drops repeated ids, keeping first-seen order.
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

func missingIDs(requested, existing []uint) []uint {
	present := make(map[uint]struct{}, len(existing))
	for _, id := range existing {
		present[id] = struct{}{}
	}
	missing := []uint{}
	for _, id := range requested {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
