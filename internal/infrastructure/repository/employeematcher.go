package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rolehub/internal/domain/rolemodel"
	"rolehub/internal/shared/constants"
	"rolehub/internal/shared/db"
	"rolehub/internal/shared/logger"
)

// EmployeeMatcherImpl implements the rolemodel.EmployeeMatcher interface.
// It compiles a criteria document into one SQL predicate over the employee
// table, joining the reference catalogs the document names. Count and list
// share the same predicate builder, so they always agree.
type EmployeeMatcherImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewEmployeeMatcher creates a new employee matcher instance.
func NewEmployeeMatcher(db *gorm.DB, logger logger.Interface) rolemodel.EmployeeMatcher {
	return &EmployeeMatcherImpl{
		db:     db,
		logger: logger,
	}
}

// CountMatching counts the employees the criteria document selects. An
// empty document counts zero employees.
func (m *EmployeeMatcherImpl) CountMatching(ctx context.Context, criteria rolemodel.Criteria) (int64, error) {
	if criteria.IsEmpty() {
		return 0, nil
	}

	var count int64
	query := m.buildQuery(db.TxFromContext(ctx, m.db), criteria)
	if err := query.Count(&count).Error; err != nil {
		m.logger.Errorw("failed to count matching employees", "error", err)
		return 0, fmt.Errorf("failed to count matching employees: %w", err)
	}

	return count, nil
}

// ListMatching returns one page of matching employee summaries, ordered by
// full name for deterministic pagination. Out-of-range pages return an
// empty slice.
func (m *EmployeeMatcherImpl) ListMatching(ctx context.Context, criteria rolemodel.Criteria, page, size int) ([]rolemodel.MatchedEmployee, error) {
	if criteria.IsEmpty() {
		return []rolemodel.MatchedEmployee{}, nil
	}

	rows := []rolemodel.MatchedEmployee{}
	query := m.buildQuery(db.TxFromContext(ctx, m.db), criteria).
		Select(
			"employees.id AS id",
			"COALESCE(employees.employee_number, '') AS employee_number",
			"employees.full_name AS full_name",
			"positions.title AS position_title",
			"organizational_units.name AS org_unit_name",
		).
		Joins("JOIN " + constants.TablePositions + " ON positions.id = employees.position_id").
		Joins("JOIN " + constants.TableOrgUnits + " ON organizational_units.id = employees.org_unit_id").
		Order("employees.full_name ASC").
		Scopes(db.Paginate(page, size))

	if err := query.Scan(&rows).Error; err != nil {
		m.logger.Errorw("failed to list matching employees", "error", err)
		return nil, fmt.Errorf("failed to list matching employees: %w", err)
	}

	return rows, nil
}

// MatchingIDs resolves the full matching employee id set.
func (m *EmployeeMatcherImpl) MatchingIDs(ctx context.Context, criteria rolemodel.Criteria) ([]uint, error) {
	if criteria.IsEmpty() {
		return []uint{}, nil
	}

	ids := []uint{}
	query := m.buildQuery(db.TxFromContext(ctx, m.db), criteria)
	if err := query.Pluck("employees.id", &ids).Error; err != nil {
		m.logger.Errorw("failed to resolve matching employee ids", "error", err)
		return nil, fmt.Errorf("failed to resolve matching employee ids: %w", err)
	}

	return ids, nil
}

// TotalEmployees counts every employee in the store.
func (m *EmployeeMatcherImpl) TotalEmployees(ctx context.Context) (int64, error) {
	var count int64

	tx := db.TxFromContext(ctx, m.db)
	if err := tx.Table(constants.TableEmployees).Where("deleted_at IS NULL").Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}

// buildQuery translates the document into a filtered employee query.
// Each present key joins its catalog and adds one IN clause; the clauses
// combine with AND. all_employees short-circuits to an unfiltered query.
// A clause naming values that exist in no catalog row simply matches
// nothing, it is not an error.
func (m *EmployeeMatcherImpl) buildQuery(tx *gorm.DB, criteria rolemodel.Criteria) *gorm.DB {
	query := tx.Table(constants.TableEmployees).Where("employees.deleted_at IS NULL")

	if criteria.AllEmployees {
		return query
	}

	if len(criteria.EmployeeProfiles) > 0 {
		query = query.
			Joins("JOIN "+constants.TableEmployeeProfiles+" AS ep ON ep.id = employees.profile_id").
			Where("ep.name IN ?", criteria.EmployeeProfiles)
	}
	if len(criteria.Positions) > 0 {
		query = query.
			Joins("JOIN "+constants.TablePositions+" AS pos ON pos.id = employees.position_id").
			Where("pos.title IN ?", criteria.Positions)
	}
	if len(criteria.OrgUnitsType) > 0 {
		query = query.
			Joins("JOIN "+constants.TableOrgUnits+" AS ou ON ou.id = employees.org_unit_id").
			Where("ou.unit_type IN ?", criteria.OrgUnitsType)
	}
	if len(criteria.EmployeeTypes) > 0 {
		query = query.
			Joins("JOIN "+constants.TableEmployeeTypes+" AS et ON et.id = employees.employee_type_id").
			Where("et.name IN ?", criteria.EmployeeTypes)
	}

	return query
}
