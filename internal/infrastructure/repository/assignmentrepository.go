package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rolehub/internal/domain/access"
	"rolehub/internal/infrastructure/persistence/mappers"
	"rolehub/internal/infrastructure/persistence/models"
	"rolehub/internal/shared/db"
	"rolehub/internal/shared/logger"
)

// AssignmentRepositoryImpl implements the access.AssignmentRepository
// interface. Bulk inserts lean on the (employee_id, access_id) unique
// index: conflicting rows are silently skipped, so the created count is
// whatever the database actually accepted. This keeps concurrent
// reconciliation runs from ever producing duplicate grants.
type AssignmentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.EmployeeAccessMapper
	logger logger.Interface
}

// NewAssignmentRepository creates a new assignment repository instance.
func NewAssignmentRepository(db *gorm.DB, logger logger.Interface) access.AssignmentRepository {
	return &AssignmentRepositoryImpl{
		db:     db,
		mapper: mappers.NewEmployeeAccessMapper(),
		logger: logger,
	}
}

// BulkAssign inserts the (employee, access) cross product, skipping pairs
// that already hold a grant. Returns the number of rows created.
func (r *AssignmentRepositoryImpl) BulkAssign(ctx context.Context, employeeIDs, accessIDs []uint, assignmentType access.AssignmentType, roleProfileID *uint) (int64, error) {
	if len(employeeIDs) == 0 || len(accessIDs) == 0 {
		return 0, nil
	}

	now := time.Now()
	rows := make([]models.EmployeeAccessModel, 0, len(employeeIDs)*len(accessIDs))
	for _, employeeID := range employeeIDs {
		for _, accessID := range accessIDs {
			rows = append(rows, models.EmployeeAccessModel{
				EmployeeID:     employeeID,
				AccessID:       accessID,
				AssignmentType: string(assignmentType),
				RoleProfileID:  roleProfileID,
				AssignedAt:     now,
			})
		}
	}

	tx := db.TxFromContext(ctx, r.db)
	result := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "access_id"}},
		DoNothing: true,
	}).CreateInBatches(rows, 500)
	if result.Error != nil {
		r.logger.Errorw("failed to bulk assign accesses",
			"employees", len(employeeIDs),
			"accesses", len(accessIDs),
			"error", result.Error,
		)
		return 0, fmt.Errorf("failed to bulk assign accesses: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// BulkRevoke deletes existing grants over the (employee, access) cross
// product. Returns the number of rows removed.
func (r *AssignmentRepositoryImpl) BulkRevoke(ctx context.Context, employeeIDs, accessIDs []uint) (int64, error) {
	if len(employeeIDs) == 0 || len(accessIDs) == 0 {
		return 0, nil
	}

	tx := db.TxFromContext(ctx, r.db)
	result := tx.Where("employee_id IN ? AND access_id IN ?", employeeIDs, accessIDs).
		Delete(&models.EmployeeAccessModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to bulk revoke accesses",
			"employees", len(employeeIDs),
			"accesses", len(accessIDs),
			"error", result.Error,
		)
		return 0, fmt.Errorf("failed to bulk revoke accesses: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// GetByPair retrieves the grant for one (employee, access) pair.
func (r *AssignmentRepositoryImpl) GetByPair(ctx context.Context, employeeID, accessID uint) (*access.EmployeeAccess, error) {
	var model models.EmployeeAccessModel

	tx := db.TxFromContext(ctx, r.db)
	if err := tx.Where("employee_id = ? AND access_id = ?", employeeID, accessID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, access.ErrAssignmentNotFound
		}
		r.logger.Errorw("failed to get assignment", "employee_id", employeeID, "access_id", accessID, "error", err)
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// List retrieves grants matching the filter with a total count.
func (r *AssignmentRepositoryImpl) List(ctx context.Context, filter access.AssignmentFilter) ([]*access.EmployeeAccess, int64, error) {
	var (
		list  []*models.EmployeeAccessModel
		total int64
	)

	tx := db.TxFromContext(ctx, r.db)
	query := tx.Model(&models.EmployeeAccessModel{})
	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.AccessID != nil {
		query = query.Where("access_id = ?", *filter.AccessID)
	}
	if filter.SystemID != nil {
		query = query.Joins("JOIN accesses ON accesses.id = employee_accesses.access_id").
			Where("accesses.system_id = ? AND accesses.deleted_at IS NULL", *filter.SystemID)
	}
	if filter.AssignmentType != nil {
		query = query.Where("assignment_type = ?", string(*filter.AssignmentType))
	}
	if filter.RoleProfileID != nil {
		query = query.Where("role_profile_id = ?", *filter.RoleProfileID)
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count assignments", "error", err)
		return nil, 0, fmt.Errorf("failed to count assignments: %w", err)
	}

	if err := query.Order("assigned_at DESC").Scopes(db.Paginate(filter.Page, filter.Size)).Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list assignments", "error", err)
		return nil, 0, fmt.Errorf("failed to list assignments: %w", err)
	}

	entities, err := r.mapper.ToEntities(list)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// Delete removes a single grant by its row ID.
func (r *AssignmentRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.TxFromContext(ctx, r.db)
	result := tx.Delete(&models.EmployeeAccessModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete assignment", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete assignment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return access.ErrAssignmentNotFound
	}

	return nil
}

// CountByAccess counts how many employees currently hold an access.
func (r *AssignmentRepositoryImpl) CountByAccess(ctx context.Context, accessID uint) (int64, error) {
	var count int64

	tx := db.TxFromContext(ctx, r.db)
	if err := tx.Model(&models.EmployeeAccessModel{}).Where("access_id = ?", accessID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count access holders: %w", err)
	}

	return count, nil
}

// UsageSummary aggregates grant usage over the whole access catalog.
func (r *AssignmentRepositoryImpl) UsageSummary(ctx context.Context, overuseThreshold int) (*access.UsageSummary, error) {
	var summary access.UsageSummary

	tx := db.TxFromContext(ctx, r.db)
	if err := tx.Model(&models.AccessModel{}).Count(&summary.TotalAccesses).Error; err != nil {
		return nil, fmt.Errorf("failed to count accesses: %w", err)
	}
	if err := tx.Model(&models.EmployeeAccessModel{}).Count(&summary.TotalAssignments).Error; err != nil {
		return nil, fmt.Errorf("failed to count assignments: %w", err)
	}

	granted := tx.Model(&models.EmployeeAccessModel{}).Distinct("access_id")
	if err := tx.Model(&models.AccessModel{}).
		Where("id NOT IN (?)", granted).
		Count(&summary.UnusedAccesses).Error; err != nil {
		return nil, fmt.Errorf("failed to count unused accesses: %w", err)
	}

	overused := tx.Model(&models.EmployeeAccessModel{}).
		Select("access_id").
		Group("access_id").
		Having("COUNT(*) > ?", overuseThreshold)
	if err := tx.Table("(?) AS overused", overused).Count(&summary.OverusedAccesses).Error; err != nil {
		return nil, fmt.Errorf("failed to count overused accesses: %w", err)
	}

	var err error
	summary.ByAssignmentType, err = r.groupCounts(tx.Model(&models.EmployeeAccessModel{}).
		Select("assignment_type AS label, COUNT(*) AS count").
		Group("assignment_type"))
	if err != nil {
		return nil, fmt.Errorf("failed to group assignments by type: %w", err)
	}

	summary.ByCriticality, err = r.groupCounts(tx.Model(&models.EmployeeAccessModel{}).
		Select("accesses.criticality AS label, COUNT(*) AS count").
		Joins("JOIN accesses ON accesses.id = employee_accesses.access_id AND accesses.deleted_at IS NULL").
		Group("accesses.criticality"))
	if err != nil {
		return nil, fmt.Errorf("failed to group assignments by criticality: %w", err)
	}

	summary.BySystemType, err = r.groupCounts(tx.Model(&models.EmployeeAccessModel{}).
		Select("application_systems.system_type AS label, COUNT(*) AS count").
		Joins("JOIN accesses ON accesses.id = employee_accesses.access_id AND accesses.deleted_at IS NULL").
		Joins("JOIN application_systems ON application_systems.id = accesses.system_id AND application_systems.deleted_at IS NULL").
		Group("application_systems.system_type"))
	if err != nil {
		return nil, fmt.Errorf("failed to group assignments by system type: %w", err)
	}

	return &summary, nil
}

// groupCounts scans a label/count aggregation into a map. Empty labels
// are reported as "unspecified" so optional attributes stay visible.
func (r *AssignmentRepositoryImpl) groupCounts(query *gorm.DB) (map[string]int64, error) {
	var rows []struct {
		Label string
		Count int64
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		label := row.Label
		if label == "" {
			label = "unspecified"
		}
		counts[label] += row.Count
	}
	return counts, nil
}
