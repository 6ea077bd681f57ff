package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"rolehub/internal/domain/employee"
	"rolehub/internal/infrastructure/persistence/mappers"
	"rolehub/internal/infrastructure/persistence/models"
	"rolehub/internal/shared/db"
	sharederrors "rolehub/internal/shared/errors"
	"rolehub/internal/shared/logger"
)

// EmployeeRepositoryImpl implements the employee.Repository interface.
type EmployeeRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.EmployeeMapper
	logger logger.Interface
}

// NewEmployeeRepository creates a new employee repository instance.
func NewEmployeeRepository(db *gorm.DB, logger logger.Interface) employee.Repository {
	return &EmployeeRepositoryImpl{
		db:     db,
		mapper: mappers.NewEmployeeMapper(),
		logger: logger,
	}
}

// Create persists a new employee and backfills the generated ID.
func (r *EmployeeRepositoryImpl) Create(ctx context.Context, emp *employee.Employee) error {
	model, err := r.mapper.ToModel(emp)
	if err != nil {
		return fmt.Errorf("failed to map employee entity: %w", err)
	}

	tx := db.TxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if sharederrors.IsDuplicateError(err) {
			return employee.ErrDuplicateEmployeeNumber
		}
		r.logger.Errorw("failed to create employee", "full_name", model.FullName, "error", err)
		return fmt.Errorf("failed to create employee: %w", err)
	}

	emp.SetID(model.ID)
	return nil
}

// GetByID retrieves an employee by ID.
func (r *EmployeeRepositoryImpl) GetByID(ctx context.Context, id uint) (*employee.Employee, error) {
	var model models.EmployeeModel

	tx := db.TxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrEmployeeNotFound
		}
		r.logger.Errorw("failed to get employee", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByEmployeeNumber retrieves an employee by the HR-assigned number.
func (r *EmployeeRepositoryImpl) GetByEmployeeNumber(ctx context.Context, number string) (*employee.Employee, error) {
	var model models.EmployeeModel

	tx := db.TxFromContext(ctx, r.db)
	if err := tx.Where("employee_number = ?", number).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrEmployeeNotFound
		}
		r.logger.Errorw("failed to get employee by number", "employee_number", number, "error", err)
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// List retrieves employees matching the filter, ordered by full name, with
// a total count.
func (r *EmployeeRepositoryImpl) List(ctx context.Context, filter employee.Filter) ([]*employee.Employee, int64, error) {
	var (
		list  []*models.EmployeeModel
		total int64
	)

	tx := db.TxFromContext(ctx, r.db)
	query := r.applyFilter(tx.Model(&models.EmployeeModel{}), filter)

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count employees", "error", err)
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	if err := query.Order("full_name ASC").Scopes(db.Paginate(filter.Page, filter.Size)).Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list employees", "error", err)
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}

	entities, err := r.mapper.ToEntities(list)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// ExistingIDs reports which of the given ids are present.
func (r *EmployeeRepositoryImpl) ExistingIDs(ctx context.Context, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return []uint{}, nil
	}

	existing := []uint{}
	tx := db.TxFromContext(ctx, r.db)
	if err := tx.Model(&models.EmployeeModel{}).Where("id IN ?", ids).Pluck("id", &existing).Error; err != nil {
		r.logger.Errorw("failed to check employee ids", "error", err)
		return nil, fmt.Errorf("failed to check employee ids: %w", err)
	}

	return existing, nil
}

// CountByStatus returns the number of employees per employment status.
func (r *EmployeeRepositoryImpl) CountByStatus(ctx context.Context) (map[employee.Status]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}

	tx := db.TxFromContext(ctx, r.db)
	if err := tx.Model(&models.EmployeeModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		r.logger.Errorw("failed to count employees by status", "error", err)
		return nil, fmt.Errorf("failed to count employees by status: %w", err)
	}

	counts := make(map[employee.Status]int64, len(rows))
	for _, row := range rows {
		counts[employee.Status(row.Status)] = row.Count
	}
	return counts, nil
}

// Update persists changes to an existing employee.
func (r *EmployeeRepositoryImpl) Update(ctx context.Context, emp *employee.Employee) error {
	model, err := r.mapper.ToModel(emp)
	if err != nil {
		return fmt.Errorf("failed to map employee entity: %w", err)
	}

	tx := db.TxFromContext(ctx, r.db)
	result := tx.Model(&models.EmployeeModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"employee_number":       model.EmployeeNumber,
		"full_name":             model.FullName,
		"org_unit_id":           model.OrgUnitID,
		"position_id":           model.PositionID,
		"profile_id":            model.ProfileID,
		"employee_type_id":      model.EmployeeTypeID,
		"agile_team_id":         model.AgileTeamID,
		"team_role_id":          model.TeamRoleID,
		"tech_stack":            model.TechStack,
		"skills":                model.Skills,
		"experience_years":      model.ExperienceYears,
		"company_tenure_months": model.CompanyTenureMonths,
		"email":                 model.Email,
		"phone":                 model.Phone,
		"status":                model.Status,
		"hire_date":             model.HireDate,
		"termination_date":      model.TerminationDate,
	})
	if result.Error != nil {
		if sharederrors.IsDuplicateError(result.Error) {
			return employee.ErrDuplicateEmployeeNumber
		}
		r.logger.Errorw("failed to update employee", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update employee: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete soft deletes an employee and removes its access grants.
func (r *EmployeeRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.TxFromContext(ctx, r.db)
	result := tx.Delete(&models.EmployeeModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete employee", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete employee: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return employee.ErrEmployeeNotFound
	}

	if err := tx.Where("employee_id = ?", id).Delete(&models.EmployeeAccessModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete employee grants: %w", err)
	}

	return nil
}

func (r *EmployeeRepositoryImpl) applyFilter(query *gorm.DB, filter employee.Filter) *gorm.DB {
	if filter.OrgUnitID != nil {
		query = query.Where("org_unit_id = ?", *filter.OrgUnitID)
	}
	if filter.PositionID != nil {
		query = query.Where("position_id = ?", *filter.PositionID)
	}
	if filter.ProfileID != nil {
		query = query.Where("profile_id = ?", *filter.ProfileID)
	}
	if filter.EmployeeTypeID != nil {
		query = query.Where("employee_type_id = ?", *filter.EmployeeTypeID)
	}
	if filter.AgileTeamID != nil {
		query = query.Where("agile_team_id = ?", *filter.AgileTeamID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Search != "" {
		query = query.Where("full_name LIKE ? OR employee_number LIKE ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	return query
}
