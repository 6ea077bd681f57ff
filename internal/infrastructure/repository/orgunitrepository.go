package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"rolehub/internal/domain/organization"
	"rolehub/internal/infrastructure/persistence/mappers"
	"rolehub/internal/infrastructure/persistence/models"
	"rolehub/internal/shared/db"
	sharederrors "rolehub/internal/shared/errors"
	"rolehub/internal/shared/logger"
)

// OrgUnitRepositoryImpl implements the organization.OrgUnitRepository interface.
type OrgUnitRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.OrgUnitMapper
	logger logger.Interface
}

// NewOrgUnitRepository creates a new org unit repository instance.
func NewOrgUnitRepository(db *gorm.DB, logger logger.Interface) organization.OrgUnitRepository {
	return &OrgUnitRepositoryImpl{
		db:     db,
		mapper: mappers.NewOrgUnitMapper(),
		logger: logger,
	}
}

// Create persists a new org unit and backfills its ID.
func (r *OrgUnitRepositoryImpl) Create(ctx context.Context, unit *organization.OrgUnit) error {
	model, err := r.mapper.ToModel(unit)
	if err != nil {
		return fmt.Errorf("failed to map org unit entity: %w", err)
	}

	tx := db.TxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if sharederrors.IsDuplicateError(err) {
			return organization.ErrDuplicateName
		}
		r.logger.Errorw("failed to create org unit", "name", model.Name, "error", err)
		return fmt.Errorf("failed to create org unit: %w", err)
	}

	unit.SetID(model.ID)
	return nil
}

// GetByID retrieves an org unit by its ID.
func (r *OrgUnitRepositoryImpl) GetByID(ctx context.Context, id uint) (*organization.OrgUnit, error) {
	var model models.OrgUnitModel

	tx := db.TxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, organization.ErrOrgUnitNotFound
		}
		r.logger.Errorw("failed to get org unit", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get org unit: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// List retrieves org units matching the filter with a total count.
func (r *OrgUnitRepositoryImpl) List(ctx context.Context, filter organization.OrgUnitFilter) ([]*organization.OrgUnit, int64, error) {
	var (
		list  []*models.OrgUnitModel
		total int64
	)

	tx := db.TxFromContext(ctx, r.db)
	query := r.applyFilter(tx.Model(&models.OrgUnitModel{}), filter)

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count org units", "error", err)
		return nil, 0, fmt.Errorf("failed to count org units: %w", err)
	}

	if err := query.Order("name ASC").Scopes(db.Paginate(filter.Page, filter.Size)).Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list org units", "error", err)
		return nil, 0, fmt.Errorf("failed to list org units: %w", err)
	}

	entities, err := r.mapper.ToEntities(list)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// CountChildren counts the direct children of a unit.
func (r *OrgUnitRepositoryImpl) CountChildren(ctx context.Context, id uint) (int64, error) {
	var count int64

	tx := db.TxFromContext(ctx, r.db)
	if err := tx.Model(&models.OrgUnitModel{}).Where("parent_id = ?", id).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count org unit children: %w", err)
	}

	return count, nil
}

// Update persists changes to an existing org unit.
func (r *OrgUnitRepositoryImpl) Update(ctx context.Context, unit *organization.OrgUnit) error {
	model, err := r.mapper.ToModel(unit)
	if err != nil {
		return fmt.Errorf("failed to map org unit entity: %w", err)
	}

	tx := db.TxFromContext(ctx, r.db)
	result := tx.Model(&models.OrgUnitModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"name":      model.Name,
		"code":      model.Code,
		"unit_type": model.UnitType,
		"parent_id": model.ParentID,
		"level":     model.Level,
		"path":      model.Path,
		"is_active": model.IsActive,
	})
	if result.Error != nil {
		if sharederrors.IsDuplicateError(result.Error) {
			return organization.ErrDuplicateName
		}
		r.logger.Errorw("failed to update org unit", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update org unit: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return organization.ErrOrgUnitNotFound
	}

	return nil
}

// Delete soft deletes an org unit. Units with children or members are
// kept and the corresponding sentinel error is returned.
func (r *OrgUnitRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.TxFromContext(ctx, r.db)

	var childCount int64
	if err := tx.Model(&models.OrgUnitModel{}).Where("parent_id = ?", id).Count(&childCount).Error; err != nil {
		return fmt.Errorf("failed to count org unit children: %w", err)
	}
	if childCount > 0 {
		return organization.ErrOrgUnitHasChilds
	}

	var memberCount int64
	if err := tx.Model(&models.EmployeeModel{}).Where("org_unit_id = ?", id).Count(&memberCount).Error; err != nil {
		return fmt.Errorf("failed to count org unit members: %w", err)
	}
	if memberCount > 0 {
		return organization.ErrOrgUnitHasMembers
	}

	result := tx.Delete(&models.OrgUnitModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete org unit", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete org unit: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return organization.ErrOrgUnitNotFound
	}

	return nil
}

func (r *OrgUnitRepositoryImpl) applyFilter(query *gorm.DB, filter organization.OrgUnitFilter) *gorm.DB {
	if filter.UnitType != nil {
		query = query.Where("unit_type = ?", string(*filter.UnitType))
	}
	if filter.ParentID != nil {
		query = query.Where("parent_id = ?", *filter.ParentID)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	return query
}
