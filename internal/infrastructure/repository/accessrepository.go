package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"rolehub/internal/domain/access"
	"rolehub/internal/infrastructure/persistence/mappers"
	"rolehub/internal/infrastructure/persistence/models"
	"rolehub/internal/shared/db"
	sharederrors "rolehub/internal/shared/errors"
	"rolehub/internal/shared/logger"
)

// AccessRepositoryImpl implements the access.AccessRepository interface.
type AccessRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AccessMapper
	logger logger.Interface
}

// NewAccessRepository creates a new access repository instance.
func NewAccessRepository(db *gorm.DB, logger logger.Interface) access.AccessRepository {
	return &AccessRepositoryImpl{
		db:     db,
		mapper: mappers.NewAccessMapper(),
		logger: logger,
	}
}

// Create persists a new access and backfills its ID.
func (r *AccessRepositoryImpl) Create(ctx context.Context, a *access.Access) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		return fmt.Errorf("failed to map access entity: %w", err)
	}

	tx := db.TxFromContext(ctx, r.db)

	var systemCount int64
	if err := tx.Model(&models.ApplicationSystemModel{}).Where("id = ?", model.SystemID).Count(&systemCount).Error; err != nil {
		return fmt.Errorf("failed to check application system: %w", err)
	}
	if systemCount == 0 {
		return access.ErrSystemNotFound
	}

	if err := tx.Create(model).Error; err != nil {
		if sharederrors.IsDuplicateError(err) {
			return access.ErrDuplicateName
		}
		r.logger.Errorw("failed to create access", "role_name", model.RoleName, "error", err)
		return fmt.Errorf("failed to create access: %w", err)
	}

	a.SetID(model.ID)
	return nil
}

// GetByID retrieves an access by its ID.
func (r *AccessRepositoryImpl) GetByID(ctx context.Context, id uint) (*access.Access, error) {
	var model models.AccessModel

	tx := db.TxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, access.ErrAccessNotFound
		}
		r.logger.Errorw("failed to get access", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get access: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByIDs retrieves the accesses whose IDs are in the given set. Missing
// IDs are simply absent from the result.
func (r *AccessRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) ([]*access.Access, error) {
	if len(ids) == 0 {
		return []*access.Access{}, nil
	}

	var list []*models.AccessModel
	tx := db.TxFromContext(ctx, r.db)
	if err := tx.Where("id IN ?", ids).Find(&list).Error; err != nil {
		r.logger.Errorw("failed to get accesses by ids", "error", err)
		return nil, fmt.Errorf("failed to get accesses: %w", err)
	}

	return r.mapper.ToEntities(list)
}

// List retrieves accesses matching the filter with a total count.
func (r *AccessRepositoryImpl) List(ctx context.Context, filter access.AccessFilter) ([]*access.Access, int64, error) {
	var (
		list  []*models.AccessModel
		total int64
	)

	tx := db.TxFromContext(ctx, r.db)
	query := tx.Model(&models.AccessModel{})
	if filter.SystemID != nil {
		query = query.Where("system_id = ?", *filter.SystemID)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Criticality != "" {
		query = query.Where("criticality = ?", filter.Criticality)
	}
	if filter.Search != "" {
		query = query.Where("role_name LIKE ?", "%"+filter.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count accesses", "error", err)
		return nil, 0, fmt.Errorf("failed to count accesses: %w", err)
	}

	if err := query.Order("role_name ASC").Scopes(db.Paginate(filter.Page, filter.Size)).Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list accesses", "error", err)
		return nil, 0, fmt.Errorf("failed to list accesses: %w", err)
	}

	entities, err := r.mapper.ToEntities(list)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// Update persists changes to an existing access.
func (r *AccessRepositoryImpl) Update(ctx context.Context, a *access.Access) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		return fmt.Errorf("failed to map access entity: %w", err)
	}

	tx := db.TxFromContext(ctx, r.db)
	result := tx.Model(&models.AccessModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"role_name":   model.RoleName,
		"criticality": model.Criticality,
		"description": model.Description,
		"is_active":   model.IsActive,
	})
	if result.Error != nil {
		if sharederrors.IsDuplicateError(result.Error) {
			return access.ErrDuplicateName
		}
		r.logger.Errorw("failed to update access", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update access: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return access.ErrAccessNotFound
	}

	return nil
}

// Delete soft deletes an access and removes its grants and profile links.
func (r *AccessRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.TxFromContext(ctx, r.db)

	result := tx.Delete(&models.AccessModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete access", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete access: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return access.ErrAccessNotFound
	}

	if err := tx.Where("access_id = ?", id).Delete(&models.EmployeeAccessModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete access grants: %w", err)
	}
	if err := tx.Where("access_id = ?", id).Delete(&models.ProfileAccessModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete profile access links: %w", err)
	}

	return nil
}
