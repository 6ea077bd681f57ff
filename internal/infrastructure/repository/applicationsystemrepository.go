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

// ApplicationSystemRepositoryImpl implements the access.SystemRepository interface.
type ApplicationSystemRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ApplicationSystemMapper
	logger logger.Interface
}

// NewApplicationSystemRepository creates a new application system repository instance.
func NewApplicationSystemRepository(db *gorm.DB, logger logger.Interface) access.SystemRepository {
	return &ApplicationSystemRepositoryImpl{
		db:     db,
		mapper: mappers.NewApplicationSystemMapper(),
		logger: logger,
	}
}

// Create persists a new application system and backfills its ID.
func (r *ApplicationSystemRepositoryImpl) Create(ctx context.Context, sys *access.ApplicationSystem) error {
	model, err := r.mapper.ToModel(sys)
	if err != nil {
		return fmt.Errorf("failed to map application system entity: %w", err)
	}

	tx := db.TxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if sharederrors.IsDuplicateError(err) {
			return access.ErrDuplicateName
		}
		r.logger.Errorw("failed to create application system", "name", model.Name, "error", err)
		return fmt.Errorf("failed to create application system: %w", err)
	}

	sys.SetID(model.ID)
	return nil
}

// GetByID retrieves an application system by its ID.
func (r *ApplicationSystemRepositoryImpl) GetByID(ctx context.Context, id uint) (*access.ApplicationSystem, error) {
	var model models.ApplicationSystemModel

	tx := db.TxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, access.ErrSystemNotFound
		}
		r.logger.Errorw("failed to get application system", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get application system: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// List retrieves application systems matching the filter with a total count.
func (r *ApplicationSystemRepositoryImpl) List(ctx context.Context, filter access.SystemFilter) ([]*access.ApplicationSystem, int64, error) {
	var (
		list  []*models.ApplicationSystemModel
		total int64
	)

	tx := db.TxFromContext(ctx, r.db)
	query := tx.Model(&models.ApplicationSystemModel{})
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Criticality != "" {
		query = query.Where("criticality = ?", filter.Criticality)
	}
	if filter.SystemType != "" {
		query = query.Where("system_type = ?", filter.SystemType)
	}
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count application systems", "error", err)
		return nil, 0, fmt.Errorf("failed to count application systems: %w", err)
	}

	if err := query.Order("name ASC").Scopes(db.Paginate(filter.Page, filter.Size)).Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list application systems", "error", err)
		return nil, 0, fmt.Errorf("failed to list application systems: %w", err)
	}

	entities, err := r.mapper.ToEntities(list)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// Update persists changes to an existing application system.
func (r *ApplicationSystemRepositoryImpl) Update(ctx context.Context, sys *access.ApplicationSystem) error {
	model, err := r.mapper.ToModel(sys)
	if err != nil {
		return fmt.Errorf("failed to map application system entity: %w", err)
	}

	tx := db.TxFromContext(ctx, r.db)
	result := tx.Model(&models.ApplicationSystemModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"name":        model.Name,
		"code":        model.Code,
		"description": model.Description,
		"criticality": model.Criticality,
		"system_type": model.SystemType,
		"owner_id":    model.OwnerID,
		"is_active":   model.IsActive,
	})
	if result.Error != nil {
		if sharederrors.IsDuplicateError(result.Error) {
			return access.ErrDuplicateName
		}
		r.logger.Errorw("failed to update application system", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update application system: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return access.ErrSystemNotFound
	}

	return nil
}

// Delete soft deletes an application system. Systems that still expose
// accesses are kept.
func (r *ApplicationSystemRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.TxFromContext(ctx, r.db)

	var accessCount int64
	if err := tx.Model(&models.AccessModel{}).Where("system_id = ?", id).Count(&accessCount).Error; err != nil {
		return fmt.Errorf("failed to count system accesses: %w", err)
	}
	if accessCount > 0 {
		return access.ErrSystemHasAccesses
	}

	result := tx.Delete(&models.ApplicationSystemModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete application system", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete application system: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return access.ErrSystemNotFound
	}

	return nil
}

// CountAccesses counts the accesses a system exposes.
func (r *ApplicationSystemRepositoryImpl) CountAccesses(ctx context.Context, systemID uint) (int64, error) {
	var count int64

	tx := db.TxFromContext(ctx, r.db)
	if err := tx.Model(&models.AccessModel{}).Where("system_id = ?", systemID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count system accesses: %w", err)
	}

	return count, nil
}
