package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"rolehub/internal/domain/rolemodel"
	"rolehub/internal/infrastructure/persistence/mappers"
	"rolehub/internal/infrastructure/persistence/models"
	"rolehub/internal/shared/db"
	sharederrors "rolehub/internal/shared/errors"
	"rolehub/internal/shared/logger"
)

// RoleModelRepositoryImpl implements the rolemodel.RoleModelRepository interface.
type RoleModelRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.RoleModelMapper
	logger logger.Interface
}

// NewRoleModelRepository creates a new role model repository instance.
func NewRoleModelRepository(db *gorm.DB, logger logger.Interface) rolemodel.RoleModelRepository {
	return &RoleModelRepositoryImpl{
		db:     db,
		mapper: mappers.NewRoleModelMapper(),
		logger: logger,
	}
}

// Create persists a new role model and backfills its ID.
func (r *RoleModelRepositoryImpl) Create(ctx context.Context, m *rolemodel.RoleModel) error {
	model, err := r.mapper.ToModel(m)
	if err != nil {
		return fmt.Errorf("failed to map role model entity: %w", err)
	}

	tx := db.TxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if sharederrors.IsDuplicateError(err) {
			return rolemodel.ErrDuplicateName
		}
		r.logger.Errorw("failed to create role model", "name", model.Name, "error", err)
		return fmt.Errorf("failed to create role model: %w", err)
	}

	m.SetID(model.ID)
	return nil
}

// GetByID retrieves a role model by its ID.
func (r *RoleModelRepositoryImpl) GetByID(ctx context.Context, id uint) (*rolemodel.RoleModel, error) {
	var model models.RoleModelModel

	tx := db.TxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rolemodel.ErrRoleModelNotFound
		}
		r.logger.Errorw("failed to get role model", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get role model: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// List retrieves role models matching the filter with a total count.
func (r *RoleModelRepositoryImpl) List(ctx context.Context, filter rolemodel.Filter) ([]*rolemodel.RoleModel, int64, error) {
	var (
		list  []*models.RoleModelModel
		total int64
	)

	tx := db.TxFromContext(ctx, r.db)
	query := tx.Model(&models.RoleModelModel{})
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count role models", "error", err)
		return nil, 0, fmt.Errorf("failed to count role models: %w", err)
	}

	if err := query.Order("name ASC").Scopes(db.Paginate(filter.Page, filter.Size)).Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list role models", "error", err)
		return nil, 0, fmt.Errorf("failed to list role models: %w", err)
	}

	entities, err := r.mapper.ToEntities(list)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// Update persists changes to an existing role model.
func (r *RoleModelRepositoryImpl) Update(ctx context.Context, m *rolemodel.RoleModel) error {
	model, err := r.mapper.ToModel(m)
	if err != nil {
		return fmt.Errorf("failed to map role model entity: %w", err)
	}

	tx := db.TxFromContext(ctx, r.db)
	result := tx.Model(&models.RoleModelModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"name":        model.Name,
		"description": model.Description,
		"version":     model.Version,
		"is_active":   model.IsActive,
	})
	if result.Error != nil {
		if sharederrors.IsDuplicateError(result.Error) {
			return rolemodel.ErrDuplicateName
		}
		r.logger.Errorw("failed to update role model", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update role model: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return rolemodel.ErrRoleModelNotFound
	}

	return nil
}

// Delete soft deletes a role model together with its profiles and their
// access links.
func (r *RoleModelRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.TxFromContext(ctx, r.db)

	var profileIDs []uint
	if err := tx.Model(&models.RoleProfileModel{}).Where("role_model_id = ?", id).Pluck("id", &profileIDs).Error; err != nil {
		return fmt.Errorf("failed to list role model profiles: %w", err)
	}

	result := tx.Delete(&models.RoleModelModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete role model", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete role model: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return rolemodel.ErrRoleModelNotFound
	}

	if len(profileIDs) > 0 {
		if err := tx.Where("role_model_id = ?", id).Delete(&models.RoleProfileModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete role model profiles: %w", err)
		}
		if err := tx.Where("role_profile_id IN ?", profileIDs).Delete(&models.ProfileAccessModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete profile access links: %w", err)
		}
	}

	return nil
}
