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
	"rolehub/internal/shared/logger"
)

// RoleProfileRepositoryImpl implements the rolemodel.ProfileRepository interface.
type RoleProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.RoleModelMapper
	logger logger.Interface
}

// NewRoleProfileRepository creates a new role profile repository instance.
func NewRoleProfileRepository(db *gorm.DB, logger logger.Interface) rolemodel.ProfileRepository {
	return &RoleProfileRepositoryImpl{
		db:     db,
		mapper: mappers.NewRoleModelMapper(),
		logger: logger,
	}
}

// Create persists a new role profile and backfills its ID.
func (r *RoleProfileRepositoryImpl) Create(ctx context.Context, p *rolemodel.RoleProfile) error {
	model, err := r.mapper.ProfileToModel(p)
	if err != nil {
		return fmt.Errorf("failed to map role profile entity: %w", err)
	}

	tx := db.TxFromContext(ctx, r.db)

	var modelCount int64
	if err := tx.Model(&models.RoleModelModel{}).Where("id = ?", model.RoleModelID).Count(&modelCount).Error; err != nil {
		return fmt.Errorf("failed to check role model: %w", err)
	}
	if modelCount == 0 {
		return rolemodel.ErrRoleModelNotFound
	}

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create role profile", "name", model.Name, "error", err)
		return fmt.Errorf("failed to create role profile: %w", err)
	}

	p.SetID(model.ID)
	return nil
}

// GetByID retrieves a role profile by its ID.
func (r *RoleProfileRepositoryImpl) GetByID(ctx context.Context, id uint) (*rolemodel.RoleProfile, error) {
	var model models.RoleProfileModel

	tx := db.TxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rolemodel.ErrProfileNotFound
		}
		r.logger.Errorw("failed to get role profile", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get role profile: %w", err)
	}

	return r.mapper.ProfileToEntity(&model)
}

// ListByRoleModel retrieves all profiles of a role model, ordered by name.
func (r *RoleProfileRepositoryImpl) ListByRoleModel(ctx context.Context, roleModelID uint) ([]*rolemodel.RoleProfile, error) {
	var list []*models.RoleProfileModel

	tx := db.TxFromContext(ctx, r.db)
	if err := tx.Where("role_model_id = ?", roleModelID).Order("name ASC").Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list role profiles", "role_model_id", roleModelID, "error", err)
		return nil, fmt.Errorf("failed to list role profiles: %w", err)
	}

	return r.mapper.ProfilesToEntities(list)
}

// Update persists changes to an existing role profile.
func (r *RoleProfileRepositoryImpl) Update(ctx context.Context, p *rolemodel.RoleProfile) error {
	model, err := r.mapper.ProfileToModel(p)
	if err != nil {
		return fmt.Errorf("failed to map role profile entity: %w", err)
	}

	tx := db.TxFromContext(ctx, r.db)
	result := tx.Model(&models.RoleProfileModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"name":        model.Name,
		"description": model.Description,
		"criteria":    model.Criteria,
	})
	if result.Error != nil {
		r.logger.Errorw("failed to update role profile", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update role profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return rolemodel.ErrProfileNotFound
	}

	return nil
}

// Delete soft deletes a role profile and removes its access links.
func (r *RoleProfileRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.TxFromContext(ctx, r.db)

	result := tx.Delete(&models.RoleProfileModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete role profile", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete role profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return rolemodel.ErrProfileNotFound
	}

	if err := tx.Where("role_profile_id = ?", id).Delete(&models.ProfileAccessModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete profile access links: %w", err)
	}

	return nil
}
