package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rolehub/internal/domain/rolemodel"
	"rolehub/internal/infrastructure/persistence/mappers"
	"rolehub/internal/infrastructure/persistence/models"
	"rolehub/internal/shared/db"
	sharederrors "rolehub/internal/shared/errors"
	"rolehub/internal/shared/logger"
)

// ProfileAccessRepositoryImpl implements the rolemodel.ProfileAccessRepository
// interface. The (role_profile_id, access_id) unique index keeps the link
// a set.
type ProfileAccessRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.RoleModelMapper
	logger logger.Interface
}

// NewProfileAccessRepository creates a new profile access repository instance.
func NewProfileAccessRepository(db *gorm.DB, logger logger.Interface) rolemodel.ProfileAccessRepository {
	return &ProfileAccessRepositoryImpl{
		db:     db,
		mapper: mappers.NewRoleModelMapper(),
		logger: logger,
	}
}

// Create persists a new profile access link and backfills its ID.
func (r *ProfileAccessRepositoryImpl) Create(ctx context.Context, link *rolemodel.ProfileAccess) error {
	model, err := r.mapper.LinkToModel(link)
	if err != nil {
		return fmt.Errorf("failed to map profile access entity: %w", err)
	}

	tx := db.TxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if sharederrors.IsDuplicateError(err) {
			return rolemodel.ErrDuplicateLink
		}
		r.logger.Errorw("failed to create profile access link",
			"role_profile_id", model.RoleProfileID,
			"access_id", model.AccessID,
			"error", err,
		)
		return fmt.Errorf("failed to create profile access link: %w", err)
	}

	link.SetID(model.ID)
	return nil
}

// ListByProfile retrieves the access links a profile declares.
func (r *ProfileAccessRepositoryImpl) ListByProfile(ctx context.Context, roleProfileID uint) ([]*rolemodel.ProfileAccess, error) {
	var list []*models.ProfileAccessModel

	tx := db.TxFromContext(ctx, r.db)
	if err := tx.Where("role_profile_id = ?", roleProfileID).Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list profile access links", "role_profile_id", roleProfileID, "error", err)
		return nil, fmt.Errorf("failed to list profile access links: %w", err)
	}

	return r.mapper.LinksToEntities(list)
}

// CountByProfile counts the access links a profile declares.
func (r *ProfileAccessRepositoryImpl) CountByProfile(ctx context.Context, roleProfileID uint) (int64, error) {
	var count int64

	tx := db.TxFromContext(ctx, r.db)
	if err := tx.Model(&models.ProfileAccessModel{}).Where("role_profile_id = ?", roleProfileID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count profile access links: %w", err)
	}

	return count, nil
}

// Delete removes one link by its (profile, access) pair.
func (r *ProfileAccessRepositoryImpl) Delete(ctx context.Context, roleProfileID, accessID uint) error {
	tx := db.TxFromContext(ctx, r.db)
	result := tx.Where("role_profile_id = ? AND access_id = ?", roleProfileID, accessID).
		Delete(&models.ProfileAccessModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete profile access link",
			"role_profile_id", roleProfileID,
			"access_id", accessID,
			"error", result.Error,
		)
		return fmt.Errorf("failed to delete profile access link: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return rolemodel.ErrProfileAccessNotFound
	}

	return nil
}
