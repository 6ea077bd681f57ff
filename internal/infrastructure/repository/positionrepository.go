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

// PositionRepositoryImpl implements the organization.PositionRepository interface.
type PositionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PositionMapper
	logger logger.Interface
}

// NewPositionRepository creates a new position repository instance.
func NewPositionRepository(db *gorm.DB, logger logger.Interface) organization.PositionRepository {
	return &PositionRepositoryImpl{
		db:     db,
		mapper: mappers.NewPositionMapper(),
		logger: logger,
	}
}

// Create persists a new position and backfills its ID.
func (r *PositionRepositoryImpl) Create(ctx context.Context, position *organization.Position) error {
	model, err := r.mapper.ToModel(position)
	if err != nil {
		return fmt.Errorf("failed to map position entity: %w", err)
	}

	tx := db.TxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if sharederrors.IsDuplicateError(err) {
			return organization.ErrDuplicateName
		}
		r.logger.Errorw("failed to create position", "title", model.Title, "error", err)
		return fmt.Errorf("failed to create position: %w", err)
	}

	position.SetID(model.ID)
	return nil
}

// GetByID retrieves a position by its ID.
func (r *PositionRepositoryImpl) GetByID(ctx context.Context, id uint) (*organization.Position, error) {
	var model models.PositionModel

	tx := db.TxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, organization.ErrPositionNotFound
		}
		r.logger.Errorw("failed to get position", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get position: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// List retrieves positions matching the filter with a total count.
func (r *PositionRepositoryImpl) List(ctx context.Context, filter organization.PositionFilter) ([]*organization.Position, int64, error) {
	var (
		list  []*models.PositionModel
		total int64
	)

	tx := db.TxFromContext(ctx, r.db)
	query := tx.Model(&models.PositionModel{})
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Search != "" {
		query = query.Where("title LIKE ?", "%"+filter.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count positions", "error", err)
		return nil, 0, fmt.Errorf("failed to count positions: %w", err)
	}

	if err := query.Order("title ASC").Scopes(db.Paginate(filter.Page, filter.Size)).Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list positions", "error", err)
		return nil, 0, fmt.Errorf("failed to list positions: %w", err)
	}

	entities, err := r.mapper.ToEntities(list)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// Update persists changes to an existing position.
func (r *PositionRepositoryImpl) Update(ctx context.Context, position *organization.Position) error {
	model, err := r.mapper.ToModel(position)
	if err != nil {
		return fmt.Errorf("failed to map position entity: %w", err)
	}

	tx := db.TxFromContext(ctx, r.db)
	result := tx.Model(&models.PositionModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"title":           model.Title,
		"code":            model.Code,
		"hierarchy_level": model.HierarchyLevel,
		"description":     model.Description,
		"is_active":       model.IsActive,
	})
	if result.Error != nil {
		if sharederrors.IsDuplicateError(result.Error) {
			return organization.ErrDuplicateName
		}
		r.logger.Errorw("failed to update position", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update position: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return organization.ErrPositionNotFound
	}

	return nil
}
