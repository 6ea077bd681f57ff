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

// AgileRepositoryImpl implements the organization.AgileRepository interface
// for the tribe, product and agile team hierarchy.
type AgileRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AgileMapper
	logger logger.Interface
}

// NewAgileRepository creates a new agile hierarchy repository instance.
func NewAgileRepository(db *gorm.DB, logger logger.Interface) organization.AgileRepository {
	return &AgileRepositoryImpl{
		db:     db,
		mapper: mappers.NewAgileMapper(),
		logger: logger,
	}
}

// CreateTribe persists a new tribe and backfills its ID.
func (r *AgileRepositoryImpl) CreateTribe(ctx context.Context, tribe *organization.Tribe) error {
	model, err := r.mapper.TribeToModel(tribe)
	if err != nil {
		return fmt.Errorf("failed to map tribe entity: %w", err)
	}

	tx := db.TxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if sharederrors.IsDuplicateError(err) {
			return organization.ErrDuplicateName
		}
		r.logger.Errorw("failed to create tribe", "name", model.Name, "error", err)
		return fmt.Errorf("failed to create tribe: %w", err)
	}

	tribe.SetID(model.ID)
	return nil
}

// ListTribes retrieves tribes with a total count.
func (r *AgileRepositoryImpl) ListTribes(ctx context.Context, page, size int) ([]*organization.Tribe, int64, error) {
	var (
		list  []*models.TribeModel
		total int64
	)

	tx := db.TxFromContext(ctx, r.db)
	if err := tx.Model(&models.TribeModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tribes: %w", err)
	}

	if err := tx.Order("name ASC").Scopes(db.Paginate(page, size)).Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list tribes", "error", err)
		return nil, 0, fmt.Errorf("failed to list tribes: %w", err)
	}

	entities, err := r.mapper.TribesToEntities(list)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// CreateProduct persists a new product and backfills its ID.
func (r *AgileRepositoryImpl) CreateProduct(ctx context.Context, product *organization.Product) error {
	model, err := r.mapper.ProductToModel(product)
	if err != nil {
		return fmt.Errorf("failed to map product entity: %w", err)
	}

	tx := db.TxFromContext(ctx, r.db)

	var tribeCount int64
	if err := tx.Model(&models.TribeModel{}).Where("id = ?", model.TribeID).Count(&tribeCount).Error; err != nil {
		return fmt.Errorf("failed to check tribe: %w", err)
	}
	if tribeCount == 0 {
		return organization.ErrTribeNotFound
	}

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create product", "name", model.Name, "error", err)
		return fmt.Errorf("failed to create product: %w", err)
	}

	product.SetID(model.ID)
	return nil
}

// ListProducts retrieves products, optionally narrowed to one tribe.
func (r *AgileRepositoryImpl) ListProducts(ctx context.Context, tribeID *uint) ([]*organization.Product, error) {
	var list []*models.ProductModel

	tx := db.TxFromContext(ctx, r.db)
	query := tx.Order("name ASC")
	if tribeID != nil {
		query = query.Where("tribe_id = ?", *tribeID)
	}
	if err := query.Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list products", "error", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return r.mapper.ProductsToEntities(list)
}

// CreateAgileTeam persists a new agile team and backfills its ID.
func (r *AgileRepositoryImpl) CreateAgileTeam(ctx context.Context, team *organization.AgileTeam) error {
	model, err := r.mapper.TeamToModel(team)
	if err != nil {
		return fmt.Errorf("failed to map agile team entity: %w", err)
	}

	tx := db.TxFromContext(ctx, r.db)

	var productCount int64
	if err := tx.Model(&models.ProductModel{}).Where("id = ?", model.ProductID).Count(&productCount).Error; err != nil {
		return fmt.Errorf("failed to check product: %w", err)
	}
	if productCount == 0 {
		return organization.ErrProductNotFound
	}

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create agile team", "name", model.Name, "error", err)
		return fmt.Errorf("failed to create agile team: %w", err)
	}

	team.SetID(model.ID)
	return nil
}

// ListAgileTeams retrieves agile teams, optionally narrowed to one product.
func (r *AgileRepositoryImpl) ListAgileTeams(ctx context.Context, productID *uint) ([]*organization.AgileTeam, error) {
	var list []*models.AgileTeamModel

	tx := db.TxFromContext(ctx, r.db)
	query := tx.Order("name ASC")
	if productID != nil {
		query = query.Where("product_id = ?", *productID)
	}
	if err := query.Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list agile teams", "error", err)
		return nil, fmt.Errorf("failed to list agile teams: %w", err)
	}

	return r.mapper.TeamsToEntities(list)
}

// GetAgileTeamByID retrieves an agile team by its ID.
func (r *AgileRepositoryImpl) GetAgileTeamByID(ctx context.Context, id uint) (*organization.AgileTeam, error) {
	var model models.AgileTeamModel

	tx := db.TxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, organization.ErrAgileTeamNotFound
		}
		r.logger.Errorw("failed to get agile team", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get agile team: %w", err)
	}

	return r.mapper.TeamToEntity(&model)
}
