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

// ReferenceRepositoryImpl implements the organization.ReferenceRepository
// interface over the three flat name catalogs. The catalogs share one
// domain shape, so kind selects the backing table.
type ReferenceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mappers.ReferenceMapper
	logger logger.Interface
}

// NewReferenceRepository creates a new reference catalog repository instance.
func NewReferenceRepository(db *gorm.DB, logger logger.Interface) organization.ReferenceRepository {
	return &ReferenceRepositoryImpl{
		db:     db,
		mapper: mappers.NewReferenceMapper(),
		logger: logger,
	}
}

// Create inserts a catalog entry and backfills its ID.
func (r *ReferenceRepositoryImpl) Create(ctx context.Context, kind organization.RefKind, ref *organization.NamedRef) error {
	tx := db.TxFromContext(ctx, r.db)

	var (
		id  uint
		err error
	)
	switch kind {
	case organization.RefEmployeeProfile:
		model := r.mapper.ProfileToModel(ref)
		err = tx.Create(model).Error
		id = model.ID
	case organization.RefEmployeeType:
		model := r.mapper.TypeToModel(ref)
		err = tx.Create(model).Error
		id = model.ID
	case organization.RefTeamRole:
		model := r.mapper.TeamRoleToModel(ref)
		err = tx.Create(model).Error
		id = model.ID
	default:
		return fmt.Errorf("unknown reference kind: %s", kind)
	}

	if err != nil {
		if sharederrors.IsDuplicateError(err) {
			return organization.ErrDuplicateName
		}
		r.logger.Errorw("failed to create reference entry", "kind", kind, "name", ref.Name(), "error", err)
		return fmt.Errorf("failed to create %s: %w", kind, err)
	}

	ref.SetID(id)
	return nil
}

// GetByID retrieves a catalog entry by its ID.
func (r *ReferenceRepositoryImpl) GetByID(ctx context.Context, kind organization.RefKind, id uint) (*organization.NamedRef, error) {
	tx := db.TxFromContext(ctx, r.db)

	var (
		entity *organization.NamedRef
		err    error
	)
	switch kind {
	case organization.RefEmployeeProfile:
		var model models.EmployeeProfileModel
		if err = tx.First(&model, id).Error; err == nil {
			entity = r.mapper.ProfileToEntity(&model)
		}
	case organization.RefEmployeeType:
		var model models.EmployeeTypeModel
		if err = tx.First(&model, id).Error; err == nil {
			entity = r.mapper.TypeToEntity(&model)
		}
	case organization.RefTeamRole:
		var model models.TeamRoleModel
		if err = tx.First(&model, id).Error; err == nil {
			entity = r.mapper.TeamRoleToEntity(&model)
		}
	default:
		return nil, fmt.Errorf("unknown reference kind: %s", kind)
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, organization.ErrRefNotFound
		}
		r.logger.Errorw("failed to get reference entry", "kind", kind, "id", id, "error", err)
		return nil, fmt.Errorf("failed to get %s: %w", kind, err)
	}

	return entity, nil
}

// ListAll retrieves the full catalog for a kind, ordered by name.
func (r *ReferenceRepositoryImpl) ListAll(ctx context.Context, kind organization.RefKind) ([]*organization.NamedRef, error) {
	tx := db.TxFromContext(ctx, r.db)

	entities := []*organization.NamedRef{}
	switch kind {
	case organization.RefEmployeeProfile:
		var list []*models.EmployeeProfileModel
		if err := tx.Order("name ASC").Find(&list).Error; err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", kind, err)
		}
		for _, model := range list {
			entities = append(entities, r.mapper.ProfileToEntity(model))
		}
	case organization.RefEmployeeType:
		var list []*models.EmployeeTypeModel
		if err := tx.Order("name ASC").Find(&list).Error; err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", kind, err)
		}
		for _, model := range list {
			entities = append(entities, r.mapper.TypeToEntity(model))
		}
	case organization.RefTeamRole:
		var list []*models.TeamRoleModel
		if err := tx.Order("name ASC").Find(&list).Error; err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", kind, err)
		}
		for _, model := range list {
			entities = append(entities, r.mapper.TeamRoleToEntity(model))
		}
	default:
		return nil, fmt.Errorf("unknown reference kind: %s", kind)
	}

	return entities, nil
}
