package organization

import "context"

// OrgUnitFilter narrows org unit listings.
type OrgUnitFilter struct {
	UnitType *UnitType
	ParentID *uint
	IsActive *bool
	Search   string
	Page     int
	Size     int
}

// PositionFilter narrows position listings.
type PositionFilter struct {
	IsActive *bool
	Search   string
	Page     int
	Size     int
}

type OrgUnitRepository interface {
	Create(ctx context.Context, unit *OrgUnit) error
	GetByID(ctx context.Context, id uint) (*OrgUnit, error)
	List(ctx context.Context, filter OrgUnitFilter) ([]*OrgUnit, int64, error)
	Update(ctx context.Context, unit *OrgUnit) error
	// Delete removes a unit; implementations return ErrOrgUnitHasChilds or
	// ErrOrgUnitHasMembers when the unit is still referenced.
	Delete(ctx context.Context, id uint) error
	CountChildren(ctx context.Context, id uint) (int64, error)
}

type PositionRepository interface {
	Create(ctx context.Context, position *Position) error
	GetByID(ctx context.Context, id uint) (*Position, error)
	List(ctx context.Context, filter PositionFilter) ([]*Position, int64, error)
	Update(ctx context.Context, position *Position) error
}

// RefKind selects which flat catalog a NamedRef operation targets.
type RefKind string

const (
	RefEmployeeProfile RefKind = "employee_profile"
	RefEmployeeType    RefKind = "employee_type"
	RefTeamRole        RefKind = "team_role"
)

// ReferenceRepository stores the flat name catalogs.
type ReferenceRepository interface {
	Create(ctx context.Context, kind RefKind, ref *NamedRef) error
	GetByID(ctx context.Context, kind RefKind, id uint) (*NamedRef, error)
	ListAll(ctx context.Context, kind RefKind) ([]*NamedRef, error)
}

type AgileRepository interface {
	CreateTribe(ctx context.Context, tribe *Tribe) error
	ListTribes(ctx context.Context, page, size int) ([]*Tribe, int64, error)
	CreateProduct(ctx context.Context, product *Product) error
	ListProducts(ctx context.Context, tribeID *uint) ([]*Product, error)
	CreateAgileTeam(ctx context.Context, team *AgileTeam) error
	ListAgileTeams(ctx context.Context, productID *uint) ([]*AgileTeam, error)
	GetAgileTeamByID(ctx context.Context, id uint) (*AgileTeam, error)
}
