package employee

import "context"

// Filter narrows employee listings. Nil fields are ignored.
type Filter struct {
	OrgUnitID      *uint
	PositionID     *uint
	ProfileID      *uint
	EmployeeTypeID *uint
	AgileTeamID    *uint
	Status         *Status
	Search         string
	Page           int
	Size           int
}

// Repository defines data access for employees.
type Repository interface {
	Create(ctx context.Context, emp *Employee) error
	GetByID(ctx context.Context, id uint) (*Employee, error)
	GetByEmployeeNumber(ctx context.Context, number string) (*Employee, error)
	List(ctx context.Context, filter Filter) ([]*Employee, int64, error)
	// ExistingIDs reports which of the given ids are present, used for
	// all-or-nothing validation of bulk operations.
	ExistingIDs(ctx context.Context, ids []uint) ([]uint, error)
	// CountByStatus groups the headcount by employment status.
	CountByStatus(ctx context.Context) (map[Status]int64, error)
	Update(ctx context.Context, emp *Employee) error
	Delete(ctx context.Context, id uint) error
}
