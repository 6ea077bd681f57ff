package access

import "context"

// SystemFilter narrows application system listings.
type SystemFilter struct {
	IsActive    *bool
	Criticality string
	SystemType  string
	Search      string
	Page        int
	Size        int
}

// AccessFilter narrows access listings.
type AccessFilter struct {
	SystemID    *uint
	IsActive    *bool
	Criticality string
	Search      string
	Page        int
	Size        int
}

// AssignmentFilter narrows employee access listings.
type AssignmentFilter struct {
	EmployeeID     *uint
	AccessID       *uint
	SystemID       *uint
	AssignmentType *AssignmentType
	RoleProfileID  *uint
	Page           int
	Size           int
}

// SystemRepository defines data access for application systems.
type SystemRepository interface {
	Create(ctx context.Context, sys *ApplicationSystem) error
	GetByID(ctx context.Context, id uint) (*ApplicationSystem, error)
	List(ctx context.Context, filter SystemFilter) ([]*ApplicationSystem, int64, error)
	Update(ctx context.Context, sys *ApplicationSystem) error
	Delete(ctx context.Context, id uint) error
	CountAccesses(ctx context.Context, systemID uint) (int64, error)
}

// AccessRepository defines data access for accesses.
type AccessRepository interface {
	Create(ctx context.Context, a *Access) error
	GetByID(ctx context.Context, id uint) (*Access, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Access, error)
	List(ctx context.Context, filter AccessFilter) ([]*Access, int64, error)
	Update(ctx context.Context, a *Access) error
	Delete(ctx context.Context, id uint) error
}

// UsageSummary aggregates grant usage across the whole access catalog.
// Unused accesses hold no grants at all; overused ones exceed the given
// assignment threshold. The breakdown maps count grants by how they were
// assigned, by the criticality of the granted access and by the type of
// the owning system.
type UsageSummary struct {
	TotalAccesses    int64
	TotalAssignments int64
	UnusedAccesses   int64
	OverusedAccesses int64
	ByAssignmentType map[string]int64
	ByCriticality    map[string]int64
	BySystemType     map[string]int64
}

// AssignmentRepository defines data access for employee access grants.
//
// BulkAssign inserts the (employee, access) cross product and skips pairs
// that already hold a grant; it reports how many rows were actually
// created. BulkRevoke deletes existing grants over the cross product and
// reports how many rows were removed.
type AssignmentRepository interface {
	BulkAssign(ctx context.Context, employeeIDs, accessIDs []uint, assignmentType AssignmentType, roleProfileID *uint) (created int64, err error)
	BulkRevoke(ctx context.Context, employeeIDs, accessIDs []uint) (revoked int64, err error)
	GetByPair(ctx context.Context, employeeID, accessID uint) (*EmployeeAccess, error)
	List(ctx context.Context, filter AssignmentFilter) ([]*EmployeeAccess, int64, error)
	Delete(ctx context.Context, id uint) error
	CountByAccess(ctx context.Context, accessID uint) (int64, error)
	UsageSummary(ctx context.Context, overuseThreshold int) (*UsageSummary, error)
}
