package rolemodel

import "context"

// Filter narrows role model listings.
type Filter struct {
	IsActive *bool
	Search   string
	Page     int
	Size     int
}

// RoleModelRepository defines data access for role models.
type RoleModelRepository interface {
	Create(ctx context.Context, m *RoleModel) error
	GetByID(ctx context.Context, id uint) (*RoleModel, error)
	List(ctx context.Context, filter Filter) ([]*RoleModel, int64, error)
	Update(ctx context.Context, m *RoleModel) error
	Delete(ctx context.Context, id uint) error
}

// ProfileRepository defines data access for role profiles.
type ProfileRepository interface {
	Create(ctx context.Context, p *RoleProfile) error
	GetByID(ctx context.Context, id uint) (*RoleProfile, error)
	ListByRoleModel(ctx context.Context, roleModelID uint) ([]*RoleProfile, error)
	Update(ctx context.Context, p *RoleProfile) error
	Delete(ctx context.Context, id uint) error
}

// ProfileAccessRepository manages the access links a profile declares.
type ProfileAccessRepository interface {
	Create(ctx context.Context, link *ProfileAccess) error
	ListByProfile(ctx context.Context, roleProfileID uint) ([]*ProfileAccess, error)
	CountByProfile(ctx context.Context, roleProfileID uint) (int64, error)
	Delete(ctx context.Context, roleProfileID, accessID uint) error
}

// MatchedEmployee is the summary shape the matcher returns for listings.
type MatchedEmployee struct {
	ID             uint
	EmployeeNumber string
	FullName       string
	PositionTitle  string
	OrgUnitName    string
}

// EmployeeMatcher evaluates a criteria document against the employee
// store. CountMatching and ListMatching agree on the predicate: the count
// equals the total of all listed pages for any page size.
type EmployeeMatcher interface {
	CountMatching(ctx context.Context, criteria Criteria) (int64, error)
	ListMatching(ctx context.Context, criteria Criteria, page, size int) ([]MatchedEmployee, error)
	// MatchingIDs resolves the full matching employee id set, used by
	// reconciliation to apply a profile's accesses.
	MatchingIDs(ctx context.Context, criteria Criteria) ([]uint, error)
	// TotalEmployees counts every employee regardless of criteria.
	TotalEmployees(ctx context.Context) (int64, error)
}
