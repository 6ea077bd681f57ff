package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 50
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"

	// Content Types
	ContentTypeJSON = "application/json"

	// Context keys
	ContextKeyRequestID = "request_id"

	// Employee status
	EmployeeStatusActive     = "active"
	EmployeeStatusInactive   = "inactive"
	EmployeeStatusTerminated = "terminated"

	// Assignment provenance
	AssignmentTypeAutoRole      = "auto_role"
	AssignmentTypeManualRequest = "manual_request"

	// Database table names
	TableOrgUnits         = "organizational_units"
	TablePositions        = "positions"
	TableEmployeeProfiles = "employee_profiles"
	TableEmployeeTypes    = "employee_types"
	TableTeamRoles        = "team_roles"
	TableTribes           = "tribes"
	TableProducts         = "products"
	TableAgileTeams       = "agile_teams"
	TableEmployees        = "employees"
	TableSystems          = "application_systems"
	TableAccesses         = "accesses"
	TableEmployeeAccesses = "employee_accesses"
	TableRoleModels       = "role_models"
	TableRoleProfiles     = "role_profiles"
	TableProfileAccesses  = "profile_accesses"

	// Default values
	DefaultEmployeeStatus   = EmployeeStatusActive
	DefaultRoleModelVersion = "1.0"
	DefaultOveruseThreshold = 100

	// StatsConcurrency caps concurrent per-profile count queries when
	// aggregating role model statistics.
	StatsConcurrency = 8

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
)
