package dto

// ProfileSummaryDTO reports the reach of a single profile: how many
// employees its criteria match and how many accesses it declares.
type ProfileSummaryDTO struct {
	RoleProfileID         uint   `json:"role_profile_id"`
	Name                  string `json:"name"`
	MatchedEmployeesCount int64  `json:"matched_employees_count"`
	AccessesCount         int64  `json:"accesses_count"`
}

// ProfileCoverageDTO is a profile summary with its share of the model's
// total coverage. Coverage sums per-profile matches without deduplicating
// employees that match several profiles.
type ProfileCoverageDTO struct {
	RoleProfileID         uint    `json:"role_profile_id"`
	Name                  string  `json:"name"`
	MatchedEmployeesCount int64   `json:"matched_employees_count"`
	AccessesCount         int64   `json:"accesses_count"`
	CoveragePercentage    float64 `json:"coverage_percentage"`
}

// ModelStatsDTO aggregates profile reach across one role model.
type ModelStatsDTO struct {
	RoleModelID           uint                  `json:"role_model_id"`
	TotalProfiles         int64                 `json:"total_profiles"`
	TotalEmployeesCovered int64                 `json:"total_employees_covered"`
	TotalAccessesAssigned int64                 `json:"total_accesses_assigned"`
	ProfilesSummary       []*ProfileCoverageDTO `json:"profiles_summary"`
}

// AccessStatsDTO aggregates grant usage over the whole access catalog.
type AccessStatsDTO struct {
	TotalAccesses    int64            `json:"total_accesses"`
	TotalAssignments int64            `json:"total_assignments"`
	UnusedAccesses   int64            `json:"unused_accesses"`
	OverusedAccesses int64            `json:"overused_accesses"`
	ByAssignmentType map[string]int64 `json:"by_assignment_type"`
	ByCriticality    map[string]int64 `json:"by_criticality"`
	BySystemType     map[string]int64 `json:"by_system_type"`
}
