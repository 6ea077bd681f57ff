package dto

// EmployeeStatsDTO summarizes the workforce headcount.
type EmployeeStatsDTO struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
}
