// Package employee holds the employee aggregate. Employees carry the
// attributes role profile criteria match against: org unit, position,
// employee profile and employee type.
package employee

import (
	"fmt"
	"time"
)

// Status is the employment status.
type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusTerminated Status = "terminated"
)

// IsValid reports whether s is a known employment status.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusTerminated:
		return true
	}
	return false
}

// Employee represents a company employee.
type Employee struct {
	id                  uint
	employeeNumber      string
	fullName            string
	orgUnitID           uint
	positionID          uint
	profileID           uint
	employeeTypeID      uint
	agileTeamID         *uint
	teamRoleID          *uint
	techStack           []string
	skills              []string
	experienceYears     *int
	companyTenureMonths *int
	email               string
	phone               string
	status              Status
	hireDate            *time.Time
	terminationDate     *time.Time
	createdAt           time.Time
	updatedAt           time.Time
}

// NewEmployee creates an employee with the mandatory organizational links.
func NewEmployee(fullName string, orgUnitID, positionID, profileID, employeeTypeID uint) (*Employee, error) {
	if fullName == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if orgUnitID == 0 || positionID == 0 || profileID == 0 || employeeTypeID == 0 {
		return nil, fmt.Errorf("org unit, position, profile and employee type are required")
	}

	now := time.Now()
	return &Employee{
		fullName:       fullName,
		orgUnitID:      orgUnitID,
		positionID:     positionID,
		profileID:      profileID,
		employeeTypeID: employeeTypeID,
		status:         StatusActive,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructEmployee rebuilds an Employee from the persistence layer.
func ReconstructEmployee(
	id uint,
	employeeNumber string,
	fullName string,
	orgUnitID, positionID, profileID, employeeTypeID uint,
	agileTeamID, teamRoleID *uint,
	techStack, skills []string,
	experienceYears, companyTenureMonths *int,
	email, phone string,
	status Status,
	hireDate, terminationDate *time.Time,
	createdAt, updatedAt time.Time,
) *Employee {
	return &Employee{
		id:                  id,
		employeeNumber:      employeeNumber,
		fullName:            fullName,
		orgUnitID:           orgUnitID,
		positionID:          positionID,
		profileID:           profileID,
		employeeTypeID:      employeeTypeID,
		agileTeamID:         agileTeamID,
		teamRoleID:          teamRoleID,
		techStack:           techStack,
		skills:              skills,
		experienceYears:     experienceYears,
		companyTenureMonths: companyTenureMonths,
		email:               email,
		phone:               phone,
		status:              status,
		hireDate:            hireDate,
		terminationDate:     terminationDate,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

// Getters
func (e *Employee) ID() uint                  { return e.id }
func (e *Employee) EmployeeNumber() string    { return e.employeeNumber }
func (e *Employee) FullName() string          { return e.fullName }
func (e *Employee) OrgUnitID() uint           { return e.orgUnitID }
func (e *Employee) PositionID() uint          { return e.positionID }
func (e *Employee) ProfileID() uint           { return e.profileID }
func (e *Employee) EmployeeTypeID() uint      { return e.employeeTypeID }
func (e *Employee) AgileTeamID() *uint        { return e.agileTeamID }
func (e *Employee) TeamRoleID() *uint         { return e.teamRoleID }
func (e *Employee) TechStack() []string       { return e.techStack }
func (e *Employee) Skills() []string          { return e.skills }
func (e *Employee) ExperienceYears() *int     { return e.experienceYears }
func (e *Employee) CompanyTenureMonths() *int { return e.companyTenureMonths }
func (e *Employee) Email() string             { return e.email }
func (e *Employee) Phone() string             { return e.phone }
func (e *Employee) Status() Status            { return e.status }
func (e *Employee) HireDate() *time.Time      { return e.hireDate }
func (e *Employee) TerminationDate() *time.Time { return e.terminationDate }
func (e *Employee) CreatedAt() time.Time      { return e.createdAt }
func (e *Employee) UpdatedAt() time.Time      { return e.updatedAt }

// SetID sets the employee ID (only for persistence layer use)
func (e *Employee) SetID(id uint) { e.id = id }

func (e *Employee) SetEmployeeNumber(number string) {
	e.employeeNumber = number
	e.updatedAt = time.Now()
}

func (e *Employee) SetContacts(email, phone string) {
	e.email = email
	e.phone = phone
	e.updatedAt = time.Now()
}

func (e *Employee) SetSkills(techStack, skills []string) {
	e.techStack = techStack
	e.skills = skills
	e.updatedAt = time.Now()
}

func (e *Employee) SetExperience(experienceYears, companyTenureMonths *int) {
	e.experienceYears = experienceYears
	e.companyTenureMonths = companyTenureMonths
	e.updatedAt = time.Now()
}

func (e *Employee) SetHireDate(hireDate *time.Time) {
	e.hireDate = hireDate
	e.updatedAt = time.Now()
}

// AssignToTeam links the employee to an agile team with a team role.
func (e *Employee) AssignToTeam(agileTeamID, teamRoleID *uint) {
	e.agileTeamID = agileTeamID
	e.teamRoleID = teamRoleID
	e.updatedAt = time.Now()
}

// Relocate moves the employee within the organizational structure.
func (e *Employee) Relocate(orgUnitID, positionID, profileID, employeeTypeID uint) error {
	if orgUnitID == 0 || positionID == 0 || profileID == 0 || employeeTypeID == 0 {
		return fmt.Errorf("org unit, position, profile and employee type are required")
	}
	e.orgUnitID = orgUnitID
	e.positionID = positionID
	e.profileID = profileID
	e.employeeTypeID = employeeTypeID
	e.updatedAt = time.Now()
	return nil
}

func (e *Employee) Rename(fullName string) error {
	if fullName == "" {
		return fmt.Errorf("full name is required")
	}
	e.fullName = fullName
	e.updatedAt = time.Now()
	return nil
}

// ChangeStatus updates the employment status; terminating stamps the
// termination date.
func (e *Employee) ChangeStatus(status Status, terminationDate *time.Time) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid employee status: %s", status)
	}
	e.status = status
	if status == StatusTerminated {
		if terminationDate == nil {
			now := time.Now()
			terminationDate = &now
		}
		e.terminationDate = terminationDate
	}
	e.updatedAt = time.Now()
	return nil
}
