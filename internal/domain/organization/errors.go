package organization

import "errors"

var (
	ErrOrgUnitNotFound   = errors.New("organizational unit not found")
	ErrOrgUnitHasChilds  = errors.New("organizational unit has child units")
	ErrOrgUnitHasMembers = errors.New("organizational unit has employees")
	ErrPositionNotFound  = errors.New("position not found")
	ErrRefNotFound       = errors.New("reference entry not found")
	ErrTribeNotFound     = errors.New("tribe not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrAgileTeamNotFound = errors.New("agile team not found")
	ErrDuplicateName     = errors.New("name already exists")
)
