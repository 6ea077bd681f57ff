package access

import "errors"

var (
	ErrSystemNotFound     = errors.New("application system not found")
	ErrSystemHasAccesses  = errors.New("application system still has accesses")
	ErrAccessNotFound     = errors.New("access not found")
	ErrAssignmentNotFound = errors.New("access assignment not found")
	ErrDuplicateName      = errors.New("name already exists")
)
