package rolemodel

import "errors"

var (
	ErrRoleModelNotFound     = errors.New("role model not found")
	ErrProfileNotFound       = errors.New("role profile not found")
	ErrProfileAccessNotFound = errors.New("profile access link not found")
	ErrDuplicateName         = errors.New("name already exists")
	ErrDuplicateLink         = errors.New("profile already confers this access")
)
