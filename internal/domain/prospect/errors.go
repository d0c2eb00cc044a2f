package prospect

import "errors"

var (
	ErrFileNotFound         = errors.New("prospects file not found")
	ErrProgressNotFound     = errors.New("no import progress for file")
	ErrForbidden            = errors.New("prospects file belongs to another user")
	ErrProspectExists       = errors.New("prospect with this email already exists")
	ErrRowSkipped           = errors.New("row is not importable")
	ErrInvalidColumnMapping = errors.New("invalid column mapping")
)
