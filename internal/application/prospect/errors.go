package prospect

import "errors"

var (
	ErrFileTooLarge         = errors.New("file exceeds size or row limit")
	ErrInvalidCSV           = errors.New("file is not valid CSV")
	ErrEmptyFile            = errors.New("file contains no rows")
	ErrFileNotFound         = errors.New("prospects file not found")
	ErrProgressNotFound     = errors.New("no import is in progress for this file")
	ErrForbidden            = errors.New("prospects file belongs to another user")
	ErrInvalidColumnMapping = errors.New("invalid column mapping")
	ErrCreateProspectsFile  = errors.New("failed to store prospects file")
)
