package cli

import "errors"

var (
	ErrInvalidCopyTarget = errors.New("copy target must be printable or alphanumeric")
	ErrCopyFailed        = errors.New("failed to copy to clipboard")
)
