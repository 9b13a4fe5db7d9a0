package clipboard

import "errors"

var (
	ErrElementNotFound = errors.New("element not found")
	ErrCopyRejected    = errors.New("copy command rejected")
	ErrStrategyPanic   = errors.New("clipboard strategy panicked")
)
