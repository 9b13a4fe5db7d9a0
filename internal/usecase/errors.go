package usecase

import "errors"

var (
	ErrGenerationFailed = errors.New("string generation failed")
)
