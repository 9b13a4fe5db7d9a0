package service

import "errors"

var (
	// ErrRandomSource возвращается когда источник случайности недоступен
	ErrRandomSource = errors.New("random source failure")
)
