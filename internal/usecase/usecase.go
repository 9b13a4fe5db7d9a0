package usecase

import (
	"go.uber.org/zap"
)

//go:generate mockery --name Generator

// Generator определяет интерфейс генератора случайных строк
type Generator interface {
	Alphanumeric(length int) (string, error)
	Printable(length int) (string, error)
	RandomLength() (int, error)
}

// StringsUsecase содержит бизнес-логику генерации пар строк
type StringsUsecase struct {
	generator Generator
	logger    *zap.Logger
}

// NewStringsUsecase создает новый экземпляр StringsUsecase
func NewStringsUsecase(generator Generator, logger *zap.Logger) *StringsUsecase {
	return &StringsUsecase{
		generator: generator,
		logger:    logger,
	}
}
