package usecase

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/avc-dev/random-string/internal/model"
	"go.uber.org/zap"
)

const (
	// PrintableParam имя query параметра длины printable строки
	PrintableParam = "p"
	// AlphanumericParam имя query параметра длины alphanumeric строки
	AlphanumericParam = "a"
)

// ParseLengthRequest извлекает длины строк из query параметров.
// Отсутствующие и нечисловые значения остаются незаданными.
func ParseLengthRequest(query url.Values) model.LengthRequest {
	return model.LengthRequest{
		Printable:    parseLength(query, PrintableParam),
		Alphanumeric: parseLength(query, AlphanumericParam),
	}
}

func parseLength(query url.Values, key string) *int {
	if !query.Has(key) {
		return nil
	}

	length, err := strconv.Atoi(strings.TrimSpace(query.Get(key)))
	if err != nil {
		return nil
	}

	return &length
}

// GenerateStrings генерирует пару строк по запрошенным длинам.
// Незаданные длины выбираются случайно, все длины приводятся к [1, 99].
func (u *StringsUsecase) GenerateStrings(req model.LengthRequest) (model.Response, error) {
	printableLength, err := u.resolveLength(req.Printable)
	if err != nil {
		return model.Response{}, err
	}

	alphanumericLength, err := u.resolveLength(req.Alphanumeric)
	if err != nil {
		return model.Response{}, err
	}

	printable, err := u.generator.Printable(printableLength)
	if err != nil {
		u.logger.Error("failed to generate printable string",
			zap.Int("length", printableLength),
			zap.Error(err),
		)
		return model.Response{}, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	alphanumeric, err := u.generator.Alphanumeric(alphanumericLength)
	if err != nil {
		u.logger.Error("failed to generate alphanumeric string",
			zap.Int("length", alphanumericLength),
			zap.Error(err),
		)
		return model.Response{}, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	return model.Response{
		Printable: model.RandomString{
			Length: printableLength,
			String: printable,
		},
		Alphanumeric: model.RandomString{
			Length: alphanumericLength,
			String: alphanumeric,
		},
	}, nil
}

// resolveLength возвращает запрошенную длину или случайную, если длина не задана
func (u *StringsUsecase) resolveLength(requested *int) (int, error) {
	if requested != nil {
		return model.ClampLength(*requested), nil
	}

	length, err := u.generator.RandomLength()
	if err != nil {
		u.logger.Error("failed to pick random length", zap.Error(err))
		return 0, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	return model.ClampLength(length), nil
}
