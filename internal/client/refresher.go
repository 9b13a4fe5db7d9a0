package client

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/avc-dev/random-string/internal/model"
	"go.uber.org/zap"
)

// Идентификаторы элементов страницы
const (
	PrintableInputID     = "p"
	AlphanumericInputID  = "a"
	PrintableOutputID    = "printable-string"
	AlphanumericOutputID = "alphanumeric-string"
)

// Form дает доступ к полям ввода страницы
type Form interface {
	Value(id string) string
	SetValue(id, value string)
}

// Display отображает результаты и ошибки
type Display interface {
	SetText(id, text string)
	ShowError(message string)
	ClearError()
}

// Fetcher запрашивает пару строк у сервиса
type Fetcher interface {
	Fetch(ctx context.Context, printable, alphanumeric int) (model.Response, error)
}

// Refresher обновляет сгенерированные строки по значениям формы
type Refresher struct {
	form    Form
	display Display
	fetcher Fetcher
	logger  *zap.Logger
}

// NewRefresher создает новый экземпляр Refresher
func NewRefresher(form Form, display Display, fetcher Fetcher, logger *zap.Logger) *Refresher {
	return &Refresher{
		form:    form,
		display: display,
		fetcher: fetcher,
		logger:  logger,
	}
}

// Refresh читает длины из формы, приводит их к [1, 99], запрашивает строки
// и выводит их на страницу. Ошибка запроса отображается пользователю.
func (r *Refresher) Refresh(ctx context.Context) error {
	printable := r.readLength(PrintableInputID)
	alphanumeric := r.readLength(AlphanumericInputID)

	response, err := r.fetcher.Fetch(ctx, printable, alphanumeric)
	if err != nil {
		r.logger.Error("failed to refresh strings",
			zap.Int("printable_length", printable),
			zap.Int("alphanumeric_length", alphanumeric),
			zap.Error(err),
		)
		r.display.ShowError("Failed to generate new strings. Please try again.")
		return err
	}

	r.display.ClearError()
	r.display.SetText(PrintableOutputID, response.Printable.String)
	r.display.SetText(AlphanumericOutputID, response.Alphanumeric.String)

	return nil
}

// readLength читает длину из поля ввода и приводит ее к допустимому диапазону.
// Если итоговое значение отличается от введенного, поле перезаписывается,
// чтобы на странице было видно то, что реально запрошено.
func (r *Refresher) readLength(id string) int {
	raw := strings.TrimSpace(r.form.Value(id))
	length := model.ClampLength(ParseLength(raw))

	if formatted := strconv.Itoa(length); formatted != raw {
		r.form.SetValue(id, formatted)
	}

	return length
}

// ParseLength разбирает введенную длину. Дробная часть отбрасывается,
// нечисловой ввод считается меньше допустимого минимума.
func ParseLength(raw string) int {
	raw = strings.TrimSpace(raw)

	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) {
		return model.MinLength - 1
	}
	if f > model.MaxLength {
		return model.MaxLength + 1
	}
	if f < model.MinLength {
		return model.MinLength - 1
	}

	return int(f)
}
