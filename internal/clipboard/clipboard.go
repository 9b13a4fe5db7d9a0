// Package clipboard копирует текст в буфер обмена через цепочку стратегий
// и показывает результат на кнопке.
//
// Стратегии перебираются по порядку: недоступная стратегия пропускается,
// ошибка записи логируется и передает управление следующей. Если ни одна
// стратегия не сработала, кнопка показывает ошибку.
package clipboard

import (
	"context"
	"time"
)

// Надписи и класс кнопки
const (
	SuccessLabel = "✓ Copied"
	FailureLabel = "✗ Failed"
	DefaultLabel = "Copy"
	CopiedClass  = "copied"

	// RevertDelay задержка возврата кнопки в исходное состояние
	RevertDelay = 2 * time.Second
)

// Outcome состояние кнопки копирования
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeSuccess
	OutcomeFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	default:
		return "pending"
	}
}

//go:generate mockery --name Strategy

// Strategy способ записи текста в буфер обмена
type Strategy interface {
	// Name используется в логах
	Name() string
	// Supported сообщает, доступна ли стратегия в текущем окружении
	Supported() bool
	Write(ctx context.Context, text string) error
}

// Button кнопка, на которой отображается результат копирования
type Button interface {
	ID() string
	Label() string
	SetLabel(label string)
	AddClass(name string)
	RemoveClass(name string)
}

// Document дает доступ к элементам страницы по идентификатору
type Document interface {
	TextContent(id string) (string, bool)
	Button(id string) (Button, bool)
}

// Timer отложенная задача, которую можно отменить
type Timer interface {
	Stop() bool
}

// Scheduler планирует отложенные задачи
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// timeScheduler планирует задачи через time.AfterFunc
type timeScheduler struct{}

func (timeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
