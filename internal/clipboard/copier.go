package clipboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// pendingRevert отложенный возврат кнопки в исходное состояние
type pendingRevert struct {
	timer      Timer
	outcome    Outcome
	original   string
	classAdded bool
}

// Copier копирует текст, перебирая стратегии, и управляет состоянием кнопок
type Copier struct {
	strategies []Strategy
	scheduler  Scheduler
	delay      time.Duration
	logger     *zap.Logger

	mu      sync.Mutex
	pending map[string]*pendingRevert
}

// Option настраивает Copier
type Option func(*Copier)

// WithScheduler задает планировщик отложенных задач
func WithScheduler(s Scheduler) Option {
	return func(c *Copier) {
		c.scheduler = s
	}
}

// WithRevertDelay задает задержку возврата кнопки
func WithRevertDelay(d time.Duration) Option {
	return func(c *Copier) {
		c.delay = d
	}
}

// NewCopier создает Copier со стратегиями в порядке предпочтения
func NewCopier(logger *zap.Logger, strategies []Strategy, opts ...Option) *Copier {
	c := &Copier{
		strategies: strategies,
		scheduler:  timeScheduler{},
		delay:      RevertDelay,
		logger:     logger,
		pending:    make(map[string]*pendingRevert),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CopyElement копирует текст элемента sourceID и показывает результат на кнопке buttonID
func (c *Copier) CopyElement(ctx context.Context, doc Document, sourceID, buttonID string) (Outcome, error) {
	text, ok := doc.TextContent(sourceID)
	if !ok {
		return OutcomePending, fmt.Errorf("source %q: %w", sourceID, ErrElementNotFound)
	}

	button, ok := doc.Button(buttonID)
	if !ok {
		return OutcomePending, fmt.Errorf("button %q: %w", buttonID, ErrElementNotFound)
	}

	return c.Copy(ctx, text, button), nil
}

// Copy копирует текст и показывает результат на кнопке
func (c *Copier) Copy(ctx context.Context, text string, button Button) Outcome {
	if c.write(ctx, text) {
		c.showSuccess(button)
		return OutcomeSuccess
	}

	c.showFailure(button)
	return OutcomeFailure
}

// State возвращает текущее состояние кнопки
func (c *Copier) State(buttonID string) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.pending[buttonID]; ok {
		return p.outcome
	}
	return OutcomePending
}

// write перебирает стратегии до первой успешной записи
func (c *Copier) write(ctx context.Context, text string) bool {
	for _, strategy := range c.strategies {
		if !strategy.Supported() {
			c.logger.Debug("clipboard strategy unavailable", zap.String("strategy", strategy.Name()))
			continue
		}

		err := tryWrite(ctx, strategy, text)
		if err == nil {
			return true
		}

		c.logger.Error("clipboard strategy failed",
			zap.String("strategy", strategy.Name()),
			zap.Error(err),
		)
	}

	return false
}

// tryWrite превращает панику стратегии в ошибку
func tryWrite(ctx context.Context, strategy Strategy, text string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrStrategyPanic, r)
		}
	}()

	return strategy.Write(ctx, text)
}

func (c *Copier) showSuccess(button Button) {
	c.mu.Lock()
	defer c.mu.Unlock()

	original := button.Label()
	if prev := c.cancelPending(button.ID()); prev != nil {
		// Кнопка еще не вернулась в исходное состояние после прошлого нажатия
		original = prev.original
	}

	button.SetLabel(SuccessLabel)
	button.AddClass(CopiedClass)

	c.schedule(button, &pendingRevert{
		outcome:    OutcomeSuccess,
		original:   original,
		classAdded: true,
	})
}

func (c *Copier) showFailure(button Button) {
	c.mu.Lock()
	defer c.mu.Unlock()

	original := button.Label()
	if prev := c.cancelPending(button.ID()); prev != nil {
		original = prev.original
		if prev.classAdded {
			button.RemoveClass(CopiedClass)
		}
	}

	button.SetLabel(FailureLabel)

	c.schedule(button, &pendingRevert{
		outcome:  OutcomeFailure,
		original: original,
	})
}

// cancelPending отменяет отложенный возврат кнопки. Вызывается под c.mu.
func (c *Copier) cancelPending(id string) *pendingRevert {
	prev, ok := c.pending[id]
	if !ok {
		return nil
	}
	prev.timer.Stop()
	delete(c.pending, id)
	return prev
}

// schedule планирует возврат кнопки. Вызывается под c.mu.
func (c *Copier) schedule(button Button, p *pendingRevert) {
	id := button.ID()
	p.timer = c.scheduler.AfterFunc(c.delay, func() {
		c.revert(button, p)
	})
	c.pending[id] = p
}

func (c *Copier) revert(button Button, p *pendingRevert) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Возврат мог быть вытеснен более поздним нажатием
	if c.pending[button.ID()] != p {
		return
	}
	delete(c.pending, button.ID())

	switch p.outcome {
	case OutcomeSuccess:
		button.SetLabel(p.original)
		button.RemoveClass(CopiedClass)
	case OutcomeFailure:
		// После ошибки кнопка всегда возвращается к надписи "Copy"
		button.SetLabel(DefaultLabel)
	}
}
