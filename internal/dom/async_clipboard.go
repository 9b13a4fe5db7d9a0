//go:build js && wasm

package dom

import (
	"context"
	"errors"
	"fmt"
	"syscall/js"
)

var ErrPromiseRejected = errors.New("promise rejected")

// AsyncClipboardStrategy пишет через navigator.clipboard.writeText
type AsyncClipboardStrategy struct {
	window js.Value
}

// NewAsyncClipboardStrategy создает стратегию для текущего окна
func NewAsyncClipboardStrategy() *AsyncClipboardStrategy {
	return &AsyncClipboardStrategy{window: js.Global()}
}

func (s *AsyncClipboardStrategy) Name() string {
	return "async-clipboard"
}

// Supported проверяет наличие navigator.clipboard.writeText.
// API доступен только в защищенном контексте.
func (s *AsyncClipboardStrategy) Supported() bool {
	if !s.window.Get("isSecureContext").Truthy() {
		return false
	}
	cb := s.window.Get("navigator").Get("clipboard")
	if cb.IsNull() || cb.IsUndefined() {
		return false
	}
	return cb.Get("writeText").Type() == js.TypeFunction
}

func (s *AsyncClipboardStrategy) Write(ctx context.Context, text string) error {
	promise := s.window.Get("navigator").Get("clipboard").Call("writeText", text)
	return await(ctx, promise)
}

// await ждет завершения промиса. Вызывать только из отдельной горутины,
// иначе цикл событий браузера заблокируется.
func await(ctx context.Context, promise js.Value) error {
	done := make(chan error, 1)

	onResolve := js.FuncOf(func(js.Value, []js.Value) any {
		done <- nil
		return nil
	})
	onReject := js.FuncOf(func(_ js.Value, args []js.Value) any {
		reason := "unknown"
		if len(args) > 0 {
			reason = args[0].Call("toString").String()
		}
		done <- fmt.Errorf("%w: %s", ErrPromiseRejected, reason)
		return nil
	})

	promise.Call("then", onResolve, onReject)

	select {
	case err := <-done:
		onResolve.Release()
		onReject.Release()
		return err
	case <-ctx.Done():
		// Колбэки не освобождаются: промис может завершиться позже
		return ctx.Err()
	}
}
