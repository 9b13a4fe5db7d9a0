//go:build js && wasm

// Команда webclient собирается в WebAssembly и регистрирует обработчики страницы
// генератора: refreshStrings, refreshNoCache и copyToClipboard.
package main

import (
	"context"
	"net/http"
	"syscall/js"

	"github.com/avc-dev/random-string/internal/client"
	"github.com/avc-dev/random-string/internal/clipboard"
	"github.com/avc-dev/random-string/internal/dom"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		logger = zap.NewNop()
	}
	defer logger.Sync()

	doc := dom.New()
	api := client.New(doc.Origin(), http.DefaultClient)

	refresher := client.NewRefresher(doc, doc, api, logger)
	reloader := client.NewReloader(doc)
	copier := clipboard.NewCopier(logger, []clipboard.Strategy{
		dom.NewAsyncClipboardStrategy(),
		clipboard.NewLegacyStrategy(doc),
	})

	// Обработчики вызываются из цикла событий браузера, поэтому блокирующая
	// работа выполняется в отдельной горутине
	js.Global().Set("refreshStrings", js.FuncOf(func(js.Value, []js.Value) any {
		go func() {
			// ошибка уже показана пользователю и записана в лог
			_ = refresher.Refresh(context.Background())
		}()
		return nil
	}))

	js.Global().Set("refreshNoCache", js.FuncOf(func(_ js.Value, args []js.Value) any {
		// preventDefault должен быть вызван синхронно, до возврата из обработчика
		if len(args) > 0 {
			if event := dom.NewEvent(args[0]); event != nil {
				reloader.Reload(event)
				return nil
			}
		}
		reloader.Reload(nil)
		return nil
	}))

	js.Global().Set("copyToClipboard", js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) < 2 {
			logger.Error("copyToClipboard requires element and button ids")
			return nil
		}
		sourceID, buttonID := args[0].String(), args[1].String()

		go func() {
			outcome, err := copier.CopyElement(context.Background(), doc, sourceID, buttonID)
			if err != nil {
				logger.Error("failed to copy element",
					zap.String("source", sourceID),
					zap.String("button", buttonID),
					zap.Error(err),
				)
				return
			}
			logger.Debug("copy finished", zap.String("button", buttonID), zap.Stringer("outcome", outcome))
		}()
		return nil
	}))

	logger.Info("web client started")

	select {}
}
