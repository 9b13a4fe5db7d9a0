//go:build js && wasm

// Package dom связывает клиентскую логику с документом браузера через syscall/js.
package dom

import (
	"errors"
	"syscall/js"

	"github.com/avc-dev/random-string/internal/clipboard"
)

// ErrorMessageID идентификатор элемента для сообщений об ошибках
const ErrorMessageID = "error-message"

var ErrNoBody = errors.New("document has no body")

// Document оборачивает window.document и window.location.
// Реализует client.Form, client.Display, client.Navigator,
// clipboard.Document и clipboard.CommandDocument.
type Document struct {
	window js.Value
	doc    js.Value
}

// New возвращает документ текущей страницы
func New() *Document {
	window := js.Global()
	return &Document{
		window: window,
		doc:    window.Get("document"),
	}
}

func (d *Document) element(id string) (js.Value, bool) {
	el := d.doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return js.Value{}, false
	}
	return el, true
}

// Origin возвращает схему, хост и порт страницы
func (d *Document) Origin() string {
	return d.window.Get("location").Get("origin").String()
}

func (d *Document) Value(id string) string {
	el, ok := d.element(id)
	if !ok {
		return ""
	}
	return el.Get("value").String()
}

func (d *Document) SetValue(id, value string) {
	if el, ok := d.element(id); ok {
		el.Set("value", value)
	}
}

func (d *Document) SetText(id, text string) {
	if el, ok := d.element(id); ok {
		el.Set("textContent", text)
	}
}

func (d *Document) ShowError(message string) {
	if el, ok := d.element(ErrorMessageID); ok {
		el.Set("textContent", message)
		el.Set("hidden", false)
	}
}

func (d *Document) ClearError() {
	if el, ok := d.element(ErrorMessageID); ok {
		el.Set("textContent", "")
		el.Set("hidden", true)
	}
}

func (d *Document) Path() string {
	return d.window.Get("location").Get("pathname").String()
}

func (d *Document) Replace(url string) {
	d.window.Get("location").Call("replace", url)
}

func (d *Document) TextContent(id string) (string, bool) {
	el, ok := d.element(id)
	if !ok {
		return "", false
	}
	return el.Get("textContent").String(), true
}

func (d *Document) Button(id string) (clipboard.Button, bool) {
	el, ok := d.element(id)
	if !ok {
		return nil, false
	}
	return &Element{id: id, value: el}, true
}

func (d *Document) CommandSupported(command string) bool {
	probe := d.doc.Get("queryCommandSupported")
	if probe.Type() != js.TypeFunction {
		return false
	}
	return d.doc.Call("queryCommandSupported", command).Truthy()
}

// AppendHolder создает скрытую textarea только для чтения за пределами экрана
func (d *Document) AppendHolder(text string) (clipboard.Holder, error) {
	body := d.doc.Get("body")
	if body.IsNull() || body.IsUndefined() {
		return nil, ErrNoBody
	}

	textarea := d.doc.Call("createElement", "textarea")
	textarea.Set("value", text)
	textarea.Call("setAttribute", "readonly", "")
	textarea.Call("setAttribute", "aria-hidden", "true")

	style := textarea.Get("style")
	style.Set("position", "fixed")
	style.Set("left", "-9999px")
	style.Set("top", "-9999px")
	style.Set("opacity", "0")

	body.Call("appendChild", textarea)

	return &holder{value: textarea, length: len([]rune(text))}, nil
}

func (d *Document) ExecCommand(command string) bool {
	return d.doc.Call("execCommand", command).Truthy()
}

// Element кнопка страницы
type Element struct {
	id    string
	value js.Value
}

func (e *Element) ID() string { return e.id }

func (e *Element) Label() string {
	return e.value.Get("textContent").String()
}

func (e *Element) SetLabel(label string) {
	e.value.Set("textContent", label)
}

func (e *Element) AddClass(name string) {
	e.value.Get("classList").Call("add", name)
}

func (e *Element) RemoveClass(name string) {
	e.value.Get("classList").Call("remove", name)
}

type holder struct {
	value  js.Value
	length int
}

func (h *holder) Select() {
	h.value.Call("focus")
	h.value.Call("select")
	// iOS Safari не выделяет текст readonly поля через select()
	h.value.Call("setSelectionRange", 0, h.length)
}

func (h *holder) Remove() {
	h.value.Call("remove")
}

// Event событие DOM, переданное в обработчик
type Event struct {
	value js.Value
}

// NewEvent оборачивает аргумент обработчика; для пустого значения возвращает nil
func NewEvent(v js.Value) *Event {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return &Event{value: v}
}

func (e *Event) PreventDefault() {
	if fn := e.value.Get("preventDefault"); fn.Type() == js.TypeFunction {
		e.value.Call("preventDefault")
	}
}
