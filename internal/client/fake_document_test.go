package client

import (
	"context"
	"sync"

	"github.com/avc-dev/random-string/internal/model"
)

// fakeDocument хранит состояние страницы в памяти
type fakeDocument struct {
	mu       sync.Mutex
	values   map[string]string
	texts    map[string]string
	errorMsg string
	writes   map[string]int
}

func newFakeDocument(values map[string]string) *fakeDocument {
	return &fakeDocument{
		values: values,
		texts:  make(map[string]string),
		writes: make(map[string]int),
	}
}

func (d *fakeDocument) Value(id string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.values[id]
}

func (d *fakeDocument) SetValue(id, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.values[id] = value
	d.writes[id]++
}

func (d *fakeDocument) SetText(id, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.texts[id] = text
}

func (d *fakeDocument) ShowError(message string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.errorMsg = message
}

func (d *fakeDocument) ClearError() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.errorMsg = ""
}

// fakeFetcher запоминает запрошенные длины
type fakeFetcher struct {
	response     model.Response
	err          error
	printable    int
	alphanumeric int
	calls        int
}

func (f *fakeFetcher) Fetch(ctx context.Context, printable, alphanumeric int) (model.Response, error) {
	f.calls++
	f.printable = printable
	f.alphanumeric = alphanumeric
	return f.response, f.err
}

// fakeNavigator запоминает адреса переходов
type fakeNavigator struct {
	path     string
	replaced []string
	pushed   []string
}

func (n *fakeNavigator) Path() string {
	return n.path
}

func (n *fakeNavigator) Replace(url string) {
	n.replaced = append(n.replaced, url)
}

type fakeEvent struct {
	prevented bool
}

func (e *fakeEvent) PreventDefault() {
	e.prevented = true
}
