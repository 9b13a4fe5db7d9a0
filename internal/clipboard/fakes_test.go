package clipboard

import (
	"errors"
	"sync"
	"time"
)

// fakeButton хранит надпись и классы кнопки
type fakeButton struct {
	id      string
	label   string
	classes map[string]bool
}

func newFakeButton(id, label string) *fakeButton {
	return &fakeButton{id: id, label: label, classes: make(map[string]bool)}
}

func (b *fakeButton) ID() string              { return b.id }
func (b *fakeButton) Label() string           { return b.label }
func (b *fakeButton) SetLabel(label string)   { b.label = label }
func (b *fakeButton) AddClass(name string)    { b.classes[name] = true }
func (b *fakeButton) RemoveClass(name string) { delete(b.classes, name) }

// fakeTimer отложенная задача, запускаемая вручную
type fakeTimer struct {
	delay   time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// fakeScheduler копит задачи до явного вызова Fire
type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{delay: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

// FireAll запускает все неотмененные задачи, как если бы истекла задержка
func (s *fakeScheduler) FireAll() {
	s.mu.Lock()
	timers := append([]*fakeTimer(nil), s.timers...)
	s.mu.Unlock()

	for _, t := range timers {
		if t.stopped || t.fired {
			continue
		}
		t.fired = true
		t.f()
	}
}

// fireStale запускает задачу даже если она была отменена,
// имитируя таймер, сработавший одновременно с отменой
func (s *fakeScheduler) fireStale(i int) {
	s.timers[i].f()
}

// fakeHolder временный элемент документа
type fakeHolder struct {
	doc      *fakeCommandDocument
	text     string
	selected bool
}

func (h *fakeHolder) Select() {
	h.selected = true
	h.doc.selection = h.text
}

func (h *fakeHolder) Remove() {
	h.doc.attached--
	h.doc.removed++
}

// fakeCommandDocument документ с устаревшей командой copy
type fakeCommandDocument struct {
	supported  bool
	execResult bool
	execPanics bool
	appendErr  error

	attached  int
	created   int
	removed   int
	selection string
	copied    string
	holders   []*fakeHolder
}

func (d *fakeCommandDocument) CommandSupported(command string) bool {
	return d.supported && command == CopyCommand
}

func (d *fakeCommandDocument) AppendHolder(text string) (Holder, error) {
	if d.appendErr != nil {
		return nil, d.appendErr
	}
	h := &fakeHolder{doc: d, text: text}
	d.holders = append(d.holders, h)
	d.created++
	d.attached++
	return h, nil
}

func (d *fakeCommandDocument) ExecCommand(command string) bool {
	if d.execPanics {
		panic(errors.New("SecurityError: execCommand is not allowed"))
	}
	if d.execResult {
		d.copied = d.selection
	}
	return d.execResult
}

// fakeDocument документ с текстовыми элементами и кнопками
type fakeDocument struct {
	texts   map[string]string
	buttons map[string]*fakeButton
}

func (d *fakeDocument) TextContent(id string) (string, bool) {
	text, ok := d.texts[id]
	return text, ok
}

func (d *fakeDocument) Button(id string) (Button, bool) {
	b, ok := d.buttons[id]
	if !ok {
		return nil, false
	}
	return b, true
}
