package client

import (
	"strconv"
	"strings"
	"time"
)

// CacheBustParam имя query параметра, сбрасывающего кеш
const CacheBustParam = "_"

// Navigator управляет адресом текущей страницы
type Navigator interface {
	Path() string
	// Replace переходит по адресу, заменяя текущую запись истории
	Replace(url string)
}

// Event событие, вызвавшее перезагрузку
type Event interface {
	PreventDefault()
}

// Reloader перезагружает страницу в обход кеша
type Reloader struct {
	navigator Navigator
	now       func() time.Time
}

// NewReloader создает новый экземпляр Reloader
func NewReloader(navigator Navigator) *Reloader {
	return &Reloader{
		navigator: navigator,
		now:       time.Now,
	}
}

// Reload отменяет действие события по умолчанию, если оно передано,
// и заменяет текущую запись истории адресом со сбросом кеша
func (r *Reloader) Reload(event Event) {
	if event != nil {
		event.PreventDefault()
	}
	r.navigator.Replace(ReloadTarget(r.navigator.Path(), r.now()))
}

// ReloadTarget вычисляет адрес перезагрузки: суффикс index.html заменяется
// на каталог, пустой путь становится "/", добавляется параметр _=<epoch ms>
func ReloadTarget(path string, now time.Time) string {
	if strings.HasSuffix(path, "index.html") {
		path = strings.TrimSuffix(path, "index.html")
		if !strings.HasSuffix(path, "/") {
			path += "/"
		}
	}
	if path == "" {
		path = "/"
	}

	return path + "?" + CacheBustParam + "=" + strconv.FormatInt(now.UnixMilli(), 10)
}
