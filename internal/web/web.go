// Package web содержит HTML шаблоны и статические файлы страницы генератора.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

// PageData данные для рендеринга главной страницы
type PageData struct {
	PrintableLength    int
	PrintableString    string
	AlphanumericLength int
	AlphanumericString string
	Version            string
	BuildTime          string
	CommitHash         string
}

// Renderer рендерит HTML страницы из встроенных шаблонов
type Renderer struct {
	index *template.Template
}

// NewRenderer разбирает встроенные шаблоны
func NewRenderer() (*Renderer, error) {
	index, err := template.ParseFS(templateFiles, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse index template: %w", err)
	}

	return &Renderer{index: index}, nil
}

// RenderIndex рендерит главную страницу
func (r *Renderer) RenderIndex(w io.Writer, data PageData) error {
	if err := r.index.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render index: %w", err)
	}
	return nil
}

// Static возвращает файловую систему со встроенными статическими файлами
func Static() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// каталог встроен при компиляции
		panic(err)
	}
	return sub
}
