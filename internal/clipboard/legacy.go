package clipboard

import (
	"context"
	"fmt"
)

// CopyCommand имя устаревшей команды копирования выделенного текста
const CopyCommand = "copy"

// Holder временный скрытый элемент с копируемым текстом
type Holder interface {
	Select()
	Remove()
}

// CommandDocument документ, поддерживающий устаревшие команды редактирования
type CommandDocument interface {
	CommandSupported(command string) bool
	// AppendHolder создает скрытый элемент вне видимой области и добавляет его в документ
	AppendHolder(text string) (Holder, error)
	ExecCommand(command string) bool
}

// LegacyStrategy копирует текст через выделение скрытого элемента
// и устаревшую команду copy
type LegacyStrategy struct {
	doc CommandDocument
}

// NewLegacyStrategy создает стратегию поверх документа
func NewLegacyStrategy(doc CommandDocument) *LegacyStrategy {
	return &LegacyStrategy{doc: doc}
}

func (s *LegacyStrategy) Name() string {
	return "exec-command"
}

func (s *LegacyStrategy) Supported() bool {
	return s.doc.CommandSupported(CopyCommand)
}

// Write выделяет текст во временном элементе и выполняет команду copy.
// Элемент удаляется из документа при любом исходе, включая панику.
func (s *LegacyStrategy) Write(ctx context.Context, text string) error {
	holder, err := s.doc.AppendHolder(text)
	if err != nil {
		return fmt.Errorf("failed to create text holder: %w", err)
	}
	defer holder.Remove()

	holder.Select()

	if !s.doc.ExecCommand(CopyCommand) {
		return ErrCopyRejected
	}

	return nil
}
