// Package system реализует стратегии копирования для терминального клиента:
// системный буфер обмена и внешние утилиты копирования.
package system

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
)

var ErrNoCopyCommand = errors.New("no clipboard command found")

// NativeStrategy пишет в системный буфер обмена
type NativeStrategy struct {
	unsupported bool
	writeAll    func(string) error
}

// NewNativeStrategy создает стратегию поверх github.com/atotto/clipboard
func NewNativeStrategy() *NativeStrategy {
	return &NativeStrategy{
		unsupported: clipboard.Unsupported,
		writeAll:    clipboard.WriteAll,
	}
}

func (s *NativeStrategy) Name() string {
	return "system-clipboard"
}

func (s *NativeStrategy) Supported() bool {
	return !s.unsupported
}

func (s *NativeStrategy) Write(_ context.Context, text string) error {
	if err := s.writeAll(text); err != nil {
		return fmt.Errorf("failed to write system clipboard: %w", err)
	}
	return nil
}

// Command внешняя утилита, принимающая текст на stdin
type Command struct {
	Name string
	Args []string
}

// DefaultCommands утилиты в порядке предпочтения: Wayland, X11, macOS, WSL
var DefaultCommands = []Command{
	{Name: "wl-copy"},
	{Name: "xclip", Args: []string{"-selection", "clipboard"}},
	{Name: "xsel", Args: []string{"--clipboard", "--input"}},
	{Name: "pbcopy"},
	{Name: "clip.exe"},
}

// Runner запускает команду с текстом на stdin
type Runner func(ctx context.Context, stdin io.Reader, name string, args ...string) error

// CommandStrategy копирует через первую найденную утилиту
type CommandStrategy struct {
	commands []Command
	lookPath func(string) (string, error)
	run      Runner
}

// NewCommandStrategy создает стратегию с утилитами по умолчанию
func NewCommandStrategy() *CommandStrategy {
	return newCommandStrategy(DefaultCommands, exec.LookPath, runCommand)
}

func newCommandStrategy(commands []Command, lookPath func(string) (string, error), run Runner) *CommandStrategy {
	return &CommandStrategy{commands: commands, lookPath: lookPath, run: run}
}

func (s *CommandStrategy) Name() string {
	return "clipboard-command"
}

func (s *CommandStrategy) Supported() bool {
	_, ok := s.find()
	return ok
}

func (s *CommandStrategy) Write(ctx context.Context, text string) error {
	cmd, ok := s.find()
	if !ok {
		return ErrNoCopyCommand
	}

	if err := s.run(ctx, strings.NewReader(text), cmd.Name, cmd.Args...); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return nil
}

func (s *CommandStrategy) find() (Command, bool) {
	for _, cmd := range s.commands {
		if _, err := s.lookPath(cmd.Name); err == nil {
			return cmd, true
		}
	}
	return Command{}, false
}

func runCommand(ctx context.Context, stdin io.Reader, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	return cmd.Run()
}
