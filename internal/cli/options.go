package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/avc-dev/random-string/internal/config"
)

// Цели копирования для флага -copy
const (
	CopyPrintable    = "printable"
	CopyAlphanumeric = "alphanumeric"
)

// DefaultLength длина строк, если она не указана флагом
const DefaultLength = 16

// Options параметры командной строки randstr
type Options struct {
	Server       config.URLPrefix
	GRPCAddress  string
	Printable    int
	Alphanumeric int
	Copy         string
	JSON         bool
}

// ParseOptions разбирает аргументы командной строки
func ParseOptions(args []string, output io.Writer) (Options, error) {
	opts := Options{
		Server:       "http://localhost:8080",
		Printable:    DefaultLength,
		Alphanumeric: DefaultLength,
	}

	fs := flag.NewFlagSet("randstr", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Var(&opts.Server, "server", "base URL of the generator service")
	fs.StringVar(&opts.GRPCAddress, "grpc", "", "gRPC address of the generator service, overrides -server")
	fs.IntVar(&opts.Printable, "p", opts.Printable, "printable string length (1-99)")
	fs.IntVar(&opts.Alphanumeric, "a", opts.Alphanumeric, "alphanumeric string length (1-99)")
	fs.StringVar(&opts.Copy, "copy", "", "copy a string to the clipboard: printable or alphanumeric")
	fs.BoolVar(&opts.JSON, "json", false, "print the raw JSON response")

	if err := fs.Parse(args); err != nil {
		return Options{}, fmt.Errorf("failed to parse flags: %w", err)
	}

	switch opts.Copy {
	case "", CopyPrintable, CopyAlphanumeric:
	default:
		return Options{}, fmt.Errorf("%w: %q", ErrInvalidCopyTarget, opts.Copy)
	}

	return opts, nil
}
