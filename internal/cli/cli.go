// Package cli реализует терминальный клиент генератора строк.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avc-dev/random-string/internal/client"
	"github.com/avc-dev/random-string/internal/clipboard"
	"github.com/avc-dev/random-string/internal/clipboard/system"
	"github.com/avc-dev/random-string/internal/grpcapi"
	"github.com/avc-dev/random-string/internal/model"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const requestTimeout = 10 * time.Second

// FetchFunc запрашивает пару строк заданных длин
type FetchFunc func(ctx context.Context, printable, alphanumeric int) (model.Response, error)

// Runner выполняет одну команду randstr
type Runner struct {
	fetch  FetchFunc
	copier *clipboard.Copier
	stdout io.Writer
}

// NewRunner создает Runner
func NewRunner(fetch FetchFunc, copier *clipboard.Copier, stdout io.Writer) *Runner {
	return &Runner{fetch: fetch, copier: copier, stdout: stdout}
}

// Execute запрашивает строки, печатает их и при необходимости копирует одну из них
func (r *Runner) Execute(ctx context.Context, opts Options) error {
	printable := model.ClampLength(opts.Printable)
	alphanumeric := model.ClampLength(opts.Alphanumeric)

	response, err := r.fetch(ctx, printable, alphanumeric)
	if err != nil {
		return fmt.Errorf("failed to fetch strings: %w", err)
	}

	if err := r.print(response, opts.JSON); err != nil {
		return err
	}

	if opts.Copy == "" {
		return nil
	}

	text := response.Printable.String
	if opts.Copy == CopyAlphanumeric {
		text = response.Alphanumeric.String
	}

	button := &terminalButton{id: opts.Copy, label: clipboard.DefaultLabel}
	outcome := r.copier.Copy(ctx, text, button)
	fmt.Fprintln(r.stdout, button.Label())

	if outcome != clipboard.OutcomeSuccess {
		return ErrCopyFailed
	}
	return nil
}

func (r *Runner) print(response model.Response, raw bool) error {
	if raw {
		encoder := json.NewEncoder(r.stdout)
		encoder.SetIndent("", "    ")
		if err := encoder.Encode(response); err != nil {
			return fmt.Errorf("failed to encode response: %w", err)
		}
		return nil
	}

	_, err := fmt.Fprintf(r.stdout, "Printable:    %s\nAlphanumeric: %s\n",
		response.Printable.String, response.Alphanumeric.String)
	return err
}

// Run разбирает аргументы, подключается к сервису и выполняет команду
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, logger *zap.Logger) error {
	opts, err := ParseOptions(args, stderr)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	fetch := FetchFunc(client.New(opts.Server.String(), &http.Client{Timeout: requestTimeout}).Fetch)
	if opts.GRPCAddress != "" {
		conn, err := grpc.NewClient(opts.GRPCAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("failed to connect to %s: %w", opts.GRPCAddress, err)
		}
		defer conn.Close()

		fetch = grpcapi.NewClient(conn).Generate
	}

	copier := clipboard.NewCopier(logger, []clipboard.Strategy{
		system.NewNativeStrategy(),
		system.NewCommandStrategy(),
	})

	return NewRunner(fetch, copier, stdout).Execute(ctx, opts)
}

// terminalButton хранит надпись, которую затем печатает Runner
type terminalButton struct {
	id    string
	label string
}

func (b *terminalButton) ID() string            { return b.id }
func (b *terminalButton) Label() string         { return b.label }
func (b *terminalButton) SetLabel(label string) { b.label = label }
func (b *terminalButton) AddClass(string)       {}
func (b *terminalButton) RemoveClass(string)    {}
