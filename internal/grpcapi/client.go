package grpcapi

import (
	"context"
	"fmt"

	"github.com/avc-dev/random-string/internal/model"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client клиент сервиса randstr.v1.Generator
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient создает клиента поверх установленного соединения
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// Generate запрашивает пару строк заданных длин
func (c *Client) Generate(ctx context.Context, printable, alphanumeric int) (model.Response, error) {
	in, err := structpb.NewStruct(map[string]any{
		"p": printable,
		"a": alphanumeric,
	})
	if err != nil {
		return model.Response{}, fmt.Errorf("failed to build request: %w", err)
	}

	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, GenerateMethod, in, out); err != nil {
		return model.Response{}, fmt.Errorf("generate call failed: %w", err)
	}

	response, err := decodeResponse(out)
	if err != nil {
		return model.Response{}, fmt.Errorf("failed to decode response: %w", err)
	}

	return response, nil
}
