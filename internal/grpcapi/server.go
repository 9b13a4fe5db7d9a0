package grpcapi

import (
	"context"
	"errors"
	"math"

	"github.com/avc-dev/random-string/internal/model"
	"github.com/avc-dev/random-string/internal/usecase"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Server реализует GeneratorServer поверх usecase
type Server struct {
	usecase StringsUsecase
	logger  *zap.Logger
}

// NewServer создает новый gRPC сервер генератора
func NewServer(usecase StringsUsecase, logger *zap.Logger) *Server {
	return &Server{
		usecase: usecase,
		logger:  logger,
	}
}

// Generate генерирует пару строк. Поля запроса "p" и "a" необязательны.
func (s *Server) Generate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	lengths := model.LengthRequest{
		Printable:    lengthField(req, usecase.PrintableParam),
		Alphanumeric: lengthField(req, usecase.AlphanumericParam),
	}

	response, err := s.usecase.GenerateStrings(lengths)
	if err != nil {
		if errors.Is(err, usecase.ErrGenerationFailed) {
			return nil, status.Error(codes.Internal, "failed to generate strings")
		}
		return nil, status.Error(codes.Unknown, err.Error())
	}

	out, err := encodeResponse(response)
	if err != nil {
		s.logger.Error("failed to encode gRPC response", zap.Error(err))
		return nil, status.Error(codes.Internal, "failed to encode response")
	}

	return out, nil
}

// lengthField извлекает целочисленную длину из поля запроса.
// Нечисловые и дробные значения считаются незаданными.
func lengthField(req *structpb.Struct, key string) *int {
	if req == nil {
		return nil
	}

	value, ok := req.GetFields()[key]
	if !ok {
		return nil
	}

	number, ok := value.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return nil
	}

	n := number.NumberValue
	if n != math.Trunc(n) || math.IsInf(n, 0) {
		return nil
	}

	length := int(math.Max(math.Min(n, math.MaxInt32), math.MinInt32))
	return &length
}

func encodeResponse(response model.Response) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"printable": map[string]any{
			"length": response.Printable.Length,
			"string": response.Printable.String,
		},
		"alphanumeric": map[string]any{
			"length": response.Alphanumeric.Length,
			"string": response.Alphanumeric.String,
		},
	})
}

func decodeResponse(in *structpb.Struct) (model.Response, error) {
	var response model.Response

	fields := in.GetFields()
	printable, err := decodeRandomString(fields["printable"])
	if err != nil {
		return response, err
	}
	alphanumeric, err := decodeRandomString(fields["alphanumeric"])
	if err != nil {
		return response, err
	}

	response.Printable = printable
	response.Alphanumeric = alphanumeric
	return response, nil
}

func decodeRandomString(value *structpb.Value) (model.RandomString, error) {
	object := value.GetStructValue()
	if object == nil {
		return model.RandomString{}, ErrMalformedResponse
	}

	fields := object.GetFields()
	str, ok := fields["string"].GetKind().(*structpb.Value_StringValue)
	if !ok {
		return model.RandomString{}, ErrMalformedResponse
	}

	return model.RandomString{
		Length: int(fields["length"].GetNumberValue()),
		String: str.StringValue,
	}, nil
}
