// Package grpcapi публикует генерацию строк через gRPC.
//
// Сообщения передаются как google.protobuf.Struct, поэтому сервис
// не требует сгенерированного кода.
package grpcapi

import (
	"context"

	"github.com/avc-dev/random-string/internal/model"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName    = "randstr.v1.Generator"
	GenerateMethod = "/" + ServiceName + "/Generate"
)

// GeneratorServer серверная часть сервиса randstr.v1.Generator
type GeneratorServer interface {
	Generate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// StringsUsecase определяет интерфейс бизнес-логики генерации строк
type StringsUsecase interface {
	GenerateStrings(req model.LengthRequest) (model.Response, error)
}

var generatorServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GeneratorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Generate",
			Handler:    generateHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "randstr/v1/generator.proto",
}

// RegisterGeneratorServer регистрирует сервис на gRPC сервере
func RegisterGeneratorServer(s grpc.ServiceRegistrar, srv GeneratorServer) {
	s.RegisterService(&generatorServiceDesc, srv)
}

func generateHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GeneratorServer).Generate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GenerateMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GeneratorServer).Generate(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}
