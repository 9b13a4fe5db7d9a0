package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"go.uber.org/zap"
)

var errEventNotMatched = errors.New("event does not match")

// lambdaHandler принимает события API Gateway v1, v2 и Lambda Function URL
// и проксирует их в HTTP роутер
type lambdaHandler struct {
	v1     *httpadapter.HandlerAdapter
	v2     *httpadapter.HandlerAdapterV2
	logger *zap.Logger
}

func newLambdaHandler(router http.Handler, logger *zap.Logger) *lambdaHandler {
	return &lambdaHandler{
		v1:     httpadapter.New(router),
		v2:     httpadapter.NewV2(router),
		logger: logger,
	}
}

// Invoke реализует lambda.Handler.
// Форматы перебираются по порядку, нераспознанное событие обрабатывается как GET /json.
func (h *lambdaHandler) Invoke(ctx context.Context, payload []byte) ([]byte, error) {
	handlers := []struct {
		name   string
		handle func(context.Context, []byte) ([]byte, error)
	}{
		{name: "apigateway-v2", handle: h.tryAPIGatewayV2},
		{name: "function-url", handle: h.tryFunctionURL},
		{name: "apigateway-v1", handle: h.tryAPIGatewayV1},
		{name: "generic", handle: h.tryGeneric},
	}

	for _, candidate := range handlers {
		result, err := candidate.handle(ctx, payload)
		if err == nil {
			h.logger.Debug("lambda event handled", zap.String("format", candidate.name))
			return result, nil
		}
		if !errors.Is(err, errEventNotMatched) {
			h.logger.Warn("lambda event handling failed", zap.String("format", candidate.name), zap.Error(err))
		}
	}

	h.logger.Debug("lambda event not recognized, routing to /json")
	return h.fallback(ctx, payload)
}

func (h *lambdaHandler) tryAPIGatewayV2(ctx context.Context, payload []byte) ([]byte, error) {
	var req events.APIGatewayV2HTTPRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, fmt.Errorf("%w: %w", errEventNotMatched, err)
	}
	if req.Version != "2.0" && req.RequestContext.HTTP.Method == "" {
		return nil, errEventNotMatched
	}

	return h.proxyV2(ctx, req)
}

func (h *lambdaHandler) tryFunctionURL(ctx context.Context, payload []byte) ([]byte, error) {
	var req events.LambdaFunctionURLRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, fmt.Errorf("%w: %w", errEventNotMatched, err)
	}
	if req.RawPath == "" && req.RequestContext.HTTP.Method == "" {
		return nil, errEventNotMatched
	}

	return h.proxyV2(ctx, functionURLToV2(req))
}

func (h *lambdaHandler) tryAPIGatewayV1(ctx context.Context, payload []byte) ([]byte, error) {
	var req events.APIGatewayProxyRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, fmt.Errorf("%w: %w", errEventNotMatched, err)
	}
	if req.HTTPMethod == "" && req.Path == "" && req.RequestContext.RequestID == "" {
		return nil, errEventNotMatched
	}

	return h.proxyV1(ctx, req)
}

// tryGeneric приводит произвольный JSON к v2, если в нем указана версия 2.0,
// или к v1, если есть httpMethod, path или resource
func (h *lambdaHandler) tryGeneric(ctx context.Context, payload []byte) ([]byte, error) {
	var generic map[string]any
	if err := json.Unmarshal(payload, &generic); err != nil {
		return nil, fmt.Errorf("%w: %w", errEventNotMatched, err)
	}

	if version, _ := generic["version"].(string); version == "2.0" {
		var req events.APIGatewayV2HTTPRequest
		if err := remarshal(generic, &req); err == nil {
			return h.proxyV2(ctx, req)
		}
	}

	_, hasMethod := generic["httpMethod"]
	if hasMethod || generic["path"] != nil || generic["resource"] != nil {
		var req events.APIGatewayProxyRequest
		if err := remarshal(generic, &req); err == nil {
			return h.proxyV1(ctx, req)
		}
	}

	return nil, errEventNotMatched
}

// fallback обрабатывает любое событие как GET /json
func (h *lambdaHandler) fallback(ctx context.Context, payload []byte) ([]byte, error) {
	req := events.APIGatewayProxyRequest{
		Path:              "/json",
		HTTPMethod:        http.MethodGet,
		Headers:           map[string]string{"Content-Type": "application/json"},
		MultiValueHeaders: map[string][]string{},
		Body:              string(payload),
	}

	result, err := h.proxyV1(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to route event to /json: %w", err)
	}
	return result, nil
}

func (h *lambdaHandler) proxyV2(ctx context.Context, req events.APIGatewayV2HTTPRequest) ([]byte, error) {
	resp, err := h.v2.ProxyWithContext(ctx, req)
	if err != nil {
		return nil, err
	}
	return json.Marshal(resp)
}

func (h *lambdaHandler) proxyV1(ctx context.Context, req events.APIGatewayProxyRequest) ([]byte, error) {
	resp, err := h.v1.ProxyWithContext(ctx, req)
	if err != nil {
		return nil, err
	}
	return json.Marshal(sanitizeV1Response(resp))
}

// sanitizeV1Response гарантирует непустые карты заголовков и копирует
// Content-Type из MultiValueHeaders в Headers для совместимости с ALB
func sanitizeV1Response(resp events.APIGatewayProxyResponse) events.APIGatewayProxyResponse {
	if resp.Headers == nil {
		resp.Headers = map[string]string{}
	}
	if resp.MultiValueHeaders == nil {
		resp.MultiValueHeaders = map[string][]string{}
	}
	if ctype := resp.MultiValueHeaders["Content-Type"]; len(ctype) > 0 {
		resp.Headers["Content-Type"] = ctype[0]
	}
	return resp
}

// functionURLToV2 переводит событие Lambda Function URL в формат API Gateway v2
func functionURLToV2(f events.LambdaFunctionURLRequest) events.APIGatewayV2HTTPRequest {
	return events.APIGatewayV2HTTPRequest{
		Version:               "2.0",
		RouteKey:              "$default",
		RawPath:               f.RawPath,
		RawQueryString:        f.RawQueryString,
		Cookies:               f.Cookies,
		Headers:               f.Headers,
		QueryStringParameters: f.QueryStringParameters,
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			AccountID:  f.RequestContext.AccountID,
			RequestID:  f.RequestContext.RequestID,
			DomainName: f.RequestContext.DomainName,
			TimeEpoch:  f.RequestContext.TimeEpoch,
			HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{
				Method:    f.RequestContext.HTTP.Method,
				Path:      f.RequestContext.HTTP.Path,
				Protocol:  f.RequestContext.HTTP.Protocol,
				SourceIP:  f.RequestContext.HTTP.SourceIP,
				UserAgent: f.RequestContext.HTTP.UserAgent,
			},
		},
		Body:            f.Body,
		IsBase64Encoded: f.IsBase64Encoded,
	}
}

func remarshal(in map[string]any, out any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
