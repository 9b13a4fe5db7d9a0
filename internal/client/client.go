// Package client содержит клиентскую логику страницы генератора:
// обновление формы, перезагрузку страницы в обход кеша и HTTP клиент /json.
//
// DOM абстрагирован интерфейсами Form, Display и Navigator, поэтому
// один и тот же код работает в браузере (js/wasm) и в тестах.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/avc-dev/random-string/internal/model"
)

// Client обращается к HTTP API генератора
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New создает клиента для сервиса с адресом baseURL
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// BuildURL возвращает адрес запроса /json?p=<printable>&a=<alphanumeric>
func (c *Client) BuildURL(printable, alphanumeric int) string {
	return fmt.Sprintf("%s/json?p=%d&a=%d", c.baseURL, printable, alphanumeric)
}

// wireResponse повторяет форму JSON ответа; указатели позволяют отличить
// отсутствующие поля от пустых строк
type wireResponse struct {
	Printable    *wireString `json:"printable"`
	Alphanumeric *wireString `json:"alphanumeric"`
}

type wireString struct {
	Length int     `json:"length"`
	String *string `json:"string"`
}

// Fetch запрашивает пару строк, запрещая ответ из кеша
func (c *Client) Fetch(ctx context.Context, printable, alphanumeric int) (model.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BuildURL(printable, alphanumeric), nil)
	if err != nil {
		return model.Response{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Response{}, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Response{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var payload wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return model.Response{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if payload.Printable == nil || payload.Printable.String == nil ||
		payload.Alphanumeric == nil || payload.Alphanumeric.String == nil {
		return model.Response{}, fmt.Errorf("%w: missing string fields", ErrMalformedResponse)
	}

	return model.Response{
		Printable: model.RandomString{
			Length: payload.Printable.Length,
			String: *payload.Printable.String,
		},
		Alphanumeric: model.RandomString{
			Length: payload.Alphanumeric.Length,
			String: *payload.Alphanumeric.String,
		},
	}, nil
}
