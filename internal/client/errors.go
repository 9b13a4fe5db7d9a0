package client

import "errors"

var (
	ErrRequestFailed     = errors.New("request failed")
	ErrUnexpectedStatus  = errors.New("unexpected response status")
	ErrMalformedResponse = errors.New("malformed response")
)
