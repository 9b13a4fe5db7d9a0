package grpcapi

import "errors"

var ErrMalformedResponse = errors.New("malformed generate response")
