package ports

import (
	"context"
	"net/url"
)

type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

type Response struct {
	StatusCode int
	Body       []byte
}

// Transport performs one logical request. Transient failures are retried
// internally and never surface as a Response.
type Transport interface {
	Do(ctx context.Context, req Request) (Response, error)
}
