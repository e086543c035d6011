package hertztransport

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"artifactsbot/internal/app/ports"

	"github.com/cenkalti/backoff/v5"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/network/standard"
	"github.com/cloudwego/hertz/pkg/protocol"
	"go.uber.org/zap"
)

const DefaultBaseURL = "https://api.artifactsmmo.com"

var (
	ErrTransient    = errors.New("transient transport failure")
	ErrInvalidInput = errors.New("invalid transport request")
)

type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	// MaxAttempts caps tries per request; 0 retries until ctx is done.
	MaxAttempts uint
	Backoff     time.Duration
}

type Transport struct {
	cfg    Config
	client *client.Client
	logger *zap.Logger
}

func New(cfg Config, logger *zap.Logger) (*Transport, error) {
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	c, err := client.NewClient(
		client.WithDialer(standard.NewDialer()),
		client.WithTLSConfig(&tls.Config{MinVersion: tls.VersionTLS12}),
		client.WithDialTimeout(cfg.Timeout),
		client.WithClientReadTimeout(cfg.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("build http client: %w", err)
	}
	return &Transport{cfg: cfg, client: c, logger: logger}, nil
}

func (t *Transport) Do(ctx context.Context, in ports.Request) (ports.Response, error) {
	method := strings.ToUpper(strings.TrimSpace(in.Method))
	if method == "" {
		method = http.MethodGet
	}
	var body []byte
	if method != http.MethodGet {
		payload := in.Body
		if payload == nil {
			payload = struct{}{}
		}
		b, err := json.Marshal(payload)
		if err != nil {
			return ports.Response{}, fmt.Errorf("%w: encode body: %v", ErrInvalidInput, err)
		}
		body = b
	}
	uri := t.cfg.BaseURL + in.Path
	if len(in.Query) > 0 {
		uri += "?" + in.Query.Encode()
	}

	opts := []backoff.RetryOption{
		backoff.WithBackOff(backoff.NewConstantBackOff(t.cfg.Backoff)),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, next time.Duration) {
			t.logger.Warn("request failed, retrying",
				zap.String("method", method),
				zap.String("path", in.Path),
				zap.Duration("backoff", next),
				zap.Error(err),
			)
		}),
	}
	if t.cfg.MaxAttempts > 0 {
		opts = append(opts, backoff.WithMaxTries(t.cfg.MaxAttempts))
	}
	return backoff.Retry(ctx, func() (ports.Response, error) {
		return t.once(ctx, method, uri, body)
	}, opts...)
}

func (t *Transport) once(ctx context.Context, method, uri string, body []byte) (ports.Response, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer protocol.ReleaseRequest(req)
	defer protocol.ReleaseResponse(resp)

	req.SetMethod(method)
	req.SetRequestURI(uri)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if t.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+t.cfg.Token)
	}
	if body != nil {
		req.SetBody(body)
	}

	if err := t.client.Do(ctx, req, resp); err != nil {
		return ports.Response{}, fmt.Errorf("%w: %v", ErrTransient, err)
	}
	payload := append([]byte(nil), resp.Body()...)
	if !json.Valid(payload) {
		return ports.Response{}, fmt.Errorf("%w: undecodable body (status %d)", ErrTransient, resp.StatusCode())
	}
	return ports.Response{StatusCode: resp.StatusCode(), Body: payload}, nil
}
