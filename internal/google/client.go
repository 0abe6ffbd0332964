package google

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/magscene/magsav-api/internal/metrics"
)

// APIError is a non-2xx answer from a Google API.
type APIError struct {
	API        string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("google %s api: status %d: %s", e.API, e.StatusCode, e.Body)
}

func (e *APIError) retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// IsNotFound reports whether err is a 404 or 410 answer.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusNotFound || apiErr.StatusCode == http.StatusGone)
}

type clientOptions struct {
	timeout  time.Duration
	attempts uint
	delay    time.Duration
}

// apiClient sends JSON requests to one Google API through the OAuth2 client,
// throttled by a limiter shared by all APIs and retried on 429 and 5xx.
type apiClient struct {
	api     string
	http    *http.Client
	limiter *rate.Limiter
	opts    clientOptions
	metrics *metrics.Metrics
}

func newAPIClient(api string, httpClient *http.Client, limiter *rate.Limiter, opts clientOptions, m *metrics.Metrics) *apiClient {
	if opts.attempts == 0 {
		opts.attempts = 1
	}

	return &apiClient{
		api:     api,
		http:    httpClient,
		limiter: limiter,
		opts:    opts,
		metrics: m,
	}
}

func (c *apiClient) do(ctx context.Context, method, url string, in, out any) error {
	var payload []byte
	if in != nil {
		var err error
		if payload, err = json.Marshal(in); err != nil {
			return fmt.Errorf("json.Marshal -> %w", err)
		}
	}

	err := retry.Do(
		func() error {
			return c.once(ctx, method, url, payload, out)
		},
		retry.Context(ctx),
		retry.Attempts(c.opts.attempts),
		retry.Delay(c.opts.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			var apiErr *APIError
			return errors.As(err, &apiErr) && apiErr.retryable()
		}),
		retry.OnRetry(func(attempt uint, err error) {
			c.metrics.RecordGoogleCall(c.api, "retried")
			zap.L().Debug("Retrying Google API call",
				zap.String("api", c.api), zap.String("method", method), zap.Uint("attempt", attempt+1), zap.Error(err))
		}),
	)
	if err != nil {
		c.metrics.RecordGoogleCall(c.api, "error")
		return err
	}

	c.metrics.RecordGoogleCall(c.api, "ok")
	return nil
}

func (c *apiClient) once(ctx context.Context, method, url string, payload []byte, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return retry.Unrecoverable(err)
		}
	}

	if c.opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.timeout)
		defer cancel()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return retry.Unrecoverable(err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return &APIError{API: c.api, StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(raw))}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s response -> %w", c.api, err)
	}

	return nil
}
