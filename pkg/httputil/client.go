package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/matzehuels/gridwork/pkg/errors"
)

const httpTimeout = 10 * time.Second

// Client sends JSON requests to a gridwork driver.
type Client struct {
	base     string
	http     *http.Client
	attempts int
	delay    time.Duration
}

// ClientOption configures a [Client].
type ClientOption func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithRetry sets the retry attempts and initial delay.
func WithRetry(attempts int, delay time.Duration) ClientOption {
	return func(c *Client) { c.attempts, c.delay = attempts, delay }
}

// NewClient creates a client for the driver at base, e.g.
// "http://localhost:8080".
func NewClient(base string, opts ...ClientOption) *Client {
	c := &Client{
		base:     strings.TrimRight(base, "/"),
		http:     &http.Client{Timeout: httpTimeout},
		attempts: DefaultAttempts,
		delay:    DefaultDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get fetches path and decodes the JSON response into v.
func (c *Client) Get(ctx context.Context, path string, v any) error {
	return c.do(ctx, http.MethodGet, path, nil, v)
}

// Post sends body as JSON to path and decodes the response into v. v may be
// nil to discard the response.
func (c *Client) Post(ctx context.Context, path string, body, v any) error {
	var data []byte
	if body != nil {
		var err error
		if data, err = json.Marshal(body); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "encode request")
		}
	}
	return c.do(ctx, http.MethodPost, path, data, v)
}

// GetText fetches path and returns the body verbatim.
func (c *Client) GetText(ctx context.Context, path string) (string, error) {
	var out string
	err := Retry(ctx, c.attempts, c.delay, func() error {
		body, err := c.send(ctx, http.MethodGet, path, nil)
		if err != nil {
			return err
		}
		defer body.Close()
		b, err := io.ReadAll(body)
		out = string(b)
		return err
	})
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, data []byte, v any) error {
	return Retry(ctx, c.attempts, c.delay, func() error {
		body, err := c.send(ctx, method, path, data)
		if err != nil {
			return err
		}
		defer body.Close()
		if v == nil {
			_, err = io.Copy(io.Discard, body)
			return err
		}
		if err := json.NewDecoder(body).Decode(v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s %s", method, path)
		}
		return nil
	})
}

func (c *Client) send(ctx context.Context, method, path string, data []byte) (io.ReadCloser, error) {
	var rd io.Reader
	if data != nil {
		rd = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "build request")
	}
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RetryableError{Err: errors.Wrap(errors.ErrCodeInternal, err, "%s %s", method, path)}
	}
	if err := checkStatus(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 500 && resp.StatusCode != http.StatusNotImplemented:
		return &RetryableError{Err: fmt.Errorf("server error: status %d", resp.StatusCode)}
	}
	var eb ErrorBody
	if err := json.NewDecoder(io.LimitReader(resp.Body, MaxBodyBytes)).Decode(&eb); err != nil || eb.Error.Code == "" {
		return errors.New(errors.ErrCodeInternal, "unexpected status %d", resp.StatusCode)
	}
	return errors.New(eb.Error.Code, "%s", eb.Error.Message)
}
