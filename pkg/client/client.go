/*
Copyright 2024-2025 the Unikorn Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package client provides the authenticated transport used to talk to a
// JSON REST API.  Every request carries headers derived from the client's
// credentials, answers outside 2xx are returned as errors and successful
// bodies are parsed as JSON, falling back to text.
package client

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// DefaultTimeout applies to lazily created sessions.
const DefaultTimeout = 30 * time.Second

// session is shared by a client and all clients derived from it.
type session struct {
	once    sync.Once
	client  *resty.Client
	timeout time.Duration
}

func (s *session) get() *resty.Client {
	s.once.Do(func() {
		if s.client == nil {
			s.client = newSession(s.timeout)
		}
	})

	return s.client
}

// newSession creates a resty client with connection reuse and no retries.
func newSession(timeout time.Duration) *resty.Client {
	c := resty.New()
	c.SetTimeout(timeout)
	c.SetRetryCount(0)

	return c
}

// Client issues authenticated requests against a single base URL.
// A Client may be used sequentially, give each concurrent worker its own.
type Client struct {
	baseURL     string
	credentials Credentials
	session     *session
	logger      *zap.Logger
	tracing     bool
}

// New returns a client for baseURL.
func New(baseURL string, credentials Credentials, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		credentials: credentials,
		session: &session{
			timeout: DefaultTimeout,
		},
		logger:  zap.NewNop(),
		tracing: true,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the URL every request path is appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Credentials returns the credentials headers are derived from.
func (c *Client) Credentials() Credentials {
	return c.credentials
}

// WithCredentials returns a client that shares this client's session but
// authenticates with other credentials.
func (c *Client) WithCredentials(credentials Credentials) *Client {
	clone := *c
	clone.credentials = credentials

	return &clone
}

// Request sends method to the base URL joined with path, the path must
// start with a separator.  Redirects are followed by the session, any
// final status outside 2xx, including an unfollowed 3xx, is a KindStatus error.
func (c *Client) Request(ctx context.Context, method, path string, opts ...RequestOption) (*Response, error) {
	options := NewRequestOptions(opts...)

	if options.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, options.Timeout)
		defer cancel()
	}

	fullURL := c.baseURL + path

	req := c.session.get().R().SetContext(ctx)

	if len(options.Header) > 0 {
		req.SetHeaderMultiValues(options.Header)
	}

	// Credential headers are set last, they replace any session default
	// or per request header of the same name.
	req.SetHeaders(c.credentials.Headers())

	var traceParent string

	if c.tracing {
		traceParent = newTraceParent()
		req.SetHeader(headerTraceParent, traceParent)
		req.SetHeader(headerTraceState, traceState)
	}

	if len(options.Query) > 0 {
		req.SetQueryParamsFromValues(options.Query)
	}

	if options.HasBody {
		req.SetBody(options.Body)
	}

	start := time.Now()
	resp, err := req.Execute(method, fullURL)
	duration := time.Since(start)

	traceID := traceIDOf(traceParent)

	if err != nil {
		c.logger.Error("http request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Duration("duration", duration),
			zap.String("traceID", traceID),
			zap.Error(err))

		return nil, &Error{
			Kind:    KindConnection,
			Method:  method,
			URL:     fullURL,
			TraceID: traceID,
			Err:     err,
		}
	}

	c.logger.Debug("http request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("duration", duration),
		zap.String("traceID", traceID))

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		c.logger.Warn("unexpected status",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode()),
			zap.ByteString("body", resp.Body()),
			zap.String("traceID", traceID))

		return nil, &Error{
			Kind:       KindStatus,
			Method:     method,
			URL:        fullURL,
			StatusCode: resp.StatusCode(),
			Body:       resp.Body(),
			TraceID:    traceID,
		}
	}

	return newResponse(resp.StatusCode(), resp.Header(), resp.Body()), nil
}
