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

package client

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Option configures a Client.
type Option func(*Client)

// WithSession injects a session, otherwise one is created on first use.
func WithSession(session *resty.Client) Option {
	return func(c *Client) {
		c.session.client = session
	}
}

// WithLogger sets the logger, the default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeout sets the default timeout of a lazily created session.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.session.timeout = timeout
	}
}

// WithTracing toggles W3C trace context headers, on by default.
func WithTracing(enabled bool) Option {
	return func(c *Client) {
		c.tracing = enabled
	}
}

// RequestOptions are forwarded verbatim to the session.
type RequestOptions struct {
	// Query is added to the request URL.
	Query url.Values

	// Body is JSON encoded when HasBody is set.
	Body    any
	HasBody bool

	// Timeout bounds the request when positive.
	Timeout time.Duration

	// Header holds additional headers.  Credential headers cannot be
	// overridden here.
	Header http.Header
}

// RequestOption configures a single request.
type RequestOption func(*RequestOptions)

// NewRequestOptions applies opts in order.
func NewRequestOptions(opts ...RequestOption) *RequestOptions {
	o := &RequestOptions{}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// WithJSON sets the request body.
func WithJSON(body any) RequestOption {
	return func(o *RequestOptions) {
		o.Body = body
		o.HasBody = true
	}
}

// WithQuery merges query parameters into the request.
func WithQuery(query url.Values) RequestOption {
	return func(o *RequestOptions) {
		if o.Query == nil {
			o.Query = url.Values{}
		}

		for k, v := range query {
			o.Query[k] = append(o.Query[k], v...)
		}
	}
}

// WithRequestTimeout sets a deadline for this request only.
func WithRequestTimeout(timeout time.Duration) RequestOption {
	return func(o *RequestOptions) {
		o.Timeout = timeout
	}
}

// WithHeader adds a header to the request.
func WithHeader(key, value string) RequestOption {
	return func(o *RequestOptions) {
		if o.Header == nil {
			o.Header = http.Header{}
		}

		o.Header.Add(key, value)
	}
}
