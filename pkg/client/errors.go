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
	"encoding/json"
	"errors"
	"fmt"
)

// Kind classifies a transport failure.
type Kind int

const (
	// KindStatus means the server answered with a status outside 2xx.
	KindStatus Kind = iota + 1

	// KindConnection means no response was received at all.
	KindConnection
)

func (k Kind) String() string {
	switch k {
	case KindStatus:
		return "status"
	case KindConnection:
		return "connection"
	}

	return "unknown"
}

var (
	// ErrStatus matches any *Error of KindStatus via errors.Is.
	ErrStatus = errors.New("unexpected response status")

	// ErrConnection matches any *Error of KindConnection via errors.Is.
	ErrConnection = errors.New("connection failed")
)

// Error is the failure variant of a request.
type Error struct {
	Kind   Kind
	Method string
	URL    string

	// StatusCode and Body are only set for KindStatus.
	StatusCode int
	Body       []byte

	// TraceID can be used to find the request in server side logs.
	TraceID string

	// Err is the underlying cause for KindConnection.
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("%s %s: status %d, body: %s (trace ID: %s)", e.Method, e.URL, e.StatusCode, string(e.Body), e.TraceID)
	case KindConnection:
		return fmt.Sprintf("%s %s: %v (trace ID: %s)", e.Method, e.URL, e.Err, e.TraceID)
	}

	return fmt.Sprintf("%s %s: %s failure", e.Method, e.URL, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is allows errors.Is(err, ErrStatus) and errors.Is(err, ErrConnection).
func (e *Error) Is(target error) bool {
	switch target {
	case ErrStatus:
		return e.Kind == KindStatus
	case ErrConnection:
		return e.Kind == KindConnection
	}

	return false
}

// JSON decodes the error body, it fails when the body is not JSON.
func (e *Error) JSON() (any, error) {
	var body any
	if err := json.Unmarshal(e.Body, &body); err != nil {
		return nil, fmt.Errorf("decoding error body: %w", err)
	}

	return body, nil
}

// StatusCode returns the HTTP status carried by err, or 0 if err is not
// a status failure.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindStatus {
		return e.StatusCode
	}

	return 0
}
