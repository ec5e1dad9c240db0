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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrNotJSON is returned when decoding a response that carried text.
var ErrNotJSON = errors.New("response body is not JSON")

// Response is the success variant of a request.
type Response struct {
	StatusCode int
	Header     http.Header

	// Raw is the unmodified response body.
	Raw []byte

	// Body is the parsed JSON document, or the raw text when the body
	// was not valid JSON.  It is nil for empty bodies.
	Body any

	// Text is set when the body could not be parsed as JSON.
	Text string

	// IsJSON reports whether Body holds a parsed JSON document.
	IsJSON bool
}

func newResponse(status int, header http.Header, raw []byte) *Response {
	r := &Response{
		StatusCode: status,
		Header:     header,
		Raw:        raw,
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return r
	}

	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		r.Text = string(raw)
		r.Body = r.Text

		return r
	}

	r.Body = body
	r.IsJSON = true

	return r
}

// Object returns the body as a JSON object.
func (r *Response) Object() (map[string]any, error) {
	if !r.IsJSON {
		return nil, ErrNotJSON
	}

	object, ok := r.Body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: body is %T, not an object", ErrNotJSON, r.Body)
	}

	return object, nil
}

// Decode unmarshals the body into v.
func (r *Response) Decode(v any) error {
	if !r.IsJSON {
		return ErrNotJSON
	}

	if err := json.Unmarshal(r.Raw, v); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}

	return nil
}
