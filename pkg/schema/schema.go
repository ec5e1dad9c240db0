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

// Package schema holds the expected shapes of API answers.  Shapes are
// declared as OpenAPI component schemas, a body that drifts from its shape
// fails validation with every violation listed.
package schema

import (
	"cmp"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/KirillTsaregorodtsev/qaa-learn/pkg/client"
)

// Shape names a component schema.
type Shape string

const (
	ShapeSupport      Shape = "Support"
	ShapeUserData     Shape = "UserData"
	ShapeUser         Shape = "User"
	ShapeUsersList    Shape = "UsersList"
	ShapeCreatedUser  Shape = "CreatedUser"
	ShapeUpdatedUser  Shape = "UpdatedUser"
	ShapeResourceData Shape = "ResourceData"
	ShapeResource     Shape = "Resource"
	ShapeResourceList Shape = "ResourceList"
)

// ErrUnknownShape is returned for shapes missing from the document.
var ErrUnknownShape = errors.New("unknown shape")

//go:embed reqres.yaml
var document []byte

//nolint:gochecknoglobals
var (
	loadOnce sync.Once
	loaded   *openapi3.T
	errLoad  error
)

// Document returns the parsed and validated shape document.
func Document() (*openapi3.T, error) {
	loadOnce.Do(func() {
		loader := openapi3.NewLoader()

		doc, err := loader.LoadFromData(document)
		if err != nil {
			errLoad = fmt.Errorf("loading schema document: %w", err)
			return
		}

		if err := doc.Validate(context.Background()); err != nil {
			errLoad = fmt.Errorf("validating schema document: %w", err)
			return
		}

		loaded = doc
	})

	return loaded, errLoad
}

func lookup(shape Shape) (*openapi3.Schema, error) {
	doc, err := Document()
	if err != nil {
		return nil, err
	}

	ref, ok := doc.Components.Schemas[string(shape)]
	if !ok || ref.Value == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownShape, shape)
	}

	return ref.Value, nil
}

// Violation is a single mismatch between a body and its shape.
type Violation struct {
	// Field is a JSON pointer to the offending value.
	Field string

	Reason string
}

// ValidationError is returned when a body does not match its shape.
type ValidationError struct {
	Shape      Shape
	Violations []Violation
}

func (e *ValidationError) Error() string {
	reasons := make([]string, len(e.Violations))

	for i, v := range e.Violations {
		reasons[i] = v.Field + ": " + v.Reason
	}

	return fmt.Sprintf("body does not match %s: %s", e.Shape, strings.Join(reasons, "; "))
}

// collect flattens kin-openapi errors into violations.
func collect(err error, violations []Violation) []Violation {
	switch t := err.(type) { //nolint:errorlint
	case openapi3.MultiError:
		for _, e := range t {
			violations = collect(e, violations)
		}

		return violations
	case *openapi3.SchemaError:
		return append(violations, Violation{
			Field:  "/" + strings.Join(t.JSONPointer(), "/"),
			Reason: t.Reason,
		})
	}

	return append(violations, Violation{
		Field:  "/",
		Reason: err.Error(),
	})
}

// normalize turns encoded JSON into the generic form schemas are checked against.
func normalize(raw any) (any, error) {
	switch t := raw.(type) {
	case []byte:
		var value any
		if err := json.Unmarshal(t, &value); err != nil {
			return nil, err
		}

		return value, nil
	case json.RawMessage:
		return normalize([]byte(t))
	}

	return raw, nil
}

// Validate checks a decoded JSON value (or encoded JSON bytes) against shape.
func Validate(raw any, shape Shape) error {
	s, err := lookup(shape)
	if err != nil {
		return err
	}

	value, err := normalize(raw)
	if err != nil {
		return &ValidationError{
			Shape:      shape,
			Violations: []Violation{{Field: "/", Reason: "body is not JSON: " + err.Error()}},
		}
	}

	if err := s.VisitJSON(value, openapi3.MultiErrors()); err != nil {
		violations := collect(err, nil)

		slices.SortFunc(violations, func(a, b Violation) int {
			return cmp.Or(cmp.Compare(a.Field, b.Field), cmp.Compare(a.Reason, b.Reason))
		})

		return &ValidationError{
			Shape:      shape,
			Violations: violations,
		}
	}

	return nil
}

// Decode validates raw against shape and decodes it into a typed record.
func Decode[T any](raw any, shape Shape) (*T, error) {
	if err := Validate(raw, shape); err != nil {
		return nil, err
	}

	value, err := normalize(raw)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", shape, err)
	}

	// Values can match a pattern and still not parse, e.g. February 30th.
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &ValidationError{
			Shape:      shape,
			Violations: []Violation{{Field: "/", Reason: err.Error()}},
		}
	}

	return &out, nil
}

// DecodeResponse validates and decodes a response body, text bodies always
// fail validation.
func DecodeResponse[T any](resp *client.Response, shape Shape) (*T, error) {
	if resp == nil || !resp.IsJSON {
		return nil, &ValidationError{
			Shape:      shape,
			Violations: []Violation{{Field: "/", Reason: "body is not JSON"}},
		}
	}

	return Decode[T](resp.Body, shape)
}
