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

package reqres

import (
	"fmt"
	"net/url"

	"github.com/oapi-codegen/runtime"
)

// ListParams are the optional query parameters of a list request.
type ListParams struct {
	// Page is 1-indexed.
	Page *int

	// PerPage defaults to 6 server side.
	PerPage *int

	// Delay asks the server to wait this many seconds before answering.
	Delay *int

	// Extra is passed through untouched.
	Extra url.Values
}

// Query encodes the parameters as form style query values.
func (p ListParams) Query() (url.Values, error) {
	query := url.Values{}

	params := []struct {
		name  string
		value *int
	}{
		{"page", p.Page},
		{"per_page", p.PerPage},
		{"delay", p.Delay},
	}

	for _, param := range params {
		if param.value == nil {
			continue
		}

		queryFrag, err := runtime.StyleParamWithLocation("form", true, param.name, runtime.ParamLocationQuery, *param.value)
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", param.name, err)
		}

		parsed, err := url.ParseQuery(queryFrag)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", param.name, err)
		}

		for k, v := range parsed {
			for _, v2 := range v {
				query.Add(k, v2)
			}
		}
	}

	for k, v := range p.Extra {
		for _, v2 := range v {
			query.Add(k, v2)
		}
	}

	return query, nil
}
