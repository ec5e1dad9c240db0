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

//go:generate mockgen -source=resource.go -destination=mock/interfaces.go -package=mock

import (
	"context"
	"net/http"

	"github.com/KirillTsaregorodtsev/qaa-learn/pkg/client"
)

// Requester issues a single request, *client.Client implements it.
type Requester interface {
	Request(ctx context.Context, method, path string, opts ...client.RequestOption) (*client.Response, error)
}

// Resource maps CRUD operations on one API resource onto requests.
// It holds no state other than the requester it borrows, errors are
// returned exactly as the requester reported them.
type Resource struct {
	requester Requester
	name      string
	endpoints *Endpoints
}

// NewResource returns a facade for the named resource.
func NewResource(requester Requester, name string) *Resource {
	return &Resource{
		requester: requester,
		name:      name,
		endpoints: NewEndpoints(),
	}
}

// Name returns the resource name used in paths.
func (r *Resource) Name() string {
	return r.name
}

// List issues GET /api/{resource}.
func (r *Resource) List(ctx context.Context, params ListParams) (*client.Response, error) {
	query, err := params.Query()
	if err != nil {
		return nil, err
	}

	return r.requester.Request(ctx, http.MethodGet, r.endpoints.Collection(r.name), client.WithQuery(query))
}

// Create issues POST /api/{resource}.
func (r *Resource) Create(ctx context.Context, body any) (*client.Response, error) {
	return r.requester.Request(ctx, http.MethodPost, r.endpoints.Collection(r.name), client.WithJSON(body))
}

// Get issues GET /api/{resource}/{id}.
func (r *Resource) Get(ctx context.Context, id int) (*client.Response, error) {
	return r.requester.Request(ctx, http.MethodGet, r.endpoints.Item(r.name, id))
}

// Update issues PATCH /api/{resource}/{id}, only the fields in body are
// expected to change.
func (r *Resource) Update(ctx context.Context, id int, body any) (*client.Response, error) {
	return r.requester.Request(ctx, http.MethodPatch, r.endpoints.Item(r.name, id), client.WithJSON(body))
}

// Replace issues PUT /api/{resource}/{id}.
func (r *Resource) Replace(ctx context.Context, id int, body any) (*client.Response, error) {
	return r.requester.Request(ctx, http.MethodPut, r.endpoints.Item(r.name, id), client.WithJSON(body))
}

// Delete issues DELETE /api/{resource}/{id}.
func (r *Resource) Delete(ctx context.Context, id int) (*client.Response, error) {
	return r.requester.Request(ctx, http.MethodDelete, r.endpoints.Item(r.name, id))
}
