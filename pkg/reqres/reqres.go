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

// Package reqres binds the transport to the reqres.in demo API and exposes
// one facade per resource.
package reqres

import (
	"github.com/KirillTsaregorodtsev/qaa-learn/pkg/client"
)

const (
	// DefaultBaseURL is the public demo API.
	DefaultBaseURL = "https://reqres.in"

	// ResourceUsers is the user resource.
	ResourceUsers = "users"

	// ResourceUnknown is the colour catalogue, reqres calls it "unknown".
	ResourceUnknown = "unknown"
)

// ReqresIn owns the single client every facade shares.
type ReqresIn struct {
	client *client.Client
}

// New creates a client for baseURL authenticated with apiKey.
func New(baseURL, apiKey string, opts ...client.Option) *ReqresIn {
	return NewWithClient(client.New(baseURL, client.Credentials{APIKey: apiKey}, opts...))
}

// NewWithClient wraps an existing client.
func NewWithClient(c *client.Client) *ReqresIn {
	return &ReqresIn{
		client: c,
	}
}

// Client returns the underlying client.
func (r *ReqresIn) Client() *client.Client {
	return r.client
}

// Users returns a new facade over the users resource.
func (r *ReqresIn) Users() *Resource {
	return NewResource(r.client, ResourceUsers)
}

// Resources returns a new facade over the colour catalogue.
func (r *ReqresIn) Resources() *Resource {
	return NewResource(r.client, ResourceUnknown)
}

// Resource returns a new facade over any named resource.
func (r *ReqresIn) Resource(name string) *Resource {
	return NewResource(r.client, name)
}
