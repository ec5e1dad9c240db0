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

const (
	// HeaderAuthorization carries the API key.
	HeaderAuthorization = "Authorization"

	// HeaderContentType declares the request body encoding.
	HeaderContentType = "Content-Type"

	// AuthScheme prefixes the API key in the authorization header.
	AuthScheme = "APIKey"

	// ContentTypeJSON is the default content type.
	ContentTypeJSON = "application/json"
)

// Credentials are the values every request's headers are derived from.
// They are immutable once bound to a client, use Client.WithCredentials
// to talk to the same API with another key.
type Credentials struct {
	// APIKey may be empty, which selects the anonymous tier of the API.
	APIKey string

	// ContentType defaults to ContentTypeJSON when empty.
	ContentType string
}

// Authorization returns the authorization header value.
func (c Credentials) Authorization() string {
	return AuthScheme + " " + c.APIKey
}

// Headers returns the complete set of credential derived headers.
// A new map is returned on each call.
func (c Credentials) Headers() map[string]string {
	contentType := c.ContentType
	if contentType == "" {
		contentType = ContentTypeJSON
	}

	return map[string]string{
		HeaderAuthorization: c.Authorization(),
		HeaderContentType:   contentType,
	}
}
