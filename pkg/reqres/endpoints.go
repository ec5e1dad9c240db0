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
	"strconv"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Collection is the path of a whole resource.
func (e *Endpoints) Collection(resource string) string {
	return fmt.Sprintf("/api/%s",
		url.PathEscape(resource))
}

// Item is the path of a single member of a resource.
func (e *Endpoints) Item(resource string, id int) string {
	return fmt.Sprintf("/api/%s/%s",
		url.PathEscape(resource), url.PathEscape(strconv.Itoa(id)))
}
