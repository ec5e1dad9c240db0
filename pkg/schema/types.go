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

package schema

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Support is the sponsor block reqres attaches to most answers.
type Support struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// UserData is a single user record.
type UserData struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
}

// User is the answer to GET /api/users/{id}.
type User struct {
	Data    UserData `json:"data"`
	Support *Support `json:"support,omitempty"`
}

// Page is the pagination metadata shared by list answers.
type Page struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// UsersList is the answer to GET /api/users.
type UsersList struct {
	Page

	Data    []UserData `json:"data"`
	Support *Support   `json:"support,omitempty"`
}

// ID is an identifier that may be encoded as a number or a numeric string.
type ID int

// UnmarshalJSON accepts 7 and "7".
func (i *ID) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)

	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid id %s: %w", string(data), err)
	}

	*i = ID(n)

	return nil
}

// CreatedUser is the answer to POST /api/users.
type CreatedUser struct {
	ID        ID        `json:"id"`
	Name      string    `json:"name,omitempty"`
	Job       string    `json:"job,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// UpdatedUser is the answer to PUT and PATCH /api/users/{id}.
type UpdatedUser struct {
	Name      string    `json:"name,omitempty"`
	Job       string    `json:"job,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ResourceData is a colour from the catalogue.
type ResourceData struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Year         int    `json:"year"`
	Color        string `json:"color"`
	PantoneValue string `json:"pantone_value"`
}

// Resource is the answer to GET /api/unknown/{id}.
type Resource struct {
	Data    ResourceData `json:"data"`
	Support *Support     `json:"support,omitempty"`
}

// ResourceList is the answer to GET /api/unknown.
type ResourceList struct {
	Page

	Data    []ResourceData `json:"data"`
	Support *Support       `json:"support,omitempty"`
}
