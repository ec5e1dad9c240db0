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

package fake

import (
	"fmt"
	"strings"
)

// support is attached to every single record and list answer.
//
//nolint:gochecknoglobals
var support = Record{
	"url":  "https://reqres.in/#support-heading",
	"text": "To keep ReqRes free, contributions towards server costs are appreciated!",
}

func seedUsers() []Record {
	names := [][2]string{
		{"George", "Bluth"},
		{"Janet", "Weaver"},
		{"Emma", "Wong"},
		{"Eve", "Holt"},
		{"Charles", "Morris"},
		{"Tracey", "Ramos"},
		{"Michael", "Lawson"},
		{"Lindsay", "Ferguson"},
		{"Tobias", "Funke"},
		{"Byron", "Fields"},
		{"George", "Edwards"},
		{"Rachel", "Howell"},
	}

	users := make([]Record, len(names))

	for i, name := range names {
		id := i + 1

		users[i] = Record{
			"id":         id,
			"email":      fmt.Sprintf("%s.%s@reqres.in", strings.ToLower(name[0]), strings.ToLower(name[1])),
			"first_name": name[0],
			"last_name":  name[1],
			"avatar":     fmt.Sprintf("https://reqres.in/img/faces/%d-image.jpg", id),
		}
	}

	return users
}

func seedColours() []Record {
	colours := []struct {
		name    string
		color   string
		pantone string
	}{
		{"cerulean", "#98B2D1", "15-4020"},
		{"fuchsia rose", "#C74375", "17-2031"},
		{"true red", "#BF1932", "19-1664"},
		{"aqua sky", "#7BC4C4", "14-4811"},
		{"tigerlily", "#E2583E", "17-1456"},
		{"blue turquoise", "#53B0AE", "15-5217"},
		{"sand dollar", "#DECDBE", "13-1106"},
		{"chili pepper", "#9B1B30", "19-1557"},
		{"blue iris", "#5A5B9F", "18-3943"},
		{"mimosa", "#F0C05A", "14-0848"},
		{"turquoise", "#45B5AA", "15-5519"},
		{"honeysuckle", "#D94F70", "18-2120"},
	}

	records := make([]Record, len(colours))

	for i, c := range colours {
		records[i] = Record{
			"id":            i + 1,
			"name":          c.name,
			"year":          2000 + i,
			"color":         c.color,
			"pantone_value": c.pantone,
		}
	}

	return records
}
