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

// Package api provides integration test utilities for the reqres API.
//
// Suites drive the API through the same facade applications use, the
// reqres package, rather than hand built requests.  This keeps the
// transport's behaviour (credential headers, error taxonomy, JSON parsing)
// under test on every run.
//
// # Environment
//
// When API_BASE_URL is unset every spec gets its own in-process fake
// server.  Pointing API_BASE_URL at https://reqres.in runs the same suites
// against the live service, checks that need persisted writes are skipped
// there.
package api
