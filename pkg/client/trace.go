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
	"crypto/rand"
	"encoding/hex"
	"strings"
)

const (
	headerTraceParent = "Traceparent"
	headerTraceState  = "Tracestate"

	traceState = "test-automation=qaa-learn"

	// W3C trace context identifier sizes in bytes.
	traceIDSize = 16
	spanIDSize  = 8
)

// randomHex returns n random bytes hex encoded.
func randomHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)

	return hex.EncodeToString(b)
}

// newTraceParent returns a sampled version 00 traceparent with a fresh trace
// so every request can be found in server logs on its own.
func newTraceParent() string {
	return strings.Join([]string{"00", randomHex(traceIDSize), randomHex(spanIDSize), "01"}, "-")
}

// traceIDOf returns the trace field of a traceparent, or the value itself
// when it is not dash separated.
func traceIDOf(traceParent string) string {
	if _, rest, ok := strings.Cut(traceParent, "-"); ok {
		id, _, _ := strings.Cut(rest, "-")
		return id
	}

	return traceParent
}
