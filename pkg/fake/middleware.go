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
	"errors"
	"net/http"
	"strings"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/KirillTsaregorodtsev/qaa-learn/pkg/client"
)

var ErrUnauthorized = errors.New("missing API key")

// Authorization rejects requests whose Authorization header is present but
// does not use the APIKey scheme.  Absent headers are let through as reqres
// does for its free tier.
func Authorization(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(client.HeaderAuthorization)
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		scheme, _, _ := strings.Cut(header, " ")
		if scheme != client.AuthScheme {
			writeError(w, http.StatusUnauthorized, ErrUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Logger records one structured line per request.
func Logger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Debug("request served",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", chimiddleware.GetReqID(r.Context())),
				zap.String("traceparent", r.Header.Get("Traceparent")),
			)
		})
	}
}
