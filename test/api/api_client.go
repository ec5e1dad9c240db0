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

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"errors"

	"github.com/go-resty/resty/v2"
	"github.com/onsi/ginkgo/v2"
	"go.uber.org/zap"

	"github.com/KirillTsaregorodtsev/qaa-learn/pkg/client"
	"github.com/KirillTsaregorodtsev/qaa-learn/pkg/reqres"
)

// NewAPIClient returns the facade suites drive.  The session dumps requests
// and responses when asked to by the configuration.
func NewAPIClient(config *TestConfig, baseURL string, logger *zap.Logger) *reqres.ReqresIn {
	session := resty.New().
		SetTimeout(config.RequestTimeout).
		SetRetryCount(0)

	if config.LogRequests {
		session.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			logger.Info("request",
				zap.String("method", req.Method),
				zap.String("url", req.URL),
				zap.Any("query", req.QueryParam),
				zap.Any("body", req.Body))

			return nil
		})
	}

	if config.LogResponses {
		session.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			logger.Info("response",
				zap.String("method", resp.Request.Method),
				zap.String("url", resp.Request.URL),
				zap.Int("status", resp.StatusCode()),
				zap.Duration("duration", resp.Time()),
				zap.ByteString("body", resp.Body()))

			return nil
		})
	}

	return reqres.New(baseURL, config.APIKey,
		client.WithSession(session),
		client.WithLogger(logger),
	)
}

// LogTraceContext prints the trace ID of a failed request so it can be found
// in the remote logs.
func LogTraceContext(err error) {
	var clientErr *client.Error
	if !errors.As(err, &clientErr) || clientErr.TraceID == "" {
		return
	}

	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", clientErr.TraceID)
}
