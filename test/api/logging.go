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

package api

import (
	"io"

	"github.com/onsi/ginkgo/v2"
	"go.uber.org/zap"

	"github.com/KirillTsaregorodtsev/qaa-learn/pkg/logging"
)

// NewLogger builds the suite logger, lines go to the Ginkgo writer and to
// the configured log file under the project root.  The returned function
// flushes and closes the log file.
func NewLogger(config *TestConfig) (*zap.Logger, func(), error) {
	return logging.New(logging.Options{
		Level:   config.LogLevel,
		File:    config.LogFile,
		Writers: []io.Writer{ginkgo.GinkgoWriter},
	})
}
