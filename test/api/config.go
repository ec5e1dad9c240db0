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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/KirillTsaregorodtsev/qaa-learn/pkg/logging"
)

// ErrInvalidConfig is returned when a setting cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

// TestConfig is the environment suites run against.
type TestConfig struct {
	// BaseURL is the API under test, empty runs suites against an
	// in-process fake.
	BaseURL        string
	APIKey         string
	RequestTimeout time.Duration
	LogLevel       string
	LogFile        string
	LogRequests    bool
	LogResponses   bool
}

// UseFake reports whether suites should start their own server.
func (c *TestConfig) UseFake() bool {
	return c.BaseURL == ""
}

// LoadTestConfig loads configuration from environment variables and .env files.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	v := viper.New()

	v.SetDefault("api_base_url", "")
	v.SetDefault("api_key", "")
	v.SetDefault("request_timeout", 30*time.Second)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "logs/test.log")
	v.SetDefault("log_requests", false)
	v.SetDefault("log_responses", false)

	v.AutomaticEnv()

	config := &TestConfig{
		BaseURL:        v.GetString("api_base_url"),
		APIKey:         v.GetString("api_key"),
		RequestTimeout: v.GetDuration("request_timeout"),
		LogLevel:       v.GetString("log_level"),
		LogFile:        v.GetString("log_file"),
		LogRequests:    v.GetBool("log_requests"),
		LogResponses:   v.GetBool("log_responses"),
	}

	if config.RequestTimeout <= 0 {
		return nil, fmt.Errorf("%w: REQUEST_TIMEOUT must be positive", ErrInvalidConfig)
	}

	return config, nil
}

// loadEnvFile loads test/.env from the project root if there is one.  In CI
// the environment is set directly.
func loadEnvFile() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}

	root, err := logging.ProjectRoot(wd)
	if err != nil {
		return
	}

	envPath := filepath.Join(root, "test", ".env")

	if _, err := os.Stat(envPath); err != nil {
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}
