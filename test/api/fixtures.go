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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/KirillTsaregorodtsev/qaa-learn/pkg/client"
	"github.com/KirillTsaregorodtsev/qaa-learn/pkg/fake"
	"github.com/KirillTsaregorodtsev/qaa-learn/pkg/reqres"
	"github.com/KirillTsaregorodtsev/qaa-learn/pkg/schema"
)

// Environment is everything a spec needs to talk to the API under test.
type Environment struct {
	Config  *TestConfig
	Logger  *zap.Logger
	BaseURL string
	API     *reqres.ReqresIn
}

// NewEnvironment loads configuration and builds a client.  When no API is
// configured a fresh fake server is started and torn down with each test, so
// tests never observe each other's writes.  Call it from a setup node.
func NewEnvironment() *Environment {
	config, err := LoadTestConfig()
	Expect(err).NotTo(HaveOccurred())

	logger, closeLogger, err := NewLogger(config)
	Expect(err).NotTo(HaveOccurred())

	DeferCleanup(closeLogger)

	baseURL := config.BaseURL

	if config.UseFake() {
		server := httptest.NewServer(fake.NewHandler(fake.NewStore(), logger.Named("fake")))
		DeferCleanup(server.Close)

		baseURL = server.URL
	}

	return &Environment{
		Config:  config,
		Logger:  logger,
		BaseURL: baseURL,
		API:     NewAPIClient(config, baseURL, logger),
	}
}

// Live reports whether tests run against a real deployment.  Writes are not
// persisted by reqres.in so round trip checks only hold against the fake.
func (e *Environment) Live() bool {
	return !e.Config.UseFake()
}

// UserPayloadBuilder builds user payloads for testing.
type UserPayloadBuilder struct {
	payload map[string]any
}

// NewUserPayload creates a new user payload builder with unique defaults.
func NewUserPayload() *UserPayloadBuilder {
	return &UserPayloadBuilder{
		payload: map[string]any{
			"name": "testautomation-" + GenerateTestID(),
			"job":  "quality engineer",
		},
	}
}

// WithName sets the user name.
func (b *UserPayloadBuilder) WithName(name string) *UserPayloadBuilder {
	b.payload["name"] = name
	return b
}

// WithJob sets the user job.
func (b *UserPayloadBuilder) WithJob(job string) *UserPayloadBuilder {
	b.payload["job"] = job
	return b
}

// WithField sets an arbitrary field, values need not be well typed.
func (b *UserPayloadBuilder) WithField(name string, value any) *UserPayloadBuilder {
	b.payload[name] = value
	return b
}

// Without removes a field.
func (b *UserPayloadBuilder) Without(name string) *UserPayloadBuilder {
	delete(b.payload, name)
	return b
}

// Build returns the completed user payload.
func (b *UserPayloadBuilder) Build() map[string]any {
	return b.payload
}

// CreateUserWithCleanup creates a user and schedules its deletion.
func CreateUserWithCleanup(ctx context.Context, users *reqres.Resource, payload map[string]any) *schema.CreatedUser {
	resp, err := users.Create(ctx, payload)
	if err != nil {
		LogTraceContext(err)
	}

	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusCreated))

	created, err := schema.DecodeResponse[schema.CreatedUser](resp, schema.ShapeCreatedUser)
	Expect(err).NotTo(HaveOccurred())

	GinkgoWriter.Printf("Created user with ID: %d\n", created.ID)

	// Schedule cleanup - this runs whether the test passes or fails so we don't need to clean up manually
	DeferCleanup(func(ctx SpecContext) {
		_, deleteErr := users.Delete(ctx, int(created.ID))

		switch {
		case deleteErr == nil:
			GinkgoWriter.Printf("Successfully deleted user: %d\n", created.ID)
		case client.StatusCode(deleteErr) == http.StatusNotFound:
		default:
			GinkgoWriter.Printf("Warning: Failed to delete user %d: %v\n", created.ID, deleteErr)
		}
	})

	return created
}

// ExpectStatusError asserts err is an HTTP status failure with status.
func ExpectStatusError(err error, status int) {
	Expect(err).To(HaveOccurred())
	Expect(err).To(MatchError(client.ErrStatus))
	Expect(client.StatusCode(err)).To(Equal(status))
}

// VerifyUserRecord checks the per-field expectations every listed user meets.
func VerifyUserRecord(user schema.UserData) {
	Expect(user.ID).To(BeNumerically(">", 0))
	Expect(user.Email).To(ContainSubstring("@"))
	Expect(strings.TrimSpace(user.FirstName)).NotTo(BeEmpty())
	Expect(strings.TrimSpace(user.LastName)).NotTo(BeEmpty())
	Expect(user.Avatar).To(HavePrefix("https://"))
}
