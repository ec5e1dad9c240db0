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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/KirillTsaregorodtsev/qaa-learn/pkg/client"
	"github.com/KirillTsaregorodtsev/qaa-learn/pkg/reqres"
	"github.com/KirillTsaregorodtsev/qaa-learn/test/api"
)

var _ = Describe("Security and Authentication", func() {
	Context("When making API requests", func() {
		Describe("Given an API key", func() {
			It("should be accepted with the APIKey scheme", func(ctx SpecContext) {
				resp, err := users.Get(ctx, 1)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))
			})

			It("should not let extra headers replace the credentials", func(ctx SpecContext) {
				if env.Live() {
					Skip("the live service decides its own authentication policy")
				}

				_, err := env.API.Client().Request(ctx, http.MethodGet, "/api/users/1",
					client.WithHeader("Authorization", "Bearer forged"))
				Expect(err).NotTo(HaveOccurred())
			})
		})

		Describe("Given rotated credentials", func() {
			It("should authenticate with the new key on a shared session", func(ctx SpecContext) {
				rotated := reqres.NewWithClient(env.API.Client().WithCredentials(client.Credentials{
					APIKey: env.Config.APIKey + "-rotated",
				}))

				Expect(rotated.Client().Credentials().Authorization()).To(HavePrefix(client.AuthScheme + " "))

				resp, err := rotated.Users().Get(ctx, 1)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))
			})
		})
	})

	Context("When submitting malicious input", func() {
		Describe("Given path traversal in a resource name", func() {
			It("should stay inside the API namespace", func(ctx SpecContext) {
				_, err := env.API.Resource("../users").Get(ctx, 1)
				api.ExpectStatusError(err, http.StatusNotFound)
			})
		})

		Describe("Given encoding and Unicode issues", func() {
			It("should handle Unicode characters properly", func(ctx SpecContext) {
				created := api.CreateUserWithCleanup(ctx, users, api.NewUserPayload().
					WithName("Zoë Ångström 测试").
					Build())

				Expect(created.Name).To(Equal("Zoë Ångström 测试"))
			})
		})
	})
})
