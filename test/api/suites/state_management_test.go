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

	"github.com/KirillTsaregorodtsev/qaa-learn/pkg/schema"
	"github.com/KirillTsaregorodtsev/qaa-learn/test/api"
)

var _ = Describe("User State Management", func() {
	BeforeEach(func() {
		if env.Live() {
			Skip("writes are not persisted by the live service")
		}
	})

	Context("When a user is created", func() {
		It("should be retrievable with the submitted fields", func(ctx SpecContext) {
			payload := api.NewUserPayload().Build()

			created := api.CreateUserWithCleanup(ctx, users, payload)

			resp, err := users.Get(ctx, int(created.ID))
			Expect(err).NotTo(HaveOccurred())

			object, err := resp.Object()
			Expect(err).NotTo(HaveOccurred())
			Expect(object).To(HaveKeyWithValue("data", SatisfyAll(
				HaveKeyWithValue("name", payload["name"]),
				HaveKeyWithValue("job", payload["job"]),
			)))
		})
	})

	Context("When a user is deleted", func() {
		It("should no longer be retrievable", func(ctx SpecContext) {
			created := api.CreateUserWithCleanup(ctx, users, api.NewUserPayload().Build())

			resp, err := users.Delete(ctx, int(created.ID))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusNoContent))

			_, err = users.Get(ctx, int(created.ID))
			api.ExpectStatusError(err, http.StatusNotFound)
		})
	})

	Context("When a user is updated", func() {
		It("should keep fields that were not submitted", func(ctx SpecContext) {
			_, err := users.Update(ctx, 3, map[string]any{"job": "analyst"})
			Expect(err).NotTo(HaveOccurred())

			resp, err := users.Get(ctx, 3)
			Expect(err).NotTo(HaveOccurred())

			user, err := schema.DecodeResponse[schema.User](resp, schema.ShapeUser)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Data.FirstName).To(Equal("Emma"))
		})
	})

	Context("When a user is read repeatedly", func() {
		It("should return the same record every time", func(ctx SpecContext) {
			first, err := users.Get(ctx, 4)
			Expect(err).NotTo(HaveOccurred())

			second, err := users.Get(ctx, 4)
			Expect(err).NotTo(HaveOccurred())

			Expect(second.StatusCode).To(Equal(first.StatusCode))
			Expect(second.Body).To(Equal(first.Body))
		})
	})
})
