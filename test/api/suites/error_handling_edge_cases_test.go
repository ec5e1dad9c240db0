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
	"errors"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/KirillTsaregorodtsev/qaa-learn/pkg/client"
	"github.com/KirillTsaregorodtsev/qaa-learn/pkg/schema"
	"github.com/KirillTsaregorodtsev/qaa-learn/test/api"
)

var _ = Describe("Error Handling and Edge Cases", func() {
	Context("When requesting a missing user", func() {
		It("should fail with not found", func(ctx SpecContext) {
			_, err := users.Get(ctx, 23)
			api.ExpectStatusError(err, http.StatusNotFound)

			var clientErr *client.Error
			Expect(errors.As(err, &clientErr)).To(BeTrue())
			Expect(clientErr.Kind).To(Equal(client.KindStatus))
			Expect(clientErr.Method).To(Equal(http.MethodGet))
			Expect(clientErr.URL).To(HaveSuffix("/api/users/23"))
		})
	})

	Context("When submitting invalid payloads", func() {
		BeforeEach(func() {
			if env.Live() {
				Skip("the live service accepts any payload")
			}
		})

		It("should reject an empty create", func(ctx SpecContext) {
			_, err := users.Create(ctx, map[string]any{})
			api.ExpectStatusError(err, http.StatusBadRequest)
		})

		It("should reject wrongly typed fields", func(ctx SpecContext) {
			_, err := users.Update(ctx, 2, api.NewUserPayload().
				WithField("name", 123).
				WithField("job", []string{"not", "a", "string"}).
				Build())
			api.ExpectStatusError(err, http.StatusBadRequest)

			var clientErr *client.Error
			Expect(errors.As(err, &clientErr)).To(BeTrue())

			body, jsonErr := clientErr.JSON()
			Expect(jsonErr).NotTo(HaveOccurred())
			Expect(body).To(HaveKey("error"))
		})
	})

	Context("When a response drifts from its shape", func() {
		It("should report every violation", func(ctx SpecContext) {
			resp, err := users.Get(ctx, 2)
			Expect(err).NotTo(HaveOccurred())

			object, err := resp.Object()
			Expect(err).NotTo(HaveOccurred())

			data := object["data"].(map[string]any) //nolint:forcetypeassert
			delete(data, "email")
			data["first_name"] = 7

			err = schema.Validate(object, schema.ShapeUser)
			Expect(err).To(HaveOccurred())

			var validationErr *schema.ValidationError
			Expect(errors.As(err, &validationErr)).To(BeTrue())
			Expect(validationErr.Violations).To(HaveLen(2))
		})
	})

	Context("When the API is unreachable", func() {
		It("should fail with a connection error", func(ctx SpecContext) {
			unreachable := client.New("http://127.0.0.1:1", client.Credentials{})

			_, err := unreachable.Request(ctx, http.MethodGet, "/api/users")
			Expect(err).To(MatchError(client.ErrConnection))
			Expect(client.StatusCode(err)).To(BeZero())
		})
	})
})
