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
	"k8s.io/utils/ptr"

	"github.com/KirillTsaregorodtsev/qaa-learn/pkg/reqres"
	"github.com/KirillTsaregorodtsev/qaa-learn/pkg/schema"
	"github.com/KirillTsaregorodtsev/qaa-learn/test/api"
)

var _ = Describe("Core User Management", func() {
	Context("When listing users", func() {
		DescribeTable("should return a well formed page",
			func(ctx SpecContext, page int) {
				resp, err := users.List(ctx, reqres.ListParams{Page: ptr.To(page)})
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				list, err := schema.DecodeResponse[schema.UsersList](resp, schema.ShapeUsersList)
				Expect(err).NotTo(HaveOccurred())

				Expect(list.Page.Page).To(Equal(page))
				Expect(list.PerPage).To(BeNumerically(">", 0))
				Expect(list.Total).To(BeNumerically(">=", list.PerPage))
				Expect(len(list.Data)).To(BeNumerically("<=", list.PerPage))

				for _, user := range list.Data {
					api.VerifyUserRecord(user)
				}
			},
			Entry("first page", 1),
			Entry("second page", 2),
			Entry("third page", 3),
		)

		It("should honour the page size", func(ctx SpecContext) {
			resp, err := users.List(ctx, reqres.ListParams{Page: ptr.To(1), PerPage: ptr.To(4)})
			Expect(err).NotTo(HaveOccurred())

			list, err := schema.DecodeResponse[schema.UsersList](resp, schema.ShapeUsersList)
			Expect(err).NotTo(HaveOccurred())
			Expect(list.PerPage).To(Equal(4))
			Expect(list.Data).To(HaveLen(4))
			Expect(list.TotalPages).To(Equal((list.Total + 3) / 4))
		})
	})

	Context("When retrieving a specific user", func() {
		Describe("Given the user exists", func() {
			It("should return complete user details", func(ctx SpecContext) {
				resp, err := users.Get(ctx, 2)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				user, err := schema.DecodeResponse[schema.User](resp, schema.ShapeUser)
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Data.ID).To(Equal(2))
				api.VerifyUserRecord(user.Data)
			})
		})
	})

	Context("When creating a new user", func() {
		Describe("Given a valid payload", func() {
			It("should successfully create the user", func(ctx SpecContext) {
				payload := api.NewUserPayload().WithJob("leader").Build()

				created := api.CreateUserWithCleanup(ctx, users, payload)

				Expect(int(created.ID)).To(BeNumerically(">", 0))
				Expect(created.Name).To(Equal(payload["name"]))
				Expect(created.Job).To(Equal("leader"))
				Expect(created.CreatedAt.IsZero()).To(BeFalse())
			})
		})
	})

	Context("When updating a user", func() {
		Describe("Given a partial update", func() {
			It("should echo the updated fields", func(ctx SpecContext) {
				resp, err := users.Update(ctx, 2, map[string]any{"name": "morpheus", "job": "zion resident"})
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				updated, err := schema.DecodeResponse[schema.UpdatedUser](resp, schema.ShapeUpdatedUser)
				Expect(err).NotTo(HaveOccurred())
				Expect(updated.Name).To(Equal("morpheus"))
				Expect(updated.Job).To(Equal("zion resident"))
				Expect(updated.UpdatedAt.IsZero()).To(BeFalse())
			})
		})

		Describe("Given a full replacement", func() {
			It("should echo the replacement", func(ctx SpecContext) {
				resp, err := users.Replace(ctx, 2, map[string]any{"name": "neo", "job": "the one"})
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				updated, err := schema.DecodeResponse[schema.UpdatedUser](resp, schema.ShapeUpdatedUser)
				Expect(err).NotTo(HaveOccurred())
				Expect(updated.Name).To(Equal("neo"))
				Expect(updated.Job).To(Equal("the one"))
			})
		})
	})

	Context("When deleting a user", func() {
		It("should answer no content", func(ctx SpecContext) {
			resp, err := users.Delete(ctx, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusNoContent))
			Expect(resp.Body).To(BeNil())
			Expect(resp.Raw).To(BeEmpty())
		})
	})
})
