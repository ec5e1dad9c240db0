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

var _ = Describe("Discovery and Metadata", func() {
	Context("When listing the colour catalogue", func() {
		It("should return well formed resources", func(ctx SpecContext) {
			resp, err := env.API.Resources().List(ctx, reqres.ListParams{PerPage: ptr.To(12)})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			list, err := schema.DecodeResponse[schema.ResourceList](resp, schema.ShapeResourceList)
			Expect(err).NotTo(HaveOccurred())
			Expect(list.Data).NotTo(BeEmpty())

			for _, resource := range list.Data {
				Expect(resource.ID).To(BeNumerically(">", 0))
				Expect(resource.Name).NotTo(BeEmpty())
				Expect(resource.Color).To(MatchRegexp(`^#[0-9A-Fa-f]{6}$`))
			}
		})
	})

	Context("When retrieving a single colour", func() {
		It("should return the resource", func(ctx SpecContext) {
			resp, err := env.API.Resource(reqres.ResourceUnknown).Get(ctx, 2)
			Expect(err).NotTo(HaveOccurred())

			resource, err := schema.DecodeResponse[schema.Resource](resp, schema.ShapeResource)
			Expect(err).NotTo(HaveOccurred())
			Expect(resource.Data.ID).To(Equal(2))
		})

		It("should fail with not found for a missing colour", func(ctx SpecContext) {
			_, err := env.API.Resources().Get(ctx, 23)
			api.ExpectStatusError(err, http.StatusNotFound)
		})
	})
})
