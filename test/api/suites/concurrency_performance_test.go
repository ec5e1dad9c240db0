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
	"context"
	"net/http"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/utils/ptr"

	"github.com/KirillTsaregorodtsev/qaa-learn/pkg/client"
	"github.com/KirillTsaregorodtsev/qaa-learn/pkg/reqres"
)

var _ = Describe("Concurrency and Performance", func() {
	Context("When the API is slow", func() {
		It("should wait for a delayed response", func(ctx SpecContext) {
			start := time.Now()

			resp, err := users.List(ctx, reqres.ListParams{Delay: ptr.To(1)})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(time.Since(start)).To(BeNumerically(">=", time.Second))
		})

		It("should fail with a connection error past the deadline", func(ctx SpecContext) {
			timeout, cancel := context.WithTimeout(ctx, 200*time.Millisecond)
			defer cancel()

			_, err := users.List(timeout, reqres.ListParams{Delay: ptr.To(2)})
			Expect(err).To(MatchError(client.ErrConnection))
			Expect(err).To(MatchError(context.DeadlineExceeded))
		})
	})

	Context("When workers share a base URL", func() {
		It("should serve every worker", func(ctx SpecContext) {
			const workers = 6

			var wg sync.WaitGroup

			statuses := make(chan int, workers)

			for i := range workers {
				wg.Add(1)

				go func(id int) {
					defer GinkgoRecover()
					defer wg.Done()

					worker := reqres.New(env.BaseURL, env.Config.APIKey)

					resp, err := worker.Users().Get(ctx, id)
					Expect(err).NotTo(HaveOccurred())

					statuses <- resp.StatusCode
				}(i + 1)
			}

			wg.Wait()
			close(statuses)

			for status := range statuses {
				Expect(status).To(Equal(http.StatusOK))
			}
		})
	})
})
