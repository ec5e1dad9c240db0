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

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"k8s.io/utils/ptr"

	"github.com/KirillTsaregorodtsev/qaa-learn/pkg/client"
	"github.com/KirillTsaregorodtsev/qaa-learn/pkg/logging"
	"github.com/KirillTsaregorodtsev/qaa-learn/pkg/reqres"
	"github.com/KirillTsaregorodtsev/qaa-learn/pkg/schema"
)

type options struct {
	baseURL  string
	apiKey   string
	page     int
	perPage  int
	timeout  time.Duration
	logLevel string
}

func (o *options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.baseURL, "base-url", reqres.DefaultBaseURL, "API base URL.")
	f.StringVar(&o.apiKey, "api-key", os.Getenv("API_KEY"), "API key, defaults to $API_KEY.")
	f.IntVar(&o.page, "page", 1, "Page of users to fetch.")
	f.IntVar(&o.perPage, "per-page", 0, "Users per page, 0 uses the server default.")
	f.DurationVar(&o.timeout, "timeout", client.DefaultTimeout, "Request timeout.")
	f.StringVar(&o.logLevel, "log-level", "warn", "Log level, one of debug, info, warn or error.")
}

// probe lists a page of users and checks it against its shape.
func probe(ctx context.Context, o *options, logger *zap.Logger) (*schema.UsersList, error) {
	api := reqres.New(o.baseURL, o.apiKey,
		client.WithLogger(logger),
		client.WithTimeout(o.timeout),
	)

	params := reqres.ListParams{
		Page: ptr.To(o.page),
	}

	if o.perPage > 0 {
		params.PerPage = ptr.To(o.perPage)
	}

	resp, err := api.Users().List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return schema.DecodeResponse[schema.UsersList](resp, schema.ShapeUsersList)
}

func main() {
	var o options

	o.AddFlags(pflag.CommandLine)

	pflag.Parse()

	logger, closeLogger, err := logging.New(logging.Options{
		Level:   o.logLevel,
		Console: true,
	})
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	list, err := probe(context.Background(), &o, logger)

	closeLogger()

	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Printf("page %d/%d: %d of %d users\n", list.Page.Page, list.TotalPages, len(list.Data), list.Total)

	for _, user := range list.Data {
		fmt.Printf("  %3d %-24s %s %s\n", user.ID, user.Email, user.FirstName, user.LastName)
	}
}
