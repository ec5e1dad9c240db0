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
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/KirillTsaregorodtsev/qaa-learn/pkg/constants"
	"github.com/KirillTsaregorodtsev/qaa-learn/pkg/fake"
	"github.com/KirillTsaregorodtsev/qaa-learn/pkg/logging"
)

type options struct {
	listenAddress   string
	logLevel        string
	logFile         string
	readTimeout     time.Duration
	shutdownTimeout time.Duration
}

func (o *options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.listenAddress, "listen-address", ":8080", "API listener address.")
	f.StringVar(&o.logLevel, "log-level", "info", "Log level, one of debug, info, warn or error.")
	f.StringVar(&o.logFile, "log-file", "", "Optional file to write JSON logs to.")
	f.DurationVar(&o.readTimeout, "read-timeout", time.Second, "How long to wait for request headers.")
	f.DurationVar(&o.shutdownTimeout, "shutdown-timeout", 10*time.Second, "How long to wait for requests to drain.")
}

func run(o *options, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              o.listenAddress,
		Handler:           fake.NewHandler(fake.NewStore(), logger),
		ReadHeaderTimeout: o.readTimeout,
	}

	errs := make(chan error, 1)

	go func() {
		errs <- server.ListenAndServe()
	}()

	logger.Info("listening", zap.String("address", o.listenAddress))

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), o.shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func main() {
	var o options

	o.AddFlags(pflag.CommandLine)

	pflag.Parse()

	logger, closeLogger, err := logging.New(logging.Options{
		Level:   o.logLevel,
		File:    o.logFile,
		Console: true,
	})
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	logger.Info("service starting", zap.String("version", constants.VersionString()))

	if err := run(&o, logger); err != nil {
		logger.Error("server failed", zap.Error(err))
		closeLogger()
		os.Exit(1)
	}

	closeLogger()
}
