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

// Package logging builds the zap loggers shared by the commands and suites.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrNoProjectRoot is returned when no go.mod is found above a directory.
var ErrNoProjectRoot = errors.New("project root not found")

// Options define where log lines go.
type Options struct {
	// Level is one of debug, info, warn or error, anything else is info.
	Level string

	// File, when set, receives JSON log lines.  Relative paths resolve
	// against the project root.  The directory is created if missing.
	File string

	// Console enables human readable output on stderr.
	Console bool

	// Writers receive human readable output, e.g. a test runner's buffer.
	Writers []io.Writer
}

// ParseLevel maps a level name onto a zap level.
func ParseLevel(name string) zapcore.Level {
	switch strings.ToLower(name) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ProjectRoot walks up from dir until it finds a go.mod.
func ProjectRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoProjectRoot
		}

		dir = parent
	}
}

// resolve anchors a relative log file at the project root, falling back to
// the working directory when there is no module.
func resolve(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	root, err := ProjectRoot(wd)
	if err != nil {
		root = wd
	}

	return filepath.Join(root, path), nil
}

// New returns a logger teeing to every configured sink.  With no sinks the
// logger discards everything.  The returned function flushes the logger and
// releases the log file, it must be called once logging is done.
func New(options Options) (*zap.Logger, func(), error) {
	level := ParseLevel(options.Level)

	var cores []zapcore.Core

	var file *os.File

	writers := options.Writers
	if options.Console {
		writers = append(writers, os.Stderr)
	}

	for _, w := range writers {
		encoderCfg := zap.NewDevelopmentEncoderConfig()

		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderCfg),
			zapcore.Lock(zapcore.AddSync(w)),
			level,
		))
	}

	if options.File != "" {
		path, err := resolve(options.File)
		if err != nil {
			return nil, nil, fmt.Errorf("resolving log file: %w", err)
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}

		file, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}

		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.TimeKey = "ts"
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.AddSync(file),
			level,
		))
	}

	if len(cores) == 0 {
		return zap.NewNop(), func() {}, nil
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	var once sync.Once

	closer := func() {
		once.Do(func() {
			_ = logger.Sync()

			if file != nil {
				_ = file.Close()
			}
		})
	}

	return logger, closer, nil
}
