// Copyright 2025 The Spicekit Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logutil configures the process-wide slog logger from
// registry-backed flags.
package logutil

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/spf13/pflag"

	"github.com/spicekit/spicenum/go/viperutil"
)

// Logger holds the logging configuration values for a command and builds
// the slog logger once flags are parsed.
type Logger struct {
	logLevel  *viperutil.Value[string]
	logFormat *viperutil.Value[string]
	logOutput *viperutil.Value[string]

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerMu   sync.Mutex
}

func NewLogger(reg *viperutil.Registry) *Logger {
	return &Logger{
		logLevel: viperutil.Configure(reg, "log.level", viperutil.Options[string]{
			Default:  "info",
			FlagName: "log-level",
		}),
		logFormat: viperutil.Configure(reg, "log.format", viperutil.Options[string]{
			Default:  "text",
			FlagName: "log-format",
		}),
		logOutput: viperutil.Configure(reg, "log.output", viperutil.Options[string]{
			Default:  "stderr",
			FlagName: "log-output",
		}),
	}
}

// RegisterFlags registers logging-related command line flags.
// This must be called before the command parses its flags.
func (lg *Logger) RegisterFlags(fs *pflag.FlagSet) {
	fs.String("log-level", lg.logLevel.Default(), "Log level (debug, info, warn, error)")
	fs.String("log-format", lg.logFormat.Default(), "Log format (json, text)")
	fs.String("log-output", lg.logOutput.Default(), "Log output (stdout, stderr, or file path)")
	viperutil.BindFlags(fs, lg.logLevel, lg.logFormat, lg.logOutput)
}

// SetupLogging initializes the logger based on the configured flags.
// This should be called after flags are parsed but before any logging
// occurs.
func (lg *Logger) SetupLogging() {
	lg.loggerOnce.Do(func() {
		var level slog.Level
		switch strings.ToLower(lg.logLevel.Get()) {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			level = slog.LevelInfo
		}

		var output io.Writer
		outputStr := lg.logOutput.Get()
		switch strings.ToLower(outputStr) {
		case "stdout":
			output = os.Stdout
		case "stderr", "":
			output = os.Stderr
		default:
			// Treat as file path; fall back to stderr if it can't be opened.
			file, err := os.OpenFile(outputStr, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				output = os.Stderr
			} else {
				output = file
			}
		}

		var handler slog.Handler
		opts := &slog.HandlerOptions{Level: level}
		switch strings.ToLower(lg.logFormat.Get()) {
		case "json":
			handler = slog.NewJSONHandler(output, opts)
		default:
			handler = slog.NewTextHandler(output, opts)
		}

		newLogger := slog.New(handler)
		slog.SetDefault(newLogger)

		lg.loggerMu.Lock()
		lg.logger = newLogger
		lg.loggerMu.Unlock()
	})
}

// GetLogger returns the configured logger instance.
// SetupLogging must be called before this function.
func (lg *Logger) GetLogger() *slog.Logger {
	lg.loggerMu.Lock()
	defer lg.loggerMu.Unlock()
	if lg.logger == nil {
		return slog.Default()
	}
	return lg.logger
}
