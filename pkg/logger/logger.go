/*
Copyright 2025.

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

// Package logger provides a context-scoped logrus logger. Request-scoped
// fields (the request id) travel with the context so every layer logs under
// the same correlation id.
package logger

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

type contextKey string

const requestIdKey contextKey = "request_id"

var baseLogger = newBaseLogger()

func newBaseLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetLevel adjusts the process-wide log level. Unknown levels are ignored.
func SetLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return
	}
	baseLogger.SetLevel(parsed)
}

// WithRequestId returns a context carrying the given request id.
func WithRequestId(ctx context.Context, requestId interface{}) context.Context {
	return context.WithValue(ctx, requestIdKey, requestId)
}

// Logger returns an entry scoped to the context's request id, if any.
func Logger(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(baseLogger)
	if v := ctx.Value(requestIdKey); v != nil {
		entry = entry.WithField("request_id", v)
	}
	return entry
}
