// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package recovery provides panic recovery middleware for HTTP handlers.
//
// The middleware recovers from panics in HTTP handlers, logs the panic with
// its stack trace and returns a 500 Internal Server Error response to the
// client. The signature matches chi's middleware chain:
//
//	r := chi.NewRouter()
//	r.Use(recovery.Middleware(logger))
//
// # Stability
//
// This package is Beta stability. The API may have minor changes before
// reaching stable status in v1.0.0.
package recovery
