// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package logging provides a pre-configured [log/slog.Logger] factory with
consistent defaults for the oclc-authcode command and library.

# Defaults

  - Format: JSON ([FormatJSON]) via [log/slog.JSONHandler]
  - Level: INFO ([log/slog.LevelInfo])
  - Output: [os.Stderr]
  - Timestamps: [time.RFC3339]

# Basic Usage

	logger := logging.New()
	logger.Info("login server started", "addr", "127.0.0.1:8080")

# Configuration

Use functional options to customize the logger:

	logger := logging.New(
		logging.WithFormat(logging.FormatText),
		logging.WithLevel(slog.LevelDebug),
	)

# Environment

[FromEnv] reads OCLC_AUTHCODE_LOG_LEVEL and OCLC_AUTHCODE_LOG_FORMAT through an
[env.Reader]:

	opts, err := logging.FromEnv(&env.OSReader{})
	logger := logging.New(opts...)

# Testing

Inject a buffer to capture log output in tests:

	var buf bytes.Buffer
	logger := logging.New(logging.WithOutput(&buf))
	logger.Info("test message")
	// inspect buf.String()

# Stability

This package is Alpha stability. The API may change without notice.
*/
package logging
