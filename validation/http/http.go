// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"fmt"
	"net/url"
)

// MaxServerURLLength bounds the length of a configured server base URL.
const MaxServerURLLength = 2048

// ValidateServerURL validates that a string can serve as an authorization
// server base URL onto which endpoint paths are appended.
//
// A valid server URL must:
//   - Use the http or https scheme
//   - Include a host
//   - Not contain a query or fragment, since paths are appended verbatim
func ValidateServerURL(serverURL string) error {
	if serverURL == "" {
		return fmt.Errorf("server URL cannot be empty")
	}

	if len(serverURL) > MaxServerURLLength {
		return fmt.Errorf("server URL exceeds maximum length of %d bytes", MaxServerURLLength)
	}

	parsed, err := url.Parse(serverURL)
	if err != nil {
		return fmt.Errorf("invalid server URL: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("server URL must use the http or https scheme: %s", serverURL)
	}

	if parsed.Host == "" {
		return fmt.Errorf("server URL must include a host: %s", serverURL)
	}

	if parsed.RawQuery != "" || parsed.ForceQuery {
		return fmt.Errorf("server URL must not contain a query (?): %s", serverURL)
	}

	if parsed.Fragment != "" {
		return fmt.Errorf("server URL must not contain fragments (#): %s", serverURL)
	}

	return nil
}
