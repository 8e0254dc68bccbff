// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package http provides validation for HTTP URLs supplied through configuration.

# Server URL Validation

Validate an authorization server base URL before endpoint paths such as
/authorizeCode are appended to it:

	if err := http.ValidateServerURL("https://authn.sd00.worldcat.org/oauth2"); err != nil {
		// Handle invalid server URL
	}

Server URLs must:
  - Use the http or https scheme
  - Include a host
  - Not contain a query string or fragment identifier (#)
*/
package http
