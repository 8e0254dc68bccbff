// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package oauth provides shared RFC-defined constants, metadata types and
// redirect URI validation for OAuth 2.0 authorization-code clients.
//
// # Redirect URI Checks
//
// HasHTTPScheme is the baseline check applied to every login request: the
// redirect URI must parse with an http or https scheme.
//
//	if !oauth.HasHTTPScheme("https://example.com/callback") {
//		// reject
//	}
//
// ValidateRedirectURI applies the stricter RFC 6749 / RFC 8252 rules with a
// configurable policy:
//
//	err := oauth.ValidateRedirectURI("https://example.com/callback", oauth.RedirectURIPolicyStrict)
//	if errors.Is(err, oauth.ErrRedirectURIInsecureScheme) {
//		// scheme rejected by policy
//	}
//
// # Server Metadata
//
// AuthorizationServerMetadata describes the endpoints of an authorization
// server using the RFC 8414 field names.
//
// # Stability
//
// This package is Beta stability. The API may have minor changes before
// reaching stable status in v1.0.0.
package oauth
