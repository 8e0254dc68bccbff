// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package oauth

import "errors"

// Validation errors for authorization server metadata.
var (
	// ErrMissingIssuer indicates the issuer field is missing from the metadata.
	ErrMissingIssuer = errors.New("missing issuer")

	// ErrMissingAuthorizationEndpoint indicates the authorization_endpoint field is missing.
	ErrMissingAuthorizationEndpoint = errors.New("missing authorization_endpoint")

	// ErrMissingTokenEndpoint indicates the token_endpoint field is missing.
	ErrMissingTokenEndpoint = errors.New("missing token_endpoint")
)

// Validation errors for redirect URIs.
var (
	// ErrRedirectURITooLong indicates the redirect URI exceeds MaxRedirectURILength.
	ErrRedirectURITooLong = errors.New("redirect_uri too long")

	// ErrRedirectURIMalformed indicates the redirect URI could not be parsed.
	ErrRedirectURIMalformed = errors.New("invalid redirect_uri format")

	// ErrRedirectURINotAbsolute indicates the redirect URI is relative or carries a fragment.
	ErrRedirectURINotAbsolute = errors.New("redirect_uri must be an absolute URI without a fragment")

	// ErrRedirectURIInsecureScheme indicates the scheme is not allowed by the policy.
	ErrRedirectURIInsecureScheme = errors.New("redirect_uri uses a scheme not allowed by the policy")

	// ErrUnknownRedirectURIPolicy indicates an unrecognised RedirectURIPolicy.
	ErrUnknownRedirectURIPolicy = errors.New("unknown redirect URI policy")
)
