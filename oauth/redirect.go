// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package oauth

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ory/fosite"
)

// MaxRedirectURILength is the maximum allowed length for a single redirect URI.
// This limit provides DoS protection during URI parsing per RFC 3986 practical constraints.
const MaxRedirectURILength = 2048

// RedirectURIPolicy controls which URI schemes are accepted during redirect URI validation.
type RedirectURIPolicy int

const (
	// RedirectURIPolicyStrict allows only https and http-loopback schemes.
	// This follows RFC 8252 Section 8.4 strict security recommendations.
	RedirectURIPolicyStrict RedirectURIPolicy = iota

	// RedirectURIPolicyAllowPrivateSchemes also allows private-use URI schemes
	// (e.g., myapp://) per RFC 8252 Section 7.1.
	RedirectURIPolicyAllowPrivateSchemes
)

// Names accepted by ParseRedirectURIPolicy.
const (
	RedirectURIPolicyNameStrict              = "strict"
	RedirectURIPolicyNameAllowPrivateSchemes = "allow-private-schemes"
)

// String returns the configuration name of the policy.
func (p RedirectURIPolicy) String() string {
	switch p {
	case RedirectURIPolicyStrict:
		return RedirectURIPolicyNameStrict
	case RedirectURIPolicyAllowPrivateSchemes:
		return RedirectURIPolicyNameAllowPrivateSchemes
	default:
		return fmt.Sprintf("RedirectURIPolicy(%d)", int(p))
	}
}

// ParseRedirectURIPolicy converts a configuration name into a RedirectURIPolicy.
func ParseRedirectURIPolicy(name string) (RedirectURIPolicy, error) {
	switch name {
	case RedirectURIPolicyNameStrict:
		return RedirectURIPolicyStrict, nil
	case RedirectURIPolicyNameAllowPrivateSchemes:
		return RedirectURIPolicyAllowPrivateSchemes, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRedirectURIPolicy, name)
	}
}

// HasHTTPScheme reports whether uri parses with an http or https scheme.
// Scheme comparison is case-insensitive because url.Parse lowercases it.
// Unparseable input never has an HTTP scheme.
func HasHTTPScheme(uri string) bool {
	parsed, err := url.Parse(uri)
	if err != nil {
		return false
	}
	return parsed.Scheme == SchemeHTTP || parsed.Scheme == SchemeHTTPS
}

// ValidateRedirectURI validates a redirect URI per RFC 6749 Section 3.1.2 and RFC 8252.
// The policy parameter controls whether private-use URI schemes are accepted.
// Returned errors wrap one of the ErrRedirectURI* sentinels.
//
// Validation rules applied:
//   - URI must not exceed MaxRedirectURILength
//   - URI must be an absolute URI with a scheme and no fragment (RFC 6749 Section 3.1.2)
//   - Strict: only https or http-loopback (RFC 8252 Section 8.4)
//   - AllowPrivateSchemes: also allows private-use schemes (RFC 8252 Section 7.1)
func ValidateRedirectURI(uri string, policy RedirectURIPolicy) error {
	if len(uri) > MaxRedirectURILength {
		return fmt.Errorf("%w (maximum %d characters)", ErrRedirectURITooLong, MaxRedirectURILength)
	}

	parsed, err := url.Parse(uri)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRedirectURIMalformed, err)
	}

	if !fosite.IsValidRedirectURI(parsed) {
		return ErrRedirectURINotAbsolute
	}

	switch policy {
	case RedirectURIPolicyStrict:
		if !fosite.IsRedirectURISecureStrict(context.Background(), parsed) {
			return fmt.Errorf("%w: must use http (for loopback) or https", ErrRedirectURIInsecureScheme)
		}
	case RedirectURIPolicyAllowPrivateSchemes:
		if !fosite.IsRedirectURISecure(context.Background(), parsed) {
			return fmt.Errorf("%w: must use https, http for loopback, or a private-use scheme", ErrRedirectURIInsecureScheme)
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownRedirectURIPolicy, policy)
	}

	return nil
}
