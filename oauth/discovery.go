// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package oauth

import "slices"

// AuthorizationServerMetadata is the subset of OAuth 2.0 Authorization Server
// Metadata (RFC 8414) needed to describe an authorization-code deployment.
type AuthorizationServerMetadata struct {
	// Issuer is the authorization server's issuer identifier.
	Issuer string `json:"issuer" yaml:"issuer"`

	// AuthorizationEndpoint is the URL users are sent to in order to log in.
	AuthorizationEndpoint string `json:"authorization_endpoint" yaml:"authorization_endpoint"`

	// TokenEndpoint is the URL where an authorization code is exchanged.
	TokenEndpoint string `json:"token_endpoint" yaml:"token_endpoint"`

	// ResponseTypesSupported lists the response types supported.
	ResponseTypesSupported []string `json:"response_types_supported,omitempty" yaml:"response_types_supported,omitempty"`

	// GrantTypesSupported lists the grant types supported.
	GrantTypesSupported []string `json:"grant_types_supported,omitempty" yaml:"grant_types_supported,omitempty"`
}

// Validate checks that the required metadata fields are present.
func (m *AuthorizationServerMetadata) Validate() error {
	if m.Issuer == "" {
		return ErrMissingIssuer
	}
	if m.AuthorizationEndpoint == "" {
		return ErrMissingAuthorizationEndpoint
	}
	if m.TokenEndpoint == "" {
		return ErrMissingTokenEndpoint
	}
	return nil
}

// SupportsGrantType returns true if the authorization server supports the given grant type.
func (m *AuthorizationServerMetadata) SupportsGrantType(grantType string) bool {
	return slices.Contains(m.GrantTypesSupported, grantType)
}

// SupportsResponseType returns true if the authorization server supports the given response type.
func (m *AuthorizationServerMetadata) SupportsResponseType(responseType string) bool {
	return slices.Contains(m.ResponseTypesSupported, responseType)
}
