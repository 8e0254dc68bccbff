// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package oauth

import (
	"errors"
	"testing"
)

func TestAuthorizationServerMetadata_Validate(t *testing.T) {
	t.Parallel()

	valid := func() AuthorizationServerMetadata {
		return AuthorizationServerMetadata{
			Issuer:                "https://example.com/oauth2",
			AuthorizationEndpoint: "https://example.com/oauth2/authorizeCode",
			TokenEndpoint:         "https://example.com/oauth2/accessToken",
		}
	}

	tests := []struct {
		name    string
		modify  func(*AuthorizationServerMetadata)
		wantErr error
	}{
		{"valid", nil, nil},
		{"missing issuer", func(m *AuthorizationServerMetadata) { m.Issuer = "" }, ErrMissingIssuer},
		{"missing authorization_endpoint", func(m *AuthorizationServerMetadata) { m.AuthorizationEndpoint = "" }, ErrMissingAuthorizationEndpoint},
		{"missing token_endpoint", func(m *AuthorizationServerMetadata) { m.TokenEndpoint = "" }, ErrMissingTokenEndpoint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := valid()
			if tt.modify != nil {
				tt.modify(&m)
			}
			if err := m.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAuthorizationServerMetadata_Supports(t *testing.T) {
	t.Parallel()

	m := AuthorizationServerMetadata{
		ResponseTypesSupported: []string{ResponseTypeCode},
		GrantTypesSupported:    []string{GrantTypeAuthorizationCode},
	}

	if !m.SupportsGrantType(GrantTypeAuthorizationCode) {
		t.Error("expected authorization_code to be supported")
	}
	if m.SupportsGrantType(GrantTypeRefreshToken) {
		t.Error("expected refresh_token to be unsupported")
	}
	if !m.SupportsResponseType(ResponseTypeCode) {
		t.Error("expected code to be supported")
	}
	if m.SupportsResponseType("token") {
		t.Error("expected token to be unsupported")
	}

	var empty AuthorizationServerMetadata
	if empty.SupportsGrantType(GrantTypeAuthorizationCode) {
		t.Error("nil grant types should support nothing")
	}
}
