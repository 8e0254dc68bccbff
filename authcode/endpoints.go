// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package authcode

import (
	"slices"

	"golang.org/x/oauth2"

	"github.com/stacklok/oclc-authcode/oauth"
)

// Endpoint returns the authorization and token endpoints of server.
func Endpoint(server string) oauth2.Endpoint {
	return oauth2.Endpoint{
		AuthURL:   server + AuthorizeCodePath,
		TokenURL:  server + AccessTokenPath,
		AuthStyle: oauth2.AuthStyleInHeader,
	}
}

// ServerMetadata describes server using RFC 8414 field names.
func ServerMetadata(server string) oauth.AuthorizationServerMetadata {
	return oauth.AuthorizationServerMetadata{
		Issuer:                 server,
		AuthorizationEndpoint:  server + AuthorizeCodePath,
		TokenEndpoint:          server + AccessTokenPath,
		ResponseTypesSupported: []string{oauth.ResponseTypeCode},
		GrantTypesSupported:    []string{oauth.GrantTypeAuthorizationCode, oauth.GrantTypeRefreshToken},
	}
}

// OAuth2Config returns an oauth2.Config for the component that later
// exchanges the authorization code. The client secret is left empty.
//
// Its AuthCodeURL escapes every parameter and therefore differs from
// LoginURL; send users to LoginURL.
func (r *Request) OAuth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:    r.clientID,
		Endpoint:    Endpoint(r.authorizationServer),
		RedirectURL: r.redirectURI,
		Scopes:      slices.Clone(r.scopes),
	}
}
