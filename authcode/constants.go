// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package authcode

// DefaultAuthorizationServer is the OCLC authorization server base used when
// no override is supplied.
const DefaultAuthorizationServer = "https://authn.sd00.worldcat.org/oauth2"

// Endpoint paths appended to the authorization server base.
const (
	// AuthorizeCodePath is the login endpoint that issues authorization codes.
	AuthorizeCodePath = "/authorizeCode"

	// AccessTokenPath is the endpoint where authorization codes are exchanged for tokens.
	AccessTokenPath = "/accessToken"
)

// Parameter names used in validation messages.
const (
	FieldClientID                    = "client_id"
	FieldAuthenticatingInstitutionID = "authenticating_institution_id"
	FieldContextInstitutionID        = "context_institution_id"
	FieldRedirectURI                 = "redirect_uri"
	FieldScopes                      = "scopes"
)

// Query parameter names of the login URL. The institution parameters use the
// camel-case spelling the authorization server expects.
const (
	queryAuthenticatingInstitutionID = "authenticatingInstitutionId"
	queryClientID                    = "client_id"
	queryContextInstitutionID        = "contextInstitutionId"
	queryRedirectURI                 = "redirect_uri"
	queryResponseType                = "response_type"
	queryScope                       = "scope"
)
