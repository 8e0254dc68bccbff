// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package authcode builds the login URL that starts an OCLC authorization code
flow.

A Request is created once with every parameter and validated up front; a
Request that New returns is always valid and never changes.

	req, err := authcode.New(
		authcode.WithClientID("abc123"),
		authcode.WithAuthenticatingInstitutionID("128807"),
		authcode.WithContextInstitutionID("128807"),
		authcode.WithRedirectURI("https://example.com/callback"),
		authcode.WithScopes("WorldCatMetadataAPI"),
	)
	if err != nil {
		var invalid *authcode.InvalidParameterError
		if errors.As(err, &invalid) {
			// invalid.Field names the offending parameter
		}
		return err
	}
	http.Redirect(w, r, req.LoginURL(), http.StatusFound)

# Validation

Parameters are supplied as options so that a parameter that was never given
is reported differently from one given as the empty string. Checks run in
order and stop at the first failure:

  - client_id, authenticating_institution_id, context_institution_id and
    redirect_uri must be supplied and non-empty
  - redirect_uri must use the http or https scheme
  - scopes must be supplied and the first scope must be non-empty

Every failure is an *InvalidParameterError and matches ErrInvalidParameter.

# Login URL Encoding

LoginURL writes the query parameters in a fixed order and escapes only
redirect_uri. Client and institution ids and the space-separated scope list
are inserted as given, which is what the OCLC authorization server accepts.

# Token Exchange

Exchanging the returned code is outside this package. OAuth2Config hands the
client id, endpoints, redirect URI and scopes to golang.org/x/oauth2 for the
component that performs the exchange.
*/
package authcode
