// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package authcode

import (
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"strings"

	"github.com/stacklok/oclc-authcode/oauth"
)

// Request is a validated authorization code request. A *Request returned by
// New is immutable and safe for concurrent use.
type Request struct {
	authorizationServer         string
	clientID                    string
	authenticatingInstitutionID string
	contextInstitutionID        string
	redirectURI                 string
	scopes                      []string
}

// params collects option values before validation. Nil pointers record that
// an option was never supplied.
type params struct {
	authorizationServer         string
	clientID                    *string
	authenticatingInstitutionID *string
	contextInstitutionID        *string
	redirectURI                 *string
	scopes                      []string
	scopesSet                   bool
	redirectURIPolicy           *oauth.RedirectURIPolicy
	logger                      *slog.Logger
}

// Option configures the Request created by New.
type Option func(*params)

// WithClientID sets the public portion of the Web Services Key (WSKey).
func WithClientID(clientID string) Option {
	return func(p *params) {
		p.clientID = &clientID
	}
}

// WithAuthenticatingInstitutionID sets the institution the user authenticates against.
func WithAuthenticatingInstitutionID(id string) Option {
	return func(p *params) {
		p.authenticatingInstitutionID = &id
	}
}

// WithContextInstitutionID sets the institution the resulting access is scoped to.
func WithContextInstitutionID(id string) Option {
	return func(p *params) {
		p.contextInstitutionID = &id
	}
}

// WithRedirectURI sets the URI the authorization server redirects back to.
func WithRedirectURI(uri string) Option {
	return func(p *params) {
		p.redirectURI = &uri
	}
}

// WithScopes sets the web services requested. Calling it with no arguments
// supplies an empty list, which New rejects.
func WithScopes(scopes ...string) Option {
	return func(p *params) {
		p.scopes = slices.Clone(scopes)
		p.scopesSet = true
	}
}

// WithAuthorizationServer overrides DefaultAuthorizationServer for this request.
// The value is used verbatim as the prefix of every endpoint URL.
func WithAuthorizationServer(server string) Option {
	return func(p *params) {
		p.authorizationServer = server
	}
}

// WithRedirectURIPolicy additionally validates the redirect URI with
// oauth.ValidateRedirectURI under the given policy.
func WithRedirectURIPolicy(policy oauth.RedirectURIPolicy) Option {
	return func(p *params) {
		p.redirectURIPolicy = &policy
	}
}

// WithLogger sets the logger used to report construction at debug level.
// A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(p *params) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New validates the supplied parameters and returns a Request.
//
// Parameters are checked in a fixed order and the first violation is
// returned as an *InvalidParameterError: client_id,
// authenticating_institution_id, context_institution_id, redirect_uri,
// scopes. Only the first scope is checked for emptiness.
func New(opts ...Option) (*Request, error) {
	p := &params{
		authorizationServer: DefaultAuthorizationServer,
		logger:              slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}

	if err := p.validate(); err != nil {
		p.logger.Debug("rejected authorization code request", "error", err)
		return nil, err
	}

	r := &Request{
		authorizationServer:         p.authorizationServer,
		clientID:                    *p.clientID,
		authenticatingInstitutionID: *p.authenticatingInstitutionID,
		contextInstitutionID:        *p.contextInstitutionID,
		redirectURI:                 *p.redirectURI,
		scopes:                      p.scopes,
	}
	p.logger.Debug("created authorization code request",
		"authorization_server", r.authorizationServer,
		"client_id", r.clientID,
		"authenticating_institution_id", r.authenticatingInstitutionID,
		"context_institution_id", r.contextInstitutionID,
		"scopes", r.scopes,
	)
	return r, nil
}

func (p *params) validate() error {
	if err := requireNonEmpty(FieldClientID, p.clientID); err != nil {
		return err
	}
	if err := requireNonEmpty(FieldAuthenticatingInstitutionID, p.authenticatingInstitutionID); err != nil {
		return err
	}
	if err := requireNonEmpty(FieldContextInstitutionID, p.contextInstitutionID); err != nil {
		return err
	}
	if err := requireNonEmpty(FieldRedirectURI, p.redirectURI); err != nil {
		return err
	}
	if !oauth.HasHTTPScheme(*p.redirectURI) {
		return &InvalidParameterError{Field: FieldRedirectURI, Violation: ViolationInvalidRedirectURI}
	}
	if p.redirectURIPolicy != nil {
		if err := oauth.ValidateRedirectURI(*p.redirectURI, *p.redirectURIPolicy); err != nil {
			return &InvalidParameterError{Field: FieldRedirectURI, Violation: ViolationRedirectURIPolicy, Err: err}
		}
	}

	if !p.scopesSet {
		return missing(FieldScopes)
	}
	if len(p.scopes) == 0 || p.scopes[0] == "" {
		return &InvalidParameterError{Field: FieldScopes, Violation: ViolationNoValidScope}
	}
	return nil
}

func requireNonEmpty(field string, value *string) error {
	if value == nil {
		return missing(field)
	}
	if *value == "" {
		return empty(field)
	}
	return nil
}

// AuthorizationServer returns the authorization server base URL.
func (r *Request) AuthorizationServer() string { return r.authorizationServer }

// ClientID returns the WSKey client id.
func (r *Request) ClientID() string { return r.clientID }

// AuthenticatingInstitutionID returns the institution authenticated against.
func (r *Request) AuthenticatingInstitutionID() string { return r.authenticatingInstitutionID }

// ContextInstitutionID returns the institution the request is made against.
func (r *Request) ContextInstitutionID() string { return r.contextInstitutionID }

// RedirectURI returns the redirect URI.
func (r *Request) RedirectURI() string { return r.redirectURI }

// Scopes returns a copy of the requested scopes.
func (r *Request) Scopes() []string { return slices.Clone(r.scopes) }

// LoginURL returns the URL a user agent must visit to obtain an
// authorization code.
//
// Only redirect_uri is query-escaped. The institution ids, client id and
// the space-joined scopes are written verbatim because the authorization
// server expects them that way; the parameter order is fixed.
func (r *Request) LoginURL() string {
	var b strings.Builder
	b.WriteString(r.authorizationServer)
	b.WriteString(AuthorizeCodePath)
	b.WriteString("?" + queryAuthenticatingInstitutionID + "=")
	b.WriteString(r.authenticatingInstitutionID)
	b.WriteString("&" + queryClientID + "=")
	b.WriteString(r.clientID)
	b.WriteString("&" + queryContextInstitutionID + "=")
	b.WriteString(r.contextInstitutionID)
	b.WriteString("&" + queryRedirectURI + "=")
	b.WriteString(url.QueryEscape(r.redirectURI))
	b.WriteString("&" + queryResponseType + "=" + oauth.ResponseTypeCode)
	b.WriteString("&" + queryScope + "=")
	b.WriteString(strings.Join(r.scopes, " "))
	return b.String()
}

// String renders every field on its own line for logging and debugging.
func (r *Request) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\tauthorization_server: %s\n", r.authorizationServer)
	fmt.Fprintf(&b, "\tclient_id: %s\n", r.clientID)
	fmt.Fprintf(&b, "\tauthenticating_institution_id: %s\n", r.authenticatingInstitutionID)
	fmt.Fprintf(&b, "\tcontext_institution_id: %s\n", r.contextInstitutionID)
	fmt.Fprintf(&b, "\tredirect_uri: %s\n", r.redirectURI)
	fmt.Fprintf(&b, "\tscopes: %v\n", r.scopes)
	return b.String()
}
