// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/stacklok/oclc-authcode/authcode"
	"github.com/stacklok/oclc-authcode/env"
	"github.com/stacklok/oclc-authcode/oauth"
	"github.com/stacklok/oclc-authcode/validation/http"
)

// DefaultConfigFile is the config file location relative to the XDG config directories.
const DefaultConfigFile = "oclc-authcode/config.yaml"

// Environment variables read by ApplyEnv.
const (
	EnvAuthorizationServer         = "OCLC_AUTHORIZATION_SERVER"
	EnvClientID                    = "OCLC_CLIENT_ID"
	EnvAuthenticatingInstitutionID = "OCLC_AUTHENTICATING_INSTITUTION_ID"
	EnvContextInstitutionID        = "OCLC_CONTEXT_INSTITUTION_ID"
	EnvRedirectURI                 = "OCLC_REDIRECT_URI"
	EnvScopes                      = "OCLC_SCOPES"
	EnvRedirectURIPolicy           = "OCLC_REDIRECT_URI_POLICY"
)

// Config holds the parameters of an authorization code request. A nil field
// was not configured, which authcode.New reports differently from a field
// configured as "".
type Config struct {
	AuthorizationServer         *string  `yaml:"authorization_server,omitempty"`
	ClientID                    *string  `yaml:"client_id,omitempty"`
	AuthenticatingInstitutionID *string  `yaml:"authenticating_institution_id,omitempty"`
	ContextInstitutionID        *string  `yaml:"context_institution_id,omitempty"`
	RedirectURI                 *string  `yaml:"redirect_uri,omitempty"`
	Scopes                      []string `yaml:"scopes,omitempty"`
	RedirectURIPolicy           *string  `yaml:"redirect_uri_policy,omitempty"`
}

// searchConfigFile locates the default config file, can be replaced in tests
var searchConfigFile = xdg.SearchConfigFile

// DefaultPath returns the path of the first existing DefaultConfigFile in the
// XDG config directories. ok is false when no such file exists.
func DefaultPath() (path string, ok bool) {
	path, err := searchConfigFile(DefaultConfigFile)
	if err != nil {
		return "", false
	}
	return path, true
}

// Load reads a YAML config file. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is chosen by the operator
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// LoadDefault loads the config file found by DefaultPath, or returns an
// empty Config when there is none.
func LoadDefault() (*Config, error) {
	path, ok := DefaultPath()
	if !ok {
		return &Config{}, nil
	}
	return Load(path)
}

// Parse decodes a YAML document into a Config.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields with the OCLC_* environment variables that are
// set. A variable set to "" overrides with "". OCLC_SCOPES is split on
// whitespace.
func (c *Config) ApplyEnv(reader env.Reader) {
	lookup := func(key string, dst **string) {
		if v, ok := reader.LookupEnv(key); ok {
			*dst = &v
		}
	}

	lookup(EnvAuthorizationServer, &c.AuthorizationServer)
	lookup(EnvClientID, &c.ClientID)
	lookup(EnvAuthenticatingInstitutionID, &c.AuthenticatingInstitutionID)
	lookup(EnvContextInstitutionID, &c.ContextInstitutionID)
	lookup(EnvRedirectURI, &c.RedirectURI)
	lookup(EnvRedirectURIPolicy, &c.RedirectURIPolicy)

	if v, ok := reader.LookupEnv(EnvScopes); ok {
		c.Scopes = append([]string{}, strings.Fields(v)...)
	}
}

// Options converts the config into authcode options. Only configured fields
// produce an option, so unset required fields surface as "missing" from
// authcode.New.
func (c *Config) Options() ([]authcode.Option, error) {
	var opts []authcode.Option

	if c.AuthorizationServer != nil {
		if err := http.ValidateServerURL(*c.AuthorizationServer); err != nil {
			return nil, fmt.Errorf("invalid authorization_server: %w", err)
		}
		opts = append(opts, authcode.WithAuthorizationServer(*c.AuthorizationServer))
	}
	if c.RedirectURIPolicy != nil && *c.RedirectURIPolicy != "" {
		policy, err := oauth.ParseRedirectURIPolicy(*c.RedirectURIPolicy)
		if err != nil {
			return nil, fmt.Errorf("invalid redirect_uri_policy: %w", err)
		}
		opts = append(opts, authcode.WithRedirectURIPolicy(policy))
	}

	if c.ClientID != nil {
		opts = append(opts, authcode.WithClientID(*c.ClientID))
	}
	if c.AuthenticatingInstitutionID != nil {
		opts = append(opts, authcode.WithAuthenticatingInstitutionID(*c.AuthenticatingInstitutionID))
	}
	if c.ContextInstitutionID != nil {
		opts = append(opts, authcode.WithContextInstitutionID(*c.ContextInstitutionID))
	}
	if c.RedirectURI != nil {
		opts = append(opts, authcode.WithRedirectURI(*c.RedirectURI))
	}
	if c.Scopes != nil {
		opts = append(opts, authcode.WithScopes(c.Scopes...))
	}

	return opts, nil
}

// NewRequest builds an authcode.Request from the config. Extra options are
// applied after the configured ones.
func (c *Config) NewRequest(extra ...authcode.Option) (*authcode.Request, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return authcode.New(append(opts, extra...)...)
}

// Server returns the configured authorization server or the default one.
func (c *Config) Server() string {
	if c.AuthorizationServer != nil {
		return *c.AuthorizationServer
	}
	return authcode.DefaultAuthorizationServer
}
