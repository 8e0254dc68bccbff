// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package config loads authorization code request parameters from a YAML file
and OCLC_* environment variables.

# File Format

	authorization_server: https://authn.sd00.worldcat.org/oauth2
	client_id: abc123
	authenticating_institution_id: "128807"
	context_institution_id: "128807"
	redirect_uri: https://example.com/callback
	scopes:
	  - WorldCatMetadataAPI
	redirect_uri_policy: strict

The file is looked up as oclc-authcode/config.yaml in the XDG config
directories unless a path is given explicitly.

# Precedence

Environment variables override the file. OCLC_AUTHORIZATION_SERVER is the
deployment-wide way to point every request at another authorization server.

	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}
	cfg.ApplyEnv(&env.OSReader{})
	req, err := cfg.NewRequest()
*/
package config
