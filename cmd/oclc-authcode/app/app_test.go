// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/stacklok/oclc-authcode/config"
	"github.com/stacklok/oclc-authcode/env"
	"github.com/stacklok/oclc-authcode/oauth"
)

const (
	testConfig = `
client_id: abc123
authenticating_institution_id: "128807"
context_institution_id: "128807"
redirect_uri: https://example.com/callback
scopes:
  - WorldCatMetadataAPI
`
	canonicalLoginURL = "https://authn.sd00.worldcat.org/oauth2/authorizeCode" +
		"?authenticatingInstitutionId=128807&client_id=abc123&contextInstitutionId=128807" +
		"&redirect_uri=https%3A%2F%2Fexample.com%2Fcallback&response_type=code&scope=WorldCatMetadataAPI"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

// run executes the CLI with an isolated environment and returns stdout and stderr.
func run(t *testing.T, environ env.MapReader, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd(environ)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestURLCmd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		config      string
		environ     env.MapReader
		args        []string
		wantURL     string
		errContains string
	}{
		{
			name:    "config file",
			config:  testConfig,
			wantURL: canonicalLoginURL,
		},
		{
			name:   "flags only",
			config: "",
			args: []string{
				"--client-id", "abc123",
				"--authenticating-institution-id", "128807",
				"--context-institution-id", "128807",
				"--redirect-uri", "https://example.com/callback",
				"--scope", "WorldCatMetadataAPI",
			},
			wantURL: canonicalLoginURL,
		},
		{
			name:   "environment overrides file",
			config: testConfig,
			environ: env.MapReader{
				config.EnvAuthorizationServer: "http://localhost:9000/oauth2",
				config.EnvScopes:              "scope1 scope2",
			},
			wantURL: "http://localhost:9000/oauth2/authorizeCode" +
				"?authenticatingInstitutionId=128807&client_id=abc123&contextInstitutionId=128807" +
				"&redirect_uri=https%3A%2F%2Fexample.com%2Fcallback&response_type=code&scope=scope1 scope2",
		},
		{
			name:    "flags override environment",
			config:  testConfig,
			environ: env.MapReader{config.EnvClientID: "env-client"},
			args:    []string{"--client-id", "flag-client"},
			wantURL: "https://authn.sd00.worldcat.org/oauth2/authorizeCode" +
				"?authenticatingInstitutionId=128807&client_id=flag-client&contextInstitutionId=128807" +
				"&redirect_uri=https%3A%2F%2Fexample.com%2Fcallback&response_type=code&scope=WorldCatMetadataAPI",
		},
		{
			name:        "missing client id",
			config:      "",
			errContains: "Required option missing: client_id.",
		},
		{
			name:        "empty flag value",
			config:      testConfig,
			args:        []string{"--context-institution-id", ""},
			errContains: "Cannot be empty string: context_institution_id.",
		},
		{
			name:        "invalid redirect uri",
			config:      testConfig,
			args:        []string{"--redirect-uri", "ftp://example.com/cb"},
			errContains: "Invalid redirect_uri. Must begin with http:// or https://",
		},
		{
			name:        "empty scope flag",
			config:      testConfig,
			args:        []string{"--scope", ""},
			errContains: "You must pass at least one valid scope",
		},
		{
			name:        "strict policy",
			config:      testConfig,
			args:        []string{"--redirect-uri", "http://example.com/cb", "--redirect-uri-policy", "strict"},
			errContains: "Invalid redirect_uri: ",
		},
		{
			name:        "invalid server",
			config:      testConfig,
			args:        []string{"--authorization-server", "not a url"},
			errContains: "invalid authorization_server",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			environ := tt.environ
			if environ == nil {
				environ = env.MapReader{}
			}
			args := append([]string{"url", "--config", writeConfig(t, tt.config)}, tt.args...)
			stdout, _, err := run(t, environ, args...)

			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				assert.Empty(t, stdout)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL+"\n", stdout)
		})
	}
}

func TestURLCmd_Verbose(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := run(t, env.MapReader{}, "url", "--config", writeConfig(t, testConfig), "--verbose")
	require.NoError(t, err)
	assert.Equal(t, canonicalLoginURL+"\n", stdout)
	assert.Contains(t, stderr, "\tclient_id: abc123\n")
	assert.Contains(t, stderr, "\tscopes: [WorldCatMetadataAPI]\n")
}

func TestURLCmd_DebugLogging(t *testing.T) {
	t.Parallel()

	_, stderr, err := run(t, env.MapReader{}, "url", "--config", writeConfig(t, testConfig), "--debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "created authorization code request")

	_, stderr, err = run(t, env.MapReader{"OCLC_AUTHCODE_LOG_LEVEL": "debug", "OCLC_AUTHCODE_LOG_FORMAT": "json"},
		"url", "--config", writeConfig(t, testConfig))
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"created authorization code request"`)
}

func TestMetadataCmd(t *testing.T) {
	t.Parallel()

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := run(t, env.MapReader{}, "metadata", "--config", writeConfig(t, ""))
		require.NoError(t, err)

		var m oauth.AuthorizationServerMetadata
		require.NoError(t, yaml.Unmarshal([]byte(stdout), &m))
		assert.Equal(t, "https://authn.sd00.worldcat.org/oauth2/authorizeCode", m.AuthorizationEndpoint)
		assert.Equal(t, "https://authn.sd00.worldcat.org/oauth2/accessToken", m.TokenEndpoint)
	})

	t.Run("json with server override", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := run(t, env.MapReader{}, "metadata", "--config", writeConfig(t, ""),
			"-o", "json", "--authorization-server", "http://localhost:9000/oauth2")
		require.NoError(t, err)

		var m oauth.AuthorizationServerMetadata
		require.NoError(t, json.Unmarshal([]byte(stdout), &m))
		assert.Equal(t, "http://localhost:9000/oauth2", m.Issuer)
		assert.True(t, m.SupportsGrantType(oauth.GrantTypeAuthorizationCode))
	})

	t.Run("unsupported output", func(t *testing.T) {
		t.Parallel()
		_, _, err := run(t, env.MapReader{}, "metadata", "--config", writeConfig(t, ""), "-o", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported output format")
	})
}

func TestServe(t *testing.T) {
	t.Parallel()

	s := &state{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	t.Run("stops when context is cancelled", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.NoError(t, s.serve(ctx, "127.0.0.1:0", handler))
	})

	t.Run("reports listen errors", func(t *testing.T) {
		t.Parallel()
		err := s.serve(context.Background(), "256.0.0.1:bad", handler)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to listen")
	})
}

func TestRootCmd_Help(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, env.MapReader{})
	require.NoError(t, err)
	assert.Contains(t, stdout, "oclc-authcode")
	assert.Contains(t, stdout, "url")
	assert.Contains(t, stdout, "serve")
}
