// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stacklok/oclc-authcode/authcode"
	"github.com/stacklok/oclc-authcode/config"
	"github.com/stacklok/oclc-authcode/env"
	"github.com/stacklok/oclc-authcode/logging"
)

// Flag names shared by every subcommand.
const (
	flagAuthorizationServer         = "authorization-server"
	flagClientID                    = "client-id"
	flagAuthenticatingInstitutionID = "authenticating-institution-id"
	flagContextInstitutionID        = "context-institution-id"
	flagRedirectURI                 = "redirect-uri"
	flagScope                       = "scope"
	flagRedirectURIPolicy           = "redirect-uri-policy"
)

// state is shared between the root command and its subcommands.
type state struct {
	v      *viper.Viper
	env    env.Reader
	logger *slog.Logger
}

func addRequestFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String(flagAuthorizationServer, "", "Authorization server base URL (default "+authcode.DefaultAuthorizationServer+")")
	flags.String(flagClientID, "", "Client id (public part of the WSKey)")
	flags.String(flagAuthenticatingInstitutionID, "", "Institution the user authenticates against")
	flags.String(flagContextInstitutionID, "", "Institution the access is scoped to")
	flags.String(flagRedirectURI, "", "Redirect URI registered for the WSKey")
	flags.StringArray(flagScope, nil, "Requested scope (repeatable)")
	flags.String(flagRedirectURIPolicy, "", "Extra redirect URI check: strict or allow-private-schemes")
}

func (s *state) initLogger(cmd *cobra.Command) {
	opts, envErr := logging.FromEnv(s.env)
	opts = append([]logging.Option{logging.WithFormat(logging.FormatText)}, opts...)
	if s.v.GetBool("debug") {
		opts = append(opts, logging.WithLevel(slog.LevelDebug))
	}
	opts = append(opts, logging.WithOutput(cmd.ErrOrStderr()))

	s.logger = logging.New(opts...)
	if envErr != nil {
		s.logger.Warn("ignoring invalid logging environment", "error", envErr)
	}
}

// loadConfig merges the config file, the environment and the flags that
// were set on the command line.
func (s *state) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path := s.v.GetString("config"); path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	cfg.ApplyEnv(s.env)

	flags := cmd.Flags()
	stringFlags := map[string]**string{
		flagAuthorizationServer:         &cfg.AuthorizationServer,
		flagClientID:                    &cfg.ClientID,
		flagAuthenticatingInstitutionID: &cfg.AuthenticatingInstitutionID,
		flagContextInstitutionID:        &cfg.ContextInstitutionID,
		flagRedirectURI:                 &cfg.RedirectURI,
		flagRedirectURIPolicy:           &cfg.RedirectURIPolicy,
	}
	for name, dst := range stringFlags {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetString(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read --%s: %w", name, err)
		}
		*dst = &v
	}
	if flags.Changed(flagScope) {
		scopes, err := flags.GetStringArray(flagScope)
		if err != nil {
			return nil, fmt.Errorf("failed to read --%s: %w", flagScope, err)
		}
		cfg.Scopes = scopes
	}

	return cfg, nil
}

// newRequest loads the configuration and validates it into a Request.
func (s *state) newRequest(cmd *cobra.Command) (*authcode.Request, error) {
	cfg, err := s.loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	req, err := cfg.NewRequest(authcode.WithLogger(s.logger))
	if err != nil {
		return nil, fmt.Errorf("invalid authorization code request: %w", err)
	}
	return req, nil
}
