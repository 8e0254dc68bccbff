// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package app provides the entry point for the oclc-authcode command-line application.
package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stacklok/oclc-authcode/env"
)

// NewRootCmd creates a new root command for the oclc-authcode CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&env.OSReader{})
}

func newRootCmd(envReader env.Reader) *cobra.Command {
	s := &state{
		v:   viper.New(),
		env: envReader,
	}

	rootCmd := &cobra.Command{
		Use:               "oclc-authcode",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		Short:             "Build OCLC authorization code login URLs",
		Long: `oclc-authcode validates the parameters of an OCLC WorldCat authorization code
request and renders the login URL a browser must visit to obtain a code.

Parameters are read from a YAML config file, then OCLC_* environment variables,
then command-line flags, each overriding the previous one.`,
		Run: func(cmd *cobra.Command, _ []string) {
			// If no subcommand is provided, print help
			if err := cmd.Help(); err != nil {
				cmd.PrintErrf("Error displaying help: %v\n", err)
			}
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			s.initLogger(cmd)
		},
	}

	// Add persistent flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug mode")
	rootCmd.PersistentFlags().String("config", "",
		"Path to the config file (default: oclc-authcode/config.yaml in the XDG config directories)")
	for _, name := range []string{"debug", "config"} {
		if err := s.v.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			rootCmd.PrintErrf("Error binding %s flag: %v\n", name, err)
		}
	}
	addRequestFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(newURLCmd(s))
	rootCmd.AddCommand(newMetadataCmd(s))
	rootCmd.AddCommand(newServeCmd(s))

	return rootCmd
}
