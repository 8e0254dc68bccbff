// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/stacklok/oclc-authcode/authcode"
)

const (
	outputYAML = "yaml"
	outputJSON = "json"
)

func newMetadataCmd(s *state) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "metadata",
		Short: "Print the endpoints of the configured authorization server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := s.loadConfig(cmd)
			if err != nil {
				return err
			}
			// Only the server URL and policy are validated; request fields may be unset.
			if _, err := cfg.Options(); err != nil {
				return err
			}

			metadata := authcode.ServerMetadata(cfg.Server())
			out := cmd.OutOrStdout()
			switch output {
			case outputYAML:
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(metadata); err != nil {
					return fmt.Errorf("failed to encode metadata: %w", err)
				}
				return enc.Close()
			case outputJSON:
				data, err := json.MarshalIndent(metadata, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode metadata: %w", err)
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			default:
				return fmt.Errorf("unsupported output format %q (use %s or %s)", output, outputYAML, outputJSON)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputYAML, "Output format: yaml or json")
	return cmd
}
