// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newURLCmd(s *state) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "url",
		Short: "Print the login URL for an authorization code request",
		Long: `Validate the configured request parameters and print the URL a browser must
visit to log in and obtain an authorization code.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := s.newRequest(cmd)
			if err != nil {
				return err
			}
			if verbose {
				fmt.Fprint(cmd.ErrOrStderr(), req.String())
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), req.LoginURL())
			return err
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Also print the request parameters to stderr")
	return cmd
}
