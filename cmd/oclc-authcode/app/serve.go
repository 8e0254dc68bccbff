// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/stacklok/oclc-authcode/loginhandler"
)

const (
	defaultListenAddr = "127.0.0.1:8080"
	shutdownTimeout   = 10 * time.Second
)

func newServeCmd(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a redirect to the login URL",
		Long: `Start an HTTP server that answers GET /login with a redirect to the login URL
of the configured request. The server runs until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := s.newRequest(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return s.serve(ctx, s.v.GetString("listen"), loginhandler.NewRouter(req, s.logger))
		},
	}

	cmd.Flags().String("listen", defaultListenAddr, "Address to listen on")
	if err := s.v.BindPFlag("listen", cmd.Flags().Lookup("listen")); err != nil {
		cmd.PrintErrf("Error binding listen flag: %v\n", err)
	}
	return cmd
}

// serve runs handler on addr until ctx is cancelled, then shuts down gracefully.
func (s *state) serve(ctx context.Context, addr string, handler http.Handler) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info("login server started", "addr", ln.Addr().String(), "path", loginhandler.LoginPath)

	select {
	case err := <-errCh:
		return fmt.Errorf("login server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down login server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("login server stopped")
	return nil
}
