// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package loginhandler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stacklok/oclc-authcode/authcode"
	"github.com/stacklok/oclc-authcode/httperr"
	"github.com/stacklok/oclc-authcode/recovery"
)

// Routes served by NewRouter.
const (
	LoginPath  = "/login"
	HealthPath = "/healthz"
)

// Handler redirects user agents to the login URL of a Request.
type Handler struct {
	loginURL string
	logger   *slog.Logger
}

// New returns a Handler for req. The login URL is rendered once since
// a Request never changes.
func New(req *authcode.Request, logger *slog.Logger) *Handler {
	return &Handler{
		loginURL: req.LoginURL(),
		logger:   logger,
	}
}

// ServeHTTP answers GET and HEAD with 302 Found to the login URL.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		httperr.Write(w, r, h.logger, httperr.New("method not allowed", http.StatusMethodNotAllowed))
		return
	}

	h.logger.DebugContext(r.Context(), "redirecting to login", "remote_addr", r.RemoteAddr)
	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, h.loginURL, http.StatusFound)
}

// NewRouter mounts the Handler at LoginPath and a liveness probe at
// HealthPath, behind panic recovery.
func NewRouter(req *authcode.Request, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(recovery.Middleware(logger))

	r.Handle(LoginPath, New(req, logger))
	r.Get(HealthPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httperr.Write(w, r, logger, httperr.New("not found", http.StatusNotFound))
	})
	return r
}
