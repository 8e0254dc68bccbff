// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package loginhandler sends browsers to the OCLC login page of an
// authcode.Request.
//
// It only starts the flow. The authorization server redirects back to the
// request's redirect URI, and handling that callback belongs to the
// application that owns it.
//
//	req, err := authcode.New(...)
//	if err != nil {
//		return err
//	}
//	srv := &http.Server{
//		Addr:              "127.0.0.1:8080",
//		Handler:           loginhandler.NewRouter(req, logger),
//		ReadHeaderTimeout: 10 * time.Second,
//	}
package loginhandler
