// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides an interface-based abstraction for environment variable
access, enabling dependency injection and testing isolation.

# Basic Usage

Use OSReader to read environment variables via the standard os package:

	reader := &env.OSReader{}
	value := reader.Getenv("OCLC_CLIENT_ID")

	if server, ok := reader.LookupEnv("OCLC_AUTHORIZATION_SERVER"); ok {
		// the variable is set, possibly to ""
	}

# Testing

The Reader interface allows injecting a mock in tests to avoid relying on
real environment variables. A generated mock is available in the mocks
sub-package:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().LookupEnv("OCLC_CLIENT_ID").Return("abc123", true)

	result := myFunc(mock)

For simple fixtures, MapReader avoids the mock controller entirely:

	reader := env.MapReader{"OCLC_CLIENT_ID": "abc123"}
*/
package env
