// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import "os"

// Reader defines an interface for environment variable access.
type Reader interface {
	// Getenv returns the value of the variable, or "" when it is unset.
	Getenv(key string) string

	// LookupEnv reports whether the variable is set, which distinguishes an
	// unset variable from one set to the empty string.
	LookupEnv(key string) (string, bool)
}

// OSReader implements Reader using the standard os package
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// LookupEnv returns the value of the environment variable named by the key
// and whether it was present.
func (*OSReader) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapReader implements Reader over a fixed set of values. It is useful for
// callers that already hold configuration in memory.
type MapReader map[string]string

// Getenv returns the value stored under key.
func (m MapReader) Getenv(key string) string {
	return m[key]
}

// LookupEnv returns the value stored under key and whether it exists.
func (m MapReader) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
