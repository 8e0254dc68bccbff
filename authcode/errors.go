// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package authcode

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter matches every *InvalidParameterError under errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

// Violation identifies which rule a parameter broke.
type Violation int

const (
	// ViolationMissing means the parameter was never supplied.
	ViolationMissing Violation = iota

	// ViolationEmpty means the parameter was supplied as the empty string.
	ViolationEmpty

	// ViolationInvalidRedirectURI means the redirect URI does not use http or https.
	ViolationInvalidRedirectURI

	// ViolationRedirectURIPolicy means the redirect URI was rejected by the
	// policy configured with WithRedirectURIPolicy.
	ViolationRedirectURIPolicy

	// ViolationNoValidScope means no scopes were given or the first one is empty.
	ViolationNoValidScope
)

// InvalidParameterError reports a parameter that failed validation in New.
type InvalidParameterError struct {
	// Field is the parameter name, one of the Field* constants.
	Field string

	// Violation is the rule that was broken.
	Violation Violation

	// Err is the underlying cause, set only for ViolationRedirectURIPolicy.
	Err error
}

// Error returns the message the authorization server client library has
// always reported for this violation.
func (e *InvalidParameterError) Error() string {
	switch e.Violation {
	case ViolationMissing:
		if e.Field == FieldScopes {
			return "Required option missing: scopes. Note scopes must be a list of one or more scopes."
		}
		return fmt.Sprintf("Required option missing: %s.", e.Field)
	case ViolationEmpty:
		return fmt.Sprintf("Cannot be empty string: %s.", e.Field)
	case ViolationInvalidRedirectURI:
		return "Invalid redirect_uri. Must begin with http:// or https://"
	case ViolationRedirectURIPolicy:
		return fmt.Sprintf("Invalid redirect_uri: %v.", e.Err)
	case ViolationNoValidScope:
		return "You must pass at least one valid scope"
	default:
		return fmt.Sprintf("Invalid parameter: %s.", e.Field)
	}
}

// Is makes errors.Is(err, ErrInvalidParameter) true for every InvalidParameterError.
func (*InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// Unwrap returns the underlying cause, if any.
func (e *InvalidParameterError) Unwrap() error {
	return e.Err
}

func missing(field string) error {
	return &InvalidParameterError{Field: field, Violation: ViolationMissing}
}

func empty(field string) error {
	return &InvalidParameterError{Field: field, Violation: ViolationEmpty}
}
