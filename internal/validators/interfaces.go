// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for request models.
//
// A Validator checks a request value and reports every rejected field as a
// [FieldError] inside [ValidationErrors]. Callers may restrict validation to
// a subset of fields by passing field names.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
