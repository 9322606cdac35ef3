// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines ValidationError, the single error type reported when a
// model value would break one of its invariants.
package model

import (
	"fmt"
	"strings"
)

// ValidationError describes a rejected model value. Field names the offending
// attribute, Expected and Actual describe the mismatch when there is one, and
// Suggestion carries a known stitch abbreviation close to an unknown one.
type ValidationError struct {
	Field      string
	Expected   string
	Actual     string
	Reason     string
	Suggestion string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid %s: %s", e.Field, e.Reason)
	if e.Expected != "" || e.Actual != "" {
		fmt.Fprintf(&b, " (expected %s, got %s)", e.Expected, e.Actual)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "; did you mean %q?", e.Suggestion)
	}
	return b.String()
}
