// SPDX-License-Identifier: MIT
// Package: gROM/builder
//
// validators.go: parameter contracts shared by the network constructors.

package builder

import "fmt"

// validateMin ensures that the parameter `name` of method is ≥ min.
// The returned error wraps ErrTooFewPoints.
//
// Complexity: O(1) time and space.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewPoints)
	}

	return nil
}

// validateAll returns the first failing check.
func validateAll(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
