// SPDX-License-Identifier: MIT

package tensor

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive or mismatched shape.
	ErrInvalidDimensions = errors.New("tensor: invalid dimensions")

	// ErrOutOfRange indicates a row or column index outside the shape.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrNaNInf indicates an attempt to store NaN or ±Inf.
	ErrNaNInf = errors.New("tensor: NaN or Inf value")

	// ErrBadClass indicates a one-hot class outside [0, classes).
	ErrBadClass = errors.New("tensor: class out of range")
)
