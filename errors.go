// Copyright 2026 The Numetron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numetron

import "errors"

// Failure kinds returned by the package's operations. Wrap with
// fmt.Errorf("...: %w", ErrX) at the call site when more context is useful;
// callers compare with errors.Is.
var (
	// ErrInvalidArgument is returned for a non-finite floating-point value
	// where a finite one is required, or a malformed numeric string.
	ErrInvalidArgument = errors.New("numetron: invalid argument")

	// ErrDivisionByZero is returned by / and % with a zero divisor.
	ErrDivisionByZero = errors.New("numetron: division by zero")

	// ErrOverflow is returned when a decimal-to-integer conversion has an
	// exponent too large to represent.
	ErrOverflow = errors.New("numetron: overflow")

	// ErrAllocationFailure would be returned if a caller-selectable
	// allocator failed. Go's runtime allocator does not expose a recoverable
	// out-of-memory path, so no code path in this package ever produces this
	// error; it completes the public failure surface for callers that
	// enumerate it.
	ErrAllocationFailure = errors.New("numetron: allocation failure")
)
