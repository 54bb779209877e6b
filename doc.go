// Copyright 2026 The Numetron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numetron implements arbitrary-precision arithmetic: a
// small-buffer-optimised signed big integer (Int), a decimal type built as
// significand × 10^exponent (Decimal), an IEEE-754 binary16 type (Binary16),
// and the limb-level kernels that back them.
//
// The package is one flat package: elementary word operations in limb.go,
// multi-limb vector kernels in nat.go and nat_div.go, the packed
// small-buffer representation in storage.go, and the public value types in
// int.go, float16.go and decimal.go.
package numetron
