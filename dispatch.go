// Copyright 2026 The Numetron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the one-shot CPU-feature probe: the only
// process-wide state in the package, selecting between two
// interchangeable, equally-correct implementations of the schoolbook
// multiply's inner loop. Both lanes are portable Go on every GOARCH; the
// probe merely prefers a wider unrolled lane on CPUs that report deeper
// SIMD pipelines, and correctness never depends on the choice.
package numetron

import (
	"sync"

	"golang.org/x/sys/cpu"
)

var (
	dispatchOnce   sync.Once
	useWideMulLane bool
)

// probeMulDispatch runs the feature probe exactly once, safe under
// concurrent first callers.
func probeMulDispatch() {
	dispatchOnce.Do(func() {
		useWideMulLane = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD
	})
}

// addMulVVWWide is the four-way-unrolled variant of addMulVVW: identical
// postcondition (z += x*y, returning the carry out), processing four
// limbs of x per loop iteration when at least four remain. Selected only
// when probeMulDispatch reports a CPU likely to benefit from the wider
// lane; correctness never depends on which variant runs.
func addMulVVWWide(z, x []word, y word) (c word) {
	i := 0
	for ; i+4 <= len(x); i += 4 {
		for j := i; j < i+4; j++ {
			hi, lo := MulAddWWW(x[j], y, z[j])
			var cc word
			cc, z[j] = AddCC(lo, c, 0)
			c = hi + cc
		}
	}
	for ; i < len(x); i++ {
		hi, lo := MulAddWWW(x[i], y, z[i])
		var cc word
		cc, z[i] = AddCC(lo, c, 0)
		c = hi + cc
	}
	return
}

// addMulVVWDispatch runs the one-shot probe and picks the lane width for
// this call; both paths share the exact same contract as addMulVVW.
func addMulVVWDispatch(z, x []word, y word) word {
	probeMulDispatch()
	if useWideMulLane && len(x) >= 4 {
		return addMulVVWWide(z, x, y)
	}
	return addMulVVW(z, x, y)
}
