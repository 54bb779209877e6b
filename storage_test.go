// Copyright 2026 The Numetron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numetron

import "testing"

func TestPromotionThreshold(t *testing.T) {
	// Any value with magnitude <= 2^(N*B-2)-1 must be inplaced immediately
	// after construction.
	maxInline := new(Int).Exp(NewInt(2), inlineBits)
	maxInline.Sub(maxInline, NewInt(1))
	if !maxInline.isInplaced() {
		t.Fatalf("value at the inline boundary was not inplaced")
	}

	overflowed := new(Int).Add(maxInline, NewInt(1))
	if overflowed.isInplaced() {
		t.Fatalf("value one past the inline boundary was still inplaced")
	}
}

func TestBoundaryNegation(t *testing.T) {
	maxInline := new(Int).Exp(NewInt(2), inlineBits)
	maxInline.Sub(maxInline, NewInt(1))

	negated := new(Int).Neg(maxInline)
	if !negated.isInplaced() {
		t.Fatalf("negated inline boundary value should remain inplaced")
	}
	back := new(Int).Neg(negated)
	if back.Cmp(maxInline) != 0 {
		t.Fatalf("negate/negate round trip failed: got %s, want %s", back.String(), maxInline.String())
	}

	// Negation of the smallest heap value must not wrap.
	smallestHeap := new(Int).Add(maxInline, NewInt(1))
	negHeap := new(Int).Neg(smallestHeap)
	if negHeap.Sign() != -1 || negHeap.CmpAbsMag(smallestHeap) != 0 {
		t.Fatalf("negating smallest heap value misbehaved: %s", negHeap.String())
	}
}

// CmpAbsMag compares |x| against |y|'s magnitude; a small test helper, not
// part of the public surface.
func (x *Int) CmpAbsMag(y *Int) int {
	return x.mag().cmp(y.mag())
}

func TestInplacedHeapIndistinguishable(t *testing.T) {
	// Operating on equal inputs stored in different layouts must yield
	// equal results.
	small := NewInt(42)
	var big Int
	big.heap = append(nat(nil), small.mag()...) // force heap layout despite fitting inline
	big.neg = false
	if small.isInplaced() == big.isInplaced() {
		t.Fatalf("test setup failed to produce differing layouts")
	}
	if small.Cmp(&big) != 0 {
		t.Fatalf("equal values in different layouts compared unequal")
	}

	sum1 := new(Int).Add(small, NewInt(100))
	sum2 := new(Int).Add(&big, NewInt(100))
	if sum1.Cmp(sum2) != 0 {
		t.Fatalf("Add gave different results across layouts: %s vs %s", sum1.String(), sum2.String())
	}
}

func TestCanonicalZero(t *testing.T) {
	z := NewInt(0)
	if z.Sign() != 0 {
		t.Fatalf("zero has nonzero sign")
	}
	if z.neg {
		t.Fatalf("zero must not be negative")
	}
	negZero := new(Int).Neg(z)
	if negZero.neg {
		t.Fatalf("negating zero produced negative zero")
	}
}
