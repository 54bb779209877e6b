// Copyright 2026 The Numetron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the packed small-buffer storage scheme: a signed
// magnitude that lives either "inplaced" (inside the value itself, no heap
// allocation) or "heap" (an owned nat).
//
// A language with a freely-addressable union would pack the inplaced/heap
// discriminant into the top two bits of the top inline limb. Go gives us no
// portable way to alias a slice header and a fixed array in the same
// storage, so the discriminant is carried alongside the payload instead:
// simply heap's nilness, which needs no extra field at all. The inline
// magnitude budget is still capped two bits short of the raw inline
// capacity (inlineBits, not inlineLimbs*limbBits), as if the flag and sign
// bit lived in the top limb, so the promotion threshold is 2^(N*B-2)-1.
package numetron

const (
	limbBits = 64

	// inlineLimbs is N, the inline-capacity parameter. Two limbs keeps the
	// common case (values that fit in 126 bits) allocation-free while
	// keeping the struct small.
	inlineLimbs = 2

	// inlineBits is the inline magnitude budget, N*B-2: two bits are set
	// aside for the is-inplaced flag and the sign bit of the packed layout
	// this struct mirrors.
	inlineBits = inlineLimbs*limbBits - 2
)

// smallNat is the packed signed-magnitude storage. The zero value is
// canonical zero (neg=false, heap=nil, buf all zero), so the sign of zero
// is +1 for free.
type smallNat struct {
	neg  bool
	buf  [inlineLimbs]word // meaningful only when heap == nil (inplaced)
	heap nat                // non-nil => heap layout; owns its backing array
}

// isInplaced reports whether s currently uses the no-allocation layout.
func (s *smallNat) isInplaced() bool { return s.heap == nil }

// mag returns the stored magnitude as a nat. For the inplaced layout this
// is a view over buf; callers must not retain it across a mutation of s.
func (s *smallNat) mag() nat {
	if s.heap != nil {
		return s.heap
	}
	return nat(s.buf[:]).norm()
}

// fitsInline reports whether m's bit length fits the inline budget.
func fitsInline(m nat) bool {
	return m.bitLen() <= inlineBits
}

// setMag stores magnitude m with sign neg, promoting to heap when m
// exceeds the inline budget and demoting to inplaced otherwise, so the
// layout is always a pure function of the magnitude and the two layouts
// never compare unequal. Canonical zero always normalises neg to false.
func (s *smallNat) setMag(m nat, neg bool) {
	m = m.norm()
	if len(m) == 0 {
		neg = false
	}
	if fitsInline(m) {
		var b [inlineLimbs]word
		copy(b[:], m)
		s.buf = b
		s.heap = nil
	} else {
		s.heap = append(s.heap[:0], m...)
	}
	s.neg = neg
}

// setFrom copies another smallNat's value, allocating an independent heap
// buffer when the source is heap-backed: a heap buffer is owned by exactly
// one value.
func (s *smallNat) setFrom(src *smallNat) {
	if src.heap != nil {
		s.heap = append(s.heap[:0], src.heap...)
		s.buf = [inlineLimbs]word{}
	} else {
		s.heap = nil
		s.buf = src.buf
	}
	s.neg = src.neg
}

// isZero reports whether s holds the canonical zero value.
func (s *smallNat) isZero() bool {
	return s.heap == nil && s.buf == [inlineLimbs]word{}
}
