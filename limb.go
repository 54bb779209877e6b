// Copyright 2026 The Numetron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements single- and double-limb hardware-mapped operations:
// add-with-carry, sub-with-borrow, full-product multiply, normalised 2-by-1
// divide, leading-zero count and integer power. Every operation is written
// once against the Limb trait (golang.org/x/exp/constraints.Unsigned) so it
// works identically for 8-, 32- and 64-bit limbs; the 64-bit instantiation
// is the one the rest of the package uses, the narrower widths exist for
// test coverage.

package numetron

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Limb is the trait every limb-width instantiation of the kernels below
// satisfies.
type Limb interface {
	constraints.Unsigned
}

// bitWidth returns the number of bits in W, e.g. 64 for uint64.
func bitWidth[W Limb]() uint {
	var z W
	return uint(unsafe.Sizeof(z)) * 8
}

// AddCC computes z1<<W + z0 = x + y + cin, with cin, z1 in {0, 1}.
func AddCC[W Limb](x, y, cin W) (cout, z W) {
	yc := y + cin
	z = x + yc
	if z < x || yc < y {
		cout = 1
	}
	return
}

// SubBB computes z1<<W + z0 = x - y - bin, with bin, z1 in {0, 1}.
func SubBB[W Limb](x, y, bin W) (bout, z W) {
	yc := y + bin
	z = x - yc
	if z > x || yc < y {
		bout = 1
	}
	return
}

// MulFull computes hi<<W + lo = x*y exactly. Adapted from Warren, Hacker's
// Delight, generalised to an arbitrary even limb width via bitWidth.
func MulFull[W Limb](x, y W) (hi, lo W) {
	half := bitWidth[W]() / 2
	mask := W(1)<<half - 1

	x0 := x & mask
	x1 := x >> half
	y0 := y & mask
	y1 := y >> half

	w0 := x0 * y0
	t := x1*y0 + w0>>half
	w1 := t & mask
	w2 := t >> half
	w1 += x0 * y1
	hi = x1*y1 + w2 + w1>>half
	lo = x * y
	return
}

// MulAddWWW computes z1<<W + z0 = x*y + c.
func MulAddWWW[W Limb](x, y, c W) (z1, z0 W) {
	z1, lo := MulFull(x, y)
	if z0 = lo + c; z0 < lo {
		z1++
	}
	return
}

// CountLeadingZeros returns the number of leading zero bits of x, for x != 0.
func CountLeadingZeros[W Limb](x W) int {
	if x == 0 {
		return int(bitWidth[W]())
	}
	width := int(bitWidth[W]())
	n := 0
	for i := width - 1; i >= 0; i-- {
		if x&(W(1)<<uint(i)) != 0 {
			break
		}
		n++
	}
	return n
}

// BitLen returns the number of bits required to represent x; BitLen(0) == 0.
func BitLen[W Limb](x W) int {
	if x == 0 {
		return 0
	}
	return int(bitWidth[W]()) - CountLeadingZeros(x)
}

// IPow returns base**k exactly, provided the result fits in W; behaviour is
// undefined (wraps modulo 2^W) otherwise. Callers in this package only invoke
// it where the result is known to fit.
func IPow[W Limb](base W, k uint) W {
	result := W(1)
	for ; k > 0; k-- {
		result *= base
	}
	return result
}

// Div2by1Norm divides the double-limb (u1,u0) by d, where d's top bit is set
// (normalised) and u1 < d. q*d + r = u1*2^W + u0, with r < d. Adapted from
// Warren, Hacker's Delight, p. 152, generalised over limb width.
func Div2by1Norm[W Limb](u1, u0, d W) (q, r W) {
	half := bitWidth[W]() / 2
	base2 := W(1) << half
	mask2 := base2 - 1

	vn1 := d >> half
	vn0 := d & mask2
	un1 := u0 >> half
	un0 := u0 & mask2

	q1 := u1 / vn1
	rhat := u1 - q1*vn1
	for q1 >= base2 || q1*vn0 > base2*rhat+un1 {
		q1--
		rhat += vn1
		if rhat >= base2 {
			break
		}
	}

	un21 := u1*base2 + un1 - q1*d
	q0 := un21 / vn1
	rhat = un21 - q0*vn1
	for q0 >= base2 || q0*vn0 > base2*rhat+un0 {
		q0--
		rhat += vn1
		if rhat >= base2 {
			break
		}
	}

	return q1*base2 + q0, un21*base2 + un0 - q0*d
}

// Div2by1Inv divides the double-limb (u1,u0) by d using a precomputed
// reciprocal dinv = floor((2^2W - 1)/d) - 2^W (d normalised, u1 < d). This is
// the Granlund-Montgomery invariant-integer division: divWSmall and
// divSvoboda pay for the reciprocal once per call instead of once per digit.
func Div2by1Inv[W Limb](u1, u0, d, dinv W) (q, r W) {
	hi, lo := MulFull(dinv, u1)
	carry, lo2 := AddCC(lo, u0, 0)
	hi2 := hi + u1 + carry

	q1 := hi2 + 1
	q0 := lo2

	r = u0 - q1*d
	if r > q0 {
		q1--
		r += d
	}
	if r >= d {
		q1++
		r -= d
	}
	return q1, r
}

// ReciprocalWord computes dinv = floor((2^2W - 1)/d) - 2^W for a normalised
// d (top bit set), the reciprocal consumed by Div2by1Inv.
func ReciprocalWord[W Limb](d W) W {
	allOnes := ^W(0)
	q, _ := Div2by1Norm(allOnes-d, allOnes, d)
	return q
}
