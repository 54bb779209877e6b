// Copyright 2026 The Numetron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements division: divWSmall (division by a single limb),
// divBasic (normalised base-case division, Knuth TAOCP 4.3.1 Algorithm D),
// divSvoboda (the same algorithm with the per-digit 2-by-1 divide replaced
// by a single precomputed-reciprocal multiply) and div, the top-level
// normalise/dispatch/denormalise entry point.
package numetron

// mulW returns x*y as a new nat (no addend), the scalar-multiply building
// block decimal exponent scaling uses.
func (z nat) mulW(x nat, y word) nat {
	if len(x) == 0 || y == 0 {
		return z.set(nil)
	}
	z = z.make(len(x) + 1)
	z[len(x)] = mulAddVWW(z[:len(x)], x, y, 0)
	return z.norm()
}

// digits10PerLimb is the largest k with 10^k representable in a word,
// the chunk size decimal exponent scaling advances by.
const digits10PerLimb = 19

// mulPow10 computes z = x * 10^k, k >= 0, one word-sized chunk of the
// power at a time so no oversized intermediate power-of-ten integer is
// ever built.
func (z nat) mulPow10(x nat, k int64) nat {
	z = z.set(x)
	for k > 0 {
		chunk := int64(digits10PerLimb)
		if chunk > k {
			chunk = k
		}
		z = z.mulW(z, IPow(word(10), uint(chunk)))
		k -= chunk
	}
	return z
}

// divWSmall divides x by the single nonzero limb y, returning the quotient
// and remainder. y == 1 and y a power of two take dedicated fast paths; the
// general path normalises x and y by the same left shift (which leaves the
// quotient unchanged and scales the remainder by 2^shift), computes y's
// reciprocal once, and produces the quotient digits top-down with
// Div2by1Inv.
func (z nat) divWSmall(x nat, y word) (q nat, r word) {
	if y == 0 {
		panic("numetron: division by zero limb")
	}
	if len(x) == 0 {
		return z.set(nil), 0
	}
	if y == 1 {
		return z.set(x), 0
	}
	if y&(y-1) == 0 { // power of two: shift-and-mask
		s := uint(BitLen(y) - 1)
		r = x[0] & (y - 1)
		q = z.shr(x, s)
		return q, r
	}

	s := uint(CountLeadingZeros(y))
	dnorm := y << s
	dinv := ReciprocalWord(dnorm)

	shifted := nat(nil).shl(x, s)
	qbuf := make(nat, len(shifted))
	var rem word
	for i := len(shifted) - 1; i >= 0; i-- {
		qbuf[i], rem = Div2by1Inv(rem, shifted[i], dnorm, dinv)
	}
	r = rem >> s

	q = z.set(qbuf)
	return q.norm(), r
}

// qhatEstimator computes the trial quotient digit and matching partial
// remainder from the top two limbs of the working dividend window (u2,u1),
// against the divisor's top limb (closed over by the estimator). The
// correction against the divisor's second-highest limb is done by divKnuth.
type qhatEstimator func(u2, u1 word) (qhat, rhat word)

// divKnuth implements Knuth TAOCP 4.3.1 Algorithm D. u must already be a
// fresh, mutable buffer of exactly len(v) more limbs than the m+1-limb
// quotient (m+n+1 where n = len(v) >= 2); v must be normalised (top bit set). The
// only difference between divBasic and divSvoboda is how qhat is
// estimated, supplied by the caller as estimate.
func (z nat) divKnuth(u, v nat, estimate qhatEstimator) (q, r nat) {
	n := len(v)
	m := len(u) - n - 1
	vtop, vtop2 := v[n-1], v[n-2]

	qn := make(nat, m+1)
	for j := m; j >= 0; j-- {
		// Both estimators require u[j+n] < vtop; when the window's top limb
		// equals vtop the trial digit saturates at base-1 (Knuth 4.3.1 step
		// D3), and rhat = u[j+n-1] + vtop, skipping the vtop2 correction
		// entirely when that sum no longer fits a limb.
		qhat := ^word(0)
		var rhat word
		correct := false
		if u[j+n] < vtop {
			qhat, rhat = estimate(u[j+n], u[j+n-1])
			correct = true
		} else if c, rh := AddCC(u[j+n-1], vtop, 0); c == 0 {
			rhat, correct = rh, true
		}
		if correct {
			u0 := u[j+n-2]
			for {
				hi, lo := MulFull(qhat, vtop2)
				if hi < rhat || (hi == rhat && lo <= u0) {
					break
				}
				qhat--
				var carry word
				carry, rhat = AddCC(rhat, vtop, 0)
				if carry != 0 {
					break
				}
			}
		}

		borrow := mulSubVVW(u[j:j+n], v, qhat)
		bout, top := SubBB(u[j+n], borrow, 0)
		u[j+n] = top
		if bout != 0 {
			qhat--
			c := addVV(u[j:j+n], u[j:j+n], v)
			u[j+n] += c
		}
		qn[j] = qhat
	}

	return qn.norm(), nat(u[:n]).norm()
}

// mulSubVVW computes z -= x*y over x's length, returning the final borrow
// (the combined multiply-subtract of Knuth's algorithm D step D4).
func mulSubVVW(z, x []word, y word) (borrow word) {
	var carry word
	for i := range z {
		hi, lo := MulFull(x[i], y)
		b1, t := SubBB(z[i], lo, 0)
		b2, t2 := SubBB(t, carry, 0)
		z[i] = t2
		carry = hi + b1 + b2
	}
	return carry
}

// divBasic is the plain base case: the trial digit is estimated with a
// genuine 2-by-1 divide (Div2by1Norm) against the divisor's top limb, once
// per digit.
func (z nat) divBasic(u, v nat) (q, r nat) {
	top := v[len(v)-1]
	return z.divKnuth(u, v, func(u2, u1 word) (word, word) {
		return Div2by1Norm(u2, u1, top)
	})
}

// divSvoboda amortises the divisor: the top-limb reciprocal is computed
// once for the whole division, and every digit's trial estimate becomes a
// single Div2by1Inv instead of a hardware divide. This is the same
// precondition-once-divide-cheaply idea as Svoboda's k*d scaling, via the
// reciprocal instead of the scalar.
func (z nat) divSvoboda(u, v nat) (q, r nat) {
	top := v[len(v)-1]
	dinv := ReciprocalWord(top)
	return z.divKnuth(u, v, func(u2, u1 word) (word, word) {
		return Div2by1Inv(u2, u1, top, dinv)
	})
}

// svobodaThreshold is the dividend length past which the precomputed
// reciprocal pays for itself. Both kernels above are correct for any size;
// divSvoboda is strictly cheaper beyond a single digit, so div below uses
// it unconditionally. divBasic remains independently callable and tested
// against it.
const svobodaThreshold = 1

// dcThreshold is the dividend length at which a divide-and-conquer
// recursion would take over from the base case. The recursive path is not
// implemented: base case plus the reciprocal variant cover the full input
// range; the constant records the intended cutover.
const dcThreshold = 50

// div normalises both operands, dispatches to divWSmall or the multi-limb
// kernel, and denormalises the remainder. z2 receives the remainder and may
// share storage with z.
func (z nat) div(z2, u, v nat) (q, r nat) {
	if len(v) == 0 {
		panic("numetron: division by zero")
	}
	if u.cmp(v) < 0 {
		return z.set(nil), z2.set(u)
	}
	if len(v) == 1 {
		qq, rr := z.divWSmall(u, v[0])
		rn := make(nat, 1)
		rn[0] = rr
		return qq, rn.norm()
	}

	shift := uint(CountLeadingZeros(v[len(v)-1]))
	vn := nat(nil).shl(v, shift)
	un := nat(nil).shl(u, shift)

	// divKnuth requires len(un) == len(vn) + m + 1 for some m >= 0; a
	// leading zero limb is always padded on, whether or not the shift
	// already produced a spill limb.
	ubuf := make(nat, len(un)+1)
	copy(ubuf, un)

	qq, rn := z.divSvoboda(ubuf, vn)
	r = z2.shr(rn, shift)
	return qq, r
}
