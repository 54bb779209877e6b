// Copyright 2026 The Numetron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Int, the public signed multi-precision integer,
// built on the smallNat storage of storage.go and the nat kernels of
// nat.go/nat_div.go/nat_conv.go. Mutator methods return the receiver;
// division entry points return a trailing error instead of panicking.
package numetron

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Int is a signed multi-precision integer. The zero value represents 0 and
// is ready to use without further initialisation.
type Int struct {
	smallNat
}

// NewInt allocates and returns a new Int set to x.
func NewInt(x int64) *Int {
	return new(Int).SetInt64(x)
}

// NewUint64 allocates and returns a new Int set to x.
func NewUint64(x uint64) *Int {
	return new(Int).SetUint64(x)
}

// SetInt64 sets z to x and returns z.
func (z *Int) SetInt64(x int64) *Int {
	neg := x < 0
	ux := uint64(x)
	if neg {
		ux = uint64(-(x + 1)) + 1 // avoid overflow on math.MinInt64
	}
	z.setMag(nat(nil).setUint64(ux), neg)
	return z
}

// SetUint64 sets z to x and returns z.
func (z *Int) SetUint64(x uint64) *Int {
	z.setMag(nat(nil).setUint64(x), false)
	return z
}

// Set sets z to x and returns z.
func (z *Int) Set(x *Int) *Int {
	if z != x {
		z.setFrom(&x.smallNat)
	}
	return z
}

// Sign returns -1, 0 or +1 depending on whether x is negative, zero or
// positive.
func (x *Int) Sign() int {
	if x.isZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Neg sets z to -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	m := append(nat(nil), x.mag()...)
	neg := !x.neg
	if len(m) == 0 {
		neg = false // sign of zero is +1
	}
	z.setMag(m, neg)
	return z
}

// Abs sets z to |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	m := append(nat(nil), x.mag()...)
	z.setMag(m, false)
	return z
}

// Cmp compares x and y and returns -1, 0 or +1: lexicographic-with-length
// on magnitudes, combined with sign.
func (x *Int) Cmp(y *Int) int {
	switch {
	case x.neg == y.neg:
		r := x.mag().cmp(y.mag())
		if x.neg {
			r = -r
		}
		return r
	case x.neg:
		return -1
	default:
		return 1
	}
}

// CmpInt64 compares x against the native value y, yielding the correct
// arithmetic result even when y lies outside the inplaced range.
func (x *Int) CmpInt64(y int64) int {
	var t Int
	t.SetInt64(y)
	return x.Cmp(&t)
}

// CmpUint64 compares x against the native unsigned value y.
func (x *Int) CmpUint64(y uint64) int {
	var t Int
	t.SetUint64(y)
	return x.Cmp(&t)
}

// setWord stores a single-limb magnitude without touching the nat
// kernels or allocating: the direct machine-integer path for inplaced
// values whose operands and result all fit one limb.
func (z *Int) setWord(v word, neg bool) {
	z.heap = nil
	z.buf = [inlineLimbs]word{v}
	z.neg = neg && v != 0
}

// setAdd is the shared unsigned-magnitude dispatcher behind Add/Sub: same
// signs add magnitudes and keep the sign; opposite signs subtract the
// smaller magnitude from the larger and take the larger's sign.
func (z *Int) setAdd(xabs, yabs nat, xneg, yneg bool) {
	if len(xabs) <= 1 && len(yabs) <= 1 {
		var xv, yv word
		if len(xabs) == 1 {
			xv = xabs[0]
		}
		if len(yabs) == 1 {
			yv = yabs[0]
		}
		if xneg != yneg {
			if xv >= yv {
				z.setWord(xv-yv, xneg)
			} else {
				z.setWord(yv-xv, yneg)
			}
			return
		}
		if c, s := AddCC(xv, yv, 0); c == 0 {
			z.setWord(s, xneg)
			return
		}
	}
	if xneg == yneg {
		z.setMag(nat(nil).add(xabs, yabs), xneg)
		return
	}
	switch xabs.cmp(yabs) {
	case 0:
		z.setMag(nil, false)
	case 1:
		z.setMag(nat(nil).sub(xabs, yabs), xneg)
	default:
		z.setMag(nat(nil).sub(yabs, xabs), yneg)
	}
}

// Add sets z to x+y and returns z.
func (z *Int) Add(x, y *Int) *Int {
	z.setAdd(x.mag(), y.mag(), x.neg, y.neg)
	return z
}

// Sub sets z to x-y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	z.setAdd(x.mag(), y.mag(), x.neg, !y.neg)
	return z
}

// Mul sets z to x*y and returns z.
func (z *Int) Mul(x, y *Int) *Int {
	xabs, yabs := x.mag(), y.mag()
	if len(xabs) == 1 && len(yabs) == 1 {
		if hi, lo := MulFull(xabs[0], yabs[0]); hi == 0 {
			z.setWord(lo, x.neg != y.neg)
			return z
		}
	}
	m := nat(nil).mul(xabs, yabs)
	neg := x.neg != y.neg && len(m) > 0
	z.setMag(m, neg)
	return z
}

// QuoRem sets z to the quotient x/y and r to the remainder, where the
// quotient truncates toward zero and the remainder takes the dividend's
// sign: (x/y)*y + x%y == x. It returns ErrDivisionByZero when y is zero.
func (z *Int) QuoRem(x, y, r *Int) (*Int, *Int, error) {
	if y.isZero() {
		return z, r, ErrDivisionByZero
	}
	qm, rm := nat(nil).div(nat(nil), x.mag(), y.mag())
	qneg := x.neg != y.neg && len(qm) > 0
	rneg := x.neg && len(rm) > 0
	if z == r {
		r.setMag(rm, rneg)
		z.setMag(qm, qneg)
	} else {
		z.setMag(qm, qneg)
		r.setMag(rm, rneg)
	}
	return z, r, nil
}

// Quo sets z to the truncated quotient x/y and returns z.
func (z *Int) Quo(x, y *Int) (*Int, error) {
	var r Int
	_, _, err := z.QuoRem(x, y, &r)
	return z, err
}

// Rem sets z to x%y (sign of x) and returns z.
func (z *Int) Rem(x, y *Int) (*Int, error) {
	var q Int
	_, _, err := q.QuoRem(x, y, z)
	return z, err
}

// AddInt64, SubInt64, MulInt64, QuoInt64 and RemInt64 are the operator
// forms with a native right-hand side; each behaves exactly like its
// big-integer counterpart applied to NewInt(y).
func (z *Int) AddInt64(x *Int, y int64) *Int {
	var t Int
	return z.Add(x, t.SetInt64(y))
}

func (z *Int) SubInt64(x *Int, y int64) *Int {
	var t Int
	return z.Sub(x, t.SetInt64(y))
}

func (z *Int) MulInt64(x *Int, y int64) *Int {
	var t Int
	return z.Mul(x, t.SetInt64(y))
}

func (z *Int) QuoInt64(x *Int, y int64) (*Int, error) {
	var t Int
	return z.Quo(x, t.SetInt64(y))
}

func (z *Int) RemInt64(x *Int, y int64) (*Int, error) {
	var t Int
	return z.Rem(x, t.SetInt64(y))
}

// Exp sets z to x**k by binary exponentiation over Mul and returns z.
// k is non-negative; Exp(x, 0) sets z to 1.
func (z *Int) Exp(x *Int, k uint64) *Int {
	result := NewInt(1)
	base := new(Int).Set(x)
	for k > 0 {
		if k&1 == 1 {
			result.Mul(result, base)
		}
		base.Mul(base, base)
		k >>= 1
	}
	z.Set(result)
	return z
}

// BitLen returns the length of the absolute value of x in bits; BitLen(0)
// is 0.
func (x *Int) BitLen() int {
	return x.mag().bitLen()
}

// Int64 truncates x to int64, modulo 2**64.
func (x *Int) Int64() int64 {
	u, _ := x.mag().uint64()
	v := int64(u)
	if x.neg {
		v = -v
	}
	return v
}

// Uint64 truncates x to uint64, modulo 2**64.
func (x *Int) Uint64() uint64 {
	u, _ := x.mag().uint64()
	if x.neg {
		u = -u
	}
	return u
}

// Float64 converts x to a float64, rounding to nearest-even. The correct
// rounding is delegated to strconv.ParseFloat over x's decimal text, which
// implements the same round-to-nearest-even contract a manual
// mantissa/exponent path would have to reproduce.
func (x *Int) Float64() float64 {
	f, _ := strconv.ParseFloat(x.Text(10), 64)
	return f
}

// Bytes returns the big-endian byte representation of |x|.
func (x *Int) Bytes() []byte {
	return x.mag().bytes()
}

// SetBytes sets z to the value represented by buf, a big-endian byte
// slice, and returns z. The result is always non-negative.
func (z *Int) SetBytes(buf []byte) *Int {
	z.setMag(nat(nil).setBytes(buf), false)
	return z
}

// Text returns the string representation of x in the given base (2, 8, 10
// or 16), using lower-case letters for digit values >= 10 and a '-' prefix
// for negative values; no base prefix is added (the "0x"/"0" base prefixes
// live in Format below, following the %#x / %#o convention).
func (x *Int) Text(base int) string {
	s := x.mag().utoa(base)
	if x.neg && s != "0" {
		return "-" + s
	}
	return s
}

// String returns the base-10 string representation of x.
func (x *Int) String() string {
	return x.Text(10)
}

// Format implements fmt.Formatter, accepting 'b', 'o', 'd', 'x', 'X' and
// '#' for the C-style base prefixes.
func (x *Int) Format(s fmt.State, ch rune) {
	var base int
	upper := false
	switch ch {
	case 'b':
		base = 2
	case 'o':
		base = 8
	case 'd', 's', 'v':
		base = 10
	case 'x':
		base = 16
	case 'X':
		base, upper = 16, true
	default:
		fmt.Fprintf(s, "%%!%c(*numetron.Int=%s)", ch, x.String())
		return
	}

	digits := x.mag().utoa(base)
	if upper {
		digits = strings.ToUpper(digits)
	}

	var prefix string
	if s.Flag('#') {
		switch base {
		case 8:
			prefix = "0"
		case 16:
			if upper {
				prefix = "0X"
			} else {
				prefix = "0x"
			}
		}
	}

	sign := ""
	switch {
	case x.neg:
		sign = "-"
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	io.WriteString(s, sign+prefix+digits)
}

// ParseInt parses s as a signed integer in the given base (2, 8, 10 or 16;
// 0 means auto-detect from an optional "0x"/"0X" or leading-"0" prefix)
// and returns the resulting Int. It fails with ErrInvalidArgument on a
// malformed string.
func ParseInt(s string, base int) (*Int, error) {
	z, ok := new(Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("numetron: parsing %q as base-%d integer: %w", s, base, ErrInvalidArgument)
	}
	return z, nil
}

// SetString sets z to the value of s, interpreted in the given base (0
// for prefix auto-detect, else 2/8/10/16), and reports whether s was a
// valid representation. An optional leading '+' or '-' is accepted;
// whitespace and thousands separators are rejected.
func (z *Int) SetString(s string, base int) (*Int, bool) {
	if s == "" {
		return nil, false
	}
	neg := false
	switch s[0] {
	case '-':
		neg, s = true, s[1:]
	case '+':
		s = s[1:]
	}
	if s == "" {
		return nil, false
	}

	if base == 0 {
		switch {
		case len(s) >= 2 && (s[1] == 'x' || s[1] == 'X') && s[0] == '0':
			base, s = 16, s[2:]
		case len(s) >= 1 && s[0] == '0' && len(s) > 1:
			base, s = 8, s[1:]
		default:
			base = 10
		}
	}
	if base != 2 && base != 8 && base != 10 && base != 16 {
		return nil, false
	}
	if s == "" {
		return nil, false
	}

	mag, consumed := nat(nil).scanDigits(s, base)
	if consumed != len(s) {
		return nil, false
	}
	z.setMag(mag, neg)
	return z, true
}
