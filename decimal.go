// Copyright 2026 The Numetron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Decimal, a decimal floating-point value:
// significand x 10^exponent, layered on Int the way int.go layers Int on
// nat.
//
// The exponent is stored as an int64. No construction path can produce a
// significand large enough to need a wider exponent; the significand's
// digit count would first exceed available memory. ParseDecimal fails with
// ErrOverflow when the exponent written in the text does not fit an int64.
// Exponent() still returns an Int so the public surface stays uniformly
// multi-precision.
package numetron

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Decimal is a decimal floating-point value: sig * 10^exp, normalised so
// that sig has no trailing decimal-zero digit. The zero value represents 0
// (sig == 0, exp == 0).
type Decimal struct {
	sig Int
	exp int64
}

// NewDecimalInt64 constructs a Decimal from a native integer by dividing
// out trailing zeros into the exponent.
func NewDecimalInt64(v int64) *Decimal {
	d := &Decimal{}
	d.sig.SetInt64(v)
	d.normalize()
	return d
}

// normalize strips trailing decimal-zero digits from sig into exp, the
// shared step every Decimal constructor ends with.
func (d *Decimal) normalize() {
	if d.sig.isZero() {
		d.exp = 0
		return
	}
	ten := NewInt(10)
	var q, r Int
	for {
		q.QuoRem(&d.sig, ten, &r)
		if !r.isZero() {
			break
		}
		d.sig.Set(&q)
		d.exp++
	}
}

// pow10 returns 10^k as a freshly allocated Int, k >= 0.
func pow10(k int64) *Int {
	z := new(Int)
	z.setMag(nat(nil).mulPow10(nat{1}, k), false)
	return z
}

// Sign returns -1, 0 or +1 per the significand's sign.
func (d *Decimal) Sign() int { return d.sig.Sign() }

// Significand returns a copy of d's significand.
func (d *Decimal) Significand() *Int { return new(Int).Set(&d.sig) }

// Exponent returns d's power-of-ten exponent as an Int (see the file
// comment for why the internal storage is a narrower int64).
func (d *Decimal) Exponent() *Int { return NewInt(d.exp) }

// alignedCmp compares sig*10^exp against other.sig*10^other.exp when both
// have the same sign, scaling the side with the larger exponent down to
// the smaller exponent's scale. The power-of-ten scaling runs limb-sized
// chunk by chunk (mulPow10) rather than by building the full 10^diff
// integer first.
func alignedCmp(aSig *Int, aExp int64, bSig *Int, bExp int64) int {
	switch {
	case aExp == bExp:
		return aSig.mag().cmp(bSig.mag())
	case aExp > bExp:
		return nat(nil).mulPow10(aSig.mag(), aExp-bExp).cmp(bSig.mag())
	default:
		return aSig.mag().cmp(nat(nil).mulPow10(bSig.mag(), bExp-aExp))
	}
}

// Cmp compares d and other and returns -1, 0 or +1, dispatching on sign
// first and aligning the exponents before the magnitudes are compared.
func (d *Decimal) Cmp(other *Decimal) int {
	ds, os := d.Sign(), other.Sign()
	if ds != os {
		if ds < os {
			return -1
		}
		return 1
	}
	if ds == 0 {
		return 0
	}
	c := alignedCmp(&d.sig, d.exp, &other.sig, other.exp)
	if ds < 0 {
		c = -c
	}
	return c
}

// Equal reports whether d and other represent the same value.
func (d *Decimal) Equal(other *Decimal) bool { return d.Cmp(other) == 0 }

// String returns d's canonical decimal text: a '-' sign if negative, the
// significand's digits, trailing zeros appended for a non-negative
// exponent, or a decimal point inserted (left-padded with '0' as needed)
// for a negative one. Never scientific notation, never a trailing '.',
// "0" for canonical zero.
func (d *Decimal) String() string {
	if d.sig.isZero() {
		return "0"
	}
	digits := d.sig.mag().utoa(10)
	var b strings.Builder
	if d.sig.neg {
		b.WriteByte('-')
	}
	switch {
	case d.exp >= 0:
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", int(d.exp)))
	default:
		k := int(-d.exp)
		if len(digits) > k {
			b.WriteString(digits[:len(digits)-k])
			b.WriteByte('.')
			b.WriteString(digits[len(digits)-k:])
		} else {
			b.WriteString("0.")
			b.WriteString(strings.Repeat("0", k-len(digits)))
			b.WriteString(digits)
		}
	}
	return b.String()
}

func fitsInt64(x *Int) bool {
	return x.CmpInt64(math.MaxInt64) <= 0 && x.CmpInt64(math.MinInt64) >= 0
}

// Int64 converts d to a native integer: scale the significand by 10^exp.
// A positive exponent multiplies and fails with ErrOverflow
// if the scaled result no longer fits an int64; a negative exponent
// divides (truncating toward zero) and simply returns a smaller-magnitude
// (possibly zero) result rather than overflowing.
func (d *Decimal) Int64() (int64, error) {
	if d.sig.isZero() {
		return 0, nil
	}
	if d.exp >= 0 {
		scaled := new(Int).Mul(&d.sig, pow10(d.exp))
		if !fitsInt64(scaled) {
			return 0, ErrOverflow
		}
		return scaled.Int64(), nil
	}
	q, _, _ := new(Int).QuoRem(&d.sig, pow10(-d.exp), new(Int))
	return q.Int64(), nil
}

// Float64 converts d to a float64 as significand * 10^exponent, rounded
// to nearest-even. Like Int.Float64, the correct
// rounding is delegated to strconv.ParseFloat over the value's scientific
// text: a two-step sig*10^exp float multiply would round twice and can be
// off by an ulp. Values beyond float64's range come back as ±Inf.
func (d *Decimal) Float64() float64 {
	f, _ := strconv.ParseFloat(d.sig.Text(10)+"e"+strconv.FormatInt(d.exp, 10), 64)
	return f
}

// NewDecimalFromFloat64 constructs the shortest decimal that round-trips
// back to f exactly. Go's strconv already implements a correctly-rounded
// shortest-round-trip float formatter (the Ryu-family algorithm behind
// 'e'/-1 precision); this package reuses it rather than reimplementing a
// Grisu/Dragonbox variant by hand. f must be finite; NaN/Inf fail with
// ErrInvalidArgument.
func NewDecimalFromFloat64(f float64) (*Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("numetron: decimal from non-finite float64: %w", ErrInvalidArgument)
	}
	return parseDecimalText(strconv.FormatFloat(f, 'e', -1, 64))
}

// NewDecimalFromBinary16 constructs the *exact* decimal value of b: every
// finite binary16 equals m*2^e for integers m, e with |e| <= 24, and since
// 2^-e == 5^-e * 10^-e for e < 0, a negative e scales the significand by
// 5^(-e) instead of introducing a fraction. Non-finite b fails with
// ErrInvalidArgument.
func NewDecimalFromBinary16(b Binary16) (*Decimal, error) {
	if b.IsNaN() || b.IsInf() {
		return nil, fmt.Errorf("numetron: decimal from non-finite binary16: %w", ErrInvalidArgument)
	}
	neg := b.Signbit()
	expField := (uint32(b) >> 10) & 0x1f
	mantField := uint32(b) & 0x03ff

	var m uint64
	var e int64
	switch {
	case expField == 0 && mantField == 0:
		d := &Decimal{}
		return d, nil
	case expField == 0:
		m, e = uint64(mantField), -24
	default:
		m, e = uint64(1024+mantField), int64(expField)-25
	}

	d := &Decimal{}
	if e >= 0 {
		d.sig.SetUint64(m)
		d.sig.Mul(&d.sig, new(Int).Exp(NewInt(2), uint64(e)))
		d.exp = 0
	} else {
		d.sig.SetUint64(m)
		d.sig.Mul(&d.sig, new(Int).Exp(NewInt(5), uint64(-e)))
		d.exp = e
	}
	d.sig.neg = neg && !d.sig.isZero()
	d.normalize()
	return d, nil
}

// ParseDecimal parses s as "±d*[.d*][eE±d+]" and returns the resulting
// normalised Decimal.
func ParseDecimal(s string) (*Decimal, error) {
	return parseDecimalText(s)
}

// parseDecimalText is the shared parser behind ParseDecimal and
// NewDecimalFromFloat64 (which feeds it strconv's %e shortest rendering).
func parseDecimalText(s string) (*Decimal, error) {
	orig := s
	if s == "" {
		return nil, fmt.Errorf("numetron: parsing decimal %q: %w", orig, ErrInvalidArgument)
	}
	neg := false
	switch s[0] {
	case '-':
		neg, s = true, s[1:]
	case '+':
		s = s[1:]
	}

	intPart, rest := spanDigits(s)
	s = rest
	fracPart := ""
	if len(s) > 0 && s[0] == '.' {
		fracPart, s = spanDigits(s[1:])
	}
	if intPart == "" && fracPart == "" {
		return nil, fmt.Errorf("numetron: parsing decimal %q: %w", orig, ErrInvalidArgument)
	}

	var explicitExp int64
	if len(s) > 0 && (s[0] == 'e' || s[0] == 'E') {
		s = s[1:]
		expNeg := false
		if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
			expNeg = s[0] == '-'
			s = s[1:]
		}
		digits, rest2 := spanDigits(s)
		if digits == "" {
			return nil, fmt.Errorf("numetron: parsing decimal %q: %w", orig, ErrInvalidArgument)
		}
		s = rest2
		for _, c := range digits {
			if explicitExp > (math.MaxInt64-int64(c-'0'))/10 {
				return nil, fmt.Errorf("numetron: parsing decimal %q: exponent out of range: %w", orig, ErrOverflow)
			}
			explicitExp = explicitExp*10 + int64(c-'0')
		}
		if expNeg {
			explicitExp = -explicitExp
		}
	}
	if s != "" {
		return nil, fmt.Errorf("numetron: parsing decimal %q: %w", orig, ErrInvalidArgument)
	}

	digits := intPart + fracPart
	mag, consumed := nat(nil).scanDigits(digits, 10)
	if consumed != len(digits) {
		return nil, fmt.Errorf("numetron: parsing decimal %q: %w", orig, ErrInvalidArgument)
	}

	d := &Decimal{}
	d.sig.setMag(mag, neg)
	d.exp = explicitExp - int64(len(fracPart))
	d.normalize()
	return d, nil
}

// spanDigits splits off the leading run of ASCII digits from s, returning
// it and the remainder.
func spanDigits(s string) (digits, rest string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}
