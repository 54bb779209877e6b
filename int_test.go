// Copyright 2026 The Numetron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numetron

import (
	"fmt"
	"math"
	"testing"
)

func TestIntSetIntAndSign(t *testing.T) {
	cases := []struct {
		v    int64
		sign int
	}{
		{0, 0}, {1, 1}, {-1, -1}, {1 << 40, 1}, {-(1 << 40), -1},
	}
	for _, c := range cases {
		x := NewInt(c.v)
		if got := x.Sign(); got != c.sign {
			t.Errorf("NewInt(%d).Sign() = %d, want %d", c.v, got, c.sign)
		}
		if got := x.Int64(); got != c.v {
			t.Errorf("NewInt(%d).Int64() = %d", c.v, got)
		}
	}
}

func TestIntMinInt64(t *testing.T) {
	const minInt64 = math.MinInt64
	x := NewInt(minInt64)
	if x.Int64() != minInt64 {
		t.Fatalf("NewInt(MinInt64).Int64() = %d, want %d", x.Int64(), minInt64)
	}
}

func TestIntCmpTotalOrder(t *testing.T) {
	vals := []int64{-100, -1, 0, 1, 100, 1 << 40, -(1 << 40)}
	for _, a := range vals {
		for _, b := range vals {
			x, y := NewInt(a), NewInt(b)
			c := x.Cmp(y)
			switch {
			case a < b && c >= 0, a == b && c != 0, a > b && c <= 0:
				t.Errorf("Cmp(%d,%d) = %d, inconsistent with native order", a, b, c)
			}
			// exactly one of <, =, > holds, and it is antisymmetric with
			// the reverse comparison.
			if x.Cmp(y) != -y.Cmp(x) {
				t.Errorf("Cmp not antisymmetric for %d,%d", a, b)
			}
		}
	}
}

func TestIntCmpInt64OutOfInlineRange(t *testing.T) {
	huge := new(Int).Exp(NewInt(2), 200)
	if huge.CmpInt64(1<<62) <= 0 {
		t.Fatalf("huge value should compare greater than any int64")
	}
	negHuge := new(Int).Neg(huge)
	if negHuge.CmpInt64(-(1 << 62)) >= 0 {
		t.Fatalf("negative huge value should compare less than any int64")
	}
}

func TestIntAddSubMul(t *testing.T) {
	a, b := NewInt(123456789), NewInt(-987654321)
	sum := new(Int).Add(a, b)
	if sum.Int64() != 123456789-987654321 {
		t.Errorf("Add mismatch: %s", sum.String())
	}
	back := new(Int).Sub(sum, b)
	if back.Cmp(a) != 0 {
		t.Errorf("(a+b)-b != a: got %s want %s", back.String(), a.String())
	}
	prod := new(Int).Mul(a, b)
	if prod.Int64() != 123456789*int64(-987654321) {
		t.Errorf("Mul mismatch: %s", prod.String())
	}
}

func TestIntMulLargeScenario(t *testing.T) {
	x, _ := new(Int).SetString("340282366920938463408034375210639556610", 10)
	got := new(Int).Mul(x, x).String()
	want := "115792089237316195385908374596367823274678918896366765567645960308857394692100"
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestIntNativeOperands(t *testing.T) {
	x := NewInt(1000)
	if got := new(Int).AddInt64(x, 24).Int64(); got != 1024 {
		t.Errorf("AddInt64(1000,24) = %d, want 1024", got)
	}
	if got := new(Int).SubInt64(x, 1).Int64(); got != 999 {
		t.Errorf("SubInt64(1000,1) = %d, want 999", got)
	}
	if got := new(Int).MulInt64(x, -3).Int64(); got != -3000 {
		t.Errorf("MulInt64(1000,-3) = %d, want -3000", got)
	}
	q, err := new(Int).QuoInt64(x, 7)
	if err != nil || q.Int64() != 142 {
		t.Errorf("QuoInt64(1000,7) = (%d,%v), want (142,nil)", q.Int64(), err)
	}
	r, err := new(Int).RemInt64(x, 7)
	if err != nil || r.Int64() != 6 {
		t.Errorf("RemInt64(1000,7) = (%d,%v), want (6,nil)", r.Int64(), err)
	}
	if _, err := new(Int).QuoInt64(x, 0); err == nil {
		t.Errorf("QuoInt64 by zero did not return an error")
	}
}

func TestIntSingleWordFastPath(t *testing.T) {
	// Single-limb operands whose result also fits a limb stay inplaced and
	// agree with native arithmetic.
	vals := []int64{0, 1, -1, 5, -5, 1 << 30, -(1 << 30)}
	for _, a := range vals {
		for _, b := range vals {
			x, y := NewInt(a), NewInt(b)
			sum := new(Int).Add(x, y)
			if sum.Int64() != a+b || !sum.isInplaced() {
				t.Errorf("Add(%d,%d) = %s (inplaced=%v)", a, b, sum.String(), sum.isInplaced())
			}
			prod := new(Int).Mul(x, y)
			if prod.Int64() != a*b || !prod.isInplaced() {
				t.Errorf("Mul(%d,%d) = %s (inplaced=%v)", a, b, prod.String(), prod.isInplaced())
			}
		}
	}

	// A carry out of the single limb falls back to the vector kernels.
	max := new(Int).SetUint64(^uint64(0))
	sum := new(Int).Add(max, max)
	if sum.String() != "36893488147419103230" {
		t.Errorf("Add(2^64-1,2^64-1) = %s, want 36893488147419103230", sum.String())
	}
	prod := new(Int).Mul(max, max)
	if prod.String() != "340282366920938463426481119284349108225" {
		t.Errorf("Mul(2^64-1,2^64-1) = %s", prod.String())
	}
}

func TestIntExp(t *testing.T) {
	if got := new(Int).Exp(NewInt(2), 10).Int64(); got != 1024 {
		t.Errorf("2^10 = %d, want 1024", got)
	}
	if got := new(Int).Exp(NewInt(5), 0).Int64(); got != 1 {
		t.Errorf("5^0 = %d, want 1", got)
	}
}

func TestIntStringRoundTrip(t *testing.T) {
	// parse(format(x)) == x.
	vals := []string{"0", "1", "-1", "123456789012345678901234567890", "-123456789012345678901234567890"}
	for _, s := range vals {
		x, ok := new(Int).SetString(s, 10)
		if !ok {
			t.Fatalf("SetString(%q) failed", s)
		}
		if got := x.String(); got != s {
			t.Errorf("String() = %q, want %q", got, s)
		}
	}
}

func TestIntTextBases(t *testing.T) {
	x := NewInt(255)
	if got := x.Text(16); got != "ff" {
		t.Errorf("Text(16) = %q, want ff", got)
	}
	if got := x.Text(2); got != "11111111" {
		t.Errorf("Text(2) = %q, want 11111111", got)
	}
	if got := x.Text(8); got != "377" {
		t.Errorf("Text(8) = %q, want 377", got)
	}
	neg := NewInt(-255)
	if got := neg.Text(16); got != "-ff" {
		t.Errorf("Text(16) of -255 = %q, want -ff", got)
	}
}

func TestIntParsePrefixes(t *testing.T) {
	cases := []struct {
		s    string
		base int
		want int64
	}{
		{"0x1F", 0, 31},
		{"017", 0, 15},
		{"123", 0, 123},
		{"-0x10", 0, -16},
		{"+42", 0, 42},
	}
	for _, c := range cases {
		x, ok := new(Int).SetString(c.s, c.base)
		if !ok {
			t.Fatalf("SetString(%q,%d) failed", c.s, c.base)
		}
		if x.Int64() != c.want {
			t.Errorf("SetString(%q,%d) = %d, want %d", c.s, c.base, x.Int64(), c.want)
		}
	}
}

func TestIntParseInvalid(t *testing.T) {
	invalid := []string{"", "-", "0x", " 1", "1 ", "1,000", "12a"}
	for _, s := range invalid {
		if _, ok := new(Int).SetString(s, 0); ok {
			t.Errorf("SetString(%q) unexpectedly succeeded", s)
		}
	}
	// "12a" is valid as a base-16 number though.
	if _, ok := new(Int).SetString("12a", 16); !ok {
		t.Errorf("SetString(%q,16) should have succeeded", "12a")
	}
}

func TestIntBytesRoundTrip(t *testing.T) {
	x, _ := new(Int).SetString("123456789012345678901234567890", 10)
	b := x.Bytes()
	back := new(Int).SetBytes(b)
	if back.Cmp(x) != 0 {
		t.Errorf("SetBytes(Bytes(x)) = %s, want %s", back.String(), x.String())
	}
}

func TestIntFloat64(t *testing.T) {
	x := NewInt(12345)
	if got := x.Float64(); got != 12345.0 {
		t.Errorf("Float64() = %v, want 12345.0", got)
	}
}

func TestIntFormat(t *testing.T) {
	x := NewInt(-26)
	if got := fmt.Sprintf("%#x", x); got != "-0x1a" {
		t.Errorf("%%#x of -26 = %q, want -0x1a", got)
	}
	if got := fmt.Sprintf("%#o", NewInt(8)); got != "010" {
		t.Errorf("%%#o of 8 = %q, want 010", got)
	}
}
