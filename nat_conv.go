// Copyright 2026 The Numetron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the magnitude<->string conversions the integer
// parser/formatter is built on: repeated multiply-add to parse, repeated
// divide-by-base to format.
package numetron

const lowerDigits = "0123456789abcdefghijklmnopqrstuvwxyz"

func digitVal(ch byte) int {
	switch {
	case '0' <= ch && ch <= '9':
		return int(ch - '0')
	case 'a' <= ch && ch <= 'z':
		return int(ch-'a') + 10
	case 'A' <= ch && ch <= 'Z':
		return int(ch-'A') + 10
	}
	return 16 + 1 // always > any supported base
}

// scanDigits parses the unsigned digit run of s in the given base (2, 8, 10
// or 16), returning the accumulated magnitude and the number of bytes
// consumed. It stops at the first byte that is not a valid digit in base.
func (z nat) scanDigits(s string, base int) (nat, int) {
	z = z.set(nil)
	i := 0
	for i < len(s) {
		d := digitVal(s[i])
		if d >= base {
			break
		}
		z = z.mulAddSmall(z, word(base), word(d))
		i++
	}
	return z, i
}

// mulAddSmall computes z = x*y + c for a small scalar y (used by scanDigits
// and decimal string parsing, where y is always a small base/power of ten).
func (z nat) mulAddSmall(x nat, y, c word) nat {
	if len(x) == 0 {
		if c == 0 {
			return z.set(nil)
		}
		z = z.make(1)
		z[0] = c
		return z
	}
	z = z.make(len(x) + 1)
	z[len(x)] = mulAddVWW(z[:len(x)], x, y, c)
	return z.norm()
}

// utoa renders x in the given base (2, 8, 10 or 16) using lower-case digits,
// most significant digit first, with no sign and no base prefix; "0" for
// zero.
func (x nat) utoa(base int) string {
	if len(x) == 0 {
		return "0"
	}
	// Safe over-estimate of the digit count: floor(log2(base)) is a lower
	// bound on log2(base), so dividing by it over-counts digits rather than
	// under-counting (which would overflow the buffer below).
	bitsPerDigit := 1
	for (1 << (bitsPerDigit + 1)) <= base {
		bitsPerDigit++
	}
	digits := make([]byte, x.bitLen()/bitsPerDigit+2)
	i := len(digits)

	q := x
	for len(q) > 0 {
		next, r := nat(nil).divWSmall(q, word(base))
		q = next
		i--
		digits[i] = lowerDigits[r]
	}
	return string(digits[i:])
}
