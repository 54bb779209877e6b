// Copyright 2026 The Numetron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the multi-limb vector kernels: compare, add/sub,
// shift, bitwise, scalar multiply-add and schoolbook multiply. nat is the
// unsigned magnitude, a little-endian []word with no trailing zero limb;
// word is the 64-bit limb the big-integer kernels operate on, built on the
// generic Limb primitives of limb.go.
package numetron

// word is the limb width the package's big-integer kernels operate on.
type word = uint64

// nat is an unsigned multi-precision integer: a little-endian sequence of
// limbs with no redundant top zero limb. A nil/empty nat is zero.
type nat []word

// norm strips redundant leading (high-index) zero limbs; an empty nat is
// the canonical zero.
func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[:i]
}

// make returns a nat of length n, reusing z's backing array if it has
// enough capacity.
func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n]
	}
	const extra = 4 // small headroom so repeated growth is amortised
	return make(nat, n, n+extra)
}

func (z nat) set(x nat) nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

func (x nat) isZero() bool { return len(x) == 0 }

// cmp compares the magnitudes x and y: -1, 0, +1 for x<y, x==y, x>y.
func (x nat) cmp(y nat) (r int) {
	m, n := len(x), len(y)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}
	if m == 0 {
		return 0
	}
	i := m - 1
	for i > 0 && x[i] == y[i] {
		i--
	}
	switch {
	case x[i] < y[i]:
		r = -1
	case x[i] > y[i]:
		r = 1
	}
	return
}

// addVV computes z = x + y over equal-length spans, returning the carry.
func addVV(z, x, y []word) (c word) {
	for i := range z {
		c, z[i] = AddCC(x[i], y[i], c)
	}
	return
}

// subVV computes z = x - y over equal-length spans (x >= y), returning the
// borrow.
func subVV(z, x, y []word) (c word) {
	for i := range z {
		c, z[i] = SubBB(x[i], y[i], c)
	}
	return
}

func addVW(z, x []word, y word) (c word) {
	c = y
	for i := range z {
		c, z[i] = AddCC(x[i], c, 0)
	}
	return
}

func subVW(z, x []word, y word) (c word) {
	c = y
	for i := range z {
		c, z[i] = SubBB(x[i], c, 0)
	}
	return
}

// add computes z = x + y (unsigned), x and y in any order/length.
func (z nat) add(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(y) == 0 {
		return z.set(x)
	}
	z = z.make(len(x) + 1)
	c := addVV(z[:len(y)], x, y)
	if len(x) > len(y) {
		c = addVW(z[len(y):len(x)], x[len(y):], c)
	}
	z[len(x)] = c
	return z.norm()
}

// sub computes z = x - y (unsigned), requiring x >= y.
func (z nat) sub(x, y nat) nat {
	if len(y) == 0 {
		return z.set(x)
	}
	z = z.make(len(x))
	c := subVV(z[:len(y)], x, y)
	if len(x) > len(y) {
		c = subVW(z[len(y):], x[len(y):], c)
	}
	return z.norm()
}

// shl computes z = x << s (s in bits, 0 <= s).
func (z nat) shl(x nat, s uint) nat {
	if x.isZero() {
		return z.set(nil)
	}
	wordShift := int(s / 64)
	bitShift := s % 64
	n := len(x) + wordShift
	var spill word
	if bitShift != 0 {
		spill = x[len(x)-1] >> (64 - bitShift)
	}
	if spill != 0 {
		n++
	}
	z = z.make(n)
	if spill != 0 {
		z[n-1] = spill
	}
	if bitShift == 0 {
		copy(z[wordShift:wordShift+len(x)], x)
	} else {
		for i := len(x) - 1; i > 0; i-- {
			z[wordShift+i] = x[i]<<bitShift | x[i-1]>>(64-bitShift)
		}
		z[wordShift] = x[0] << bitShift
	}
	for i := 0; i < wordShift; i++ {
		z[i] = 0
	}
	return z.norm()
}

// shr computes z = x >> s, discarding the low s bits.
func (z nat) shr(x nat, s uint) nat {
	wordShift := int(s / 64)
	bitShift := s % 64
	if wordShift >= len(x) {
		return z.set(nil)
	}
	src := x[wordShift:]
	n := len(src)
	z = z.make(n)
	if bitShift == 0 {
		copy(z, src)
	} else {
		for i := 0; i < n-1; i++ {
			z[i] = src[i]>>bitShift | src[i+1]<<(64-bitShift)
		}
		z[n-1] = src[n-1] >> bitShift
	}
	return z.norm()
}

// bitLen returns the number of bits required to represent x.
func (x nat) bitLen() int {
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*64 + BitLen(x[len(x)-1])
}

// mulAddVWW computes z = x*y + r over x's length, returning the carry limb.
// This is the inner loop of schoolbook multiplication.
func mulAddVWW(z, x []word, y, r word) (c word) {
	c = r
	for i := range z {
		c, z[i] = MulAddWWW(x[i], y, c)
	}
	return
}

// addMulVVW computes z += x*y over x's length, returning the carry limb.
func addMulVVW(z, x []word, y word) (c word) {
	for i := range z {
		hi, lo := MulAddWWW(x[i], y, z[i])
		var cc word
		cc, z[i] = AddCC(lo, c, 0)
		c = hi + cc
	}
	return
}

// mul computes z = x*y via base-case schoolbook multiplication: the outer
// loop iterates y's limbs, the inner loop slides addMulVVW/mulAddVWW across
// a window of z. No uninitialised limb of z is ever read.
func (z nat) mul(x, y nat) nat {
	m, n := len(x), len(y)
	if m == 0 || n == 0 {
		return z.set(nil)
	}
	if m < n {
		x, y = y, x
		m, n = n, m
	}
	zz := make(nat, m+n)
	zz[m] = mulAddVWW(zz[:m], x, y[0], 0)
	for i := 1; i < n; i++ {
		zz[m+i] = addMulVVWDispatch(zz[i:m+i], x, y[i])
	}
	z = z.make(m + n)
	copy(z, zz)
	return z.norm()
}

// or, and and xor operate on unsigned magnitudes only, zero-extending the
// shorter operand; two's-complement semantics are left to callers that
// need them.
func (z nat) or(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z = z.make(len(x))
	i := 0
	for ; i < len(y); i++ {
		z[i] = x[i] | y[i]
	}
	for ; i < len(x); i++ {
		z[i] = x[i]
	}
	return z.norm()
}

func (z nat) and(x, y nat) nat {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	z = z.make(n)
	for i := 0; i < n; i++ {
		z[i] = x[i] & y[i]
	}
	return z.norm()
}

func (z nat) xor(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z = z.make(len(x))
	i := 0
	for ; i < len(y); i++ {
		z[i] = x[i] ^ y[i]
	}
	for ; i < len(x); i++ {
		z[i] = x[i]
	}
	return z.norm()
}

// setUint64 sets z to x.
func (z nat) setUint64(x uint64) nat {
	if x == 0 {
		return z.set(nil)
	}
	z = z.make(1)
	z[0] = x
	return z
}

// uint64 truncates x to the low 64 bits; ok reports whether x fit exactly.
func (x nat) uint64() (v uint64, ok bool) {
	switch len(x) {
	case 0:
		return 0, true
	case 1:
		return x[0], true
	default:
		return x[0], false
	}
}

// setBytes sets z to the value represented by buf, a big-endian byte slice.
func (z nat) setBytes(buf []byte) nat {
	n := (len(buf) + 7) / 8
	z = z.make(n)
	for i := range z {
		z[i] = 0
	}
	for i, b := range buf {
		j := len(buf) - 1 - i
		z[j/8] |= word(b) << uint(8*(j%8))
	}
	return z.norm()
}

// bytes returns the big-endian byte encoding of x, no leading zero bytes
// (empty for zero).
func (x nat) bytes() []byte {
	n := x.bitLen()
	nbytes := (n + 7) / 8
	buf := make([]byte, nbytes)
	for i := 0; i < nbytes; i++ {
		limb := x[i/8]
		buf[nbytes-1-i] = byte(limb >> uint(8*(i%8)))
	}
	return buf
}
