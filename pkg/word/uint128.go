// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package word

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"math/big"
	"math/bits"
)

// Uint128 is a fixed-capacity 128bit unsigned machine word, stored as two
// 64bit halves.  It provides exactly the operations needed by width-bounded
// words: wrapping addition and subtraction, shifts, the logical connectives
// and a leading-zero count.  Values are immutable, with every operation
// returning a fresh word.
type Uint128 struct {
	hi uint64
	lo uint64
}

// NewUint128 constructs a 128bit word from its high and low 64bit halves.
func NewUint128(hi, lo uint64) Uint128 {
	return Uint128{hi, lo}
}

// Uint128FromUint64 constructs a 128bit word from a given unsigned integer.
func Uint128FromUint64(val uint64) Uint128 {
	return Uint128{0, val}
}

// Uint128FromBig attempts to construct a 128bit word from a given big integer.
// This fails if the big integer is negative, or requires more than 128bits.
func Uint128FromBig(val *big.Int) (Uint128, bool) {
	var buf [16]byte
	//
	if val.Sign() < 0 || val.BitLen() > 128 {
		return Uint128{}, false
	}
	//
	val.FillBytes(buf[:])
	//
	return Uint128{
		hi: binary.BigEndian.Uint64(buf[:8]),
		lo: binary.BigEndian.Uint64(buf[8:]),
	}, true
}

// MaxUint128 returns the largest representable 128bit word.
func MaxUint128() Uint128 {
	return Uint128{^uint64(0), ^uint64(0)}
}

// Add returns the (wrapping) sum of this word and the other.
func (p Uint128) Add(other Uint128) Uint128 {
	lo, carry := bits.Add64(p.lo, other.lo, 0)
	hi, _ := bits.Add64(p.hi, other.hi, carry)
	//
	return Uint128{hi, lo}
}

// Sub returns the (wrapping) difference of this word and the other.
func (p Uint128) Sub(other Uint128) Uint128 {
	lo, borrow := bits.Sub64(p.lo, other.lo, 0)
	hi, _ := bits.Sub64(p.hi, other.hi, borrow)
	//
	return Uint128{hi, lo}
}

// And returns the bitwise conjunction of this word and the other.
func (p Uint128) And(other Uint128) Uint128 {
	return Uint128{p.hi & other.hi, p.lo & other.lo}
}

// Or returns the bitwise disjunction of this word and the other.
func (p Uint128) Or(other Uint128) Uint128 {
	return Uint128{p.hi | other.hi, p.lo | other.lo}
}

// Xor returns the bitwise exclusive disjunction of this word and the other.
func (p Uint128) Xor(other Uint128) Uint128 {
	return Uint128{p.hi ^ other.hi, p.lo ^ other.lo}
}

// Not returns the bitwise complement of this word.
func (p Uint128) Not() Uint128 {
	return Uint128{^p.hi, ^p.lo}
}

// Lsh returns this word shifted left by n bit positions.  Bits shifted past
// the 128bit capacity are discarded.
func (p Uint128) Lsh(n uint) Uint128 {
	switch {
	case n == 0:
		return p
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{p.lo << (n - 64), 0}
	default:
		return Uint128{p.hi<<n | p.lo>>(64-n), p.lo << n}
	}
}

// Rsh returns this word shifted right by n bit positions.
func (p Uint128) Rsh(n uint) Uint128 {
	switch {
	case n == 0:
		return p
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{0, p.hi >> (n - 64)}
	default:
		return Uint128{p.hi >> n, p.lo>>n | p.hi<<(64-n)}
	}
}

// LeadingZeros returns the number of leading zero bits in this word.
func (p Uint128) LeadingZeros() uint {
	if p.hi != 0 {
		return uint(bits.LeadingZeros64(p.hi))
	}
	//
	return 64 + uint(bits.LeadingZeros64(p.lo))
}

// BitLen returns the number of bits required to represent this word, which is
// zero for the zero word.
func (p Uint128) BitLen() uint {
	return 128 - p.LeadingZeros()
}

// Bit returns the bit at a given offset in this word, where offsets always
// start with the least-significant.
func (p Uint128) Bit(offset uint) bool {
	switch {
	case offset < 64:
		return (p.lo>>offset)&1 == 1
	case offset < 128:
		return (p.hi>>(offset-64))&1 == 1
	default:
		return false
	}
}

// Cmp implements a comparison by regarding both words as unsigned integers.
func (p Uint128) Cmp(other Uint128) int {
	if c := cmp.Compare(p.hi, other.hi); c != 0 {
		return c
	}
	//
	return cmp.Compare(p.lo, other.lo)
}

// IsZero determines whether this is the zero word.
func (p Uint128) IsZero() bool {
	return p.hi == 0 && p.lo == 0
}

// IsUint64 determines whether this word fits within an unsigned 64bit integer.
func (p Uint128) IsUint64() bool {
	return p.hi == 0
}

// Uint64 returns this word as an unsigned 64bit integer, or panics if it does
// not fit.
func (p Uint128) Uint64() uint64 {
	if p.hi != 0 {
		panic("not uint64")
	}
	//
	return p.lo
}

// Bytes returns the full 16 bytes of this word in big endian form.
func (p Uint128) Bytes() []byte {
	var buf [16]byte
	//
	binary.BigEndian.PutUint64(buf[:8], p.hi)
	binary.BigEndian.PutUint64(buf[8:], p.lo)
	//
	return buf[:]
}

// AsBigInt returns a freshly allocated big integer holding this word.
func (p Uint128) AsBigInt() big.Int {
	var val big.Int
	return *val.SetBytes(p.Bytes())
}

func (p Uint128) String() string {
	if p.hi == 0 {
		return fmt.Sprintf("0x%x", p.lo)
	}
	//
	return fmt.Sprintf("0x%x%016x", p.hi, p.lo)
}
