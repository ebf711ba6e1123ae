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

// Package word provides an unsigned integer abstraction whose declared
// bit-width travels with the value and bounds the number of significant bits
// it may use.  The bound is validated exactly once, at construction (and
// again only on narrowing); every operator then derives the width of its
// result from the widths of its operands, such that the bound holds for the
// result without any further runtime check.  For example, adding a u16 word
// to a u48 word yields a u49 word, since that is the most that can be
// guaranteed about the sum.  Words are immutable and safe for concurrent use.
package word

import (
	"fmt"
	"math/big"

	"github.com/consensys/go-maxbits/pkg/util"
)

// Word is an unsigned integer guaranteed to use no more significant bits than
// its declared width.  Equivalently, the invariant is that the leading zero
// count of the stored value is at least MaxWidth less the declared width.
type Word struct {
	// Stored value, always at full capacity
	data Uint128
	// Declared width bounding the significant bits of data
	width Width
}

// Fits determines whether a given value uses no more significant bits than
// the given width permits.  This is the runtime half of the abstraction;
// everything else is width bookkeeping.
func Fits(data Uint128, width Width) bool {
	checkWidth(width)
	//
	return data.LeadingZeros() >= uint(MaxWidth-width)
}

// New constructs a word holding the given value at the given declared width.
// This fails (yielding the empty option) if the value does not fit, and never
// truncates.  Widths beyond MaxWidth are a contract violation and panic.
func New(data Uint128, width Width) util.Option[Word] {
	if !Fits(data, width) {
		return util.None[Word]()
	}
	//
	return util.Some(Word{data, width})
}

// NewFromUint64 constructs a word from a given unsigned integer at the given
// declared width.
func NewFromUint64(val uint64, width Width) util.Option[Word] {
	return New(Uint128FromUint64(val), width)
}

// NewFromBig constructs a word from a given big integer at the given declared
// width.  This fails if the big integer is negative or does not fit.
func NewFromBig(val *big.Int, width Width) util.Option[Word] {
	data, ok := Uint128FromBig(val)
	//
	if !ok {
		return util.None[Word]()
	}
	//
	return New(data, width)
}

// Uint128 returns the stored value, discarding the declared width.
func (p Word) Uint128() Uint128 {
	return p.data
}

// Uint64 returns the stored value as an unsigned 64bit integer, or panics if
// it does not fit.  Always safe for words declared at width 64 or below.
func (p Word) Uint64() uint64 {
	return p.data.Uint64()
}

// AsBigInt returns a freshly allocated big integer holding the stored value.
func (p Word) AsBigInt() big.Int {
	return p.data.AsBigInt()
}

// BitWidth returns the declared width of this word.
func (p Word) BitWidth() Width {
	return p.width
}

// ByteWidth returns the minimal number of bytes required to store the actual
// value of this word, with all leading zero bytes removed.  For example,
// 0x1010 has a byte width of 2 whilst 0x0000 has a byte width of 0.
func (p Word) ByteWidth() uint {
	return (p.data.BitLen() + 7) / 8
}

// Bit returns the bit at a given offset in this word, where offsets always
// start with the least-significant bit.
func (p Word) Bit(offset uint) bool {
	return p.data.Bit(offset)
}

// Bytes returns the actual value of this word in big endian form, with all
// leading zero bytes removed.
func (p Word) Bytes() []byte {
	return p.data.Bytes()[16-p.ByteWidth():]
}

// IsZero determines whether this word holds the zero value.
func (p Word) IsZero() bool {
	return p.data.IsZero()
}

// Equals determines whether this word and the other agree on both their
// declared width and their stored value.
func (p Word) Equals(other Word) bool {
	return p.width == other.width && p.data == other.data
}

// Widen retags this word at a greater (or equal) declared width.  Since any
// value fitting the narrower width necessarily fits the wider one, this is a
// pure reinterpretation: it always succeeds and the stored value is
// untouched.  Widening to a narrower width is a contract violation.
func (p Word) Widen(width Width) Word {
	checkWidth(width)
	//
	if width < p.width {
		panic(fmt.Sprintf("cannot widen %s to %s", p.width, width))
	}
	//
	return Word{p.data, width}
}

// Narrow retags this word at a lesser (or equal) declared width.  Narrowing
// the width does not shrink the data, so the fits check is rerun against the
// new width and this fails if the stored value actually needs more bits.
// Narrowing to a wider width is a contract violation.
func (p Word) Narrow(width Width) util.Option[Word] {
	if width > p.width {
		panic(fmt.Sprintf("cannot narrow %s to %s", p.width, width))
	}
	//
	return New(p.data, width)
}

func (p Word) String() string {
	return fmt.Sprintf("%s:%s", p.data, p.width)
}
