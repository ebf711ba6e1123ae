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
	"fmt"

	"github.com/consensys/go-maxbits/pkg/util"
)

// Every operator below is a pure function deriving the width of its result
// from the widths of its operands, such that the fits invariant holds for the
// result by construction.  Operand combinations for which no such width
// exists (e.g. shifting past MaxWidth) are contract violations and panic at
// the offending call, rather than truncating or deferring the failure.

// Lsh returns this word shifted left by n bit positions, declared at width
// W+n.  A left shift can introduce up to n new significant bits, hence the
// output width must grow by n for the invariant to hold unchecked.  Shifting
// such that W+n exceeds MaxWidth is a contract violation.
func (p Word) Lsh(n uint) Word {
	width := p.width + Width(n)
	//
	if width > MaxWidth {
		panic(fmt.Sprintf("left shift of %s by %d exceeds maximum width %s", p.width, n, MaxWidth))
	}
	//
	return Word{p.data.Lsh(n), width}
}

// Rsh returns this word shifted right by n bit positions, declared at width
// W-n.  A right shift can only shrink significance, so narrowing the declared
// width needs no runtime check.  Shifting by more than the declared width is
// a contract violation.
func (p Word) Rsh(n uint) Word {
	if Width(n) > p.width {
		panic(fmt.Sprintf("right shift of %s by %d underflows", p.width, n))
	}
	//
	return Word{p.data.Rsh(n), p.width - Width(n)}
}

// Or returns the bitwise disjunction of this word and the other, declared at
// the wider of the two operand widths.  Disjunction cannot set a bit that
// neither operand could set.
func (p Word) Or(other Word) Word {
	return Word{p.data.Or(other.data), max(p.width, other.width)}
}

// Xor returns the bitwise exclusive disjunction of this word and the other,
// declared at the wider of the two operand widths.
func (p Word) Xor(other Word) Word {
	return Word{p.data.Xor(other.data), max(p.width, other.width)}
}

// And returns the bitwise conjunction of this word and the other, declared at
// the narrower of the two operand widths.  Conjunction can only clear bits,
// so the result is bounded by the narrower operand's guarantee.
func (p Word) And(other Word) Word {
	return Word{p.data.And(other.data), min(p.width, other.width)}
}

// Not returns the bitwise complement of this word, declared at MaxWidth
// unconditionally.  Complementing flips every unused high-order bit to one,
// so no tighter width can be guaranteed regardless of the input width.  This
// is a deliberate loss of precision.
func (p Word) Not() Word {
	return Word{p.data.Not(), MaxWidth}
}

// Add returns the sum of this word and the other, declared at one more than
// the wider of the two operand widths.  The sum of two values bounded by W1
// and W2 bits is bounded by max(W1,W2)+1 bits, hence the result fits without
// a runtime check.  Operand widths for which that exceeds MaxWidth are a
// contract violation.
func (p Word) Add(other Word) Word {
	width := max(p.width, other.width) + 1
	//
	if width > MaxWidth {
		panic(fmt.Sprintf("sum of %s and %s exceeds maximum width %s", p.width, other.width, MaxWidth))
	}
	//
	return Word{p.data.Add(other.data), width}
}

// Sub returns the difference of this word and the other, declared at this
// word's width.  The other operand's declared width must not exceed this
// word's (a contract violation otherwise), which bounds the difference by W1
// bits whenever it exists.  Widths bound values only from above, however, so
// the subtrahend can still exceed the minuend at runtime; in that case no
// unsigned difference exists and the empty option is returned.
func (p Word) Sub(other Word) util.Option[Word] {
	if other.width > p.width {
		panic(fmt.Sprintf("cannot subtract %s from %s", other.width, p.width))
	}
	// Check for underflow
	if p.data.Cmp(other.data) < 0 {
		return util.None[Word]()
	}
	//
	return util.Some(Word{p.data.Sub(other.data), p.width})
}
