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
	"math/big"
	"testing"
)

var uint128Samples = []Uint128{
	{},
	{0, 1},
	{0, 2},
	{0, 0xff},
	{0, 0xffff},
	{0, 0xcdbaef123456},
	{0, ^uint64(0)},
	{1, 0},
	{1, 0xffffffff},
	{0xdeadbeef, 0xcafebabe},
	{^uint64(0), 0},
	{^uint64(0), ^uint64(0)},
}

var shiftSamples = []uint{0, 1, 7, 15, 63, 64, 65, 80, 127, 128}

func Test_Uint128_Add(t *testing.T) {
	for _, l := range uint128Samples {
		for _, r := range uint128Samples {
			checkBinOp(t, "+", l.Add(r), addBig(asBig(l), asBig(r)))
		}
	}
}

func Test_Uint128_Sub(t *testing.T) {
	for _, l := range uint128Samples {
		for _, r := range uint128Samples {
			checkBinOp(t, "-", l.Sub(r), subBig(asBig(l), asBig(r)))
		}
	}
}

func Test_Uint128_Logic(t *testing.T) {
	for _, l := range uint128Samples {
		for _, r := range uint128Samples {
			checkBinOp(t, "&", l.And(r), new(big.Int).And(asBig(l), asBig(r)))
			checkBinOp(t, "|", l.Or(r), new(big.Int).Or(asBig(l), asBig(r)))
			checkBinOp(t, "^", l.Xor(r), new(big.Int).Xor(asBig(l), asBig(r)))
		}
	}
}

func Test_Uint128_Not(t *testing.T) {
	for _, l := range uint128Samples {
		// Complement within 128 bits
		expected := new(big.Int).Sub(maxBig(), asBig(l))
		checkBinOp(t, "~", l.Not(), expected)
	}
}

func Test_Uint128_Lsh(t *testing.T) {
	for _, l := range uint128Samples {
		for _, n := range shiftSamples {
			expected := truncBig(new(big.Int).Lsh(asBig(l), n))
			checkBinOp(t, "<<", l.Lsh(n), expected)
		}
	}
}

func Test_Uint128_Rsh(t *testing.T) {
	for _, l := range uint128Samples {
		for _, n := range shiftSamples {
			checkBinOp(t, ">>", l.Rsh(n), new(big.Int).Rsh(asBig(l), n))
		}
	}
}

func Test_Uint128_LeadingZeros(t *testing.T) {
	for _, l := range uint128Samples {
		expected := 128 - uint(asBig(l).BitLen())
		//
		if actual := l.LeadingZeros(); actual != expected {
			t.Errorf("leading zeros of %s: %d != %d", l, actual, expected)
		}
		//
		if actual := l.BitLen(); actual != uint(asBig(l).BitLen()) {
			t.Errorf("bit length of %s: %d != %d", l, actual, asBig(l).BitLen())
		}
	}
}

func Test_Uint128_Cmp(t *testing.T) {
	for _, l := range uint128Samples {
		for _, r := range uint128Samples {
			if actual, expected := l.Cmp(r), asBig(l).Cmp(asBig(r)); actual != expected {
				t.Errorf("%s cmp %s: %d != %d", l, r, actual, expected)
			}
		}
	}
}

func Test_Uint128_Bit(t *testing.T) {
	for _, l := range uint128Samples {
		for i := uint(0); i < 130; i++ {
			if actual, expected := l.Bit(i), asBig(l).Bit(int(i)) == 1; actual != expected {
				t.Errorf("bit %d of %s: %t != %t", i, l, actual, expected)
			}
		}
	}
}

func Test_Uint128_BigRoundTrip(t *testing.T) {
	for _, l := range uint128Samples {
		val := asBig(l)
		//
		actual, ok := Uint128FromBig(val)
		if !ok {
			t.Errorf("%s did not round trip", l)
		} else if actual != l {
			t.Errorf("%s != %s", actual, l)
		}
	}
}

func Test_Uint128_BigRejected(t *testing.T) {
	// One bit past capacity
	if _, ok := Uint128FromBig(twoPow(128)); ok {
		t.Errorf("2^128 should not fit")
	}
	// Negative values never fit
	if _, ok := Uint128FromBig(big.NewInt(-1)); ok {
		t.Errorf("-1 should not fit")
	}
}

// ============================================================================
// Helpers
// ============================================================================

func checkBinOp(t *testing.T, op string, actual Uint128, expected *big.Int) {
	val := asBig(actual)
	//
	if val.Cmp(expected) != 0 {
		t.Errorf("(%s) %s != 0x%s", op, actual, expected.Text(16))
	}
}

func asBig(val Uint128) *big.Int {
	bi := val.AsBigInt()
	return &bi
}

func twoPow(n uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), n)
}

func maxBig() *big.Int {
	return new(big.Int).Sub(twoPow(128), big.NewInt(1))
}

// Truncate a big integer to 128 bits.
func truncBig(val *big.Int) *big.Int {
	return val.And(val, maxBig())
}

// Wrapping addition over 128 bits.
func addBig(l, r *big.Int) *big.Int {
	return truncBig(new(big.Int).Add(l, r))
}

// Wrapping subtraction over 128 bits.
func subBig(l, r *big.Int) *big.Int {
	val := new(big.Int).Sub(l, r)
	//
	if val.Sign() < 0 {
		val.Add(val, twoPow(128))
	}
	//
	return val
}
