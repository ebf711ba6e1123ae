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
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
)

func TestBitSetRoundTrip(t *testing.T) {
	for _, val := range uint128Samples {
		width := Width(val.BitLen())
		w := New(val, width).Unwrap()
		//
		back := NewFromBitSet(w.AsBitSet(), width)
		assert.True(t, back.HasValue(), "%s did not round trip", w)
		assert.True(t, w.Equals(back.Unwrap()))
	}
}

func TestBitSetOffsets(t *testing.T) {
	w := NewFromUint64(0b1011, 16).Unwrap()
	bs := w.AsBitSet()
	//
	assert.Equal(t, uint(3), bs.Count())
	assert.True(t, bs.Test(0))
	assert.True(t, bs.Test(1))
	assert.False(t, bs.Test(2))
	assert.True(t, bs.Test(3))
}

func TestBitSetFitsCheck(t *testing.T) {
	// An offset beyond the declared width fails the fits check
	bs := bitset.New(16)
	bs.Set(8)
	//
	assert.True(t, NewFromBitSet(bs, 16).HasValue())
	assert.True(t, NewFromBitSet(bs, 8).IsEmpty())
	assert.True(t, NewFromBitSet(bs, 9).HasValue())
	// An offset beyond the storage capacity likewise
	bs.Set(200)
	assert.True(t, NewFromBitSet(bs, MaxWidth).IsEmpty())
}
