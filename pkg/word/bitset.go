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
	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/go-maxbits/pkg/util"
)

// AsBitSet returns the set of bit offsets used by this word, sized to its
// declared width.  By the fits invariant, no offset at or beyond the declared
// width can ever be set.
func (p Word) AsBitSet() *bitset.BitSet {
	bs := bitset.New(uint(p.width))
	//
	for i := uint(0); i < uint(p.width); i++ {
		if p.data.Bit(i) {
			bs.Set(i)
		}
	}
	//
	return bs
}

// NewFromBitSet attempts to construct a word from a given set of bit offsets
// at the given declared width.  This fails if any offset at or beyond the
// width (or the storage capacity) is set.
func NewFromBitSet(bs *bitset.BitSet, width Width) util.Option[Word] {
	var data Uint128
	//
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		if i >= uint(MaxWidth) {
			return util.None[Word]()
		}
		//
		data = data.Or(Uint128FromUint64(1).Lsh(i))
	}
	//
	return New(data, width)
}
