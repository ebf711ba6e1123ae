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

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-maxbits/pkg/util"
)

// AsFieldElement lifts this word into the BLS12-377 scalar field.  Since
// MaxWidth is well below the bit-width of the field modulus, the value is
// never reduced and the conversion always succeeds.
func (p Word) AsFieldElement() fr.Element {
	var (
		elem fr.Element
		val  = p.data.AsBigInt()
	)
	//
	elem.SetBigInt(&val)
	//
	return elem
}

// NewFromFieldElement attempts to construct a word from a given field element
// at the given declared width.  This fails if the element does not fit the
// 128bit storage capacity, or needs more bits than the width permits.
func NewFromFieldElement(elem fr.Element, width Width) util.Option[Word] {
	var val big.Int
	//
	elem.BigInt(&val)
	//
	return NewFromBig(&val, width)
}
