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

import "fmt"

// Width measures the declared bit-width of a word.  A width is a bookkeeping
// device only: it bounds how many significant bits a value may use, and every
// operator derives its output width from its input widths.  Widths never
// appear in the stored value itself.
type Width uint

// MaxWidth is the largest width any word can be declared at, fixed by the
// 128bit capacity of the underlying storage.  Every derived width is bounded
// by this, and operators whose output width would exceed it reject the
// operation outright.
const MaxWidth Width = 128

// IsValid determines whether this width can actually tag a word.
func (w Width) IsValid() bool {
	return w <= MaxWidth
}

func (w Width) String() string {
	return fmt.Sprintf("u%d", uint(w))
}

// checkWidth rejects widths beyond the storage capacity.  Such widths are a
// contract violation by the caller, not a data condition, hence the panic.
func checkWidth(width Width) {
	if width > MaxWidth {
		panic(fmt.Sprintf("width %s exceeds maximum width %s", width, MaxWidth))
	}
}
