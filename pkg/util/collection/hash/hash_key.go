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
package hash

// A reasonably simple hashset implementation which permits collisions.  Observe
// that, for example, hashicorp's go-set is *not* a suitable replacement here,
// since that does not handle collisions.  Specifically, it assumes the hash
// function always uniquely identifies the data in question.  I don't want to
// make that assumption here.

// Hasher provides a generic definition of a hashing function suitable for use
// within the hashset.  This is similar to the Hasher interface provided in
// go-set, except that it additionally includes equality.
type Hasher[T any] interface {
	// Check whether two items are equal (or not).
	Equals(T) bool
	// Return a suitable hashcode.
	Hash() uint64
}

const (
	offset64 uint64 = 14695981039346656037
	prime64  uint64 = 1099511628211
)

// Mix combines a seed with zero or more hashcodes using an FNV1a step per
// value.  This is order sensitive, hence Mix(s,a,b) and Mix(s,b,a) generally
// differ.
func Mix(seed uint64, values ...uint64) uint64 {
	hash := offset64
	hash ^= seed
	hash *= prime64
	//
	for _, v := range values {
		hash ^= v
		hash *= prime64
	}
	//
	return hash
}

// String computes an FNV1a hashcode for a given string.
func String(s string) uint64 {
	return Bytes([]byte(s))
}

// Bytes computes an FNV1a hashcode for a given byte array.
func Bytes(bytes []byte) uint64 {
	hash := offset64
	//
	for _, b := range bytes {
		hash ^= uint64(b)
		hash *= prime64
	}
	//
	return hash
}

// Equal checks whether two slices of hashable elements are pairwise equal.
func Equal[F Hasher[F]](lhs []F, rhs []F) bool {
	if len(lhs) != len(rhs) {
		return false
	}
	//
	for i := range lhs {
		if !lhs[i].Equals(rhs[i]) {
			return false
		}
	}
	//
	return true
}

// HashAll mixes the hashcodes of all elements in a slice (in order) with a
// given seed.
func HashAll[F Hasher[F]](seed uint64, elements []F) uint64 {
	hash := Mix(seed)
	//
	for _, c := range elements {
		hash ^= c.Hash()
		hash *= prime64
	}
	//
	return hash
}
