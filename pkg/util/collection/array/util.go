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
package array

import (
	"cmp"
	"slices"
)

// Predicate abstracts the notion of a function which identifies something.
type Predicate[T any] func(T) bool

// Comparable interface which can be implemented by non-primitive types.
type Comparable[T any] interface {
	// Cmp returns < 0 if this is less than other, or 0 if they are equal, or >
	// 0 if this is greater than other.
	Cmp(other T) int
}

// Compare two slices of ordered elements using a graded order.  That is,
// shorter slices always precede longer slices, and slices of equal length are
// compared elementwise.
func Compare[T Comparable[T]](lhs []T, rhs []T) int {
	c := cmp.Compare(len(lhs), len(rhs))
	//
	if c == 0 {
		for i := range lhs {
			c = lhs[i].Cmp(rhs[i])
			if c != 0 {
				break
			}
		}
	}
	//
	return c
}

// CompareLex compares two slices of ordered elements lexicographically.  That
// is, the first differing element determines the result, and a slice which is
// a strict prefix of the other precedes it.
func CompareLex[T Comparable[T]](lhs []T, rhs []T) int {
	n := min(len(lhs), len(rhs))
	//
	for i := range n {
		if c := lhs[i].Cmp(rhs[i]); c != 0 {
			return c
		}
	}
	//
	return cmp.Compare(len(lhs), len(rhs))
}

// IsSorted checks whether a given slice is sorted in non-decreasing order.
func IsSorted[T Comparable[T]](items []T) bool {
	return slices.IsSortedFunc(items, func(l, r T) int {
		return l.Cmp(r)
	})
}

// Sort a given slice in place.  This sort is stable, such that equal items
// retain their relative positions.
func Sort[T Comparable[T]](items []T) {
	slices.SortStableFunc(items, func(l, r T) int {
		return l.Cmp(r)
	})
}

// MergeSorted merges two sorted slices into a fresh sorted slice.  Duplicates
// are retained.
func MergeSorted[T Comparable[T]](lhs []T, rhs []T) []T {
	var (
		res  = make([]T, 0, len(lhs)+len(rhs))
		i, j = 0, 0
	)
	//
	for i < len(lhs) && j < len(rhs) {
		if lhs[i].Cmp(rhs[j]) <= 0 {
			res = append(res, lhs[i])
			i++
		} else {
			res = append(res, rhs[j])
			j++
		}
	}
	// Copy over remainders
	res = append(res, lhs[i:]...)
	res = append(res, rhs[j:]...)
	//
	return res
}

// RemoveMatching removes all elements from an array matching the given item.
// Observe that this always returns a fresh slice when something is removed,
// leaving the original untouched.
func RemoveMatching[T any](items []T, predicate Predicate[T]) []T {
	count := 0
	// Check how many matches we have
	for _, r := range items {
		if !predicate(r) {
			count++
		}
	}
	// Check for stuff to remove
	if count != len(items) {
		nitems := make([]T, 0, count)
		// Remove items
		for _, r := range items {
			if !predicate(r) {
				nitems = append(nitems, r)
			}
		}
		//
		return nitems
	}
	//
	return items
}

// ContainsMatching checks whether a given array contains an item matching a given predicate.
func ContainsMatching[T any](items []T, predicate Predicate[T]) bool {
	return slices.ContainsFunc(items, predicate)
}

// AllMatching checks whether all items in a given array match a given
// predicate.  This holds vacuously for an empty array.
func AllMatching[T any](items []T, predicate Predicate[T]) bool {
	for _, item := range items {
		if !predicate(item) {
			return false
		}
	}
	//
	return true
}
