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
package logical

// Tribool is a three-valued truth value.  Alongside the usual true and false,
// it admits a third value (indeterminate) for facts which cannot be decided
// from the information available.  For example, whether an n×m matrix is
// square cannot be decided when n and m are distinct (unrelated) symbols.
type Tribool uint8

const (
	// Indeterminate indicates the truth value could not be decided.  This is
	// deliberately the zero value, so that an uninitialised Tribool never
	// claims something which was not established.
	Indeterminate Tribool = iota
	// False indicates a fact which is known not to hold.
	False
	// True indicates a fact which is known to hold.
	True
)

// FromBool lifts a boolean into a (determinate) tribool.
func FromBool(b bool) Tribool {
	if b {
		return True
	}
	//
	return False
}

// IsTrue checks whether this is definitely true.
func (p Tribool) IsTrue() bool {
	return p == True
}

// IsFalse checks whether this is definitely false.
func (p Tribool) IsFalse() bool {
	return p == False
}

// IsIndeterminate checks whether this is neither true nor false.
func (p Tribool) IsIndeterminate() bool {
	return p != True && p != False
}

// Not negates this tribool.  The negation of indeterminate is indeterminate.
func (p Tribool) Not() Tribool {
	switch p {
	case True:
		return False
	case False:
		return True
	default:
		return Indeterminate
	}
}

// And computes the conjunction of this tribool with another.  False dominates,
// followed by indeterminate.
func (p Tribool) And(o Tribool) Tribool {
	switch {
	case p == False || o == False:
		return False
	case p == True && o == True:
		return True
	default:
		return Indeterminate
	}
}

// Or computes the disjunction of this tribool with another.  True dominates,
// followed by indeterminate.
func (p Tribool) Or(o Tribool) Tribool {
	switch {
	case p == True || o == True:
		return True
	case p == False && o == False:
		return False
	default:
		return Indeterminate
	}
}

func (p Tribool) String() string {
	switch p {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "indeterminate"
	}
}

// AndAll computes the conjunction of zero or more tribools.  The conjunction of
// nothing is true.
func AndAll(items ...Tribool) Tribool {
	var res = True
	//
	for _, item := range items {
		if res = res.And(item); res == False {
			break
		}
	}
	//
	return res
}

// OrAll computes the disjunction of zero or more tribools.  The disjunction of
// nothing is false.
func OrAll(items ...Tribool) Tribool {
	var res = False
	//
	for _, item := range items {
		if res = res.Or(item); res == True {
			break
		}
	}
	//
	return res
}

// ForAll evaluates a predicate over each item and returns the conjunction of the
// results.  Evaluation stops at the first item for which the predicate is
// false.
func ForAll[T any](items []T, fn func(T) Tribool) Tribool {
	var res = True
	//
	for _, item := range items {
		if res = res.And(fn(item)); res == False {
			break
		}
	}
	//
	return res
}
