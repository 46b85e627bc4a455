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
package expr

import (
	"math/big"

	"github.com/consensys/go-matexpr/pkg/util/collection/hash"
	"github.com/consensys/go-matexpr/pkg/util/source/sexp"
)

// Integer is an exact integer literal of arbitrary precision.
type Integer struct {
	value big.Int
	hash  uint64
}

// NewInteger constructs an integer literal from a given value, which is copied.
func NewInteger(value *big.Int) *Integer {
	var p Integer
	//
	p.value.Set(value)
	p.hash = hash.Mix(uint64(IntegerKind), uint64(value.Sign()+1), hash.Bytes(value.Bytes()))
	//
	return &p
}

// Int constructs an integer literal from a machine integer.
func Int(value int64) *Integer {
	return NewInteger(big.NewInt(value))
}

// Value returns (a copy of) the value of this literal.
func (p *Integer) Value() *big.Int {
	var v big.Int
	return v.Set(&p.value)
}

// Sign returns -1, 0 or 1 depending on whether this literal is negative, zero
// or positive.
func (p *Integer) Sign() int {
	return p.value.Sign()
}

// Kind implementation for Expr interface.
func (p *Integer) Kind() Kind {
	return IntegerKind
}

// Hash implementation for Expr interface.
func (p *Integer) Hash() uint64 {
	return p.hash
}

// Equals implementation for Expr interface.
func (p *Integer) Equals(other Expr) bool {
	if o, ok := other.(*Integer); ok {
		return p == o || p.value.Cmp(&o.value) == 0
	}
	//
	return false
}

// Cmp implementation for Expr interface.  Integers are ordered numerically.
func (p *Integer) Cmp(other Expr) int {
	if c := CompareKinds(p, other); c != 0 {
		return c
	}
	//
	return p.value.Cmp(&other.(*Integer).value)
}

// Args implementation for Expr interface.
func (p *Integer) Args() []Expr {
	return nil
}

// Lisp implementation for Expr interface.
func (p *Integer) Lisp() sexp.SExp {
	return sexp.NewSymbol(p.value.String())
}

func (p *Integer) String() string {
	return p.value.String()
}

// AsInteger returns the value of a given expression if it is an integer
// literal.
func AsInteger(e Expr) (*big.Int, bool) {
	if i, ok := e.(*Integer); ok {
		return i.Value(), true
	}
	//
	return nil, false
}

// IsLiteral checks whether a given expression is an integer literal with the
// given value.
func IsLiteral(e Expr, value int64) bool {
	if i, ok := e.(*Integer); ok {
		return i.value.IsInt64() && i.value.Int64() == value
	}
	//
	return false
}

// IsNegativeLiteral checks whether a given expression is an integer literal
// less than zero.
func IsNegativeLiteral(e Expr) bool {
	i, ok := e.(*Integer)
	return ok && i.value.Sign() < 0
}
