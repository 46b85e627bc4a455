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
	"strings"

	"github.com/consensys/go-matexpr/pkg/util/collection/hash"
	"github.com/consensys/go-matexpr/pkg/util/source/sexp"
)

// Symbol is a named scalar whose value is unknown, such as the size n of an
// n×n identity matrix.
type Symbol struct {
	name string
	hash uint64
}

// NewSymbol constructs a symbol with a given name.
func NewSymbol(name string) *Symbol {
	return &Symbol{name, hash.Mix(uint64(SymbolKind), hash.String(name))}
}

// Name returns the name of this symbol.
func (p *Symbol) Name() string {
	return p.name
}

// Kind implementation for Expr interface.
func (p *Symbol) Kind() Kind {
	return SymbolKind
}

// Hash implementation for Expr interface.
func (p *Symbol) Hash() uint64 {
	return p.hash
}

// Equals implementation for Expr interface.
func (p *Symbol) Equals(other Expr) bool {
	if o, ok := other.(*Symbol); ok {
		return p.name == o.name
	}
	//
	return false
}

// Cmp implementation for Expr interface.  Symbols are ordered by name.
func (p *Symbol) Cmp(other Expr) int {
	if c := CompareKinds(p, other); c != 0 {
		return c
	}
	//
	return strings.Compare(p.name, other.(*Symbol).name)
}

// Args implementation for Expr interface.
func (p *Symbol) Args() []Expr {
	return nil
}

// Lisp implementation for Expr interface.
func (p *Symbol) Lisp() sexp.SExp {
	return sexp.NewSymbol(p.name)
}

func (p *Symbol) String() string {
	return p.name
}
