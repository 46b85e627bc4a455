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
package matrix

import (
	"github.com/consensys/go-matexpr/pkg/expr"
	"github.com/consensys/go-matexpr/pkg/util/logical"
	"github.com/consensys/go-matexpr/pkg/util/source/sexp"
)

// Trace is the (scalar) trace of a matrix which cannot be reduced any further,
// such as the trace of a named matrix.  Traces are atoms, and so can appear
// within polynomials.
type Trace struct {
	operand Expr
	hash    uint64
}

// NewTrace constructs the trace of a given matrix, applying known reductions:
// the trace of the n×n identity is n; the trace of a zero matrix is 0; the
// trace of a diagonal matrix is the sum of its entries; and the trace of a sum
// is the sum of the traces of its terms.  This never fails.
func NewTrace(m Expr) expr.Expr {
	switch m := m.(type) {
	case *Identity:
		return m.size
	case *Zero:
		return expr.Int(0)
	case *Diagonal:
		return expr.Add(m.entries...)
	case *Add:
		traces := make([]expr.Expr, len(m.terms))
		//
		for i, t := range m.terms {
			traces[i] = NewTrace(t)
		}
		//
		return expr.Add(traces...)
	}
	//
	assertCanonical(IsCanonicalTrace(m), "trace", m)
	//
	return intern(&Trace{m, hashOf(expr.TraceKind, []expr.Expr{m})})
}

// IsCanonicalTrace checks whether the trace of a given matrix is in canonical
// form.  That is, the matrix is named, since all other matrices reduce.
func IsCanonicalTrace(m Expr) bool {
	_, ok := m.(*Symbol)
	return ok
}

// Operand returns the matrix whose trace this is.
func (p *Trace) Operand() Expr {
	return p.operand
}

// Kind implementation for Expr interface.
func (p *Trace) Kind() expr.Kind {
	return expr.TraceKind
}

// Hash implementation for Expr interface.
func (p *Trace) Hash() uint64 {
	return p.hash
}

// Equals implementation for Expr interface.
func (p *Trace) Equals(other expr.Expr) bool {
	return expr.Expr(p) == other || equalArgs(p, other)
}

// Cmp implementation for Expr interface.
func (p *Trace) Cmp(other expr.Expr) int {
	return compareArgs(p, other)
}

// Args implementation for Expr interface.
func (p *Trace) Args() []expr.Expr {
	return []expr.Expr{p.operand}
}

// Lisp implementation for Expr interface.
func (p *Trace) Lisp() sexp.SExp {
	return lisp("trace", p.operand)
}

func (p *Trace) String() string {
	return expr.String(p)
}

// IsRealUnder implementation for expr.RealValued interface.  The trace of a
// real matrix is real.
func (p *Trace) IsRealUnder(assumptions *expr.Assumptions) logical.Tribool {
	return IsRealUnder(p.operand, assumptions)
}
