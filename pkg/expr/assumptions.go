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
	"bytes"
	"io"
	"os"
	"slices"

	"github.com/consensys/go-matexpr/pkg/util/errwrap"
	"github.com/consensys/go-matexpr/pkg/util/logical"
	"gopkg.in/yaml.v3"
)

// Assumptions records facts about named symbols which cannot be determined
// from the expressions themselves.  A nil set of assumptions is valid, and
// corresponds to knowing nothing.
type Assumptions struct {
	real     map[string]bool
	positive map[string]bool
}

// assumptionsFile is the on-disk form of a set of assumptions.
type assumptionsFile struct {
	Real     []string `yaml:"real"`
	Positive []string `yaml:"positive"`
}

// NewAssumptions constructs an empty set of assumptions.
func NewAssumptions() *Assumptions {
	return &Assumptions{make(map[string]bool), make(map[string]bool)}
}

// LoadAssumptions reads a set of assumptions from a YAML file of the form:
//
//	real: [x, y, A]
//	positive: [n]
func LoadAssumptions(filename string) (*Assumptions, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, errwrap.Wrapf(err, "reading assumptions")
	}
	//
	return ParseAssumptions(bytes)
}

// ParseAssumptions reads a set of assumptions from YAML text.  Unknown keys are
// rejected.
func ParseAssumptions(text []byte) (*Assumptions, error) {
	var (
		file    assumptionsFile
		decoder = yaml.NewDecoder(bytes.NewReader(text))
	)
	//
	decoder.KnownFields(true)
	// An empty document just means no assumptions.
	if err := decoder.Decode(&file); err != nil && !errwrap.Is(err, io.EOF) {
		return nil, errwrap.Wrapf(err, "parsing assumptions")
	}
	//
	return NewAssumptions().AssumeReal(file.Real...).AssumePositive(file.Positive...), nil
}

// AssumeReal records that the given symbols are real-valued.
func (p *Assumptions) AssumeReal(names ...string) *Assumptions {
	for _, n := range names {
		p.real[n] = true
	}
	//
	return p
}

// AssumePositive records that the given symbols are strictly positive (and,
// hence, real-valued).
func (p *Assumptions) AssumePositive(names ...string) *Assumptions {
	for _, n := range names {
		p.positive[n] = true
	}
	//
	return p
}

// IsReal checks whether a given symbol is assumed real-valued.
func (p *Assumptions) IsReal(name string) bool {
	return p != nil && (p.real[name] || p.positive[name])
}

// IsPositive checks whether a given symbol is assumed strictly positive.
func (p *Assumptions) IsPositive(name string) bool {
	return p != nil && p.positive[name]
}

// Real returns the sorted names of all symbols assumed real-valued.
func (p *Assumptions) Real() []string {
	return p.names(func(n string) bool { return p.IsReal(n) })
}

// Positive returns the sorted names of all symbols assumed positive.
func (p *Assumptions) Positive() []string {
	return p.names(p.IsPositive)
}

func (p *Assumptions) names(filter func(string) bool) []string {
	var names []string
	//
	if p == nil {
		return nil
	}
	//
	for _, m := range []map[string]bool{p.real, p.positive} {
		for n := range m {
			if filter(n) && !slices.Contains(names, n) {
				names = append(names, n)
			}
		}
	}
	//
	slices.Sort(names)
	//
	return names
}

// RealValued is implemented by atoms defined outside this package which can
// determine their own realness, such as the trace of a matrix.
type RealValued interface {
	IsRealUnder(*Assumptions) logical.Tribool
}

// IsZero determines whether a given expression is zero, knowing nothing about
// its symbols.
func IsZero(e Expr) logical.Tribool {
	return IsZeroUnder(e, nil)
}

// IsZeroUnder determines whether a given expression is zero under a given set
// of assumptions.  Since polynomials are canonical, a polynomial is zero
// exactly when it is the literal 0.  Otherwise, an expression is only known to
// be non-zero when it is known to be positive.
func IsZeroUnder(e Expr, assumptions *Assumptions) logical.Tribool {
	if i, ok := e.(*Integer); ok {
		return logical.FromBool(i.Sign() == 0)
	} else if IsPositiveUnder(e, assumptions) {
		return logical.False
	}
	//
	return logical.Indeterminate
}

// IsPositiveUnder checks whether a given expression is known to be strictly
// positive under a given set of assumptions.  For a polynomial, this holds when
// every coefficient and every atom is positive.
func IsPositiveUnder(e Expr, assumptions *Assumptions) bool {
	switch e := e.(type) {
	case *Integer:
		return e.Sign() > 0
	case *Symbol:
		return assumptions.IsPositive(e.name)
	case *Polynomial:
		for i := range e.poly.Len() {
			t := e.poly.Term(i)
			//
			if t.Coefficient().Sign() <= 0 {
				return false
			}
			//
			for _, v := range t.Vars() {
				if !IsPositiveUnder(v, assumptions) {
					return false
				}
			}
		}
		//
		return true
	default:
		return false
	}
}

// IsRealUnder determines whether a given expression is real-valued under a
// given set of assumptions.
func IsRealUnder(e Expr, assumptions *Assumptions) logical.Tribool {
	switch e := e.(type) {
	case *Integer:
		return logical.True
	case *Symbol:
		if assumptions.IsReal(e.name) {
			return logical.True
		}
		//
		return logical.Indeterminate
	case *Polynomial:
		return logical.ForAll(e.Args(), func(v Expr) logical.Tribool {
			return IsRealUnder(v, assumptions)
		})
	case RealValued:
		return e.IsRealUnder(assumptions)
	default:
		return logical.Indeterminate
	}
}
