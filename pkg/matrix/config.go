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
	"sync/atomic"

	"github.com/consensys/go-matexpr/pkg/expr"
	"github.com/consensys/go-matexpr/pkg/util/collection/hash"
	log "github.com/sirupsen/logrus"
)

// Config determines how the factories construct expressions.
type Config struct {
	// HashConsing determines whether structurally equal expressions are
	// shared.  Disabling this never changes the results of Equals, Hash or
	// Cmp.
	HashConsing bool
	// CanonicalChecks determines whether every constructed expression is
	// checked against its canonical form predicate.
	CanonicalChecks bool
}

// DefaultConfig returns the default configuration, where hash-consing and
// canonical checks are both enabled.
func DefaultConfig() Config {
	return Config{HashConsing: true, CanonicalChecks: true}
}

var (
	hashConsing     atomic.Bool
	canonicalChecks atomic.Bool
	// cache of all shared expressions.
	cache = hash.NewCache[expr.Expr]("matrix")
)

func init() {
	Configure(DefaultConfig())
}

// Configure updates the configuration used by the factories.  Disabling
// hash-consing releases all currently shared expressions.
func Configure(config Config) {
	hashConsing.Store(config.HashConsing)
	canonicalChecks.Store(config.CanonicalChecks)
	//
	if !config.HashConsing {
		cache.Clear()
	}
	//
	log.Debugf("matrix configuration: hash-consing=%t, canonical-checks=%t", config.HashConsing,
		config.CanonicalChecks)
}

// CurrentConfig returns the configuration currently used by the factories.
func CurrentConfig() Config {
	return Config{HashConsing: hashConsing.Load(), CanonicalChecks: canonicalChecks.Load()}
}

// CacheSize returns the number of distinct expressions currently shared.
// Expressions which have been released are not counted.
func CacheSize() uint {
	return cache.Size()
}

// intern returns the shared representative of a given expression when
// hash-consing is enabled, or the expression itself otherwise.  The cache
// holds representatives weakly, so an expression is released once nothing
// else holds it.
func intern[E any, P interface {
	*E
	expr.Expr
}](e P) P {
	if !hashConsing.Load() {
		return e
	}
	//
	ref := hash.Weak((*E)(e), func(p *E) expr.Expr { return P(p) })
	// Equal expressions always have the same concrete type.
	return cache.Intern(e, ref).(P)
}
