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

import (
	"sync"
	"weak"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// cacheHits counts lookups answered by an existing representative.
	cacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "matexpr_intern_cache_hits_total",
		Help: "Total intern lookups which returned an existing node",
	}, []string{"cache"})

	// cacheMisses counts lookups which installed a new representative.
	cacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "matexpr_intern_cache_misses_total",
		Help: "Total intern lookups which installed a new node",
	}, []string{"cache"})

	// cacheReleased counts representatives dropped after being collected.
	cacheReleased = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "matexpr_intern_cache_released_total",
		Help: "Total representatives dropped after being garbage collected",
	}, []string{"cache"})
)

// Ref is a reference to a cached item.  This returns false once the item is no
// longer available, for example because it was garbage collected.
type Ref[T any] func() (T, bool)

// Strong returns a reference which keeps a given item alive.
func Strong[T any](item T) Ref[T] {
	return func() (T, bool) {
		return item, true
	}
}

// Weak returns a reference to a given pointer which does not keep it alive.
// The conversion maps a live pointer back onto the item it represents.
func Weak[T any, E any](ptr *E, conv func(*E) T) Ref[T] {
	wp := weak.Make(ptr)
	//
	return func() (T, bool) {
		var empty T
		//
		if p := wp.Value(); p != nil {
			return conv(p), true
		}
		//
		return empty, false
	}
}

// Cache is a synchronised hashtable used for hash-consing.  That is, it maps
// every item onto a single shared representative of all items equal to it.
// Collisions are handled using buckets.  Items placed into a cache must be
// immutable, since they may subsequently be returned to any number of callers.
// A cache holds its representatives through references, so a representative
// held only by a weak reference is dropped once collected.
type Cache[T Hasher[T]] struct {
	mux sync.Mutex
	// buckets maps hashcodes to references for the items with that hash.
	buckets  map[uint64][]Ref[T]
	hits     prometheus.Counter
	miss     prometheus.Counter
	released prometheus.Counter
}

// NewCache constructs an empty cache with a given name.  The name is used only
// to label the counters.
func NewCache[T Hasher[T]](name string) *Cache[T] {
	return &Cache[T]{
		buckets:  make(map[uint64][]Ref[T]),
		hits:     cacheHits.WithLabelValues(name),
		miss:     cacheMisses.WithLabelValues(name),
		released: cacheReleased.WithLabelValues(name),
	}
}

// Intern returns the shared representative for a given item.  When no equal
// item is known, the item itself becomes the representative and is held
// through the given reference.  Dropped references in the item's bucket are
// pruned along the way.
func (p *Cache[T]) Intern(item T, ref Ref[T]) T {
	p.mux.Lock()
	defer p.mux.Unlock()
	//
	var (
		hash   = item.Hash()
		live   []Ref[T]
		rep    T
		found  bool
		bucket = p.buckets[hash]
	)
	//
	for _, r := range bucket {
		v, ok := r()
		//
		if !ok {
			continue
		} else if !found && item.Equals(v) {
			rep, found = v, true
		}
		//
		live = append(live, r)
	}
	//
	p.released.Add(float64(len(bucket) - len(live)))
	//
	if found {
		p.hits.Inc()
	} else {
		p.miss.Inc()
		live = append(live, ref)
		rep = item
	}
	//
	p.buckets[hash] = live
	//
	return rep
}

// Size returns the number of distinct representatives still held by this
// cache, pruning any which have been dropped.
func (p *Cache[T]) Size() uint {
	p.mux.Lock()
	defer p.mux.Unlock()
	//
	var count uint
	//
	for hash, bucket := range p.buckets {
		var live []Ref[T]
		//
		for _, r := range bucket {
			if _, ok := r(); ok {
				live = append(live, r)
			}
		}
		//
		p.released.Add(float64(len(bucket) - len(live)))
		//
		if len(live) == 0 {
			delete(p.buckets, hash)
		} else {
			p.buckets[hash] = live
		}
		//
		count += uint(len(live))
	}
	//
	return count
}

// Clear drops all representatives held by this cache.  Items returned
// previously remain valid, but are no longer shared with future items.
func (p *Cache[T]) Clear() {
	p.mux.Lock()
	defer p.mux.Unlock()
	//
	p.buckets = make(map[uint64][]Ref[T])
}
