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
	"fmt"
	"math/rand/v2"
	"runtime"
	"sort"
	"sync"
	"testing"
)

func Test_Cache_01(t *testing.T) {
	items := []uint{1, 2, 3, 4, 3, 2, 1}
	check_Cache(t, items)
}

func Test_Cache_02(t *testing.T) {
	check_Cache(t, randomUints(10, 32))
}

func Test_Cache_03(t *testing.T) {
	check_Cache(t, randomUints(1000, 32))
}

func Test_Cache_04(t *testing.T) {
	check_Cache(t, randomUints(10000, 128))
}

func Test_Cache_05(t *testing.T) {
	var (
		cache  = NewCache[testKey]("test")
		first  = testKey{1, "first"}
		second = testKey{1, "second"}
	)
	//
	if rep := cache.Intern(first, Strong(first)); rep.label != "first" {
		t.Errorf("unexpected representative on first insertion")
	}
	// Equal item should give back original representative
	if rep := cache.Intern(second, Strong(second)); rep.label != "first" {
		t.Errorf("expected first representative, got %s", rep.label)
	}
}

func Test_Mix_01(t *testing.T) {
	if Mix(1, 2, 3) == Mix(1, 3, 2) {
		t.Errorf("mixing should be order sensitive")
	}
	//
	if Mix(1, 2, 3) != Mix(1, 2, 3) {
		t.Errorf("mixing should be deterministic")
	}
	//
	if Mix(1) == Mix(2) {
		t.Errorf("seed should affect mixing")
	}
}

func Test_Mix_02(t *testing.T) {
	var (
		lhs = []testKey{{1, ""}, {2, ""}}
		rhs = []testKey{{1, "x"}, {2, "y"}}
	)
	//
	if !Equal(lhs, rhs) || HashAll(0, lhs) != HashAll(0, rhs) {
		t.Errorf("equal slices should have equal hashes")
	}
	//
	if Equal(lhs, []testKey{{2, ""}, {1, ""}}) {
		t.Errorf("slices should be compared positionally")
	}
	//
	if Equal(lhs, lhs[:1]) {
		t.Errorf("slices of different length should differ")
	}
}

func Test_Cache_06(t *testing.T) {
	var (
		cache = NewCache[testKey]("test")
		n     = 64
		reps  = make([]testKey, n)
		wg    sync.WaitGroup
	)
	//
	for i := range n {
		wg.Add(1)
		//
		go func(i int) {
			defer wg.Done()
			key := testKey{uint(i % 4), fmt.Sprintf("%d", i)}
			reps[i] = cache.Intern(key, Strong(key))
		}(i)
	}
	//
	wg.Wait()
	//
	if cache.Size() != 4 {
		t.Errorf("expected 4 representatives, got %d", cache.Size())
	}
	// Every item must resolve to the same representative as its equals.
	for i := range n {
		if reps[i].label != reps[i%4].label {
			t.Errorf("item %d has representative %s, expected %s", i, reps[i].label, reps[i%4].label)
		}
	}
	//
	cache.Clear()
	//
	if cache.Size() != 0 {
		t.Errorf("expected empty cache after clear")
	}
}

func Test_Cache_07(t *testing.T) {
	const n = 1000
	//
	var (
		cache = NewCache[*testNode]("test")
		kept  = internNodes(cache, 0, 10)
	)
	// Nodes which are no longer held anywhere else are released
	internNodes(cache, 10, n)
	runtime.GC()
	runtime.GC()
	//
	if size := cache.Size(); size >= n {
		t.Errorf("expected released nodes, got %d representatives", size)
	}
	// Nodes still held remain shared
	for i, node := range kept {
		if rep := cache.Intern(&testNode{value: uint(i)}, Strong(&testNode{value: uint(i)})); rep != node {
			t.Errorf("node %d no longer shared", i)
		}
	}
	//
	runtime.KeepAlive(kept)
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Cache(t *testing.T, items []uint) {
	cache := NewCache[testKey]("test")
	// Insert items, keeping the first representative of each
	reps := make(map[uint]string)
	//
	for i, item := range items {
		key := testKey{item, fmt.Sprintf("%d", i)}
		rep := cache.Intern(key, Strong(key))
		//
		if label, ok := reps[item]; !ok {
			reps[item] = rep.label
		} else if label != rep.label {
			t.Errorf("item %d has representative %s, expected %s", item, rep.label, label)
		}
	}
	// Sort items
	sort.Slice(items, func(i, j int) bool {
		return items[i] < items[j]
	})
	//
	count := uint(0)
	// Count unique items
	for i := 0; i < len(items); i++ {
		if i == 0 || items[i-1] != items[i] {
			count++
		}
	}
	// Sanity check number of unique items
	if cache.Size() != count {
		t.Errorf("expected %d unique items, got %d", count, cache.Size())
	}
}

// Intern nodes with values from a given range, holding them only weakly.
func internNodes(cache *Cache[*testNode], from uint, to uint) []*testNode {
	var nodes []*testNode
	//
	for i := from; i < to; i++ {
		node := &testNode{value: i}
		nodes = append(nodes, cache.Intern(node, Weak(node, func(p *testNode) *testNode { return p })))
	}
	//
	return nodes
}

func randomUints(n uint, m uint) []uint {
	items := make([]uint, n)
	//
	for i := range items {
		items[i] = rand.UintN(m)
	}
	//
	return items
}

// A simple wrapper around a uint.  This is deliberately broken to ensure a
// relatively limited spread of hash values.  This helps to ensure that we get
// some collisions.  The label does not participate in equality, and is used to
// identify which representative was retained.
type testKey struct {
	value uint
	label string
}

func (p testKey) Equals(other testKey) bool {
	return p.value == other.value
}

func (p testKey) Hash() uint64 {
	return uint64(p.value % 16)
}

func (p testKey) String() string {
	return fmt.Sprintf("%d", p.value)
}

// A heap allocated node, such that it can be held weakly.  The label keeps
// nodes out of the tiny allocator, where neighbours can keep each other alive.
type testNode struct {
	value uint
	label string
}

func (p *testNode) Equals(other *testNode) bool {
	return p.value == other.value
}

func (p *testNode) Hash() uint64 {
	return uint64(p.value % 16)
}
