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

import (
	"testing"
)

var (
	T = True
	F = False
	U = Indeterminate
)

func Test_Tribool_01(t *testing.T) {
	checkAnd(t, T, T, T)
	checkAnd(t, T, F, F)
	checkAnd(t, F, T, F)
	checkAnd(t, F, F, F)
}

func Test_Tribool_02(t *testing.T) {
	checkAnd(t, U, T, U)
	checkAnd(t, T, U, U)
	checkAnd(t, U, U, U)
	checkAnd(t, U, F, F)
	checkAnd(t, F, U, F)
}

func Test_Tribool_03(t *testing.T) {
	checkOr(t, T, U, T)
	checkOr(t, U, T, T)
	checkOr(t, F, U, U)
	checkOr(t, U, F, U)
	checkOr(t, F, F, F)
}

func Test_Tribool_04(t *testing.T) {
	checkNot(t, T, F)
	checkNot(t, F, T)
	checkNot(t, U, U)
}

func Test_Tribool_05(t *testing.T) {
	checkEqual(t, T, AndAll())
	checkEqual(t, T, AndAll(T, T, T))
	checkEqual(t, U, AndAll(T, U, T))
	checkEqual(t, F, AndAll(U, T, F))
	checkEqual(t, F, OrAll())
	checkEqual(t, T, OrAll(F, U, T))
	checkEqual(t, U, OrAll(F, U))
}

func Test_Tribool_06(t *testing.T) {
	var calls = 0
	//
	res := ForAll([]Tribool{T, F, U}, func(b Tribool) Tribool {
		calls++
		return b
	})
	//
	checkEqual(t, F, res)
	//
	if calls != 2 {
		t.Errorf("expected evaluation to stop after first false (calls=%d)", calls)
	}
}

func Test_Tribool_07(t *testing.T) {
	var zero Tribool
	//
	checkEqual(t, U, zero)
	checkEqual(t, T, FromBool(true))
	checkEqual(t, F, FromBool(false))
	//
	if !U.IsIndeterminate() || U.IsTrue() || U.IsFalse() {
		t.Errorf("indeterminate misclassified")
	}
	//
	if U.String() != "indeterminate" || T.String() != "true" || F.String() != "false" {
		t.Errorf("unexpected string forms")
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkAnd(t *testing.T, lhs, rhs, expected Tribool) {
	if actual := lhs.And(rhs); actual != expected {
		t.Errorf("%s ∧ %s gave %s, expected %s", lhs, rhs, actual, expected)
	}
}

func checkOr(t *testing.T, lhs, rhs, expected Tribool) {
	if actual := lhs.Or(rhs); actual != expected {
		t.Errorf("%s ∨ %s gave %s, expected %s", lhs, rhs, actual, expected)
	}
}

func checkNot(t *testing.T, arg, expected Tribool) {
	if actual := arg.Not(); actual != expected {
		t.Errorf("¬%s gave %s, expected %s", arg, actual, expected)
	}
}

func checkEqual(t *testing.T, expected, actual Tribool) {
	if actual != expected {
		t.Errorf("expected %s, got %s", expected, actual)
	}
}
