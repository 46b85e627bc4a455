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
package errwrap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errBase = errors.New("base")

func Test_Wrapf_01(t *testing.T) {
	err := Wrapf(errBase, "context %d", 1)
	//
	require.Equal(t, "context 1: base", err.Error())
	require.Equal(t, errBase, Cause(err))
	require.True(t, Is(err, errBase))
	require.Nil(t, Wrapf(nil, "context"))
}

func Test_Append_01(t *testing.T) {
	other := errors.New("other")
	//
	require.Nil(t, Append(nil, nil))
	require.Equal(t, errBase, Append(nil, errBase))
	require.Equal(t, errBase, Append(errBase, nil))
	//
	err := Append(errBase, other)
	require.True(t, Is(err, errBase))
	require.True(t, Is(err, other))
	require.Contains(t, err.Error(), "2 errors occurred")
}

func Test_String_01(t *testing.T) {
	require.Equal(t, "", String(nil))
	require.Equal(t, "base", String(errBase))
}
