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

import "github.com/pkg/errors"

var (
	// ErrNegativeDimension is returned when a matrix dimension is a negative
	// integer literal.
	ErrNegativeDimension = errors.New("negative dimension")
	// ErrShapeMismatch is returned when adding matrices whose dimensions are
	// known to differ.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrInvalidDimension is returned when a matrix dimension is itself a
	// matrix.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrInvalidEntry is returned when a diagonal entry is itself a matrix.
	ErrInvalidEntry = errors.New("invalid entry")
	// ErrInvalidName is returned when naming a matrix with an invalid name.
	ErrInvalidName = errors.New("invalid name")
)
