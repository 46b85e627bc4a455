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

// Package errwrap provides helpers for annotating and accumulating errors.
package errwrap

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Wrapf annotates an error with a formatted message.  A nil error stays nil.
func Wrapf(err error, format string, args ...any) error {
	return errors.Wrapf(err, format, args...)
}

// Cause returns the innermost error of a chain built with Wrapf.
func Cause(err error) error {
	return errors.Cause(err)
}

// Is reports whether any error in the chain matches the target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Append accumulates an error onto an existing one, where either may be nil.
func Append(reterr, err error) error {
	if reterr == nil {
		return err
	} else if err == nil {
		return reterr
	}
	//
	return multierror.Append(reterr, err)
}

// String returns the message of an error, or the empty string for nil.
func String(err error) string {
	if err == nil {
		return ""
	}
	//
	return err.Error()
}
