// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

import (
	"errors"
	"fmt"
)

// Sentinel errors so callers can use errors.Is
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrMissingSignature = errors.New("missing signature")
)

// InvalidArgumentError indicates a caller-supplied value that cannot be used, such
// as an oversized memo or a malformed strkey
type InvalidArgumentError struct {
	Field  string
	Reason string
	Err    error
}

func (e InvalidArgumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e InvalidArgumentError) Unwrap() error { return e.Err }

func (InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalidArgument(field string, reason string, err error) error {
	return InvalidArgumentError{
		Field:  field,
		Reason: reason,
		Err:    err,
	}
}
