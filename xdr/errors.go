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

package xdr

import (
	"errors"
	"fmt"
)

// Sentinel errors so callers can use errors.Is
var (
	ErrUnexpectedEndOfInput = errors.New("xdr: unexpected end of input")
	ErrInvalidEncoding      = errors.New("xdr: invalid encoding")
	ErrUnknownDiscriminant  = errors.New("xdr: unknown discriminant")
	ErrInvalidDiscriminant  = errors.New("xdr: invalid discriminant")
	ErrValueTooLarge        = errors.New("xdr: value too large")
)

// UnknownDiscriminantError indicates a union or enum value that is not part of the schema
type UnknownDiscriminantError struct {
	Union string
	Value int32
}

func (e UnknownDiscriminantError) Error() string {
	return fmt.Sprintf("xdr: unknown discriminant %d for %s", e.Value, e.Union)
}

func (UnknownDiscriminantError) Is(target error) bool {
	return target == ErrUnknownDiscriminant
}

// ValueTooLargeError indicates a length that exceeds its declared maximum
type ValueTooLargeError struct {
	What   string
	Length uint64
	Max    uint64
}

func (e ValueTooLargeError) Error() string {
	return fmt.Sprintf(
		"xdr: %s length %d exceeds maximum %d",
		e.What,
		e.Length,
		e.Max,
	)
}

func (ValueTooLargeError) Is(target error) bool {
	return target == ErrValueTooLarge
}

func unexpectedEnd(what string, need int, have int) error {
	return fmt.Errorf(
		"%w: reading %s needs %d bytes, %d remaining",
		ErrUnexpectedEndOfInput,
		what,
		need,
		have,
	)
}

func invalidEncoding(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidEncoding, fmt.Sprintf(format, args...))
}
