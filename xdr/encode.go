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
	"bytes"
	"fmt"
	"unicode/utf8"

	_xdr "github.com/rasky/go-xdr/xdr2"
)

// Encoder writes XDR units into an in-memory buffer. Every method leaves the
// buffer length at a multiple of 4 bytes.
type Encoder struct {
	buf bytes.Buffer
	enc *_xdr.Encoder
}

// NewEncoder returns an empty Encoder
func NewEncoder() *Encoder {
	e := &Encoder{}
	e.enc = _xdr.NewEncoder(&e.buf)
	return e
}

// Bytes returns the encoded data. The slice aliases the encoder's buffer.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of bytes written so far
func (e *Encoder) Len() int {
	return e.buf.Len()
}

func (e *Encoder) EncodeInt32(v int32) error {
	if _, err := e.enc.EncodeInt(v); err != nil {
		return fmt.Errorf("write int32: %w", err)
	}
	return nil
}

func (e *Encoder) EncodeUint32(v uint32) error {
	if _, err := e.enc.EncodeUint(v); err != nil {
		return fmt.Errorf("write uint32: %w", err)
	}
	return nil
}

// EncodeInt64 writes a single 8-byte big-endian hyper integer
func (e *Encoder) EncodeInt64(v int64) error {
	if _, err := e.enc.EncodeHyper(v); err != nil {
		return fmt.Errorf("write int64: %w", err)
	}
	return nil
}

// EncodeUint64 writes a single 8-byte big-endian unsigned hyper integer
func (e *Encoder) EncodeUint64(v uint64) error {
	if _, err := e.enc.EncodeUhyper(v); err != nil {
		return fmt.Errorf("write uint64: %w", err)
	}
	return nil
}

func (e *Encoder) EncodeBool(v bool) error {
	if _, err := e.enc.EncodeBool(v); err != nil {
		return fmt.Errorf("write bool: %w", err)
	}
	return nil
}

// EncodeDiscriminant writes the signed 4-byte tag of a union
func (e *Encoder) EncodeDiscriminant(disc int32) error {
	return e.EncodeInt32(disc)
}

// EncodePresence writes the flag that precedes an optional value
func (e *Encoder) EncodePresence(present bool) error {
	return e.EncodeBool(present)
}

// EncodeFixedOpaque writes a fixed-size block as-is followed by zero padding.
// The size is implied by the type, so no length prefix is written.
func (e *Encoder) EncodeFixedOpaque(data []byte) error {
	if _, err := e.enc.EncodeFixedOpaque(data); err != nil {
		return fmt.Errorf("write fixed opaque: %w", err)
	}
	return nil
}

// EncodeOpaque writes variable-length opaque data: length prefix, data, padding
func (e *Encoder) EncodeOpaque(data []byte, maxLen uint32) error {
	if uint64(len(data)) > uint64(maxLen) {
		return ValueTooLargeError{
			What:   "opaque",
			Length: uint64(len(data)),
			Max:    uint64(maxLen),
		}
	}
	if _, err := e.enc.EncodeOpaque(data); err != nil {
		return fmt.Errorf("write opaque: %w", err)
	}
	return nil
}

// EncodeString writes a string with the same layout as variable-length opaque
// data. The string must be valid UTF-8
func (e *Encoder) EncodeString(s string, maxLen uint32) error {
	if uint64(len(s)) > uint64(maxLen) {
		return ValueTooLargeError{
			What:   "string",
			Length: uint64(len(s)),
			Max:    uint64(maxLen),
		}
	}
	if !utf8.ValidString(s) {
		return invalidEncoding("string is not valid UTF-8")
	}
	if _, err := e.enc.EncodeString(s); err != nil {
		return fmt.Errorf("write string: %w", err)
	}
	return nil
}

// EncodeRaw appends data that is already in canonical XDR form
func (e *Encoder) EncodeRaw(data []byte) error {
	if len(data)%4 != 0 {
		return invalidEncoding("raw data length %d is not a multiple of 4", len(data))
	}
	_, _ = e.buf.Write(data)
	return nil
}

// Encode writes a record or any other Encodable value
func (e *Encoder) Encode(v Encodable) error {
	return v.EncodeXDR(e)
}
