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
	"log/slog"
	"unicode/utf8"

	_xdr "github.com/rasky/go-xdr/xdr2"
)

const (
	// DefaultMaxDepth bounds nesting of recursive types such as SCVal
	DefaultMaxDepth = 500

	// Unbounded is the maximum length of a variable-length field declared as <>
	Unbounded uint32 = 0xffffffff
)

// Decoder reads XDR units from a byte slice and tracks the cursor position.
// A Decoder is not safe for concurrent use; create one per input.
type Decoder struct {
	data             []byte
	r                *bytes.Reader
	dec              *_xdr.Decoder
	depth            int
	maxDepth         int
	maxLength        uint32
	strictPadding    bool
	validateUTF8     bool
	permissiveUnions bool
	logger           *slog.Logger
}

// NewDecoder returns a Decoder positioned at the start of data
func NewDecoder(data []byte, opts ...DecoderOptionFunc) *Decoder {
	d := &Decoder{
		data:          data,
		r:             bytes.NewReader(data),
		maxDepth:      DefaultMaxDepth,
		strictPadding: true,
		validateUTF8:  true,
	}
	d.dec = _xdr.NewDecoder(d.r)
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d
}

// Pos returns the number of bytes consumed so far
func (d *Decoder) Pos() int {
	return len(d.data) - d.r.Len()
}

// Since returns a copy of the input consumed between start and the current position
func (d *Decoder) Since(start int) []byte {
	pos := d.Pos()
	if start < 0 || start > pos {
		return nil
	}
	return bytes.Clone(d.data[start:pos])
}

// Remaining returns the number of bytes not yet consumed
func (d *Decoder) Remaining() int {
	return d.r.Len()
}

// Permissive reports whether unknown union discriminants fall back to a known arm
func (d *Decoder) Permissive() bool {
	return d.permissiveUnions
}

// Logger returns the logger used for decode diagnostics
func (d *Decoder) Logger() *slog.Logger {
	return d.logger
}

// Enter records one level of nesting. Every successful Enter must be paired with Leave.
func (d *Decoder) Enter(what string) error {
	if d.depth >= d.maxDepth {
		return invalidEncoding(
			"%s exceeds maximum nesting depth %d",
			what,
			d.maxDepth,
		)
	}
	d.depth++
	return nil
}

// Leave undoes a previous Enter
func (d *Decoder) Leave() {
	if d.depth > 0 {
		d.depth--
	}
}

func (d *Decoder) need(what string, n uint64) error {
	if uint64(d.r.Len()) < n {
		return unexpectedEnd(what, int(min(n, uint64(1<<31))), d.r.Len())
	}
	return nil
}

func ioError(what string, err error) error {
	return fmt.Errorf("%w: read %s: %v", ErrUnexpectedEndOfInput, what, err)
}

func (d *Decoder) DecodeInt32() (int32, error) {
	if err := d.need("int32", 4); err != nil {
		return 0, err
	}
	v, _, err := d.dec.DecodeInt()
	if err != nil {
		return 0, ioError("int32", err)
	}
	return v, nil
}

func (d *Decoder) DecodeUint32() (uint32, error) {
	if err := d.need("uint32", 4); err != nil {
		return 0, err
	}
	v, _, err := d.dec.DecodeUint()
	if err != nil {
		return 0, ioError("uint32", err)
	}
	return v, nil
}

func (d *Decoder) DecodeInt64() (int64, error) {
	if err := d.need("int64", 8); err != nil {
		return 0, err
	}
	v, _, err := d.dec.DecodeHyper()
	if err != nil {
		return 0, ioError("int64", err)
	}
	return v, nil
}

func (d *Decoder) DecodeUint64() (uint64, error) {
	if err := d.need("uint64", 8); err != nil {
		return 0, err
	}
	v, _, err := d.dec.DecodeUhyper()
	if err != nil {
		return 0, ioError("uint64", err)
	}
	return v, nil
}

// DecodeBool accepts only 0 and 1
func (d *Decoder) DecodeBool() (bool, error) {
	v, err := d.DecodeUint32()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, invalidEncoding("bool value %d is not 0 or 1", v)
}

// DecodeDiscriminant reads the signed 4-byte tag of a union
func (d *Decoder) DecodeDiscriminant() (int32, error) {
	return d.DecodeInt32()
}

// DecodePresence reads the flag preceding an optional value
func (d *Decoder) DecodePresence() (bool, error) {
	v, err := d.DecodeUint32()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, fmt.Errorf(
		"%w: optional presence flag %d is not 0 or 1",
		ErrInvalidDiscriminant,
		v,
	)
}

// DecodeFixedOpaque reads a fixed-size block of n bytes plus its padding
func (d *Decoder) DecodeFixedOpaque(n int) ([]byte, error) {
	if n < 0 {
		return nil, invalidEncoding("negative fixed opaque size %d", n)
	}
	pad := padLength(uint64(n))
	if err := d.need("fixed opaque", uint64(n)+pad); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	if !d.strictPadding {
		data, _, err := d.dec.DecodeFixedOpaque(int32(n))
		if err != nil {
			return nil, ioError("fixed opaque", err)
		}
		return data, nil
	}
	data := make([]byte, n)
	if _, err := d.r.Read(data); err != nil {
		return nil, ioError("fixed opaque", err)
	}
	if err := d.checkPadding(pad); err != nil {
		return nil, err
	}
	return data, nil
}

// DecodeFixedOpaqueInto fills dst from a fixed-size block of len(dst) bytes
func (d *Decoder) DecodeFixedOpaqueInto(dst []byte) error {
	data, err := d.DecodeFixedOpaque(len(dst))
	if err != nil {
		return err
	}
	copy(dst, data)
	return nil
}

// DecodeOpaque reads variable-length opaque data bounded by maxLen. Empty data
// decodes as nil
func (d *Decoder) DecodeOpaque(maxLen uint32) ([]byte, error) {
	length, err := d.decodeLength("opaque", maxLen)
	if err != nil {
		return nil, err
	}
	return d.DecodeFixedOpaque(int(length))
}

// DecodeString reads a string bounded by maxLen bytes
func (d *Decoder) DecodeString(maxLen uint32) (string, error) {
	length, err := d.decodeLength("string", maxLen)
	if err != nil {
		return "", err
	}
	data, err := d.DecodeFixedOpaque(int(length))
	if err != nil {
		return "", err
	}
	if d.validateUTF8 && !utf8.Valid(data) {
		return "", invalidEncoding("string is not valid UTF-8")
	}
	return string(data), nil
}

// decodeLength reads a length prefix and checks it against the declared bound,
// the decoder's global cap and the remaining input
func (d *Decoder) decodeLength(what string, maxLen uint32) (uint32, error) {
	length, err := d.DecodeUint32()
	if err != nil {
		return 0, err
	}
	if err := d.checkLength(what, length, maxLen); err != nil {
		return 0, err
	}
	if err := d.need(what, uint64(length)+padLength(uint64(length))); err != nil {
		return 0, err
	}
	return length, nil
}

func (d *Decoder) checkLength(what string, length uint32, maxLen uint32) error {
	if length > maxLen {
		return ValueTooLargeError{
			What:   what,
			Length: uint64(length),
			Max:    uint64(maxLen),
		}
	}
	if d.maxLength > 0 && length > d.maxLength {
		return ValueTooLargeError{
			What:   what,
			Length: uint64(length),
			Max:    uint64(d.maxLength),
		}
	}
	return nil
}

func (d *Decoder) checkPadding(pad uint64) error {
	if pad == 0 {
		return nil
	}
	var padBuf [3]byte
	if _, err := d.r.Read(padBuf[:pad]); err != nil {
		return ioError("padding", err)
	}
	for _, b := range padBuf[:pad] {
		if b != 0 {
			return invalidEncoding("non-zero padding byte 0x%02x", b)
		}
	}
	return nil
}

// Decode reads a record or any other Decodable value
func (d *Decoder) Decode(v Decodable) error {
	return v.DecodeXDR(d)
}

// padLength returns the number of zero bytes needed after n bytes of data
func padLength(n uint64) uint64 {
	return (4 - (n % 4)) % 4
}
