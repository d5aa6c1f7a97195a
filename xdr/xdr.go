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
	"encoding/base64"
	"fmt"
)

// Encodable is implemented by every type with a canonical XDR form
type Encodable interface {
	EncodeXDR(*Encoder) error
}

// Decodable is implemented by pointers to types with a canonical XDR form
type Decodable interface {
	DecodeXDR(*Decoder) error
}

// UnionArm is one variant of a discriminated union. EncodeXDR writes only the
// variant payload; the discriminant is written by the owning Union.
type UnionArm interface {
	Encodable
	Discriminant() int32
}

func Marshal(v Encodable) ([]byte, error) {
	e := NewEncoder()
	if err := v.EncodeXDR(e); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

func MarshalBase64(v Encodable) (string, error) {
	data, err := Marshal(v)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Unmarshal decodes data into v. The whole input must be consumed
func Unmarshal(data []byte, v Decodable, opts ...DecoderOptionFunc) error {
	d := NewDecoder(data, opts...)
	if err := v.DecodeXDR(d); err != nil {
		return err
	}
	if d.Remaining() > 0 {
		return invalidEncoding(
			"%d trailing bytes after %T",
			d.Remaining(),
			v,
		)
	}
	return nil
}

// UnmarshalPrefix decodes one value from the start of data and returns the
// number of bytes it occupied
func UnmarshalPrefix(
	data []byte,
	v Decodable,
	opts ...DecoderOptionFunc,
) (int, error) {
	d := NewDecoder(data, opts...)
	if err := v.DecodeXDR(d); err != nil {
		return d.Pos(), err
	}
	return d.Pos(), nil
}

func UnmarshalBase64(data string, v Decodable, opts ...DecoderOptionFunc) error {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return fmt.Errorf("%w: base64: %v", ErrInvalidEncoding, err)
	}
	return Unmarshal(raw, v, opts...)
}

// Decode is the generic form of Unmarshal
func Decode[T any, P interface {
	*T
	Decodable
}](data []byte, opts ...DecoderOptionFunc) (T, error) {
	var v T
	if err := Unmarshal(data, P(&v), opts...); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// DecodeWith decodes a value that has no DecodeXDR method of its own, such as a
// union interface, using fn. The whole input must be consumed
func DecodeWith[T any](
	data []byte,
	fn DecodeFunc[T],
	opts ...DecoderOptionFunc,
) (T, error) {
	d := NewDecoder(data, opts...)
	v, err := fn(d)
	if err != nil {
		var zero T
		return zero, err
	}
	if d.Remaining() > 0 {
		var zero T
		return zero, invalidEncoding("%d trailing bytes", d.Remaining())
	}
	return v, nil
}

// EncodeWith encodes v using fn
func EncodeWith[T any](v T, fn EncodeFunc[T]) ([]byte, error) {
	e := NewEncoder()
	if err := fn(e, v); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}
