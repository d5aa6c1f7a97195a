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

import "slices"

// Enum validates an enum-typed field against its declared values
type Enum[E ~int32] struct {
	name   string
	values []E
}

func NewEnum[E ~int32](name string, values ...E) *Enum[E] {
	return &Enum[E]{
		name:   name,
		values: values,
	}
}

func (en *Enum[E]) Name() string {
	return en.name
}

func (en *Enum[E]) Valid(v E) bool {
	return slices.Contains(en.values, v)
}

func (en *Enum[E]) Encode(e *Encoder, v E) error {
	if !en.Valid(v) {
		return UnknownDiscriminantError{Union: en.name, Value: int32(v)}
	}
	return e.EncodeInt32(int32(v))
}

// Decode reads an enum value. Unknown values fall back to the first declared
// value only when the decoder is permissive
func (en *Enum[E]) Decode(d *Decoder) (E, error) {
	raw, err := d.DecodeInt32()
	if err != nil {
		return 0, err
	}
	v := E(raw)
	if en.Valid(v) {
		return v, nil
	}
	if d.permissiveUnions && len(en.values) > 0 {
		d.logger.Warn(
			"unknown enum value, falling back to first value",
			"enum", en.name,
			"value", raw,
			"fallback", int32(en.values[0]),
		)
		return en.values[0], nil
	}
	return 0, UnknownDiscriminantError{Union: en.name, Value: raw}
}
