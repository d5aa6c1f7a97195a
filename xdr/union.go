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
	"fmt"
)

// ArmDecodeFunc decodes the payload of the arm selected by disc
type ArmDecodeFunc[T any] func(d *Decoder, disc int32) (T, error)

// Union is the discriminant table of one wire union. Tables are built once at
// package init and are read-only afterwards, so they may be shared freely.
type Union[T UnionArm] struct {
	name  string
	arms  map[int32]ArmDecodeFunc[T]
	order []int32
	dflt  ArmDecodeFunc[T]
}

func NewUnion[T UnionArm](name string) *Union[T] {
	return &Union[T]{
		name: name,
		arms: make(map[int32]ArmDecodeFunc[T]),
	}
}

// Arm registers the decoder for a discriminant. It panics if disc is already registered
func (u *Union[T]) Arm(disc int32, fn ArmDecodeFunc[T]) *Union[T] {
	if _, ok := u.arms[disc]; ok {
		panic(
			fmt.Sprintf("xdr: duplicate arm %d registered for %s", disc, u.name),
		)
	}
	u.arms[disc] = fn
	u.order = append(u.order, disc)
	return u
}

// Void registers an arm without payload that always decodes to v
func (u *Union[T]) Void(disc int32, v T) *Union[T] {
	return u.Arm(disc, func(*Decoder, int32) (T, error) {
		return v, nil
	})
}

// Default registers the decoder used for discriminants without an arm of their own
func (u *Union[T]) Default(fn ArmDecodeFunc[T]) *Union[T] {
	if u.dflt != nil {
		panic(fmt.Sprintf("xdr: duplicate default arm registered for %s", u.name))
	}
	u.dflt = fn
	return u
}

func (u *Union[T]) Name() string {
	return u.name
}

// Has reports whether disc selects an explicitly registered arm
func (u *Union[T]) Has(disc int32) bool {
	_, ok := u.arms[disc]
	return ok
}

// Encode writes the discriminant of v followed by its payload. A nil pointer
// stored in v is reported as an error
func (u *Union[T]) Encode(e *Encoder, v T) (err error) {
	if any(v) == nil {
		return invalidEncoding("%s: missing value", u.name)
	}
	defer func() {
		if r := recover(); r != nil {
			err = invalidEncoding("%s: %v", u.name, r)
		}
	}()
	disc := v.Discriminant()
	if _, ok := u.arms[disc]; !ok && u.dflt == nil {
		return UnknownDiscriminantError{Union: u.name, Value: disc}
	}
	if err := e.EncodeDiscriminant(disc); err != nil {
		return err
	}
	return v.EncodeXDR(e)
}

// Decode reads a discriminant and the payload of the arm it selects
func (u *Union[T]) Decode(d *Decoder) (T, error) {
	var zero T
	disc, err := d.DecodeDiscriminant()
	if err != nil {
		return zero, err
	}
	if err := d.Enter(u.name); err != nil {
		return zero, err
	}
	defer d.Leave()
	fn, ok := u.arms[disc]
	if !ok {
		switch {
		case u.dflt != nil:
			fn = u.dflt
		case d.permissiveUnions && len(u.order) > 0:
			fallback := u.order[0]
			d.logger.Warn(
				"unknown union discriminant, falling back to first arm",
				"union", u.name,
				"discriminant", disc,
				"fallback", fallback,
			)
			fn = u.arms[fallback]
			disc = fallback
		default:
			return zero, UnknownDiscriminantError{Union: u.name, Value: disc}
		}
	}
	return fn(d, disc)
}

// ArmOf returns an arm decoder for the record type V, which must implement T.
// It panics if V does not implement T.
func ArmOf[T UnionArm, V any, P interface {
	*V
	Decodable
}]() ArmDecodeFunc[T] {
	var probe V
	if _, ok := any(probe).(T); !ok {
		panic(fmt.Sprintf("xdr: %T does not implement the union arm type", probe))
	}
	return func(d *Decoder, _ int32) (T, error) {
		var v V
		if err := P(&v).DecodeXDR(d); err != nil {
			var zero T
			return zero, err
		}
		return any(v).(T), nil
	}
}
