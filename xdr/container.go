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

// minElementSize is the smallest wire size of any element that can appear in an array
const minElementSize = 4

// EncodeFunc writes one value of type T
type EncodeFunc[T any] func(*Encoder, T) error

// DecodeFunc reads one value of type T
type DecodeFunc[T any] func(*Decoder) (T, error)

// Record adapts a record type to a DecodeFunc
func Record[T any, P interface {
	*T
	Decodable
}](d *Decoder) (T, error) {
	var v T
	err := P(&v).DecodeXDR(d)
	return v, err
}

// EncodeRecord adapts a record type to an EncodeFunc
func EncodeRecord[T Encodable](e *Encoder, v T) error {
	return v.EncodeXDR(e)
}

// EncodeVarArray writes a count followed by each item
func EncodeVarArray[T any](
	e *Encoder,
	items []T,
	maxLen uint32,
	fn EncodeFunc[T],
) error {
	if uint64(len(items)) > uint64(maxLen) {
		return ValueTooLargeError{
			What:   "array",
			Length: uint64(len(items)),
			Max:    uint64(maxLen),
		}
	}
	if err := e.EncodeUint32(uint32(len(items))); err != nil {
		return err
	}
	for _, item := range items {
		if err := fn(e, item); err != nil {
			return err
		}
	}
	return nil
}

// DecodeVarArray reads a counted array. The count is checked against maxLen and
// against the remaining input before anything is allocated. An empty array decodes as nil
func DecodeVarArray[T any](
	d *Decoder,
	maxLen uint32,
	fn DecodeFunc[T],
) ([]T, error) {
	count, err := d.DecodeUint32()
	if err != nil {
		return nil, err
	}
	if err := d.checkLength("array", count, maxLen); err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	if err := d.need("array", uint64(count)*minElementSize); err != nil {
		return nil, err
	}
	items := make([]T, 0, count)
	for range count {
		item, err := fn(d)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// EncodeFixedArray writes exactly n items with no count
func EncodeFixedArray[T any](
	e *Encoder,
	items []T,
	n int,
	fn EncodeFunc[T],
) error {
	if len(items) != n {
		return invalidEncoding(
			"fixed array has %d items, expected %d",
			len(items),
			n,
		)
	}
	for _, item := range items {
		if err := fn(e, item); err != nil {
			return err
		}
	}
	return nil
}

// DecodeFixedArray reads exactly n items
func DecodeFixedArray[T any](d *Decoder, n int, fn DecodeFunc[T]) ([]T, error) {
	if n < 0 {
		return nil, invalidEncoding("negative fixed array size %d", n)
	}
	if err := d.need("fixed array", uint64(n)*minElementSize); err != nil {
		return nil, err
	}
	items := make([]T, 0, n)
	for range n {
		item, err := fn(d)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// EncodeOptional writes a presence flag followed by *v when v is not nil
func EncodeOptional[T any](e *Encoder, v *T, fn EncodeFunc[T]) error {
	if err := e.EncodePresence(v != nil); err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	return fn(e, *v)
}

// DecodeOptional reads a presence flag and, if set, the value that follows
func DecodeOptional[T any](d *Decoder, fn DecodeFunc[T]) (*T, error) {
	present, err := d.DecodePresence()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	v, err := fn(d)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
