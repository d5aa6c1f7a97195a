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

package xdr_test

import (
	"testing"

	"github.com/blinklabs-io/gostellar/internal/test"
	"github.com/blinklabs-io/gostellar/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePrimitives(t *testing.T) {
	data := test.DecodeHexString(
		"fffffffe" + "ffffffff" + "0000000100000002" + "8000000000000000" + "00000001",
	)
	d := xdr.NewDecoder(data)
	i32, err := d.DecodeInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(-2), i32)
	u32, err := d.DecodeUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xffffffff), u32)
	i64, err := d.DecodeInt64()
	require.NoError(t, err)
	assert.Equal(t, int64(0x100000002), i64)
	u64, err := d.DecodeUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<63), u64)
	b, err := d.DecodeBool()
	require.NoError(t, err)
	assert.True(t, b)
	assert.Equal(t, len(data), d.Pos())
	assert.Equal(t, 0, d.Remaining())
	assert.Equal(t, data[8:], d.Since(8))
	assert.Nil(t, d.Since(len(data)+1))
}

func TestDecodeUnexpectedEnd(t *testing.T) {
	testDefs := []struct {
		name    string
		xdrHex  string
		decoder func(*xdr.Decoder) error
	}{
		{
			name:   "short int32",
			xdrHex: "000000",
			decoder: func(d *xdr.Decoder) error {
				_, err := d.DecodeInt32()
				return err
			},
		},
		{
			name:   "short int64",
			xdrHex: "00000000000000",
			decoder: func(d *xdr.Decoder) error {
				_, err := d.DecodeInt64()
				return err
			},
		},
		{
			name:   "opaque shorter than its length",
			xdrHex: "000000050102030405",
			decoder: func(d *xdr.Decoder) error {
				_, err := d.DecodeOpaque(xdr.Unbounded)
				return err
			},
		},
		{
			name:   "missing padding",
			xdrHex: "0000000161",
			decoder: func(d *xdr.Decoder) error {
				_, err := d.DecodeString(xdr.Unbounded)
				return err
			},
		},
		{
			name:   "fixed opaque",
			xdrHex: "01020304",
			decoder: func(d *xdr.Decoder) error {
				_, err := d.DecodeFixedOpaque(32)
				return err
			},
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			d := xdr.NewDecoder(test.DecodeHexString(testDef.xdrHex))
			err := testDef.decoder(d)
			assert.ErrorIs(t, err, xdr.ErrUnexpectedEndOfInput)
		})
	}
}

func TestDecodeBoolRejectsOtherValues(t *testing.T) {
	d := xdr.NewDecoder(test.DecodeHexString("00000002"))
	_, err := d.DecodeBool()
	assert.ErrorIs(t, err, xdr.ErrInvalidEncoding)
}

func TestDecodePresenceRejectsOtherValues(t *testing.T) {
	d := xdr.NewDecoder(test.DecodeHexString("00000002"))
	_, err := d.DecodePresence()
	assert.ErrorIs(t, err, xdr.ErrInvalidDiscriminant)
}

func TestDecodePadding(t *testing.T) {
	// "a" followed by non-zero padding
	data := test.DecodeHexString("0000000161ff0000")

	_, err := xdr.NewDecoder(data).DecodeOpaque(xdr.Unbounded)
	assert.ErrorIs(t, err, xdr.ErrInvalidEncoding)

	d := xdr.NewDecoder(data, xdr.WithStrictPadding(false))
	value, err := d.DecodeOpaque(xdr.Unbounded)
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), value)
	assert.Equal(t, 8, d.Pos(), "padding is consumed")
}

func TestDecodeString(t *testing.T) {
	d := xdr.NewDecoder(test.DecodeHexString("0000000568656c6c6f000000"))
	s, err := d.DecodeString(28)
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	invalid := test.DecodeHexString("00000002c328" + "0000")
	_, err = xdr.NewDecoder(invalid).DecodeString(28)
	assert.ErrorIs(t, err, xdr.ErrInvalidEncoding)

	s, err = xdr.NewDecoder(invalid, xdr.WithUTF8Validation(false)).
		DecodeString(28)
	require.NoError(t, err)
	assert.Equal(t, "\xc3\x28", s)
}

func TestDecodeLengthLimits(t *testing.T) {
	data := test.DecodeHexString("0000000568656c6c6f000000")
	_, err := xdr.NewDecoder(data).DecodeString(4)
	assert.ErrorIs(t, err, xdr.ErrValueTooLarge)

	_, err = xdr.NewDecoder(data, xdr.WithMaxLength(3)).
		DecodeString(xdr.Unbounded)
	assert.ErrorIs(t, err, xdr.ErrValueTooLarge)

	// A huge length prefix must fail without allocating
	huge := test.DecodeHexString("fffffff0")
	_, err = xdr.NewDecoder(huge).DecodeOpaque(xdr.Unbounded)
	assert.ErrorIs(t, err, xdr.ErrUnexpectedEndOfInput)
}

func TestDecodeEmptyOpaque(t *testing.T) {
	d := xdr.NewDecoder(test.DecodeHexString("00000000"))
	value, err := d.DecodeOpaque(64)
	require.NoError(t, err)
	assert.Empty(t, value)
	assert.Equal(t, 4, d.Pos())
}

type price struct {
	N int32
	D int32
}

func (p price) EncodeXDR(e *xdr.Encoder) error {
	if err := e.EncodeInt32(p.N); err != nil {
		return err
	}
	return e.EncodeInt32(p.D)
}

func (p *price) DecodeXDR(d *xdr.Decoder) (err error) {
	if p.N, err = d.DecodeInt32(); err != nil {
		return err
	}
	p.D, err = d.DecodeInt32()
	return err
}

func TestUnmarshalRecord(t *testing.T) {
	data, err := xdr.Marshal(price{N: 3, D: 7})
	require.NoError(t, err)
	assert.Equal(t, test.DecodeHexString("0000000300000007"), data)

	p, err := xdr.Decode[price](data)
	require.NoError(t, err)
	assert.Equal(t, price{N: 3, D: 7}, p)

	// Records must consume exactly their own bytes
	_, err = xdr.Decode[price](append(data, 0, 0, 0, 0))
	assert.ErrorIs(t, err, xdr.ErrInvalidEncoding)

	var prefix price
	n, err := xdr.UnmarshalPrefix(append(data, 0, 0, 0, 0), &prefix)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, price{N: 3, D: 7}, prefix)
}

func TestUnmarshalBase64(t *testing.T) {
	encoded, err := xdr.MarshalBase64(price{N: 1, D: 2})
	require.NoError(t, err)
	assert.Equal(t, "AAAAAQAAAAI=", encoded)

	var p price
	require.NoError(t, xdr.UnmarshalBase64(encoded, &p))
	assert.Equal(t, price{N: 1, D: 2}, p)

	assert.ErrorIs(
		t,
		xdr.UnmarshalBase64("not base64!", &p),
		xdr.ErrInvalidEncoding,
	)
}
