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
	"bytes"
	"encoding/hex"
	"log/slog"
	"strings"
	"testing"

	"github.com/blinklabs-io/gostellar/internal/test"
	"github.com/blinklabs-io/gostellar/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shape interface {
	xdr.UnionArm
	isShape()
}

type circle struct {
	Radius uint32
}

func (circle) isShape()            {}
func (circle) Discriminant() int32 { return 0 }
func (c circle) EncodeXDR(e *xdr.Encoder) error {
	return e.EncodeUint32(c.Radius)
}

func (c *circle) DecodeXDR(d *xdr.Decoder) (err error) {
	c.Radius, err = d.DecodeUint32()
	return err
}

type point struct{}

func (point) isShape()                     {}
func (point) Discriminant() int32          { return 1 }
func (point) EncodeXDR(*xdr.Encoder) error { return nil }

// group nests another shape, which makes the union recursive
type group struct {
	Inner shape
}

func (group) isShape()            {}
func (group) Discriminant() int32 { return -1 }
func (g group) EncodeXDR(e *xdr.Encoder) error {
	return shapeUnion.Encode(e, g.Inner)
}

func (g *group) DecodeXDR(d *xdr.Decoder) (err error) {
	g.Inner, err = shapeUnion.Decode(d)
	return err
}

var shapeUnion *xdr.Union[shape]

func init() {
	shapeUnion = xdr.NewUnion[shape]("Shape").
		Arm(0, xdr.ArmOf[shape, circle]()).
		Void(1, point{}).
		Arm(-1, xdr.ArmOf[shape, group]())
}

func TestUnionEncode(t *testing.T) {
	testDefs := []struct {
		value  shape
		xdrHex string
	}{
		{value: circle{Radius: 5}, xdrHex: "00000000" + "00000005"},
		{value: point{}, xdrHex: "00000001"},
		{
			value:  group{Inner: point{}},
			xdrHex: "ffffffff" + "00000001",
		},
	}
	for _, testDef := range testDefs {
		data, err := xdr.EncodeWith(testDef.value, shapeUnion.Encode)
		require.NoError(t, err)
		assert.Equal(t, testDef.xdrHex, hex.EncodeToString(data))

		decoded, err := xdr.DecodeWith(data, shapeUnion.Decode)
		require.NoError(t, err)
		assert.Equal(t, testDef.value, decoded)
	}
}

func TestUnionEncodeNil(t *testing.T) {
	_, err := xdr.EncodeWith[shape](nil, shapeUnion.Encode)
	assert.ErrorIs(t, err, xdr.ErrInvalidEncoding)

	var nilCircle *circle
	require.NotPanics(t, func() {
		_, err = xdr.EncodeWith[shape](nilCircle, shapeUnion.Encode)
	})
	assert.ErrorIs(t, err, xdr.ErrInvalidEncoding)

	// Nested nil pointers are reported by the inner union
	require.NotPanics(t, func() {
		_, err = xdr.EncodeWith[shape](group{Inner: nilCircle}, shapeUnion.Encode)
	})
	assert.ErrorIs(t, err, xdr.ErrInvalidEncoding)
}

func TestUnionUnknownDiscriminant(t *testing.T) {
	data := test.DecodeHexString("00000007" + "00000005")
	_, err := xdr.DecodeWith(data, shapeUnion.Decode)
	require.Error(t, err)
	assert.ErrorIs(t, err, xdr.ErrUnknownDiscriminant)
	var unknown xdr.UnknownDiscriminantError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, int32(7), unknown.Value)
	assert.Equal(t, "Shape", unknown.Union)
}

func TestUnionPermissiveFallback(t *testing.T) {
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))
	data := test.DecodeHexString("00000007" + "00000005")
	decoded, err := xdr.DecodeWith(
		data,
		shapeUnion.Decode,
		xdr.WithPermissiveUnions(true),
		xdr.WithLogger(logger),
	)
	require.NoError(t, err)
	assert.Equal(t, circle{Radius: 5}, decoded)
	assert.True(
		t,
		strings.Contains(logBuf.String(), "unknown union discriminant"),
		"fallback should be logged",
	)
}

func TestUnionDefaultArm(t *testing.T) {
	codes := xdr.NewUnion[shape]("Codes").
		Void(1, point{}).
		Default(func(d *xdr.Decoder, disc int32) (shape, error) {
			return circle{Radius: uint32(-disc)}, nil
		})
	decoded, err := xdr.DecodeWith(test.DecodeHexString("fffffffd"), codes.Decode)
	require.NoError(t, err)
	assert.Equal(t, circle{Radius: 3}, decoded)
	assert.False(t, codes.Has(-3))
	assert.True(t, codes.Has(1))
}

func TestUnionMaxDepth(t *testing.T) {
	var buf strings.Builder
	for range 20 {
		buf.WriteString("ffffffff")
	}
	buf.WriteString("00000001")
	data := test.DecodeHexString(buf.String())

	_, err := xdr.DecodeWith(data, shapeUnion.Decode)
	require.NoError(t, err)

	_, err = xdr.DecodeWith(data, shapeUnion.Decode, xdr.WithMaxDepth(10))
	assert.ErrorIs(t, err, xdr.ErrInvalidEncoding)
}

func TestUnionDuplicateArmPanics(t *testing.T) {
	assert.Panics(t, func() {
		xdr.NewUnion[shape]("Dup").Void(1, point{}).Void(1, point{})
	})
}

type color int32

const (
	colorRed  color = 0
	colorBlue color = 2
)

func TestEnum(t *testing.T) {
	colors := xdr.NewEnum("Color", colorRed, colorBlue)
	e := xdr.NewEncoder()
	require.NoError(t, colors.Encode(e, colorBlue))
	assert.ErrorIs(t, colors.Encode(e, color(1)), xdr.ErrUnknownDiscriminant)
	assert.Equal(t, "00000002", hex.EncodeToString(e.Bytes()))

	v, err := colors.Decode(xdr.NewDecoder(e.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, colorBlue, v)

	_, err = colors.Decode(xdr.NewDecoder(test.DecodeHexString("00000001")))
	assert.ErrorIs(t, err, xdr.ErrUnknownDiscriminant)
}
