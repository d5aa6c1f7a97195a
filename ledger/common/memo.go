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
	"fmt"
	"unicode/utf8"

	"github.com/blinklabs-io/gostellar/xdr"
)

type MemoType int32

const (
	MemoTypeNone   MemoType = 0
	MemoTypeText   MemoType = 1
	MemoTypeId     MemoType = 2
	MemoTypeHash   MemoType = 3
	MemoTypeReturn MemoType = 4
)

const MaxMemoTextSize = 28

type Memo interface {
	xdr.UnionArm
}

var MemoUnion = xdr.NewUnion[Memo]("Memo").
	Void(int32(MemoTypeNone), MemoNone{}).
	Arm(int32(MemoTypeText), xdr.ArmOf[Memo, MemoText]()).
	Arm(int32(MemoTypeId), xdr.ArmOf[Memo, MemoId]()).
	Arm(int32(MemoTypeHash), xdr.ArmOf[Memo, MemoHash]()).
	Arm(int32(MemoTypeReturn), xdr.ArmOf[Memo, MemoReturn]())

type MemoNone struct{}

func (MemoNone) Discriminant() int32          { return int32(MemoTypeNone) }
func (MemoNone) EncodeXDR(*xdr.Encoder) error { return nil }

type MemoText string

// NewMemoText returns a text memo, which holds at most 28 bytes of UTF-8
func NewMemoText(text string) (MemoText, error) {
	if len(text) > MaxMemoTextSize {
		return "", invalidArgument(
			"memo text",
			fmt.Sprintf("%d bytes exceeds maximum of %d", len(text), MaxMemoTextSize),
			nil,
		)
	}
	if !utf8.ValidString(text) {
		return "", invalidArgument("memo text", "not valid UTF-8", nil)
	}
	return MemoText(text), nil
}

func (MemoText) Discriminant() int32 {
	return int32(MemoTypeText)
}

func (m MemoText) EncodeXDR(e *xdr.Encoder) error {
	return e.EncodeString(string(m), MaxMemoTextSize)
}

func (m *MemoText) DecodeXDR(d *xdr.Decoder) error {
	s, err := d.DecodeString(MaxMemoTextSize)
	*m = MemoText(s)
	return err
}

type MemoId uint64

func (MemoId) Discriminant() int32 {
	return int32(MemoTypeId)
}

func (m MemoId) EncodeXDR(e *xdr.Encoder) error {
	return e.EncodeUint64(uint64(m))
}

func (m *MemoId) DecodeXDR(d *xdr.Decoder) error {
	v, err := d.DecodeUint64()
	*m = MemoId(v)
	return err
}

type MemoHash Hash

func (MemoHash) Discriminant() int32 {
	return int32(MemoTypeHash)
}

func (m MemoHash) EncodeXDR(e *xdr.Encoder) error {
	return Hash(m).EncodeXDR(e)
}

func (m *MemoHash) DecodeXDR(d *xdr.Decoder) error {
	return (*Hash)(m).DecodeXDR(d)
}

// MemoReturn holds the hash of a transaction being refunded
type MemoReturn Hash

func (MemoReturn) Discriminant() int32 {
	return int32(MemoTypeReturn)
}

func (m MemoReturn) EncodeXDR(e *xdr.Encoder) error {
	return Hash(m).EncodeXDR(e)
}

func (m *MemoReturn) DecodeXDR(d *xdr.Decoder) error {
	return (*Hash)(m).DecodeXDR(d)
}
