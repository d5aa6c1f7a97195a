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
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/blinklabs-io/gostellar/xdr"
)

const (
	HashSize          = 32
	SignatureHintSize = 4
	MaxSignatureSize  = 64
	MaxDataValueSize  = 64
	MaxString32Size   = 32
	MaxString64Size   = 64
)

type Hash [HashSize]byte

func NewHash(data []byte) Hash {
	h := Hash{}
	copy(h[:], data)
	return h
}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

func (h Hash) Bytes() []byte {
	return h[:]
}

func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h Hash) EncodeXDR(e *xdr.Encoder) error {
	return e.EncodeFixedOpaque(h[:])
}

func (h *Hash) DecodeXDR(d *xdr.Decoder) error {
	return d.DecodeFixedOpaqueInto(h[:])
}

// Sha256Hash generates a SHA-256 hash from the provided data
func Sha256Hash(data []byte) Hash {
	return Hash(sha256.Sum256(data))
}

// Uint256 is a 32-byte opaque value, most often a raw ed25519 public key
type Uint256 [32]byte

func NewUint256(data []byte) Uint256 {
	u := Uint256{}
	copy(u[:], data)
	return u
}

func (u Uint256) String() string {
	return hex.EncodeToString(u[:])
}

func (u Uint256) Bytes() []byte {
	return u[:]
}

func (u Uint256) EncodeXDR(e *xdr.Encoder) error {
	return e.EncodeFixedOpaque(u[:])
}

func (u *Uint256) DecodeXDR(d *xdr.Decoder) error {
	return d.DecodeFixedOpaqueInto(u[:])
}

// Hint returns the signature hint for this public key: its last 4 bytes
func (u Uint256) Hint() SignatureHint {
	var hint SignatureHint
	copy(hint[:], u[len(u)-SignatureHintSize:])
	return hint
}

// PoolId identifies a liquidity pool
type PoolId = Hash

type SignatureHint [SignatureHintSize]byte

func (h SignatureHint) String() string {
	return hex.EncodeToString(h[:])
}

func (h SignatureHint) EncodeXDR(e *xdr.Encoder) error {
	return e.EncodeFixedOpaque(h[:])
}

func (h *SignatureHint) DecodeXDR(d *xdr.Decoder) error {
	return d.DecodeFixedOpaqueInto(h[:])
}

// ExtensionPoint is a reserved union that only has a void v0 arm today. It is
// written explicitly because it is part of the hashed layout
type ExtensionPoint struct {
	V int32
}

var extensionPointVersions = xdr.NewEnum[int32]("ExtensionPoint", 0)

func (x ExtensionPoint) EncodeXDR(e *xdr.Encoder) error {
	return extensionPointVersions.Encode(e, x.V)
}

func (x *ExtensionPoint) DecodeXDR(d *xdr.Decoder) (err error) {
	x.V, err = extensionPointVersions.Decode(d)
	return err
}

// encodeUint32Ptr and decodeUint32Ptr handle the optional uint32 fields of SetOptionsOp
func encodeUint32Ptr(e *xdr.Encoder, v *uint32) error {
	return xdr.EncodeOptional(e, v, (*xdr.Encoder).EncodeUint32)
}

func decodeUint32Ptr(d *xdr.Decoder) (*uint32, error) {
	return xdr.DecodeOptional(d, (*xdr.Decoder).DecodeUint32)
}
