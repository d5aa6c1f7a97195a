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
	"encoding/binary"

	"github.com/blinklabs-io/gostellar/xdr"
)

type CryptoKeyType int32

const (
	KeyTypeEd25519              CryptoKeyType = 0
	KeyTypePreAuthTx            CryptoKeyType = 1
	KeyTypeHashX                CryptoKeyType = 2
	KeyTypeEd25519SignedPayload CryptoKeyType = 3
	KeyTypeMuxedEd25519         CryptoKeyType = 0x100
)

var publicKeyTypes = xdr.NewEnum("PublicKey", KeyTypeEd25519)

// AccountId is the PublicKey union. Ed25519 is its only arm
type AccountId struct {
	Ed25519 Uint256
}

// NewAccountId parses a G... account strkey
func NewAccountId(address string) (AccountId, error) {
	payload, err := decodeStrkeyFixed(StrkeyVersionAccount, address, 32)
	if err != nil {
		return AccountId{}, err
	}
	return AccountId{Ed25519: NewUint256(payload)}, nil
}

func (a AccountId) Address() string {
	return EncodeStrkey(StrkeyVersionAccount, a.Ed25519[:])
}

func (a AccountId) String() string {
	return a.Address()
}

func (a AccountId) ToMuxedAccount() MuxedAccount {
	return MuxedAccountEd25519{Ed25519: a.Ed25519}
}

func (a AccountId) EncodeXDR(e *xdr.Encoder) error {
	if err := publicKeyTypes.Encode(e, KeyTypeEd25519); err != nil {
		return err
	}
	return a.Ed25519.EncodeXDR(e)
}

func (a *AccountId) DecodeXDR(d *xdr.Decoder) error {
	if _, err := publicKeyTypes.Decode(d); err != nil {
		return err
	}
	return a.Ed25519.DecodeXDR(d)
}

// MuxedAccount is an account optionally multiplexed with a 64-bit id
type MuxedAccount interface {
	xdr.UnionArm
	Address() string
	AccountId() AccountId
}

var MuxedAccountUnion = xdr.NewUnion[MuxedAccount]("MuxedAccount").
	Arm(int32(KeyTypeEd25519), xdr.ArmOf[MuxedAccount, MuxedAccountEd25519]()).
	Arm(int32(KeyTypeMuxedEd25519), xdr.ArmOf[MuxedAccount, MuxedAccountMed25519]())

// NewMuxedAccount parses a G... or M... strkey
func NewMuxedAccount(address string) (MuxedAccount, error) {
	version, err := StrkeyVersionOf(address)
	if err != nil {
		return nil, err
	}
	switch version {
	case StrkeyVersionAccount:
		accountId, err := NewAccountId(address)
		if err != nil {
			return nil, err
		}
		return accountId.ToMuxedAccount(), nil
	case StrkeyVersionMuxedAccount:
		payload, err := decodeStrkeyFixed(StrkeyVersionMuxedAccount, address, 40)
		if err != nil {
			return nil, err
		}
		return MuxedAccountMed25519{
			Id:      binary.BigEndian.Uint64(payload[32:]),
			Ed25519: NewUint256(payload[:32]),
		}, nil
	default:
		return nil, invalidArgument(
			"muxed account",
			"unexpected "+version.String()+" strkey",
			nil,
		)
	}
}

type MuxedAccountEd25519 struct {
	Ed25519 Uint256
}

func (MuxedAccountEd25519) Discriminant() int32 {
	return int32(KeyTypeEd25519)
}

func (m MuxedAccountEd25519) Address() string {
	return m.AccountId().Address()
}

func (m MuxedAccountEd25519) AccountId() AccountId {
	return AccountId(m)
}

func (m MuxedAccountEd25519) EncodeXDR(e *xdr.Encoder) error {
	return m.Ed25519.EncodeXDR(e)
}

func (m *MuxedAccountEd25519) DecodeXDR(d *xdr.Decoder) error {
	return m.Ed25519.DecodeXDR(d)
}

// MuxedAccountMed25519 is an ed25519 account with a multiplexing id
type MuxedAccountMed25519 struct {
	Id      uint64
	Ed25519 Uint256
}

func (MuxedAccountMed25519) Discriminant() int32 {
	return int32(KeyTypeMuxedEd25519)
}

func (m MuxedAccountMed25519) Address() string {
	payload := make([]byte, 0, 40)
	payload = append(payload, m.Ed25519[:]...)
	payload = binary.BigEndian.AppendUint64(payload, m.Id)
	return EncodeStrkey(StrkeyVersionMuxedAccount, payload)
}

func (m MuxedAccountMed25519) AccountId() AccountId {
	return AccountId{Ed25519: m.Ed25519}
}

func (m MuxedAccountMed25519) EncodeXDR(e *xdr.Encoder) error {
	if err := e.EncodeUint64(m.Id); err != nil {
		return err
	}
	return m.Ed25519.EncodeXDR(e)
}

func (m *MuxedAccountMed25519) DecodeXDR(d *xdr.Decoder) (err error) {
	if m.Id, err = d.DecodeUint64(); err != nil {
		return err
	}
	return m.Ed25519.DecodeXDR(d)
}

// encodeOptionalMuxedAccount writes the optional source account of an operation
func encodeOptionalMuxedAccount(e *xdr.Encoder, m MuxedAccount) error {
	if err := e.EncodePresence(m != nil); err != nil {
		return err
	}
	if m == nil {
		return nil
	}
	return MuxedAccountUnion.Encode(e, m)
}

func decodeOptionalMuxedAccount(d *xdr.Decoder) (MuxedAccount, error) {
	present, err := d.DecodePresence()
	if err != nil || !present {
		return nil, err
	}
	return MuxedAccountUnion.Decode(d)
}

type SignerKeyType int32

const (
	SignerKeyTypeEd25519              SignerKeyType = 0
	SignerKeyTypePreAuthTx            SignerKeyType = 1
	SignerKeyTypeHashX                SignerKeyType = 2
	SignerKeyTypeEd25519SignedPayload SignerKeyType = 3
)

// SignerKey identifies an account signer
type SignerKey interface {
	xdr.UnionArm
	Address() string
}

var SignerKeyUnion = xdr.NewUnion[SignerKey]("SignerKey").
	Arm(int32(SignerKeyTypeEd25519), xdr.ArmOf[SignerKey, SignerKeyEd25519]()).
	Arm(int32(SignerKeyTypePreAuthTx), xdr.ArmOf[SignerKey, SignerKeyPreAuthTx]()).
	Arm(int32(SignerKeyTypeHashX), xdr.ArmOf[SignerKey, SignerKeyHashX]()).
	Arm(
		int32(SignerKeyTypeEd25519SignedPayload),
		xdr.ArmOf[SignerKey, SignerKeyEd25519SignedPayload](),
	)

// NewSignerKey parses a G..., T..., X... or P... strkey
func NewSignerKey(address string) (SignerKey, error) {
	version, err := StrkeyVersionOf(address)
	if err != nil {
		return nil, err
	}
	switch version {
	case StrkeyVersionAccount:
		accountId, err := NewAccountId(address)
		if err != nil {
			return nil, err
		}
		return SignerKeyEd25519(accountId), nil
	case StrkeyVersionPreAuthTx:
		payload, err := decodeStrkeyFixed(version, address, 32)
		if err != nil {
			return nil, err
		}
		return SignerKeyPreAuthTx{PreAuthTx: NewUint256(payload)}, nil
	case StrkeyVersionHashX:
		payload, err := decodeStrkeyFixed(version, address, 32)
		if err != nil {
			return nil, err
		}
		return SignerKeyHashX{HashX: NewUint256(payload)}, nil
	case StrkeyVersionSignedPayload:
		payload, err := DecodeStrkey(version, address)
		if err != nil {
			return nil, err
		}
		var ret SignerKeyEd25519SignedPayload
		if err := xdr.Unmarshal(payload, &ret); err != nil {
			return nil, invalidArgument(version.String(), "bad payload", err)
		}
		return ret, nil
	default:
		return nil, invalidArgument(
			"signer key",
			"unexpected "+version.String()+" strkey",
			nil,
		)
	}
}

type SignerKeyEd25519 struct {
	Ed25519 Uint256
}

func (SignerKeyEd25519) Discriminant() int32 {
	return int32(SignerKeyTypeEd25519)
}

func (k SignerKeyEd25519) Address() string {
	return AccountId(k).Address()
}

func (k SignerKeyEd25519) EncodeXDR(e *xdr.Encoder) error {
	return k.Ed25519.EncodeXDR(e)
}

func (k *SignerKeyEd25519) DecodeXDR(d *xdr.Decoder) error {
	return k.Ed25519.DecodeXDR(d)
}

// SignerKeyPreAuthTx authorizes exactly one transaction, identified by its hash
type SignerKeyPreAuthTx struct {
	PreAuthTx Uint256
}

func (SignerKeyPreAuthTx) Discriminant() int32 {
	return int32(SignerKeyTypePreAuthTx)
}

func (k SignerKeyPreAuthTx) Address() string {
	return EncodeStrkey(StrkeyVersionPreAuthTx, k.PreAuthTx[:])
}

func (k SignerKeyPreAuthTx) EncodeXDR(e *xdr.Encoder) error {
	return k.PreAuthTx.EncodeXDR(e)
}

func (k *SignerKeyPreAuthTx) DecodeXDR(d *xdr.Decoder) error {
	return k.PreAuthTx.DecodeXDR(d)
}

// SignerKeyHashX is satisfied by revealing a preimage of HashX
type SignerKeyHashX struct {
	HashX Uint256
}

func (SignerKeyHashX) Discriminant() int32 {
	return int32(SignerKeyTypeHashX)
}

func (k SignerKeyHashX) Address() string {
	return EncodeStrkey(StrkeyVersionHashX, k.HashX[:])
}

func (k SignerKeyHashX) EncodeXDR(e *xdr.Encoder) error {
	return k.HashX.EncodeXDR(e)
}

func (k *SignerKeyHashX) DecodeXDR(d *xdr.Decoder) error {
	return k.HashX.DecodeXDR(d)
}

type SignerKeyEd25519SignedPayload struct {
	Ed25519 Uint256
	Payload []byte
}

func (SignerKeyEd25519SignedPayload) Discriminant() int32 {
	return int32(SignerKeyTypeEd25519SignedPayload)
}

// Address returns the P... strkey, whose payload is the XDR form of the key
func (k SignerKeyEd25519SignedPayload) Address() string {
	data, err := xdr.Marshal(k)
	if err != nil {
		// Only an oversized payload can fail, and such a key has no valid strkey
		return ""
	}
	return EncodeStrkey(StrkeyVersionSignedPayload, data)
}

func (k SignerKeyEd25519SignedPayload) EncodeXDR(e *xdr.Encoder) error {
	if err := k.Ed25519.EncodeXDR(e); err != nil {
		return err
	}
	return e.EncodeOpaque(k.Payload, 64)
}

func (k *SignerKeyEd25519SignedPayload) DecodeXDR(d *xdr.Decoder) (err error) {
	if err = k.Ed25519.DecodeXDR(d); err != nil {
		return err
	}
	k.Payload, err = d.DecodeOpaque(64)
	return err
}
