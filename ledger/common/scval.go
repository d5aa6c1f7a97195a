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
	"github.com/blinklabs-io/gostellar/xdr"
)

type SCValType int32

const (
	SCValTypeBool                      SCValType = 0
	SCValTypeVoid                      SCValType = 1
	SCValTypeError                     SCValType = 2
	SCValTypeU32                       SCValType = 3
	SCValTypeI32                       SCValType = 4
	SCValTypeU64                       SCValType = 5
	SCValTypeI64                       SCValType = 6
	SCValTypeTimepoint                 SCValType = 7
	SCValTypeDuration                  SCValType = 8
	SCValTypeU128                      SCValType = 9
	SCValTypeI128                      SCValType = 10
	SCValTypeU256                      SCValType = 11
	SCValTypeI256                      SCValType = 12
	SCValTypeBytes                     SCValType = 13
	SCValTypeString                    SCValType = 14
	SCValTypeSymbol                    SCValType = 15
	SCValTypeVec                       SCValType = 16
	SCValTypeMap                       SCValType = 17
	SCValTypeAddress                   SCValType = 18
	SCValTypeContractInstance          SCValType = 19
	SCValTypeLedgerKeyContractInstance SCValType = 20
	SCValTypeLedgerKeyNonce            SCValType = 21
)

const MaxSCSymbolSize = 32

// SCVal is a smart contract value. Vectors and maps nest further SCVals, so decoding
// depth is bounded by the decoder's maximum depth
type SCVal interface {
	xdr.UnionArm
}

// SCValUnion is built in init because SCVal is recursive
var SCValUnion *xdr.Union[SCVal]

func init() {
	SCValUnion = xdr.NewUnion[SCVal]("SCVal").
		Arm(int32(SCValTypeBool), xdr.ArmOf[SCVal, SCValBool]()).
		Void(int32(SCValTypeVoid), SCValVoid{}).
		Arm(int32(SCValTypeError), xdr.ArmOf[SCVal, SCError]()).
		Arm(int32(SCValTypeU32), xdr.ArmOf[SCVal, SCValU32]()).
		Arm(int32(SCValTypeI32), xdr.ArmOf[SCVal, SCValI32]()).
		Arm(int32(SCValTypeU64), xdr.ArmOf[SCVal, SCValU64]()).
		Arm(int32(SCValTypeI64), xdr.ArmOf[SCVal, SCValI64]()).
		Arm(int32(SCValTypeTimepoint), xdr.ArmOf[SCVal, SCValTimepoint]()).
		Arm(int32(SCValTypeDuration), xdr.ArmOf[SCVal, SCValDuration]()).
		Arm(int32(SCValTypeU128), xdr.ArmOf[SCVal, UInt128Parts]()).
		Arm(int32(SCValTypeI128), xdr.ArmOf[SCVal, Int128Parts]()).
		Arm(int32(SCValTypeU256), xdr.ArmOf[SCVal, UInt256Parts]()).
		Arm(int32(SCValTypeI256), xdr.ArmOf[SCVal, Int256Parts]()).
		Arm(int32(SCValTypeBytes), xdr.ArmOf[SCVal, SCValBytes]()).
		Arm(int32(SCValTypeString), xdr.ArmOf[SCVal, SCValString]()).
		Arm(int32(SCValTypeSymbol), xdr.ArmOf[SCVal, SCValSymbol]()).
		Arm(int32(SCValTypeVec), xdr.ArmOf[SCVal, SCVec]()).
		Arm(int32(SCValTypeMap), xdr.ArmOf[SCVal, SCMap]()).
		Arm(int32(SCValTypeAddress), xdr.ArmOf[SCVal, SCValAddress]()).
		Arm(int32(SCValTypeContractInstance), xdr.ArmOf[SCVal, SCContractInstance]()).
		Void(int32(SCValTypeLedgerKeyContractInstance), SCValLedgerKeyContractInstance{}).
		Arm(int32(SCValTypeLedgerKeyNonce), xdr.ArmOf[SCVal, SCNonceKey]())
}

type SCValBool bool

func (SCValBool) Discriminant() int32 { return int32(SCValTypeBool) }

func (v SCValBool) EncodeXDR(e *xdr.Encoder) error {
	return e.EncodeBool(bool(v))
}

func (v *SCValBool) DecodeXDR(d *xdr.Decoder) error {
	b, err := d.DecodeBool()
	*v = SCValBool(b)
	return err
}

type SCValVoid struct{}

func (SCValVoid) Discriminant() int32          { return int32(SCValTypeVoid) }
func (SCValVoid) EncodeXDR(*xdr.Encoder) error { return nil }

type SCValU32 uint32

func (SCValU32) Discriminant() int32 { return int32(SCValTypeU32) }

func (v SCValU32) EncodeXDR(e *xdr.Encoder) error {
	return e.EncodeUint32(uint32(v))
}

func (v *SCValU32) DecodeXDR(d *xdr.Decoder) error {
	n, err := d.DecodeUint32()
	*v = SCValU32(n)
	return err
}

type SCValI32 int32

func (SCValI32) Discriminant() int32 { return int32(SCValTypeI32) }

func (v SCValI32) EncodeXDR(e *xdr.Encoder) error {
	return e.EncodeInt32(int32(v))
}

func (v *SCValI32) DecodeXDR(d *xdr.Decoder) error {
	n, err := d.DecodeInt32()
	*v = SCValI32(n)
	return err
}

type SCValU64 uint64

func (SCValU64) Discriminant() int32 { return int32(SCValTypeU64) }

func (v SCValU64) EncodeXDR(e *xdr.Encoder) error {
	return e.EncodeUint64(uint64(v))
}

func (v *SCValU64) DecodeXDR(d *xdr.Decoder) error {
	n, err := d.DecodeUint64()
	*v = SCValU64(n)
	return err
}

type SCValI64 int64

func (SCValI64) Discriminant() int32 { return int32(SCValTypeI64) }

func (v SCValI64) EncodeXDR(e *xdr.Encoder) error {
	return e.EncodeInt64(int64(v))
}

func (v *SCValI64) DecodeXDR(d *xdr.Decoder) error {
	n, err := d.DecodeInt64()
	*v = SCValI64(n)
	return err
}

// SCValTimepoint is a unix timestamp in seconds
type SCValTimepoint uint64

func (SCValTimepoint) Discriminant() int32 { return int32(SCValTypeTimepoint) }

func (v SCValTimepoint) EncodeXDR(e *xdr.Encoder) error {
	return e.EncodeUint64(uint64(v))
}

func (v *SCValTimepoint) DecodeXDR(d *xdr.Decoder) error {
	n, err := d.DecodeUint64()
	*v = SCValTimepoint(n)
	return err
}

// SCValDuration is a number of seconds
type SCValDuration uint64

func (SCValDuration) Discriminant() int32 { return int32(SCValTypeDuration) }

func (v SCValDuration) EncodeXDR(e *xdr.Encoder) error {
	return e.EncodeUint64(uint64(v))
}

func (v *SCValDuration) DecodeXDR(d *xdr.Decoder) error {
	n, err := d.DecodeUint64()
	*v = SCValDuration(n)
	return err
}

type UInt128Parts struct {
	Hi uint64
	Lo uint64
}

func (UInt128Parts) Discriminant() int32 { return int32(SCValTypeU128) }

func (v UInt128Parts) EncodeXDR(e *xdr.Encoder) error {
	if err := e.EncodeUint64(v.Hi); err != nil {
		return err
	}
	return e.EncodeUint64(v.Lo)
}

func (v *UInt128Parts) DecodeXDR(d *xdr.Decoder) (err error) {
	if v.Hi, err = d.DecodeUint64(); err != nil {
		return err
	}
	v.Lo, err = d.DecodeUint64()
	return err
}

type Int128Parts struct {
	Hi int64
	Lo uint64
}

func (Int128Parts) Discriminant() int32 { return int32(SCValTypeI128) }

func (v Int128Parts) EncodeXDR(e *xdr.Encoder) error {
	if err := e.EncodeInt64(v.Hi); err != nil {
		return err
	}
	return e.EncodeUint64(v.Lo)
}

func (v *Int128Parts) DecodeXDR(d *xdr.Decoder) (err error) {
	if v.Hi, err = d.DecodeInt64(); err != nil {
		return err
	}
	v.Lo, err = d.DecodeUint64()
	return err
}

type UInt256Parts struct {
	HiHi uint64
	HiLo uint64
	LoHi uint64
	LoLo uint64
}

func (UInt256Parts) Discriminant() int32 { return int32(SCValTypeU256) }

func (v UInt256Parts) EncodeXDR(e *xdr.Encoder) error {
	for _, part := range []uint64{v.HiHi, v.HiLo, v.LoHi, v.LoLo} {
		if err := e.EncodeUint64(part); err != nil {
			return err
		}
	}
	return nil
}

func (v *UInt256Parts) DecodeXDR(d *xdr.Decoder) (err error) {
	for _, part := range []*uint64{&v.HiHi, &v.HiLo, &v.LoHi, &v.LoLo} {
		if *part, err = d.DecodeUint64(); err != nil {
			return err
		}
	}
	return nil
}

type Int256Parts struct {
	HiHi int64
	HiLo uint64
	LoHi uint64
	LoLo uint64
}

func (Int256Parts) Discriminant() int32 { return int32(SCValTypeI256) }

func (v Int256Parts) EncodeXDR(e *xdr.Encoder) error {
	if err := e.EncodeInt64(v.HiHi); err != nil {
		return err
	}
	for _, part := range []uint64{v.HiLo, v.LoHi, v.LoLo} {
		if err := e.EncodeUint64(part); err != nil {
			return err
		}
	}
	return nil
}

func (v *Int256Parts) DecodeXDR(d *xdr.Decoder) (err error) {
	if v.HiHi, err = d.DecodeInt64(); err != nil {
		return err
	}
	for _, part := range []*uint64{&v.HiLo, &v.LoHi, &v.LoLo} {
		if *part, err = d.DecodeUint64(); err != nil {
			return err
		}
	}
	return nil
}

type SCValBytes []byte

func (SCValBytes) Discriminant() int32 { return int32(SCValTypeBytes) }

func (v SCValBytes) EncodeXDR(e *xdr.Encoder) error {
	return e.EncodeOpaque(v, xdr.Unbounded)
}

func (v *SCValBytes) DecodeXDR(d *xdr.Decoder) error {
	b, err := d.DecodeOpaque(xdr.Unbounded)
	*v = b
	return err
}

type SCValString string

func (SCValString) Discriminant() int32 { return int32(SCValTypeString) }

func (v SCValString) EncodeXDR(e *xdr.Encoder) error {
	return e.EncodeString(string(v), xdr.Unbounded)
}

func (v *SCValString) DecodeXDR(d *xdr.Decoder) error {
	s, err := d.DecodeString(xdr.Unbounded)
	*v = SCValString(s)
	return err
}

type SCValSymbol string

func (SCValSymbol) Discriminant() int32 { return int32(SCValTypeSymbol) }

func (v SCValSymbol) EncodeXDR(e *xdr.Encoder) error {
	return e.EncodeString(string(v), MaxSCSymbolSize)
}

func (v *SCValSymbol) DecodeXDR(d *xdr.Decoder) error {
	s, err := d.DecodeString(MaxSCSymbolSize)
	*v = SCValSymbol(s)
	return err
}

// SCVec is an optional vector of values. A nil SCVec is absent on the wire,
// while an empty non-nil SCVec is present with no elements
type SCVec []SCVal

func (SCVec) Discriminant() int32 { return int32(SCValTypeVec) }

func (v SCVec) EncodeXDR(e *xdr.Encoder) error {
	if err := e.EncodePresence(v != nil); err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	return xdr.EncodeVarArray(e, v, xdr.Unbounded, SCValUnion.Encode)
}

func (v *SCVec) DecodeXDR(d *xdr.Decoder) error {
	present, err := d.DecodePresence()
	if err != nil || !present {
		*v = nil
		return err
	}
	items, err := xdr.DecodeVarArray(d, xdr.Unbounded, SCValUnion.Decode)
	if err != nil {
		return err
	}
	*v = append(SCVec{}, items...)
	return nil
}

type SCMapEntry struct {
	Key SCVal
	Val SCVal
}

func (m SCMapEntry) EncodeXDR(e *xdr.Encoder) error {
	if err := SCValUnion.Encode(e, m.Key); err != nil {
		return err
	}
	return SCValUnion.Encode(e, m.Val)
}

func (m *SCMapEntry) DecodeXDR(d *xdr.Decoder) (err error) {
	if m.Key, err = SCValUnion.Decode(d); err != nil {
		return err
	}
	m.Val, err = SCValUnion.Decode(d)
	return err
}

// SCMap is an optional map. Like SCVec, nil means absent
type SCMap []SCMapEntry

func (SCMap) Discriminant() int32 { return int32(SCValTypeMap) }

func (m SCMap) EncodeXDR(e *xdr.Encoder) error {
	if err := e.EncodePresence(m != nil); err != nil {
		return err
	}
	if m == nil {
		return nil
	}
	return xdr.EncodeVarArray(e, m, xdr.Unbounded, xdr.EncodeRecord[SCMapEntry])
}

func (m *SCMap) DecodeXDR(d *xdr.Decoder) error {
	present, err := d.DecodePresence()
	if err != nil || !present {
		*m = nil
		return err
	}
	entries, err := xdr.DecodeVarArray(d, xdr.Unbounded, xdr.Record[SCMapEntry])
	if err != nil {
		return err
	}
	*m = append(SCMap{}, entries...)
	return nil
}

type SCValAddress struct {
	Address SCAddress
}

func (SCValAddress) Discriminant() int32 { return int32(SCValTypeAddress) }

func (v SCValAddress) EncodeXDR(e *xdr.Encoder) error {
	return SCAddressUnion.Encode(e, v.Address)
}

func (v *SCValAddress) DecodeXDR(d *xdr.Decoder) (err error) {
	v.Address, err = SCAddressUnion.Decode(d)
	return err
}

type SCContractInstance struct {
	Executable ContractExecutable
	Storage    SCMap
}

func (SCContractInstance) Discriminant() int32 { return int32(SCValTypeContractInstance) }

func (c SCContractInstance) EncodeXDR(e *xdr.Encoder) error {
	if err := ContractExecutableUnion.Encode(e, c.Executable); err != nil {
		return err
	}
	return c.Storage.EncodeXDR(e)
}

func (c *SCContractInstance) DecodeXDR(d *xdr.Decoder) (err error) {
	if c.Executable, err = ContractExecutableUnion.Decode(d); err != nil {
		return err
	}
	return c.Storage.DecodeXDR(d)
}

type SCValLedgerKeyContractInstance struct{}

func (SCValLedgerKeyContractInstance) Discriminant() int32 {
	return int32(SCValTypeLedgerKeyContractInstance)
}

func (SCValLedgerKeyContractInstance) EncodeXDR(*xdr.Encoder) error { return nil }

type SCNonceKey struct {
	Nonce int64
}

func (SCNonceKey) Discriminant() int32 { return int32(SCValTypeLedgerKeyNonce) }

func (k SCNonceKey) EncodeXDR(e *xdr.Encoder) error {
	return e.EncodeInt64(k.Nonce)
}

func (k *SCNonceKey) DecodeXDR(d *xdr.Decoder) (err error) {
	k.Nonce, err = d.DecodeInt64()
	return err
}

type SCErrorType int32

const (
	SCErrorTypeContract SCErrorType = 0
	SCErrorTypeWasmVm   SCErrorType = 1
	SCErrorTypeContext  SCErrorType = 2
	SCErrorTypeStorage  SCErrorType = 3
	SCErrorTypeObject   SCErrorType = 4
	SCErrorTypeCrypto   SCErrorType = 5
	SCErrorTypeEvents   SCErrorType = 6
	SCErrorTypeBudget   SCErrorType = 7
	SCErrorTypeValue    SCErrorType = 8
	SCErrorTypeAuth     SCErrorType = 9
)

type SCErrorCode int32

const (
	SCErrorCodeArithDomain    SCErrorCode = 0
	SCErrorCodeIndexBounds    SCErrorCode = 1
	SCErrorCodeInvalidInput   SCErrorCode = 2
	SCErrorCodeMissingValue   SCErrorCode = 3
	SCErrorCodeExistingValue  SCErrorCode = 4
	SCErrorCodeExceededLimit  SCErrorCode = 5
	SCErrorCodeInvalidAction  SCErrorCode = 6
	SCErrorCodeInternalError  SCErrorCode = 7
	SCErrorCodeUnexpectedType SCErrorCode = 8
	SCErrorCodeUnexpectedSize SCErrorCode = 9
)

var scErrorTypes = xdr.NewEnum(
	"SCErrorType",
	SCErrorTypeContract,
	SCErrorTypeWasmVm,
	SCErrorTypeContext,
	SCErrorTypeStorage,
	SCErrorTypeObject,
	SCErrorTypeCrypto,
	SCErrorTypeEvents,
	SCErrorTypeBudget,
	SCErrorTypeValue,
	SCErrorTypeAuth,
)

var scErrorCodes = xdr.NewEnum(
	"SCErrorCode",
	SCErrorCodeArithDomain,
	SCErrorCodeIndexBounds,
	SCErrorCodeInvalidInput,
	SCErrorCodeMissingValue,
	SCErrorCodeExistingValue,
	SCErrorCodeExceededLimit,
	SCErrorCodeInvalidAction,
	SCErrorCodeInternalError,
	SCErrorCodeUnexpectedType,
	SCErrorCodeUnexpectedSize,
)

// SCError is the SCError union. ContractCode is used for contract errors and Code for all other types
type SCError struct {
	Type         SCErrorType
	ContractCode uint32
	Code         SCErrorCode
}

func (SCError) Discriminant() int32 { return int32(SCValTypeError) }

func (s SCError) EncodeXDR(e *xdr.Encoder) error {
	if err := scErrorTypes.Encode(e, s.Type); err != nil {
		return err
	}
	if s.Type == SCErrorTypeContract {
		return e.EncodeUint32(s.ContractCode)
	}
	return scErrorCodes.Encode(e, s.Code)
}

func (s *SCError) DecodeXDR(d *xdr.Decoder) (err error) {
	if s.Type, err = scErrorTypes.Decode(d); err != nil {
		return err
	}
	if s.Type == SCErrorTypeContract {
		s.ContractCode, err = d.DecodeUint32()
		return err
	}
	s.Code, err = scErrorCodes.Decode(d)
	return err
}

type SCAddressType int32

const (
	SCAddressTypeAccount  SCAddressType = 0
	SCAddressTypeContract SCAddressType = 1
)

// SCAddress is an account or contract address
type SCAddress interface {
	xdr.UnionArm
	Address() string
}

var SCAddressUnion = xdr.NewUnion[SCAddress]("SCAddress").
	Arm(int32(SCAddressTypeAccount), xdr.ArmOf[SCAddress, SCAddressAccount]()).
	Arm(int32(SCAddressTypeContract), xdr.ArmOf[SCAddress, SCAddressContract]())

// NewSCAddress parses a G... or C... strkey
func NewSCAddress(address string) (SCAddress, error) {
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
		return SCAddressAccount{AccountId: accountId}, nil
	case StrkeyVersionContract:
		payload, err := decodeStrkeyFixed(version, address, HashSize)
		if err != nil {
			return nil, err
		}
		return SCAddressContract{ContractId: NewHash(payload)}, nil
	default:
		return nil, invalidArgument(
			"contract address",
			"unexpected "+version.String()+" strkey",
			nil,
		)
	}
}

type SCAddressAccount struct {
	AccountId AccountId
}

func (SCAddressAccount) Discriminant() int32 { return int32(SCAddressTypeAccount) }

func (a SCAddressAccount) Address() string {
	return a.AccountId.Address()
}

func (a SCAddressAccount) EncodeXDR(e *xdr.Encoder) error {
	return a.AccountId.EncodeXDR(e)
}

func (a *SCAddressAccount) DecodeXDR(d *xdr.Decoder) error {
	return a.AccountId.DecodeXDR(d)
}

type SCAddressContract struct {
	ContractId Hash
}

func (SCAddressContract) Discriminant() int32 { return int32(SCAddressTypeContract) }

func (a SCAddressContract) Address() string {
	return EncodeStrkey(StrkeyVersionContract, a.ContractId[:])
}

func (a SCAddressContract) EncodeXDR(e *xdr.Encoder) error {
	return a.ContractId.EncodeXDR(e)
}

func (a *SCAddressContract) DecodeXDR(d *xdr.Decoder) error {
	return a.ContractId.DecodeXDR(d)
}

type ContractExecutableType int32

const (
	ContractExecutableTypeWasm         ContractExecutableType = 0
	ContractExecutableTypeStellarAsset ContractExecutableType = 1
)

type ContractExecutable interface {
	xdr.UnionArm
}

var ContractExecutableUnion = xdr.NewUnion[ContractExecutable]("ContractExecutable").
	Arm(int32(ContractExecutableTypeWasm), xdr.ArmOf[ContractExecutable, ContractExecutableWasm]()).
	Void(int32(ContractExecutableTypeStellarAsset), ContractExecutableStellarAsset{})

type ContractExecutableWasm struct {
	WasmHash Hash
}

func (ContractExecutableWasm) Discriminant() int32 { return int32(ContractExecutableTypeWasm) }

func (c ContractExecutableWasm) EncodeXDR(e *xdr.Encoder) error {
	return c.WasmHash.EncodeXDR(e)
}

func (c *ContractExecutableWasm) DecodeXDR(d *xdr.Decoder) error {
	return c.WasmHash.DecodeXDR(d)
}

type ContractExecutableStellarAsset struct{}

func (ContractExecutableStellarAsset) Discriminant() int32 {
	return int32(ContractExecutableTypeStellarAsset)
}

func (ContractExecutableStellarAsset) EncodeXDR(*xdr.Encoder) error { return nil }
