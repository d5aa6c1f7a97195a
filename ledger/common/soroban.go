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

// LedgerFootprint lists the ledger entries a Soroban transaction may read or write
type LedgerFootprint struct {
	ReadOnly  []LedgerKey
	ReadWrite []LedgerKey
}

func (f LedgerFootprint) EncodeXDR(e *xdr.Encoder) error {
	if err := xdr.EncodeVarArray(e, f.ReadOnly, xdr.Unbounded, LedgerKeyUnion.Encode); err != nil {
		return err
	}
	return xdr.EncodeVarArray(e, f.ReadWrite, xdr.Unbounded, LedgerKeyUnion.Encode)
}

func (f *LedgerFootprint) DecodeXDR(d *xdr.Decoder) (err error) {
	if f.ReadOnly, err = xdr.DecodeVarArray(d, xdr.Unbounded, LedgerKeyUnion.Decode); err != nil {
		return err
	}
	f.ReadWrite, err = xdr.DecodeVarArray(d, xdr.Unbounded, LedgerKeyUnion.Decode)
	return err
}

type SorobanResources struct {
	Footprint    LedgerFootprint
	Instructions uint32
	ReadBytes    uint32
	WriteBytes   uint32
}

func (r SorobanResources) EncodeXDR(e *xdr.Encoder) error {
	if err := r.Footprint.EncodeXDR(e); err != nil {
		return err
	}
	for _, v := range []uint32{r.Instructions, r.ReadBytes, r.WriteBytes} {
		if err := e.EncodeUint32(v); err != nil {
			return err
		}
	}
	return nil
}

func (r *SorobanResources) DecodeXDR(d *xdr.Decoder) (err error) {
	if err = r.Footprint.DecodeXDR(d); err != nil {
		return err
	}
	for _, v := range []*uint32{&r.Instructions, &r.ReadBytes, &r.WriteBytes} {
		if *v, err = d.DecodeUint32(); err != nil {
			return err
		}
	}
	return nil
}

// SorobanTransactionData is carried in the v1 extension of a transaction that invokes contracts
type SorobanTransactionData struct {
	Ext         ExtensionPoint
	Resources   SorobanResources
	ResourceFee int64
}

func (s SorobanTransactionData) EncodeXDR(e *xdr.Encoder) error {
	if err := s.Ext.EncodeXDR(e); err != nil {
		return err
	}
	if err := s.Resources.EncodeXDR(e); err != nil {
		return err
	}
	return e.EncodeInt64(s.ResourceFee)
}

func (s *SorobanTransactionData) DecodeXDR(d *xdr.Decoder) (err error) {
	if err = s.Ext.DecodeXDR(d); err != nil {
		return err
	}
	if err = s.Resources.DecodeXDR(d); err != nil {
		return err
	}
	s.ResourceFee, err = d.DecodeInt64()
	return err
}

type HostFunctionType int32

const (
	HostFunctionTypeInvokeContract     HostFunctionType = 0
	HostFunctionTypeCreateContract     HostFunctionType = 1
	HostFunctionTypeUploadContractWasm HostFunctionType = 2
	HostFunctionTypeCreateContractV2   HostFunctionType = 3
)

type HostFunction interface {
	xdr.UnionArm
}

var HostFunctionUnion = xdr.NewUnion[HostFunction]("HostFunction").
	Arm(int32(HostFunctionTypeInvokeContract), xdr.ArmOf[HostFunction, InvokeContractArgs]()).
	Arm(int32(HostFunctionTypeCreateContract), xdr.ArmOf[HostFunction, CreateContractArgs]()).
	Arm(int32(HostFunctionTypeUploadContractWasm), xdr.ArmOf[HostFunction, UploadContractWasm]()).
	Arm(int32(HostFunctionTypeCreateContractV2), xdr.ArmOf[HostFunction, CreateContractArgsV2]())

type InvokeContractArgs struct {
	ContractAddress SCAddress
	FunctionName    SCValSymbol
	Args            []SCVal
}

func (InvokeContractArgs) Discriminant() int32 {
	return int32(HostFunctionTypeInvokeContract)
}

func (a InvokeContractArgs) EncodeXDR(e *xdr.Encoder) error {
	if err := SCAddressUnion.Encode(e, a.ContractAddress); err != nil {
		return err
	}
	if err := a.FunctionName.EncodeXDR(e); err != nil {
		return err
	}
	return xdr.EncodeVarArray(e, a.Args, xdr.Unbounded, SCValUnion.Encode)
}

func (a *InvokeContractArgs) DecodeXDR(d *xdr.Decoder) (err error) {
	if a.ContractAddress, err = SCAddressUnion.Decode(d); err != nil {
		return err
	}
	if err = a.FunctionName.DecodeXDR(d); err != nil {
		return err
	}
	a.Args, err = xdr.DecodeVarArray(d, xdr.Unbounded, SCValUnion.Decode)
	return err
}

type CreateContractArgs struct {
	ContractIdPreimage ContractIdPreimage
	Executable         ContractExecutable
}

func (CreateContractArgs) Discriminant() int32 {
	return int32(HostFunctionTypeCreateContract)
}

func (a CreateContractArgs) EncodeXDR(e *xdr.Encoder) error {
	if err := ContractIdPreimageUnion.Encode(e, a.ContractIdPreimage); err != nil {
		return err
	}
	return ContractExecutableUnion.Encode(e, a.Executable)
}

func (a *CreateContractArgs) DecodeXDR(d *xdr.Decoder) (err error) {
	if a.ContractIdPreimage, err = ContractIdPreimageUnion.Decode(d); err != nil {
		return err
	}
	a.Executable, err = ContractExecutableUnion.Decode(d)
	return err
}

// CreateContractArgsV2 creates a contract and passes arguments to its constructor
type CreateContractArgsV2 struct {
	ContractIdPreimage ContractIdPreimage
	Executable         ContractExecutable
	ConstructorArgs    []SCVal
}

func (CreateContractArgsV2) Discriminant() int32 {
	return int32(HostFunctionTypeCreateContractV2)
}

func (a CreateContractArgsV2) EncodeXDR(e *xdr.Encoder) error {
	if err := ContractIdPreimageUnion.Encode(e, a.ContractIdPreimage); err != nil {
		return err
	}
	if err := ContractExecutableUnion.Encode(e, a.Executable); err != nil {
		return err
	}
	return xdr.EncodeVarArray(e, a.ConstructorArgs, xdr.Unbounded, SCValUnion.Encode)
}

func (a *CreateContractArgsV2) DecodeXDR(d *xdr.Decoder) (err error) {
	if a.ContractIdPreimage, err = ContractIdPreimageUnion.Decode(d); err != nil {
		return err
	}
	if a.Executable, err = ContractExecutableUnion.Decode(d); err != nil {
		return err
	}
	a.ConstructorArgs, err = xdr.DecodeVarArray(d, xdr.Unbounded, SCValUnion.Decode)
	return err
}

type UploadContractWasm []byte

func (UploadContractWasm) Discriminant() int32 {
	return int32(HostFunctionTypeUploadContractWasm)
}

func (w UploadContractWasm) EncodeXDR(e *xdr.Encoder) error {
	return e.EncodeOpaque(w, xdr.Unbounded)
}

func (w *UploadContractWasm) DecodeXDR(d *xdr.Decoder) error {
	b, err := d.DecodeOpaque(xdr.Unbounded)
	*w = b
	return err
}

type ContractIdPreimageType int32

const (
	ContractIdPreimageTypeFromAddress ContractIdPreimageType = 0
	ContractIdPreimageTypeFromAsset   ContractIdPreimageType = 1
)

// ContractIdPreimage determines the id of a contract being created
type ContractIdPreimage interface {
	xdr.UnionArm
}

var ContractIdPreimageUnion = xdr.NewUnion[ContractIdPreimage]("ContractIDPreimage").
	Arm(
		int32(ContractIdPreimageTypeFromAddress),
		xdr.ArmOf[ContractIdPreimage, ContractIdPreimageFromAddress](),
	).
	Arm(
		int32(ContractIdPreimageTypeFromAsset),
		xdr.ArmOf[ContractIdPreimage, ContractIdPreimageFromAsset](),
	)

type ContractIdPreimageFromAddress struct {
	Address SCAddress
	Salt    Uint256
}

func (ContractIdPreimageFromAddress) Discriminant() int32 {
	return int32(ContractIdPreimageTypeFromAddress)
}

func (p ContractIdPreimageFromAddress) EncodeXDR(e *xdr.Encoder) error {
	if err := SCAddressUnion.Encode(e, p.Address); err != nil {
		return err
	}
	return p.Salt.EncodeXDR(e)
}

func (p *ContractIdPreimageFromAddress) DecodeXDR(d *xdr.Decoder) (err error) {
	if p.Address, err = SCAddressUnion.Decode(d); err != nil {
		return err
	}
	return p.Salt.DecodeXDR(d)
}

type ContractIdPreimageFromAsset struct {
	Asset Asset
}

func (ContractIdPreimageFromAsset) Discriminant() int32 {
	return int32(ContractIdPreimageTypeFromAsset)
}

func (p ContractIdPreimageFromAsset) EncodeXDR(e *xdr.Encoder) error {
	return AssetUnion.Encode(e, p.Asset)
}

func (p *ContractIdPreimageFromAsset) DecodeXDR(d *xdr.Decoder) (err error) {
	p.Asset, err = AssetUnion.Decode(d)
	return err
}

type SorobanAuthorizedFunctionType int32

const (
	SorobanAuthorizedFunctionTypeContractFn             SorobanAuthorizedFunctionType = 0
	SorobanAuthorizedFunctionTypeCreateContractHostFn   SorobanAuthorizedFunctionType = 1
	SorobanAuthorizedFunctionTypeCreateContractV2HostFn SorobanAuthorizedFunctionType = 2
)

// SorobanAuthorizedFunction is the call being authorized at one node of an invocation tree
type SorobanAuthorizedFunction interface {
	xdr.UnionArm
}

var SorobanAuthorizedFunctionUnion = xdr.NewUnion[SorobanAuthorizedFunction]("SorobanAuthorizedFunction").
	Arm(
		int32(SorobanAuthorizedFunctionTypeContractFn),
		xdr.ArmOf[SorobanAuthorizedFunction, SorobanAuthorizedContractFunction](),
	).
	Arm(
		int32(SorobanAuthorizedFunctionTypeCreateContractHostFn),
		xdr.ArmOf[SorobanAuthorizedFunction, SorobanAuthorizedCreateContract](),
	).
	Arm(
		int32(SorobanAuthorizedFunctionTypeCreateContractV2HostFn),
		xdr.ArmOf[SorobanAuthorizedFunction, SorobanAuthorizedCreateContractV2](),
	)

type SorobanAuthorizedContractFunction struct {
	Args InvokeContractArgs
}

func (SorobanAuthorizedContractFunction) Discriminant() int32 {
	return int32(SorobanAuthorizedFunctionTypeContractFn)
}

func (f SorobanAuthorizedContractFunction) EncodeXDR(e *xdr.Encoder) error {
	return f.Args.EncodeXDR(e)
}

func (f *SorobanAuthorizedContractFunction) DecodeXDR(d *xdr.Decoder) error {
	return f.Args.DecodeXDR(d)
}

type SorobanAuthorizedCreateContract struct {
	Args CreateContractArgs
}

func (SorobanAuthorizedCreateContract) Discriminant() int32 {
	return int32(SorobanAuthorizedFunctionTypeCreateContractHostFn)
}

func (f SorobanAuthorizedCreateContract) EncodeXDR(e *xdr.Encoder) error {
	return f.Args.EncodeXDR(e)
}

func (f *SorobanAuthorizedCreateContract) DecodeXDR(d *xdr.Decoder) error {
	return f.Args.DecodeXDR(d)
}

type SorobanAuthorizedCreateContractV2 struct {
	Args CreateContractArgsV2
}

func (SorobanAuthorizedCreateContractV2) Discriminant() int32 {
	return int32(SorobanAuthorizedFunctionTypeCreateContractV2HostFn)
}

func (f SorobanAuthorizedCreateContractV2) EncodeXDR(e *xdr.Encoder) error {
	return f.Args.EncodeXDR(e)
}

func (f *SorobanAuthorizedCreateContractV2) DecodeXDR(d *xdr.Decoder) error {
	return f.Args.DecodeXDR(d)
}

// SorobanAuthorizedInvocation is a tree of authorized calls
type SorobanAuthorizedInvocation struct {
	Function       SorobanAuthorizedFunction
	SubInvocations []SorobanAuthorizedInvocation
}

func (i SorobanAuthorizedInvocation) EncodeXDR(e *xdr.Encoder) error {
	if err := SorobanAuthorizedFunctionUnion.Encode(e, i.Function); err != nil {
		return err
	}
	return xdr.EncodeVarArray(
		e,
		i.SubInvocations,
		xdr.Unbounded,
		xdr.EncodeRecord[SorobanAuthorizedInvocation],
	)
}

func (i *SorobanAuthorizedInvocation) DecodeXDR(d *xdr.Decoder) (err error) {
	if err = d.Enter("SorobanAuthorizedInvocation"); err != nil {
		return err
	}
	defer d.Leave()
	if i.Function, err = SorobanAuthorizedFunctionUnion.Decode(d); err != nil {
		return err
	}
	i.SubInvocations, err = xdr.DecodeVarArray(
		d,
		xdr.Unbounded,
		xdr.Record[SorobanAuthorizedInvocation],
	)
	return err
}

type SorobanCredentialsType int32

const (
	SorobanCredentialsTypeSourceAccount SorobanCredentialsType = 0
	SorobanCredentialsTypeAddress       SorobanCredentialsType = 1
)

type SorobanCredentials interface {
	xdr.UnionArm
}

var SorobanCredentialsUnion = xdr.NewUnion[SorobanCredentials]("SorobanCredentials").
	Void(int32(SorobanCredentialsTypeSourceAccount), SorobanCredentialsSourceAccount{}).
	Arm(
		int32(SorobanCredentialsTypeAddress),
		xdr.ArmOf[SorobanCredentials, SorobanAddressCredentials](),
	)

// SorobanCredentialsSourceAccount authorizes with the transaction or operation source account signature
type SorobanCredentialsSourceAccount struct{}

func (SorobanCredentialsSourceAccount) Discriminant() int32 {
	return int32(SorobanCredentialsTypeSourceAccount)
}

func (SorobanCredentialsSourceAccount) EncodeXDR(*xdr.Encoder) error { return nil }

type SorobanAddressCredentials struct {
	Address                   SCAddress
	Nonce                     int64
	SignatureExpirationLedger uint32
	Signature                 SCVal
}

func (SorobanAddressCredentials) Discriminant() int32 {
	return int32(SorobanCredentialsTypeAddress)
}

func (c SorobanAddressCredentials) EncodeXDR(e *xdr.Encoder) error {
	if err := SCAddressUnion.Encode(e, c.Address); err != nil {
		return err
	}
	if err := e.EncodeInt64(c.Nonce); err != nil {
		return err
	}
	if err := e.EncodeUint32(c.SignatureExpirationLedger); err != nil {
		return err
	}
	return SCValUnion.Encode(e, c.Signature)
}

func (c *SorobanAddressCredentials) DecodeXDR(d *xdr.Decoder) (err error) {
	if c.Address, err = SCAddressUnion.Decode(d); err != nil {
		return err
	}
	if c.Nonce, err = d.DecodeInt64(); err != nil {
		return err
	}
	if c.SignatureExpirationLedger, err = d.DecodeUint32(); err != nil {
		return err
	}
	c.Signature, err = SCValUnion.Decode(d)
	return err
}

type SorobanAuthorizationEntry struct {
	Credentials    SorobanCredentials
	RootInvocation SorobanAuthorizedInvocation
}

func (a SorobanAuthorizationEntry) EncodeXDR(e *xdr.Encoder) error {
	if err := SorobanCredentialsUnion.Encode(e, a.Credentials); err != nil {
		return err
	}
	return a.RootInvocation.EncodeXDR(e)
}

func (a *SorobanAuthorizationEntry) DecodeXDR(d *xdr.Decoder) (err error) {
	if a.Credentials, err = SorobanCredentialsUnion.Decode(d); err != nil {
		return err
	}
	return a.RootInvocation.DecodeXDR(d)
}
