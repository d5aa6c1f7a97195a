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

package ledger

import (
	"github.com/blinklabs-io/gostellar/ledger/common"
	"github.com/blinklabs-io/gostellar/xdr"
)

func (Transaction) Discriminant() int32        { return int32(EnvelopeTypeTx) }
func (TransactionV0) Discriminant() int32      { return int32(EnvelopeTypeTxV0) }
func (FeeBumpTransaction) Discriminant() int32 { return int32(EnvelopeTypeTxFeeBump) }

// TaggedTransactionUnion is the transaction union inside TransactionSignaturePayload.
// Legacy v0 transactions are signed in their v1 form and have no arm of their own
var TaggedTransactionUnion = xdr.NewUnion[xdr.UnionArm]("TransactionSignaturePayloadTaggedTransaction").
	Arm(int32(EnvelopeTypeTx), xdr.ArmOf[xdr.UnionArm, Transaction]()).
	Arm(int32(EnvelopeTypeTxFeeBump), xdr.ArmOf[xdr.UnionArm, FeeBumpTransaction]())

// TransactionSignaturePayload is the value whose SHA-256 hash is signed. The
// network id keeps a signature made for one network from being valid on another
type TransactionSignaturePayload struct {
	NetworkId         common.Hash
	TaggedTransaction xdr.UnionArm
}

func (p TransactionSignaturePayload) EncodeXDR(e *xdr.Encoder) error {
	if err := p.NetworkId.EncodeXDR(e); err != nil {
		return err
	}
	tx := p.TaggedTransaction
	if v0, ok := tx.(TransactionV0); ok {
		tx = v0.ToV1()
	}
	return TaggedTransactionUnion.Encode(e, tx)
}

func (p *TransactionSignaturePayload) DecodeXDR(d *xdr.Decoder) (err error) {
	if err = p.NetworkId.DecodeXDR(d); err != nil {
		return err
	}
	p.TaggedTransaction, err = TaggedTransactionUnion.Decode(d)
	return err
}

// TransactionSignatureBase returns the bytes hashed to sign tx on the network
// identified by networkId. tx is a Transaction, TransactionV0 or FeeBumpTransaction
func TransactionSignatureBase(tx xdr.UnionArm, networkId common.Hash) ([]byte, error) {
	return xdr.Marshal(TransactionSignaturePayload{
		NetworkId:         networkId,
		TaggedTransaction: tx,
	})
}

// TransactionHash returns the hash that signers of tx sign
func TransactionHash(tx xdr.UnionArm, networkId common.Hash) (common.Hash, error) {
	base, err := TransactionSignatureBase(tx, networkId)
	if err != nil {
		return common.Hash{}, err
	}
	return common.Sha256Hash(base), nil
}

// HashIdPreimage is the union of values hashed to derive ids, such as
// claimable balance and contract ids
type HashIdPreimage interface {
	xdr.UnionArm
}

var HashIdPreimageUnion = xdr.NewUnion[HashIdPreimage]("HashIDPreimage").
	Arm(int32(EnvelopeTypeOpId), xdr.ArmOf[HashIdPreimage, HashIdPreimageOperationId]()).
	Arm(int32(EnvelopeTypePoolRevokeOpId), xdr.ArmOf[HashIdPreimage, HashIdPreimageRevokeId]()).
	Arm(int32(EnvelopeTypeContractId), xdr.ArmOf[HashIdPreimage, HashIdPreimageContractId]()).
	Arm(int32(EnvelopeTypeSorobanAuthorization), xdr.ArmOf[HashIdPreimage, HashIdPreimageSorobanAuthorization]())

// HashIdPreimageHash returns SHA-256 of the encoded preimage
func HashIdPreimageHash(p HashIdPreimage) (common.Hash, error) {
	data, err := xdr.EncodeWith(p, HashIdPreimageUnion.Encode)
	if err != nil {
		return common.Hash{}, err
	}
	return common.Sha256Hash(data), nil
}

// HashIdPreimageOperationId identifies an operation. Its hash is the id of a
// claimable balance created by that operation
type HashIdPreimageOperationId struct {
	SourceAccount common.AccountId
	SeqNum        int64
	OpNum         uint32
}

func (HashIdPreimageOperationId) Discriminant() int32 { return int32(EnvelopeTypeOpId) }

func (p HashIdPreimageOperationId) EncodeXDR(e *xdr.Encoder) error {
	if err := p.SourceAccount.EncodeXDR(e); err != nil {
		return err
	}
	if err := e.EncodeInt64(p.SeqNum); err != nil {
		return err
	}
	return e.EncodeUint32(p.OpNum)
}

func (p *HashIdPreimageOperationId) DecodeXDR(d *xdr.Decoder) (err error) {
	if err = p.SourceAccount.DecodeXDR(d); err != nil {
		return err
	}
	if p.SeqNum, err = d.DecodeInt64(); err != nil {
		return err
	}
	p.OpNum, err = d.DecodeUint32()
	return err
}

type HashIdPreimageRevokeId struct {
	SourceAccount   common.AccountId
	SeqNum          int64
	OpNum           uint32
	LiquidityPoolId common.PoolId
	Asset           common.Asset
}

func (HashIdPreimageRevokeId) Discriminant() int32 { return int32(EnvelopeTypePoolRevokeOpId) }

func (p HashIdPreimageRevokeId) EncodeXDR(e *xdr.Encoder) error {
	err := HashIdPreimageOperationId{p.SourceAccount, p.SeqNum, p.OpNum}.EncodeXDR(e)
	if err != nil {
		return err
	}
	if err := p.LiquidityPoolId.EncodeXDR(e); err != nil {
		return err
	}
	return common.AssetUnion.Encode(e, p.Asset)
}

func (p *HashIdPreimageRevokeId) DecodeXDR(d *xdr.Decoder) (err error) {
	var op HashIdPreimageOperationId
	if err = op.DecodeXDR(d); err != nil {
		return err
	}
	p.SourceAccount, p.SeqNum, p.OpNum = op.SourceAccount, op.SeqNum, op.OpNum
	if err = p.LiquidityPoolId.DecodeXDR(d); err != nil {
		return err
	}
	p.Asset, err = common.AssetUnion.Decode(d)
	return err
}

type HashIdPreimageContractId struct {
	NetworkId          common.Hash
	ContractIdPreimage common.ContractIdPreimage
}

func (HashIdPreimageContractId) Discriminant() int32 { return int32(EnvelopeTypeContractId) }

func (p HashIdPreimageContractId) EncodeXDR(e *xdr.Encoder) error {
	if err := p.NetworkId.EncodeXDR(e); err != nil {
		return err
	}
	return common.ContractIdPreimageUnion.Encode(e, p.ContractIdPreimage)
}

func (p *HashIdPreimageContractId) DecodeXDR(d *xdr.Decoder) (err error) {
	if err = p.NetworkId.DecodeXDR(d); err != nil {
		return err
	}
	p.ContractIdPreimage, err = common.ContractIdPreimageUnion.Decode(d)
	return err
}

// HashIdPreimageSorobanAuthorization is signed by the address credentials of a
// Soroban authorization entry
type HashIdPreimageSorobanAuthorization struct {
	NetworkId                 common.Hash
	Nonce                     int64
	SignatureExpirationLedger uint32
	Invocation                common.SorobanAuthorizedInvocation
}

func (HashIdPreimageSorobanAuthorization) Discriminant() int32 {
	return int32(EnvelopeTypeSorobanAuthorization)
}

func (p HashIdPreimageSorobanAuthorization) EncodeXDR(e *xdr.Encoder) error {
	if err := p.NetworkId.EncodeXDR(e); err != nil {
		return err
	}
	if err := e.EncodeInt64(p.Nonce); err != nil {
		return err
	}
	if err := e.EncodeUint32(p.SignatureExpirationLedger); err != nil {
		return err
	}
	return p.Invocation.EncodeXDR(e)
}

func (p *HashIdPreimageSorobanAuthorization) DecodeXDR(d *xdr.Decoder) (err error) {
	if err = p.NetworkId.DecodeXDR(d); err != nil {
		return err
	}
	if p.Nonce, err = d.DecodeInt64(); err != nil {
		return err
	}
	if p.SignatureExpirationLedger, err = d.DecodeUint32(); err != nil {
		return err
	}
	return p.Invocation.DecodeXDR(d)
}

// ContractId returns the id of the contract created from preimage on the given network
func ContractId(networkId common.Hash, preimage common.ContractIdPreimage) (common.Hash, error) {
	return HashIdPreimageHash(HashIdPreimageContractId{
		NetworkId:          networkId,
		ContractIdPreimage: preimage,
	})
}

// ClaimableBalanceId returns the id of the claimable balance created by the
// opNum-th operation of the transaction with the given source and sequence number
func ClaimableBalanceId(source common.AccountId, seqNum int64, opNum uint32) (common.ClaimableBalanceId, error) {
	hash, err := HashIdPreimageHash(HashIdPreimageOperationId{
		SourceAccount: source,
		SeqNum:        seqNum,
		OpNum:         opNum,
	})
	if err != nil {
		return common.ClaimableBalanceId{}, err
	}
	return common.ClaimableBalanceId{V0: hash}, nil
}

// AuthorizationPayloadHash returns the hash signed by the address credentials
// authorizing invocation
func AuthorizationPayloadHash(
	networkId common.Hash,
	credentials common.SorobanAddressCredentials,
	invocation common.SorobanAuthorizedInvocation,
) (common.Hash, error) {
	return HashIdPreimageHash(HashIdPreimageSorobanAuthorization{
		NetworkId:                 networkId,
		Nonce:                     credentials.Nonce,
		SignatureExpirationLedger: credentials.SignatureExpirationLedger,
		Invocation:                invocation,
	})
}
