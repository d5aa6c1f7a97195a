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
	"fmt"
	"log/slog"

	"github.com/blinklabs-io/gostellar/ledger/common"
	"github.com/blinklabs-io/gostellar/xdr"
)

// TransactionEnvelope is a transaction wrapped with its signatures for
// submission. Signatures can still be added to a wrapped transaction, from
// several goroutines if needed, without re-encoding the transaction
type TransactionEnvelope interface {
	xdr.UnionArm
	Type() EnvelopeType
	SourceAccount() common.MuxedAccount
	Fee() int64
	SeqNum() int64
	SignatureBase(networkId common.Hash) []byte
	Hash(networkId common.Hash) common.Hash
	Sign(networkId common.Hash, signers ...Signer) error
	SignHashX(preimage []byte) error
	AddSignature(sigs ...DecoratedSignature) error
	Signatures() []DecoratedSignature
	State(threshold int) SignatureState
	Verify(networkId common.Hash, publicKey []byte) error
}

var TransactionEnvelopeUnion = xdr.NewUnion[TransactionEnvelope]("TransactionEnvelope").
	Arm(int32(EnvelopeTypeTxV0), decodeEnvelope[TransactionV0Envelope]).
	Arm(int32(EnvelopeTypeTx), decodeEnvelope[TransactionV1Envelope]).
	Arm(int32(EnvelopeTypeTxFeeBump), decodeEnvelope[FeeBumpTransactionEnvelope])

func decodeEnvelope[V any, P interface {
	*V
	TransactionEnvelope
	xdr.Decodable
}](d *xdr.Decoder, _ int32) (TransactionEnvelope, error) {
	env := P(new(V))
	if err := env.DecodeXDR(d); err != nil {
		return nil, err
	}
	return env, nil
}

// TransactionV0Envelope is the legacy envelope
type TransactionV0Envelope struct {
	signatureCollector
	tx TransactionV0
}

// The v0 body is signed as the v1 body it converts to, which differs only by
// the key type in front of the source account
var v0SignaturePrefix = append(
	encodeEnvelopeType(EnvelopeTypeTx),
	encodeInt32(int32(common.KeyTypeEd25519))...,
)

// NewTransactionV0Envelope wraps tx with signatures collected elsewhere
func NewTransactionV0Envelope(
	tx TransactionV0,
	sigs []DecoratedSignature,
	logger *slog.Logger,
) (*TransactionV0Envelope, error) {
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	body, err := xdr.Marshal(tx)
	if err != nil {
		return nil, err
	}
	return &TransactionV0Envelope{
		signatureCollector: newSignatureCollector(v0SignaturePrefix, body, sigs, logger),
		tx:                 tx,
	}, nil
}

func (*TransactionV0Envelope) Discriminant() int32 { return int32(EnvelopeTypeTxV0) }
func (*TransactionV0Envelope) Type() EnvelopeType  { return EnvelopeTypeTxV0 }

func (env *TransactionV0Envelope) Transaction() TransactionV0 {
	return env.tx
}

func (env *TransactionV0Envelope) SourceAccount() common.MuxedAccount {
	return common.MuxedAccountEd25519{Ed25519: env.tx.SourceAccountEd25519}
}

func (env *TransactionV0Envelope) Fee() int64    { return int64(env.tx.Fee) }
func (env *TransactionV0Envelope) SeqNum() int64 { return env.tx.SeqNum }

func (env *TransactionV0Envelope) EncodeXDR(e *xdr.Encoder) error {
	return env.encodeBody(e)
}

func (env *TransactionV0Envelope) DecodeXDR(d *xdr.Decoder) error {
	start := d.Pos()
	if err := env.tx.DecodeXDR(d); err != nil {
		return err
	}
	body := d.Since(start)
	sigs, err := decodeSignatures(d)
	if err != nil {
		return err
	}
	env.signatureCollector = newSignatureCollector(v0SignaturePrefix, body, sigs, d.Logger())
	return nil
}

// ToV1 converts the envelope to the v1 form. The signature base does not
// change, so the signatures are kept
func (env *TransactionV0Envelope) ToV1() *TransactionV1Envelope {
	body := make([]byte, 0, 4+len(env.body))
	body = append(body, encodeInt32(int32(common.KeyTypeEd25519))...)
	body = append(body, env.body...)
	return &TransactionV1Envelope{
		signatureCollector: newSignatureCollector(
			encodeEnvelopeType(EnvelopeTypeTx),
			body,
			env.sigs.Snapshot(),
			env.logger,
		),
		tx: env.tx.ToV1(),
	}
}

// TransactionV1Envelope is the envelope of a v1 transaction
type TransactionV1Envelope struct {
	signatureCollector
	tx Transaction
}

// NewTransactionV1Envelope wraps tx with signatures collected elsewhere
func NewTransactionV1Envelope(
	tx Transaction,
	sigs []DecoratedSignature,
	logger *slog.Logger,
) (*TransactionV1Envelope, error) {
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	body, err := xdr.Marshal(tx)
	if err != nil {
		return nil, err
	}
	return &TransactionV1Envelope{
		signatureCollector: newSignatureCollector(
			encodeEnvelopeType(EnvelopeTypeTx),
			body,
			sigs,
			logger,
		),
		tx: tx,
	}, nil
}

func (*TransactionV1Envelope) Discriminant() int32 { return int32(EnvelopeTypeTx) }
func (*TransactionV1Envelope) Type() EnvelopeType  { return EnvelopeTypeTx }

func (env *TransactionV1Envelope) Transaction() Transaction {
	return env.tx
}

func (env *TransactionV1Envelope) SourceAccount() common.MuxedAccount {
	return env.tx.SourceAccount
}

func (env *TransactionV1Envelope) Fee() int64    { return int64(env.tx.Fee) }
func (env *TransactionV1Envelope) SeqNum() int64 { return env.tx.SeqNum }

func (env *TransactionV1Envelope) EncodeXDR(e *xdr.Encoder) error {
	return env.encodeBody(e)
}

func (env *TransactionV1Envelope) DecodeXDR(d *xdr.Decoder) error {
	start := d.Pos()
	if err := env.tx.DecodeXDR(d); err != nil {
		return err
	}
	body := d.Since(start)
	sigs, err := decodeSignatures(d)
	if err != nil {
		return err
	}
	env.signatureCollector = newSignatureCollector(
		encodeEnvelopeType(EnvelopeTypeTx),
		body,
		sigs,
		d.Logger(),
	)
	return nil
}

// FeeBumpTransactionEnvelope is the envelope of a fee bump transaction. The
// inner envelope is frozen when the fee bump is built
type FeeBumpTransactionEnvelope struct {
	signatureCollector
	tx FeeBumpTransaction
}

func NewFeeBumpTransactionEnvelope(
	tx FeeBumpTransaction,
	sigs []DecoratedSignature,
	logger *slog.Logger,
) (*FeeBumpTransactionEnvelope, error) {
	if tx.FeeSource == nil {
		return nil, invalidArgument("fee source", "missing", nil)
	}
	if tx.InnerTx == nil {
		return nil, invalidArgument("inner transaction", "missing", nil)
	}
	if err := tx.InnerTx.tx.Validate(); err != nil {
		return nil, fmt.Errorf("inner transaction: %w", err)
	}
	body, err := xdr.Marshal(tx)
	if err != nil {
		return nil, err
	}
	return &FeeBumpTransactionEnvelope{
		signatureCollector: newSignatureCollector(
			encodeEnvelopeType(EnvelopeTypeTxFeeBump),
			body,
			sigs,
			logger,
		),
		tx: tx,
	}, nil
}

func (*FeeBumpTransactionEnvelope) Discriminant() int32 { return int32(EnvelopeTypeTxFeeBump) }
func (*FeeBumpTransactionEnvelope) Type() EnvelopeType  { return EnvelopeTypeTxFeeBump }

func (env *FeeBumpTransactionEnvelope) Transaction() FeeBumpTransaction {
	return env.tx
}

// Inner returns the wrapped transaction envelope
func (env *FeeBumpTransactionEnvelope) Inner() *TransactionV1Envelope {
	return env.tx.InnerTx
}

func (env *FeeBumpTransactionEnvelope) SourceAccount() common.MuxedAccount {
	return env.tx.FeeSource
}

func (env *FeeBumpTransactionEnvelope) Fee() int64 { return env.tx.Fee }

// SeqNum returns the sequence number of the inner transaction
func (env *FeeBumpTransactionEnvelope) SeqNum() int64 {
	return env.tx.InnerTx.SeqNum()
}

func (env *FeeBumpTransactionEnvelope) EncodeXDR(e *xdr.Encoder) error {
	return env.encodeBody(e)
}

func (env *FeeBumpTransactionEnvelope) DecodeXDR(d *xdr.Decoder) error {
	start := d.Pos()
	if err := env.tx.DecodeXDR(d); err != nil {
		return err
	}
	body := d.Since(start)
	sigs, err := decodeSignatures(d)
	if err != nil {
		return err
	}
	env.signatureCollector = newSignatureCollector(
		encodeEnvelopeType(EnvelopeTypeTxFeeBump),
		body,
		sigs,
		d.Logger(),
	)
	return nil
}
