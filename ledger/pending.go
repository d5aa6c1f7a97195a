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

// PendingTransaction is a v1 transaction that is being signed. It is owned by
// the caller until ToEnvelope hands a copy of its signatures to an envelope
type PendingTransaction struct {
	signatureCollector
	tx Transaction
}

// NewPendingTransaction validates tx and encodes it once for signing. A nil
// logger means slog.Default()
func NewPendingTransaction(tx Transaction, logger *slog.Logger) (*PendingTransaction, error) {
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	body, err := xdr.Marshal(tx)
	if err != nil {
		return nil, err
	}
	return &PendingTransaction{
		signatureCollector: newSignatureCollector(
			encodeEnvelopeType(EnvelopeTypeTx),
			body,
			nil,
			logger,
		),
		tx: tx,
	}, nil
}

func (p *PendingTransaction) Transaction() Transaction {
	return p.tx
}

// ToEnvelope wraps the transaction and its signatures for submission
func (p *PendingTransaction) ToEnvelope() (*TransactionV1Envelope, error) {
	sigs := p.Signatures()
	if len(sigs) == 0 {
		return nil, ErrMissingSignature
	}
	return &TransactionV1Envelope{
		signatureCollector: newSignatureCollector(p.prefix, p.body, sigs, p.logger),
		tx:                 p.tx,
	}, nil
}

// PendingTransactionV0 is a legacy transaction that is being signed
type PendingTransactionV0 struct {
	signatureCollector
	tx TransactionV0
}

func NewPendingTransactionV0(tx TransactionV0, logger *slog.Logger) (*PendingTransactionV0, error) {
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	body, err := xdr.Marshal(tx)
	if err != nil {
		return nil, err
	}
	return &PendingTransactionV0{
		signatureCollector: newSignatureCollector(v0SignaturePrefix, body, nil, logger),
		tx:                 tx,
	}, nil
}

func (p *PendingTransactionV0) Transaction() TransactionV0 {
	return p.tx
}

func (p *PendingTransactionV0) ToEnvelope() (*TransactionV0Envelope, error) {
	sigs := p.Signatures()
	if len(sigs) == 0 {
		return nil, ErrMissingSignature
	}
	return &TransactionV0Envelope{
		signatureCollector: newSignatureCollector(p.prefix, p.body, sigs, p.logger),
		tx:                 p.tx,
	}, nil
}

// PendingFeeBumpTransaction is a fee bump transaction that is being signed by its fee source
type PendingFeeBumpTransaction struct {
	signatureCollector
	tx FeeBumpTransaction
}

// NewFeeBumpTransaction wraps a signed v1 envelope in a fee bump paid by
// feeSource. The inner envelope is copied, so signatures added to it later are
// not part of the fee bump
func NewFeeBumpTransaction(
	feeSource common.MuxedAccount,
	fee int64,
	inner *TransactionV1Envelope,
	logger *slog.Logger,
) (*PendingFeeBumpTransaction, error) {
	if feeSource == nil {
		return nil, invalidArgument("fee source", "missing", nil)
	}
	if inner == nil || inner.sigs == nil {
		return nil, invalidArgument("inner transaction", "missing", nil)
	}
	if inner.sigs.Len() == 0 {
		return nil, fmt.Errorf("inner transaction: %w", ErrMissingSignature)
	}
	if fee < inner.Fee() {
		return nil, invalidArgument(
			"fee",
			fmt.Sprintf("%d is lower than the inner transaction fee %d", fee, inner.Fee()),
			nil,
		)
	}
	frozen := &TransactionV1Envelope{
		signatureCollector: inner.clone(),
		tx:                 inner.tx,
	}
	tx := FeeBumpTransaction{
		FeeSource: feeSource,
		Fee:       fee,
		InnerTx:   frozen,
	}
	body, err := xdr.Marshal(tx)
	if err != nil {
		return nil, err
	}
	return &PendingFeeBumpTransaction{
		signatureCollector: newSignatureCollector(
			encodeEnvelopeType(EnvelopeTypeTxFeeBump),
			body,
			nil,
			logger,
		),
		tx: tx,
	}, nil
}

func (p *PendingFeeBumpTransaction) Transaction() FeeBumpTransaction {
	return p.tx
}

func (p *PendingFeeBumpTransaction) ToEnvelope() (*FeeBumpTransactionEnvelope, error) {
	sigs := p.Signatures()
	if len(sigs) == 0 {
		return nil, ErrMissingSignature
	}
	return &FeeBumpTransactionEnvelope{
		signatureCollector: newSignatureCollector(p.prefix, p.body, sigs, p.logger),
		tx:                 p.tx,
	}, nil
}
