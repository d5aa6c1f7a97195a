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

	"github.com/blinklabs-io/gostellar/ledger/common"
	"github.com/blinklabs-io/gostellar/xdr"
)

// Transaction is the current (v1) transaction body
type Transaction struct {
	SourceAccount common.MuxedAccount
	Fee           uint32
	SeqNum        int64
	Cond          common.Preconditions
	Memo          common.Memo
	Operations    []common.Operation
	Ext           TransactionExt
}

func (t Transaction) EncodeXDR(e *xdr.Encoder) error {
	if err := common.MuxedAccountUnion.Encode(e, t.SourceAccount); err != nil {
		return err
	}
	if err := e.EncodeUint32(t.Fee); err != nil {
		return err
	}
	if err := e.EncodeInt64(t.SeqNum); err != nil {
		return err
	}
	if err := common.PreconditionsUnion.Encode(e, t.Cond); err != nil {
		return err
	}
	if err := common.MemoUnion.Encode(e, t.Memo); err != nil {
		return err
	}
	if err := xdr.EncodeVarArray(
		e,
		t.Operations,
		common.MaxOperationsPerTransaction,
		xdr.EncodeRecord[common.Operation],
	); err != nil {
		return err
	}
	return t.Ext.EncodeXDR(e)
}

func (t *Transaction) DecodeXDR(d *xdr.Decoder) (err error) {
	if t.SourceAccount, err = common.MuxedAccountUnion.Decode(d); err != nil {
		return err
	}
	if t.Fee, err = d.DecodeUint32(); err != nil {
		return err
	}
	if t.SeqNum, err = d.DecodeInt64(); err != nil {
		return err
	}
	if t.Cond, err = common.PreconditionsUnion.Decode(d); err != nil {
		return err
	}
	if t.Memo, err = common.MemoUnion.Decode(d); err != nil {
		return err
	}
	t.Operations, err = xdr.DecodeVarArray(
		d,
		common.MaxOperationsPerTransaction,
		xdr.Record[common.Operation],
	)
	if err != nil {
		return err
	}
	return t.Ext.DecodeXDR(d)
}

// Validate checks the parts of the transaction that the wire format cannot
// express: a source account, memo and preconditions, and 1 to 100 operations
// that all have a body
func (t Transaction) Validate() error {
	if t.SourceAccount == nil {
		return invalidArgument("source account", "missing", nil)
	}
	if t.Memo == nil || t.Cond == nil {
		return invalidArgument("transaction", "memo and preconditions are required", nil)
	}
	return validateOperations(t.Operations)
}

// IsSoroban reports whether the transaction carries Soroban resources
func (t Transaction) IsSoroban() bool {
	return t.Ext.SorobanData != nil
}

// TransactionExt is the transaction extension union: v0 is void and v1 carries
// the Soroban resources of the transaction
type TransactionExt struct {
	SorobanData *common.SorobanTransactionData
}

var transactionExtVersions = xdr.NewEnum[int32]("TransactionExt", 0, 1)

func (x TransactionExt) EncodeXDR(e *xdr.Encoder) error {
	if x.SorobanData == nil {
		return transactionExtVersions.Encode(e, 0)
	}
	if err := transactionExtVersions.Encode(e, 1); err != nil {
		return err
	}
	return x.SorobanData.EncodeXDR(e)
}

func (x *TransactionExt) DecodeXDR(d *xdr.Decoder) error {
	v, err := transactionExtVersions.Decode(d)
	if err != nil {
		return err
	}
	x.SorobanData = nil
	if v == 0 {
		return nil
	}
	x.SorobanData = &common.SorobanTransactionData{}
	return x.SorobanData.DecodeXDR(d)
}

// TransactionV0 is the legacy transaction body, whose source is a bare ed25519 key
type TransactionV0 struct {
	SourceAccountEd25519 common.Uint256
	Fee                  uint32
	SeqNum               int64
	TimeBounds           *common.TimeBounds
	Memo                 common.Memo
	Operations           []common.Operation
	Ext                  common.ExtensionPoint
}

func (t TransactionV0) EncodeXDR(e *xdr.Encoder) error {
	if err := t.SourceAccountEd25519.EncodeXDR(e); err != nil {
		return err
	}
	if err := e.EncodeUint32(t.Fee); err != nil {
		return err
	}
	if err := e.EncodeInt64(t.SeqNum); err != nil {
		return err
	}
	err := xdr.EncodeOptional(e, t.TimeBounds, xdr.EncodeRecord[common.TimeBounds])
	if err != nil {
		return err
	}
	if err := common.MemoUnion.Encode(e, t.Memo); err != nil {
		return err
	}
	if err := xdr.EncodeVarArray(
		e,
		t.Operations,
		common.MaxOperationsPerTransaction,
		xdr.EncodeRecord[common.Operation],
	); err != nil {
		return err
	}
	return t.Ext.EncodeXDR(e)
}

func (t *TransactionV0) DecodeXDR(d *xdr.Decoder) (err error) {
	if err = t.SourceAccountEd25519.DecodeXDR(d); err != nil {
		return err
	}
	if t.Fee, err = d.DecodeUint32(); err != nil {
		return err
	}
	if t.SeqNum, err = d.DecodeInt64(); err != nil {
		return err
	}
	if t.TimeBounds, err = xdr.DecodeOptional(d, xdr.Record[common.TimeBounds]); err != nil {
		return err
	}
	if t.Memo, err = common.MemoUnion.Decode(d); err != nil {
		return err
	}
	t.Operations, err = xdr.DecodeVarArray(
		d,
		common.MaxOperationsPerTransaction,
		xdr.Record[common.Operation],
	)
	if err != nil {
		return err
	}
	return t.Ext.DecodeXDR(d)
}

// Validate checks the memo and operations of the transaction
func (t TransactionV0) Validate() error {
	if t.Memo == nil {
		return invalidArgument("transaction", "memo is required", nil)
	}
	return validateOperations(t.Operations)
}

func validateOperations(ops []common.Operation) error {
	if len(ops) == 0 {
		return invalidArgument("operations", "at least one operation is required", nil)
	}
	if len(ops) > common.MaxOperationsPerTransaction {
		return invalidArgument(
			"operations",
			fmt.Sprintf(
				"%d operations, at most %d allowed",
				len(ops),
				common.MaxOperationsPerTransaction,
			),
			nil,
		)
	}
	for i, op := range ops {
		if op.Body == nil {
			return invalidArgument(
				"operations",
				fmt.Sprintf("operation %d has no body", i),
				nil,
			)
		}
	}
	return nil
}

// ToV1 returns the v1 transaction with the same signature base
func (t TransactionV0) ToV1() Transaction {
	var cond common.Preconditions = common.PreconditionsNone{}
	if t.TimeBounds != nil {
		cond = *t.TimeBounds
	}
	return Transaction{
		SourceAccount: common.MuxedAccountEd25519{Ed25519: t.SourceAccountEd25519},
		Fee:           t.Fee,
		SeqNum:        t.SeqNum,
		Cond:          cond,
		Memo:          t.Memo,
		Operations:    t.Operations,
	}
}

// FeeBumpTransaction pays the fee of an already signed inner transaction
type FeeBumpTransaction struct {
	FeeSource common.MuxedAccount
	Fee       int64
	InnerTx   *TransactionV1Envelope
	Ext       common.ExtensionPoint
}

// The inner transaction union of a fee bump only has the ENVELOPE_TYPE_TX arm
var feeBumpInnerTxTypes = xdr.NewEnum("FeeBumpTransactionInnerTx", EnvelopeTypeTx)

func (t FeeBumpTransaction) EncodeXDR(e *xdr.Encoder) error {
	if err := common.MuxedAccountUnion.Encode(e, t.FeeSource); err != nil {
		return err
	}
	if err := e.EncodeInt64(t.Fee); err != nil {
		return err
	}
	if t.InnerTx == nil {
		return fmt.Errorf("%w: FeeBumpTransaction: missing inner transaction", xdr.ErrInvalidEncoding)
	}
	if err := feeBumpInnerTxTypes.Encode(e, EnvelopeTypeTx); err != nil {
		return err
	}
	if err := t.InnerTx.EncodeXDR(e); err != nil {
		return err
	}
	return t.Ext.EncodeXDR(e)
}

func (t *FeeBumpTransaction) DecodeXDR(d *xdr.Decoder) (err error) {
	if t.FeeSource, err = common.MuxedAccountUnion.Decode(d); err != nil {
		return err
	}
	if t.Fee, err = d.DecodeInt64(); err != nil {
		return err
	}
	if _, err = feeBumpInnerTxTypes.Decode(d); err != nil {
		return err
	}
	t.InnerTx = &TransactionV1Envelope{}
	if err = t.InnerTx.DecodeXDR(d); err != nil {
		return err
	}
	return t.Ext.DecodeXDR(d)
}
