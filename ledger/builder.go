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
	"math"
	"slices"

	"github.com/blinklabs-io/gostellar/ledger/common"
)

// MinBaseFee is the lowest fee per operation accepted by the network, in stroops
const MinBaseFee = 100

// TransactionBuilder assembles a v1 transaction
type TransactionBuilder struct {
	source      common.MuxedAccount
	seqNum      int64
	baseFee     uint32
	fee         *uint32
	memo        common.Memo
	cond        common.Preconditions
	sorobanData *common.SorobanTransactionData
	operations  []common.Operation
	logger      *slog.Logger
}

// NewTransactionBuilder returns a builder for a transaction from source using
// sequence number seqNum, which is the account's current sequence number plus one
func NewTransactionBuilder(
	source common.MuxedAccount,
	seqNum int64,
	opts ...TransactionBuilderOptionFunc,
) *TransactionBuilder {
	b := &TransactionBuilder{
		source:  source,
		seqNum:  seqNum,
		baseFee: MinBaseFee,
		memo:    common.MemoNone{},
		cond:    common.PreconditionsNone{},
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	return b
}

// AddOperation appends operations to the transaction
func (b *TransactionBuilder) AddOperation(ops ...common.Operation) *TransactionBuilder {
	b.operations = append(b.operations, ops...)
	return b
}

// Fee returns the fee Build will use: the explicit fee if one was set, otherwise
// the base fee for every operation plus the Soroban resource fee
func (b *TransactionBuilder) Fee() (uint32, error) {
	if b.fee != nil {
		return *b.fee, nil
	}
	total := uint64(b.baseFee) * uint64(len(b.operations))
	if b.sorobanData != nil {
		if b.sorobanData.ResourceFee < 0 {
			return 0, invalidArgument("resource fee", "negative", nil)
		}
		total += uint64(b.sorobanData.ResourceFee)
	}
	if total > math.MaxUint32 {
		return 0, invalidArgument(
			"fee",
			fmt.Sprintf("%d overflows uint32", total),
			nil,
		)
	}
	return uint32(total), nil
}

// Build validates the transaction and encodes it for signing
func (b *TransactionBuilder) Build() (*PendingTransaction, error) {
	fee, err := b.Fee()
	if err != nil {
		return nil, err
	}
	tx := Transaction{
		SourceAccount: b.source,
		Fee:           fee,
		SeqNum:        b.seqNum,
		Cond:          b.cond,
		Memo:          b.memo,
		Operations:    slices.Clone(b.operations),
		Ext:           TransactionExt{SorobanData: b.sorobanData},
	}
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	pending, err := NewPendingTransaction(tx, b.logger)
	if err != nil {
		return nil, fmt.Errorf("encode transaction: %w", err)
	}
	b.logger.Debug(
		"built transaction",
		"source", b.source.Address(),
		"operations", len(b.operations),
		"fee", fee,
	)
	return pending, nil
}
