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

package ledger_test

import (
	"errors"
	"math"
	"testing"

	"github.com/blinklabs-io/gostellar/ledger"
	"github.com/blinklabs-io/gostellar/ledger/common"
	"github.com/blinklabs-io/gostellar/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderFee(t *testing.T) {
	testDefs := []struct {
		name     string
		opts     []ledger.TransactionBuilderOptionFunc
		extraOps int
		fee      uint32
	}{
		{
			name: "default",
			fee:  100,
		},
		{
			name:     "per operation",
			opts:     []ledger.TransactionBuilderOptionFunc{ledger.WithBaseFee(250)},
			extraOps: 2,
			fee:      750,
		},
		{
			name:     "explicit",
			opts:     []ledger.TransactionBuilderOptionFunc{ledger.WithFee(1234)},
			extraOps: 4,
			fee:      1234,
		},
		{
			name: "resource fee",
			opts: []ledger.TransactionBuilderOptionFunc{
				ledger.WithSorobanData(common.SorobanTransactionData{ResourceFee: 5000}),
			},
			fee: 5100,
		},
	}
	for _, testDef := range testDefs {
		builder := paymentBuilder(t, testDef.opts...)
		for range testDef.extraOps {
			builder.AddOperation(common.Operation{Body: common.InflationOp{}})
		}
		fee, err := builder.Fee()
		require.NoError(t, err, testDef.name)
		assert.Equal(t, testDef.fee, fee, testDef.name)
		pending, err := builder.Build()
		require.NoError(t, err, testDef.name)
		assert.Equal(t, testDef.fee, pending.Transaction().Fee, testDef.name)
	}
}

func TestBuilderSorobanExt(t *testing.T) {
	data := common.SorobanTransactionData{ResourceFee: 10}
	pending, err := paymentBuilder(t, ledger.WithSorobanData(data)).Build()
	require.NoError(t, err)
	assert.True(t, pending.Transaction().IsSoroban())

	// The extension arm is part of the signed bytes
	plain, err := paymentBuilder(t, ledger.WithFee(110)).Build()
	require.NoError(t, err)
	testnetId := hashFromHex(t, testnetIdHex)
	assert.NotEqual(t, plain.Hash(testnetId), pending.Hash(testnetId))
}

func TestBuilderValidation(t *testing.T) {
	alice := testSigner(t, "alice").AccountId().ToMuxedAccount()
	payment := common.Operation{Body: common.InflationOp{}}

	testDefs := []struct {
		name    string
		builder *ledger.TransactionBuilder
	}{
		{
			name:    "no source",
			builder: ledger.NewTransactionBuilder(nil, 1).AddOperation(payment),
		},
		{
			name:    "no operations",
			builder: ledger.NewTransactionBuilder(alice, 1),
		},
		{
			name: "too many operations",
			builder: ledger.NewTransactionBuilder(alice, 1).
				AddOperation(make([]common.Operation, common.MaxOperationsPerTransaction+1)...),
		},
		{
			name:    "operation without body",
			builder: ledger.NewTransactionBuilder(alice, 1).AddOperation(common.Operation{}),
		},
		{
			name: "no memo",
			builder: ledger.NewTransactionBuilder(alice, 1, ledger.WithMemo(nil)).
				AddOperation(payment),
		},
		{
			name: "fee overflow",
			builder: ledger.NewTransactionBuilder(alice, 1, ledger.WithBaseFee(math.MaxUint32)).
				AddOperation(payment, payment),
		},
		{
			name: "negative resource fee",
			builder: ledger.NewTransactionBuilder(
				alice,
				1,
				ledger.WithSorobanData(common.SorobanTransactionData{ResourceFee: -1}),
			).AddOperation(payment),
		},
	}
	for _, testDef := range testDefs {
		_, err := testDef.builder.Build()
		require.Error(t, err, testDef.name)
		assert.True(t, errors.Is(err, ledger.ErrInvalidArgument), testDef.name)
		var argErr ledger.InvalidArgumentError
		assert.True(t, errors.As(err, &argErr), testDef.name)
	}
}

func TestBuilderNilPointerSource(t *testing.T) {
	var source *common.MuxedAccountMed25519
	builder := ledger.NewTransactionBuilder(source, 1).
		AddOperation(common.Operation{Body: common.InflationOp{}})
	var err error
	require.NotPanics(t, func() {
		_, err = builder.Build()
	})
	assert.ErrorIs(t, err, xdr.ErrInvalidEncoding)
}

func TestBuilderPreconditions(t *testing.T) {
	pending, err := paymentBuilder(t, ledger.WithTimeBounds(10, 20)).Build()
	require.NoError(t, err)
	assert.Equal(t, common.TimeBounds{MinTime: 10, MaxTime: 20}, pending.Transaction().Cond)

	minSeq := int64(1)
	pending, err = paymentBuilder(
		t,
		ledger.WithPreconditions(common.PreconditionsV2{MinSeqNum: &minSeq}),
		ledger.WithTimeBounds(0, 30),
	).Build()
	require.NoError(t, err)
	cond, ok := pending.Transaction().Cond.(common.PreconditionsV2)
	require.True(t, ok)
	require.NotNil(t, cond.TimeBounds)
	assert.Equal(t, uint64(30), cond.TimeBounds.MaxTime)
	assert.Equal(t, &minSeq, cond.MinSeqNum)
}

func TestBuilderCopiesOperations(t *testing.T) {
	builder := paymentBuilder(t)
	pending, err := builder.Build()
	require.NoError(t, err)
	builder.AddOperation(common.Operation{Body: common.InflationOp{}})
	assert.Len(t, pending.Transaction().Operations, 1)

	memo, err := common.NewMemoText("invoice 42")
	require.NoError(t, err)
	withMemo, err := paymentBuilder(t, ledger.WithMemo(memo)).Build()
	require.NoError(t, err)
	testnetId := hashFromHex(t, testnetIdHex)
	assert.NotEqual(t, pending.Hash(testnetId), withMemo.Hash(testnetId))
}
