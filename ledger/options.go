package ledger

import (
	"log/slog"

	"github.com/blinklabs-io/gostellar/ledger/common"
)

type TransactionBuilderOptionFunc func(*TransactionBuilder)

// WithBaseFee sets the fee paid per operation. The default is MinBaseFee
func WithBaseFee(baseFee uint32) TransactionBuilderOptionFunc {
	return func(b *TransactionBuilder) {
		b.baseFee = baseFee
	}
}

// WithFee sets the total transaction fee, replacing the computed default
func WithFee(fee uint32) TransactionBuilderOptionFunc {
	return func(b *TransactionBuilder) {
		b.fee = &fee
	}
}

func WithMemo(memo common.Memo) TransactionBuilderOptionFunc {
	return func(b *TransactionBuilder) {
		b.memo = memo
	}
}

func WithPreconditions(cond common.Preconditions) TransactionBuilderOptionFunc {
	return func(b *TransactionBuilder) {
		b.cond = cond
	}
}

// WithTimeBounds limits the validity of the transaction to [minTime, maxTime].
// A maxTime of 0 means no upper bound
func WithTimeBounds(minTime uint64, maxTime uint64) TransactionBuilderOptionFunc {
	return func(b *TransactionBuilder) {
		bounds := common.TimeBounds{MinTime: minTime, MaxTime: maxTime}
		if v2, ok := b.cond.(common.PreconditionsV2); ok {
			v2.TimeBounds = &bounds
			b.cond = v2
			return
		}
		b.cond = bounds
	}
}

// WithSorobanData attaches Soroban resources. Their resource fee is added to the computed fee
func WithSorobanData(data common.SorobanTransactionData) TransactionBuilderOptionFunc {
	return func(b *TransactionBuilder) {
		b.sorobanData = &data
	}
}

func WithLogger(logger *slog.Logger) TransactionBuilderOptionFunc {
	return func(b *TransactionBuilder) {
		b.logger = logger
	}
}
