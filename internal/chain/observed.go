package chain

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/goodnatureofminers/auctionsight7000-backend/internal/model"
)

type (
	// ReaderMetrics records metrics for provider calls.
	ReaderMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// ObservedReader wraps a Reader with metrics instrumentation.
type ObservedReader struct {
	inner   Reader
	metrics ReaderMetrics
}

// NewObservedReader constructs an instrumented Reader.
func NewObservedReader(inner Reader, metrics ReaderMetrics) *ObservedReader {
	return &ObservedReader{
		inner:   inner,
		metrics: metrics,
	}
}

func (r *ObservedReader) BlockNumber(ctx context.Context) (head uint64, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("block_number", err, started)
	}()
	return r.inner.BlockNumber(ctx)
}

func (r *ObservedReader) LatestAuctionID(ctx context.Context) (id *big.Int, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("latest_auction_id", err, started)
	}()
	return r.inner.LatestAuctionID(ctx)
}

func (r *ObservedReader) AuctionState(ctx context.Context, id *big.Int) (state AuctionState, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("auction_state", err, started)
	}()
	return r.inner.AuctionState(ctx, id)
}

func (r *ObservedReader) CurrentBidPrice(ctx context.Context, id *big.Int) (price *big.Int, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("current_bid_price", err, started)
	}()
	return r.inner.CurrentBidPrice(ctx, id)
}

func (r *ObservedReader) TokenURI(ctx context.Context, collection common.Address, tokenID *big.Int, standard model.TokenStandard) (uri string, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("token_uri", err, started)
	}()
	return r.inner.TokenURI(ctx, collection, tokenID, standard)
}

func (r *ObservedReader) BidLogs(ctx context.Context, id *big.Int, fromBlock, toBlock uint64) (logs []BidLog, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("bid_logs", err, started)
	}()
	return r.inner.BidLogs(ctx, id, fromBlock, toBlock)
}

func (r *ObservedReader) InitLogs(ctx context.Context, id *big.Int, fromBlock, toBlock uint64) (logs []InitLog, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("init_logs", err, started)
	}()
	return r.inner.InitLogs(ctx, id, fromBlock, toBlock)
}

func (r *ObservedReader) SettleLogs(ctx context.Context, id *big.Int, fromBlock, toBlock uint64) (logs []SettleLog, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("settle_logs", err, started)
	}()
	return r.inner.SettleLogs(ctx, id, fromBlock, toBlock)
}

func (r *ObservedReader) TransactionSender(ctx context.Context, txHash common.Hash) (sender common.Address, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("transaction_sender", err, started)
	}()
	return r.inner.TransactionSender(ctx, txHash)
}
