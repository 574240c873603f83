package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/ratelimit"

	"github.com/goodnatureofminers/auctionsight7000-backend/internal/model"
)

// RateLimitedReader paces every provider call through a shared limiter. The
// provider enforces request quotas; blocking locally is cheaper than getting
// throttled remotely.
type RateLimitedReader struct {
	inner Reader
	rl    ratelimit.Limiter
}

// NewRateLimitedReader wraps a Reader with a requests-per-second cap.
func NewRateLimitedReader(inner Reader, rps int) *RateLimitedReader {
	return &RateLimitedReader{
		inner: inner,
		rl:    ratelimit.New(rps),
	}
}

func (r *RateLimitedReader) BlockNumber(ctx context.Context) (uint64, error) {
	r.rl.Take()
	return r.inner.BlockNumber(ctx)
}

func (r *RateLimitedReader) LatestAuctionID(ctx context.Context) (*big.Int, error) {
	r.rl.Take()
	return r.inner.LatestAuctionID(ctx)
}

func (r *RateLimitedReader) AuctionState(ctx context.Context, id *big.Int) (AuctionState, error) {
	r.rl.Take()
	return r.inner.AuctionState(ctx, id)
}

func (r *RateLimitedReader) CurrentBidPrice(ctx context.Context, id *big.Int) (*big.Int, error) {
	r.rl.Take()
	return r.inner.CurrentBidPrice(ctx, id)
}

func (r *RateLimitedReader) TokenURI(ctx context.Context, collection common.Address, tokenID *big.Int, standard model.TokenStandard) (string, error) {
	r.rl.Take()
	return r.inner.TokenURI(ctx, collection, tokenID, standard)
}

func (r *RateLimitedReader) BidLogs(ctx context.Context, id *big.Int, fromBlock, toBlock uint64) ([]BidLog, error) {
	r.rl.Take()
	return r.inner.BidLogs(ctx, id, fromBlock, toBlock)
}

func (r *RateLimitedReader) InitLogs(ctx context.Context, id *big.Int, fromBlock, toBlock uint64) ([]InitLog, error) {
	r.rl.Take()
	return r.inner.InitLogs(ctx, id, fromBlock, toBlock)
}

func (r *RateLimitedReader) SettleLogs(ctx context.Context, id *big.Int, fromBlock, toBlock uint64) ([]SettleLog, error) {
	r.rl.Take()
	return r.inner.SettleLogs(ctx, id, fromBlock, toBlock)
}

func (r *RateLimitedReader) TransactionSender(ctx context.Context, txHash common.Hash) (common.Address, error) {
	r.rl.Take()
	return r.inner.TransactionSender(ctx, txHash)
}
