// Package chain reads auction state and event logs from an EVM provider.
package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/goodnatureofminers/auctionsight7000-backend/internal/model"
)

// ErrProvider marks chain RPC and log query failures. Callers decide whether
// to retry; nothing in this package retries internally.
var ErrProvider = errors.New("provider error")

func providerError(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(ErrProvider, err))
}

// Reader is the read-only surface the sync engine consumes.
type Reader interface {
	BlockNumber(ctx context.Context) (uint64, error)
	LatestAuctionID(ctx context.Context) (*big.Int, error)
	AuctionState(ctx context.Context, id *big.Int) (AuctionState, error)
	CurrentBidPrice(ctx context.Context, id *big.Int) (*big.Int, error)
	TokenURI(ctx context.Context, collection common.Address, tokenID *big.Int, standard model.TokenStandard) (string, error)
	BidLogs(ctx context.Context, id *big.Int, fromBlock, toBlock uint64) ([]BidLog, error)
	InitLogs(ctx context.Context, id *big.Int, fromBlock, toBlock uint64) ([]InitLog, error)
	SettleLogs(ctx context.Context, id *big.Int, fromBlock, toBlock uint64) ([]SettleLog, error)
	TransactionSender(ctx context.Context, txHash common.Hash) (common.Address, error)
}

// AuctionState mirrors the auctions(id) contract read with named fields.
// Field names match the ABI output names so unpacking is by name, never by
// tuple position.
type AuctionState struct {
	TokenContract common.Address
	TokenId       *big.Int
	TokenAmount   *big.Int
	TokenStandard uint16
	EndTimestamp  *big.Int
	Settled       bool
	LatestBid     *big.Int
	LatestBidder  common.Address
	Beneficiary   common.Address
}

// BidLog is one decoded Bid event, in provider order.
type BidLog struct {
	Block    uint64
	LogIndex uint
	TxHash   common.Hash
	Bidder   common.Address
	Value    *big.Int
}

// InitLog is the decoded AuctionInitialised event.
type InitLog struct {
	Block         uint64
	LogIndex      uint
	TxHash        common.Hash
	TokenContract common.Address
	TokenID       *big.Int
	Standard      uint16
	EndTimestamp  *big.Int
	Beneficiary   common.Address
}

// SettleLog is the decoded AuctionSettled event.
type SettleLog struct {
	Block       uint64
	LogIndex    uint
	TxHash      common.Hash
	Winner      common.Address
	Beneficiary common.Address
	Amount      *big.Int
}
