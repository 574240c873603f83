// Package service implements the auction synchronization engine: incremental
// forward and backward bid sync, divergence repair, provenance discovery and
// the block-TTL profile cache.
package service

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/goodnatureofminers/auctionsight7000-backend/internal/chain"
	"github.com/goodnatureofminers/auctionsight7000-backend/internal/metadata"
	"github.com/goodnatureofminers/auctionsight7000-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ChainReader is the authoritative on-chain surface the engine syncs from.
	ChainReader interface {
		BlockNumber(ctx context.Context) (uint64, error)
		LatestAuctionID(ctx context.Context) (*big.Int, error)
		AuctionState(ctx context.Context, id *big.Int) (chain.AuctionState, error)
		CurrentBidPrice(ctx context.Context, id *big.Int) (*big.Int, error)
		TokenURI(ctx context.Context, collection common.Address, tokenID *big.Int, standard model.TokenStandard) (string, error)
		BidLogs(ctx context.Context, id *big.Int, fromBlock, toBlock uint64) ([]chain.BidLog, error)
		InitLogs(ctx context.Context, id *big.Int, fromBlock, toBlock uint64) ([]chain.InitLog, error)
		SettleLogs(ctx context.Context, id *big.Int, fromBlock, toBlock uint64) ([]chain.SettleLog, error)
		TransactionSender(ctx context.Context, txHash common.Hash) (common.Address, error)
	}

	// ProfileResolver resolves reverse names and profile text records.
	ProfileResolver interface {
		ReverseName(ctx context.Context, address common.Address) (string, error)
		Text(ctx context.Context, name, key string) (string, error)
	}

	// MetadataClient fetches and parses a token metadata document.
	MetadataClient interface {
		Fetch(ctx context.Context, uri string) (metadata.TokenMetadata, error)
	}

	// BidArchiver receives every merged bid batch. Optional; archive failures
	// never fail a sync.
	BidArchiver interface {
		ArchiveBids(ctx context.Context, bids []model.BidEvent) error
	}

	// SyncMetrics records engine-level observations.
	SyncMetrics interface {
		ObserveForwardSync(err error, events int, started time.Time)
		ObserveBackfill(err error, events int, started time.Time)
		ObserveConsistencyRepair()
		ObserveProfileFetch(err error, cacheHit bool, started time.Time)
	}
)
