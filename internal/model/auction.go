// Package model defines the auction, bid and user entities tracked by the store.
package model

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// TokenStandard identifies the token standard of an auctioned asset.
type TokenStandard uint16

const (
	StandardERC721  TokenStandard = 721
	StandardERC1155 TokenStandard = 1155
)

// Collection is the contract an auctioned token belongs to.
type Collection struct {
	Address  common.Address `json:"address"`
	Standard TokenStandard  `json:"tokenStandard"`
}

// Token carries the display metadata of the auctioned asset. It is fetched
// once when the auction entity is created and never updated afterwards.
type Token struct {
	ID           *big.Int `json:"tokenId"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	AnimationURL string   `json:"animationUrl,omitempty"`
}

// BidEvent is one decoded Bid log. Immutable once constructed; uniquely
// identified by (Block, LogIndex).
type BidEvent struct {
	AuctionID *big.Int       `json:"auctionId"`
	Bidder    common.Address `json:"address"`
	Block     uint64         `json:"block"`
	LogIndex  uint           `json:"logIndex"`
	TxHash    common.Hash    `json:"tx"`
	Value     *big.Int       `json:"value"`
}

// InitEvent records where the auction's initiating log was found.
type InitEvent struct {
	Block    uint64      `json:"block"`
	LogIndex uint        `json:"logIndex"`
	TxHash   common.Hash `json:"tx"`
}

// SettleEvent records the settlement log and the account that settled.
type SettleEvent struct {
	Block    uint64         `json:"block"`
	LogIndex uint           `json:"logIndex"`
	TxHash   common.Hash    `json:"tx"`
	From     common.Address `json:"from"`
}

// Auction is the locally cached projection of one on-chain auction.
//
// Bids is ordered newest-first, sorted strictly descending by
// (Block, LogIndex). The watermarks obey
//
//	CreatedBlockEstimate <= BidsBackfilledUntilBlock <= BidsFetchedUntilBlock <= UntilBlockEstimate
//
// whenever backfill has started. BidsBackfilledUntilBlock == 0 means no
// backfill has happened yet.
type Auction struct {
	ID         *big.Int   `json:"id"`
	Collection Collection `json:"collection"`
	Token      Token      `json:"token"`

	// Amount is the quantity under auction; always 1 for ERC-721.
	Amount *big.Int `json:"amount"`

	EndTimestamp    uint64         `json:"endTimestamp"`
	Settled         bool           `json:"settled"`
	LatestBid       *big.Int       `json:"latestBid"`
	LatestBidder    common.Address `json:"latestBidder"`
	Beneficiary     common.Address `json:"beneficiary"`
	CurrentBidPrice *big.Int       `json:"currentBidPrice,omitempty"`

	// CreatedBlockEstimate is a timestamp-derived guess until the initiating
	// log has been located; then it is the exact block and never changes.
	CreatedBlockEstimate uint64 `json:"createdBlockEstimate"`
	CreatedBlockExact    bool   `json:"createdBlockExact"`
	UntilBlockEstimate   uint64 `json:"untilBlockEstimate"`

	BidsFetchedUntilBlock    uint64 `json:"bidsFetchedUntilBlock"`
	BidsBackfilledUntilBlock uint64 `json:"bidsBackfilledUntilBlock"`

	Bids []BidEvent `json:"bids"`

	InitEvent   *InitEvent   `json:"initEvent,omitempty"`
	SettleEvent *SettleEvent `json:"settleEvent,omitempty"`
}

// Backfilled reports whether backward sync has reached the creation block.
func (a *Auction) Backfilled() bool {
	return a.BidsBackfilledUntilBlock != 0 && a.BidsBackfilledUntilBlock <= a.CreatedBlockEstimate
}

// LatestSyncedBid returns the newest locally synced bid, or nil.
func (a *Auction) LatestSyncedBid() *BidEvent {
	if len(a.Bids) == 0 {
		return nil
	}
	return &a.Bids[0]
}
