package service

import (
	"context"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/auctionsight7000-backend/internal/metadata"
	"github.com/goodnatureofminers/auctionsight7000-backend/internal/model"
	"github.com/goodnatureofminers/auctionsight7000-backend/pkg/safe"
)

// FetchLatestAuction reads the contract's auction counter and records it in
// the store.
func (s *Service) FetchLatestAuction(ctx context.Context) (*big.Int, error) {
	id, err := s.reader.LatestAuctionID(ctx)
	if err != nil {
		return nil, err
	}
	s.store.SetLatestAuction(id)
	return id, nil
}

// GetAuction returns the auction, creating it on first access and refreshing
// its mutable contract state otherwise.
func (s *Service) GetAuction(ctx context.Context, id *big.Int) (*model.Auction, error) {
	unlock := s.store.LockAuction(id)
	defer unlock()

	a, ok := s.store.Auction(id)
	if !ok {
		return s.fetchAuction(ctx, id)
	}
	if err := s.refreshAuction(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// FetchAuction creates the auction entity from contract state and token
// metadata. Metadata failures fail the creation; an auction without its token
// is not worth tracking.
func (s *Service) FetchAuction(ctx context.Context, id *big.Int) (*model.Auction, error) {
	unlock := s.store.LockAuction(id)
	defer unlock()

	if a, ok := s.store.Auction(id); ok {
		return a, nil
	}
	return s.fetchAuction(ctx, id)
}

func (s *Service) fetchAuction(ctx context.Context, id *big.Int) (*model.Auction, error) {
	state, err := s.reader.AuctionState(ctx, id)
	if err != nil {
		return nil, err
	}

	endTimestamp, err := safe.Uint40FromBig(state.EndTimestamp)
	if err != nil {
		return nil, fmt.Errorf("auction %s end timestamp: %w", id, err)
	}

	standard := model.TokenStandard(state.TokenStandard)
	uri, err := s.reader.TokenURI(ctx, state.TokenContract, state.TokenId, standard)
	if err != nil {
		return nil, err
	}
	if standard == model.StandardERC1155 {
		uri = metadata.ExpandERC1155ID(uri, state.TokenId)
	}

	meta, err := s.metadata.Fetch(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("auction %s token metadata: %w", id, err)
	}

	head, err := s.reader.BlockNumber(ctx)
	if err != nil {
		return nil, err
	}
	created, until := s.estimateWindow(endTimestamp, head)

	a := &model.Auction{
		ID: new(big.Int).Set(id),
		Collection: model.Collection{
			Address:  state.TokenContract,
			Standard: standard,
		},
		Token: model.Token{
			ID:           state.TokenId,
			Name:         meta.Name,
			Description:  meta.Description,
			Image:        meta.Image,
			AnimationURL: meta.AnimationURL,
		},
		Amount:               state.TokenAmount,
		EndTimestamp:         endTimestamp,
		Settled:              state.Settled,
		LatestBid:            state.LatestBid,
		LatestBidder:         state.LatestBidder,
		Beneficiary:          state.Beneficiary,
		CreatedBlockEstimate: created,
		UntilBlockEstimate:   until,
	}
	s.store.PutAuction(a)

	s.logger.Info("auction tracked",
		zap.String("auction", id.String()),
		zap.String("collection", state.TokenContract.Hex()),
		zap.String("token", state.TokenId.String()),
		zap.Uint64("created_block_estimate", created),
		zap.Uint64("until_block_estimate", until))

	return a, nil
}

// refreshAuction re-reads the mutable contract fields and advances the sync
// window. The caller holds the auction lock.
func (s *Service) refreshAuction(ctx context.Context, a *model.Auction) error {
	state, err := s.reader.AuctionState(ctx, a.ID)
	if err != nil {
		return err
	}

	endTimestamp, err := safe.Uint40FromBig(state.EndTimestamp)
	if err != nil {
		return fmt.Errorf("auction %s end timestamp: %w", a.ID, err)
	}

	previousEnd := a.EndTimestamp
	a.EndTimestamp = endTimestamp
	a.Settled = state.Settled
	a.LatestBid = state.LatestBid
	a.LatestBidder = state.LatestBidder

	if a.CreatedBlockExact {
		// The creation block is pinned; only a bid-extended end moves
		// the horizon, by the equivalent block delta.
		if endTimestamp > previousEnd {
			a.UntilBlockEstimate += uint64(s.roundedBlockDelta(int64(endTimestamp - previousEnd)))
		}
		return nil
	}

	head, err := s.reader.BlockNumber(ctx)
	if err != nil {
		return err
	}
	created, until := s.estimateWindow(endTimestamp, head)
	if until < a.BidsFetchedUntilBlock {
		until = a.BidsFetchedUntilBlock
	}
	a.UntilBlockEstimate = until
	if a.BidsBackfilledUntilBlock == 0 {
		// Re-estimating the creation bound is only safe before backfill
		// anchors on it.
		a.CreatedBlockEstimate = created
	}
	return nil
}

// refreshMinimumBid reads the current price to outbid. The caller holds the
// auction lock.
func (s *Service) refreshMinimumBid(ctx context.Context, a *model.Auction) error {
	price, err := s.reader.CurrentBidPrice(ctx, a.ID)
	if err != nil {
		return err
	}
	a.CurrentBidPrice = price
	return nil
}

// FetchMinimumBid refreshes and returns the current price to outbid.
func (s *Service) FetchMinimumBid(ctx context.Context, id *big.Int) (*big.Int, error) {
	a, ok := s.store.Auction(id)
	if !ok {
		return nil, fmt.Errorf("auction %s not found", id)
	}

	unlock := s.store.LockAuction(id)
	defer unlock()

	if err := s.refreshMinimumBid(ctx, a); err != nil {
		return nil, err
	}
	return a.CurrentBidPrice, nil
}
