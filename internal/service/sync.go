package service

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/auctionsight7000-backend/internal/model"
)

// SyncAuctionBids advances the auction's bid history towards the chain head.
// A single call covers at most MaxBlockRange blocks; when the auction is far
// behind it jumps forward and leaves the skipped span to backfill.
func (s *Service) SyncAuctionBids(ctx context.Context, id *big.Int) error {
	a, ok := s.store.Auction(id)
	if !ok {
		return fmt.Errorf("auction %s not found", id)
	}

	unlock := s.store.LockAuction(id)
	defer unlock()

	return s.syncBids(ctx, a, true)
}

// BackfillAuctionBids closes one MaxBlockRange window of the gap between the
// backfill watermark and the creation bound. No-op once the gap is closed.
func (s *Service) BackfillAuctionBids(ctx context.Context, id *big.Int) error {
	a, ok := s.store.Auction(id)
	if !ok {
		return fmt.Errorf("auction %s not found", id)
	}

	unlock := s.store.LockAuction(id)
	defer unlock()

	return s.backfillBids(ctx, a)
}

// syncBids runs one forward sync pass. The caller holds the auction lock.
func (s *Service) syncBids(ctx context.Context, a *model.Auction, allowRepair bool) (err error) {
	started := time.Now()
	events := 0
	defer func() { s.metrics.ObserveForwardSync(err, events, started) }()

	head, err := s.reader.BlockNumber(ctx)
	if err != nil {
		return err
	}

	toBlock := min(head, a.UntilBlockEstimate)
	if a.BidsFetchedUntilBlock >= toBlock {
		s.logger.Debug("bids already synced",
			zap.String("auction", a.ID.String()),
			zap.Uint64("fetched_until", a.BidsFetchedUntilBlock))
		return nil
	}

	var fromBlock uint64
	maxRangeBlock := int64(toBlock) - int64(s.cfg.MaxBlockRange)
	switch {
	case int64(a.BidsFetchedUntilBlock) > maxRangeBlock:
		fromBlock = a.BidsFetchedUntilBlock + 1
	case maxRangeBlock > int64(a.CreatedBlockEstimate):
		// Too far behind to catch up in one query. Jump ahead and let
		// backfill close the gap.
		fromBlock = uint64(maxRangeBlock)
	default:
		fromBlock = a.CreatedBlockEstimate
	}

	batch, err := s.fetchBidEvents(ctx, a, fromBlock, toBlock)
	if err != nil {
		return err
	}
	events = len(batch)

	a.Bids = mergeBids(a.Bids, batch, mergePrepend)
	a.BidsFetchedUntilBlock = toBlock
	if a.BidsBackfilledUntilBlock == 0 {
		a.BidsBackfilledUntilBlock = fromBlock
	}
	s.archiveBids(ctx, batch)

	if len(batch) > 0 {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return s.refreshAuction(gctx, a) })
		g.Go(func() error { return s.refreshMinimumBid(gctx, a) })
		if err = g.Wait(); err != nil {
			return err
		}
	}

	if allowRepair && a.BidsFetchedUntilBlock >= head {
		return s.repairIfInconsistent(ctx, a)
	}
	return nil
}

// repairIfInconsistent compares the newest synced bid against the contract's
// latest bid once sync has reached the head. On divergence the bid history is
// discarded and rebuilt from scratch. The rebuild itself runs with repair
// disabled so a persistently inconsistent provider cannot recurse.
func (s *Service) repairIfInconsistent(ctx context.Context, a *model.Auction) error {
	latest := a.LatestSyncedBid()
	if latest == nil || a.LatestBid == nil {
		return nil
	}
	if a.LatestBid.Cmp(latest.Value) == 0 {
		return nil
	}

	s.logger.Warn("bid history diverged from contract state, rebuilding",
		zap.String("auction", a.ID.String()),
		zap.String("contract_bid", a.LatestBid.String()),
		zap.String("synced_bid", latest.Value.String()))
	s.metrics.ObserveConsistencyRepair()

	a.Bids = nil
	a.BidsFetchedUntilBlock = 0
	a.BidsBackfilledUntilBlock = 0

	if err := s.syncBids(ctx, a, false); err != nil {
		return err
	}
	for a.BidsBackfilledUntilBlock > a.CreatedBlockEstimate {
		if err := s.backfillBids(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

// backfillBids closes one window. The caller holds the auction lock.
func (s *Service) backfillBids(ctx context.Context, a *model.Auction) (err error) {
	if a.BidsBackfilledUntilBlock <= a.CreatedBlockEstimate {
		return nil
	}

	started := time.Now()
	events := 0
	defer func() { s.metrics.ObserveBackfill(err, events, started) }()

	toBlock := a.BidsBackfilledUntilBlock - 1
	fromBlock := a.CreatedBlockEstimate
	if int64(toBlock)-int64(s.cfg.MaxBlockRange) > int64(a.CreatedBlockEstimate) {
		fromBlock = toBlock - s.cfg.MaxBlockRange
	}

	batch, err := s.fetchBidEvents(ctx, a, fromBlock, toBlock)
	if err != nil {
		return err
	}
	events = len(batch)

	a.Bids = mergeBids(a.Bids, batch, mergeAppend)
	a.BidsBackfilledUntilBlock = fromBlock
	s.archiveBids(ctx, batch)

	return nil
}
