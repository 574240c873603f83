package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/auctionsight7000-backend/internal/clock"
	"github.com/goodnatureofminers/auctionsight7000-backend/internal/store"
	"github.com/goodnatureofminers/auctionsight7000-backend/pkg/safe"
	"github.com/goodnatureofminers/auctionsight7000-backend/pkg/workerpool"
)

const (
	defaultSyncInterval    = 30 * time.Second
	defaultSyncWorkerCount = 8
)

// Syncer drives the engine continuously: every round it discovers the latest
// auction, syncs each auction once across a worker pool, and snapshots the
// store between rounds.
type Syncer struct {
	logger       *zap.Logger
	service      *Service
	store        *store.Store
	snapshotPath string
	syncInterval time.Duration
	workerCount  int
}

// NewSyncer builds the sync daemon. An empty snapshotPath disables
// persistence.
func NewSyncer(svc *Service, st *store.Store, snapshotPath string, logger *zap.Logger) (*Syncer, error) {
	if svc == nil {
		return nil, errors.New("service is required")
	}
	if st == nil {
		return nil, errors.New("store is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &Syncer{
		logger:       logger,
		service:      svc,
		store:        st,
		snapshotPath: snapshotPath,
		syncInterval: defaultSyncInterval,
		workerCount:  defaultSyncWorkerCount,
	}, nil
}

// Run loops sync rounds until the context is cancelled. A failed round is
// logged and retried after the regular interval.
func (s *Syncer) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.run(ctx); err != nil {
			s.logger.Warn("sync round failed",
				zap.Error(err),
				zap.Duration("retry_in", s.syncInterval))
		}
		if err := clock.SleepWithContext(ctx, s.syncInterval); err != nil {
			return err
		}
	}
}

func (s *Syncer) run(ctx context.Context) error {
	started := time.Now()

	latest, err := s.service.FetchLatestAuction(ctx)
	if err != nil {
		return err
	}

	counter, err := safe.UintFromBig(latest)
	if err != nil {
		return fmt.Errorf("auction counter %s: %w", latest, err)
	}
	count, err := safe.Uint32(counter)
	if err != nil {
		return fmt.Errorf("auction counter %s: %w", latest, err)
	}

	// Auction ids are a dense counter starting at 1.
	ids := make([]*big.Int, 0, count)
	for id := int64(1); id <= int64(count); id++ {
		ids = append(ids, big.NewInt(id))
	}

	err = workerpool.Process(ctx, s.workerCount, ids, s.syncAuction)
	if err != nil {
		return err
	}

	if s.snapshotPath != "" {
		if err := s.store.Save(s.snapshotPath); err != nil {
			return err
		}
	}

	s.logger.Info("sync round finished",
		zap.Int("auctions", len(ids)),
		zap.Duration("took", time.Since(started)))
	return nil
}

func (s *Syncer) syncAuction(ctx context.Context, id *big.Int) error {
	// Creates the auction on first sight, refreshes its mutable contract
	// state on every later round.
	if _, err := s.service.GetAuction(ctx, id); err != nil {
		return err
	}
	if err := s.service.SyncAuctionBids(ctx, id); err != nil {
		return err
	}
	if err := s.service.BackfillAuctionBids(ctx, id); err != nil {
		return err
	}
	if err := s.service.SyncAuctionProvenance(ctx, id); err != nil {
		return err
	}

	if a, ok := s.store.Auction(id); ok && a.LatestBidder != (common.Address{}) {
		if _, err := s.service.FetchUserProfile(ctx, a.LatestBidder); err != nil {
			s.logger.Debug("profile refresh failed",
				zap.String("address", a.LatestBidder.Hex()),
				zap.Error(err))
		}
	}
	return nil
}
