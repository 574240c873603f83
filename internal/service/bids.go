package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/auctionsight7000-backend/internal/model"
)

type mergeMode int

const (
	mergePrepend mergeMode = iota
	mergeAppend
)

// mergeBids concatenates a fetched batch with the existing newest-first
// history. Forward sync prepends newer batches, backfill appends older ones.
// No deduplication: sync windows never overlap.
func mergeBids(existing, batch []model.BidEvent, mode mergeMode) []model.BidEvent {
	if len(batch) == 0 {
		return existing
	}

	merged := make([]model.BidEvent, 0, len(existing)+len(batch))
	if mode == mergePrepend {
		merged = append(merged, batch...)
		merged = append(merged, existing...)
	} else {
		merged = append(merged, existing...)
		merged = append(merged, batch...)
	}
	return merged
}

// fetchBidEvents queries Bid logs over [fromBlock, toBlock] and returns them
// newest first.
func (s *Service) fetchBidEvents(ctx context.Context, a *model.Auction, fromBlock, toBlock uint64) ([]model.BidEvent, error) {
	logs, err := s.reader.BidLogs(ctx, a.ID, fromBlock, toBlock)
	if err != nil {
		return nil, fmt.Errorf("fetching bid logs for auction %s: %w", a.ID, err)
	}

	events := make([]model.BidEvent, 0, len(logs))
	for i := len(logs) - 1; i >= 0; i-- {
		events = append(events, model.BidEvent{
			AuctionID: a.ID,
			Bidder:    logs[i].Bidder,
			Block:     logs[i].Block,
			LogIndex:  logs[i].LogIndex,
			TxHash:    logs[i].TxHash,
			Value:     logs[i].Value,
		})
	}

	s.logger.Debug("bid events fetched",
		zap.String("auction", a.ID.String()),
		zap.Uint64("from_block", fromBlock),
		zap.Uint64("to_block", toBlock),
		zap.Int("events", len(events)))

	return events, nil
}

// archiveBids hands a batch to the archiver. Archiving is best effort.
func (s *Service) archiveBids(ctx context.Context, batch []model.BidEvent) {
	if s.archiver == nil || len(batch) == 0 {
		return
	}
	if err := s.archiver.ArchiveBids(ctx, batch); err != nil {
		s.logger.Warn("archiving bid events failed", zap.Error(err))
	}
}
