package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/auctionsight7000-backend/internal/model"
	"github.com/goodnatureofminers/auctionsight7000-backend/pkg/safe"
)

// InsertBidEvents stores bid event rows. The table is a ReplacingMergeTree
// keyed by (auction_id, block, log_index), so re-inserting rows after a bid
// history rebuild deduplicates on merge.
func (r *Repository) InsertBidEvents(ctx context.Context, events []model.BidEvent) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_bid_events", err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	const query = `
INSERT INTO auction_bid_events (
	auction_id,
	bidder,
	block,
	log_index,
	tx_hash,
	value
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare bid events batch: %w", err)
	}

	for _, event := range events {
		logIndex, convErr := safe.Uint32(event.LogIndex)
		if convErr != nil {
			err = fmt.Errorf("bid event log index: %w", convErr)
			return err
		}
		if err = batch.Append(
			event.AuctionID,
			event.Bidder.Hex(),
			event.Block,
			logIndex,
			event.TxHash.Hex(),
			event.Value,
		); err != nil {
			return fmt.Errorf("append bid event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert bid events: %w", err)
	}
	return nil
}
