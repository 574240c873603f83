package service

import (
	"context"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/auctionsight7000-backend/internal/model"
)

// SyncAuctionProvenance locates the auction's initiating log and, once the
// auction is settled, its settlement log. Finding the initiating log pins the
// creation block exactly and recomputes the sync horizon from it.
func (s *Service) SyncAuctionProvenance(ctx context.Context, id *big.Int) error {
	a, ok := s.store.Auction(id)
	if !ok {
		return fmt.Errorf("auction %s not found", id)
	}

	unlock := s.store.LockAuction(id)
	defer unlock()

	return s.syncProvenance(ctx, a)
}

func (s *Service) syncProvenance(ctx context.Context, a *model.Auction) error {
	needInit := a.InitEvent == nil
	needSettle := a.Settled && a.SettleEvent == nil
	if !needInit && !needSettle {
		return nil
	}

	head, err := s.reader.BlockNumber(ctx)
	if err != nil {
		return err
	}
	to := min(head, a.UntilBlockEstimate)

	for lo := a.CreatedBlockEstimate; lo <= to; {
		hi := min(lo+s.cfg.MaxBlockRange, to)

		if needInit {
			inits, err := s.reader.InitLogs(ctx, a.ID, lo, hi)
			if err != nil {
				return err
			}
			if len(inits) > 0 {
				init := inits[0]
				a.InitEvent = &model.InitEvent{
					Block:    init.Block,
					LogIndex: init.LogIndex,
					TxHash:   init.TxHash,
				}
				a.CreatedBlockEstimate = init.Block
				a.CreatedBlockExact = true
				a.UntilBlockEstimate = s.exactUntil(init.Block, a.BidsFetchedUntilBlock)
				needInit = false

				s.logger.Info("creation block pinned",
					zap.String("auction", a.ID.String()),
					zap.Uint64("created_block", init.Block),
					zap.Uint64("until_block", a.UntilBlockEstimate))
			}
		}

		if needSettle {
			settles, err := s.reader.SettleLogs(ctx, a.ID, lo, hi)
			if err != nil {
				return err
			}
			if len(settles) > 0 {
				settle := settles[0]
				sender, err := s.reader.TransactionSender(ctx, settle.TxHash)
				if err != nil {
					return err
				}
				a.SettleEvent = &model.SettleEvent{
					Block:    settle.Block,
					LogIndex: settle.LogIndex,
					TxHash:   settle.TxHash,
					From:     sender,
				}
				needSettle = false
			}
		}

		if !needInit && !needSettle {
			break
		}
		if hi == to {
			break
		}
		lo = hi + 1
	}

	return nil
}
