package clickhouse

import (
	"github.com/golang/mock/gomock"

	"github.com/goodnatureofminers/auctionsight7000-backend/internal/model"
)

func (s *RepositorySuite) TestInsertBidEvents() {
	events := []model.BidEvent{
		newBidEvent(1, 100, 0, 1000),
		newBidEvent(1, 105, 2, 2000),
		newBidEvent(2, 105, 3, 1500),
	}

	s.metrics.EXPECT().Observe("insert_bid_events", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertBidEvents(s.testCtx, events))
	s.Equal(uint64(len(events)), s.countRows("auction_bid_events"))
}

func (s *RepositorySuite) TestInsertBidEventsDeduplicatesOnKey() {
	event := newBidEvent(3, 200, 1, 5000)

	s.metrics.EXPECT().Observe("insert_bid_events", gomock.Nil(), gomock.Any()).Times(2)

	s.Require().NoError(s.repo.InsertBidEvents(s.testCtx, []model.BidEvent{event}))
	s.Require().NoError(s.repo.InsertBidEvents(s.testCtx, []model.BidEvent{event}))

	rows, err := s.repo.conn.Query(s.testCtx, `
SELECT count()
FROM auction_bid_events FINAL
WHERE auction_id = ?`, event.AuctionID)
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(rows.Close())
	}()

	var count uint64
	s.Require().True(rows.Next())
	s.Require().NoError(rows.Scan(&count))
	s.Equal(uint64(1), count)
}
