package service

// roundedBlockDelta converts a timestamp delta in seconds into a block delta,
// rounding half away from zero.
func (s *Service) roundedBlockDelta(seconds int64) int64 {
	blockTime := int64(s.cfg.AverageBlockTime.Seconds())
	if seconds >= 0 {
		return (seconds + blockTime/2) / blockTime
	}
	return -((-seconds + blockTime/2) / blockTime)
}

// estimateWindow derives the [created, until] block window of an auction from
// its end timestamp. Until an AuctionInitialised log pins the creation block,
// both bounds are estimates: the end block is projected from the timestamp
// delta at the average block time, and the creation bound trails it by the
// mint window less the safety margin.
func (s *Service) estimateWindow(endTimestamp, currentBlock uint64) (created, until uint64) {
	delta := s.roundedBlockDelta(int64(endTimestamp) - s.now().Unix())

	end := int64(currentBlock) + delta
	if end < 0 {
		end = 0
	}
	until = uint64(end)

	start := end - int64(s.cfg.BlocksPerMintWindow) + int64(s.cfg.CreationSafetyMargin)
	if start < 0 {
		start = 0
	}
	created = uint64(start)
	return created, until
}

// exactUntil recomputes the sync horizon once the creation block is known
// exactly. The horizon never shrinks below what forward sync already covered.
func (s *Service) exactUntil(createdBlock, fetchedUntil uint64) uint64 {
	until := createdBlock + s.cfg.BlocksPerMintWindow + s.cfg.CreationSafetyMargin
	if until < fetchedUntil {
		until = fetchedUntil
	}
	return until
}
