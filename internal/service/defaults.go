package service

import "time"

const (
	defaultMaxBlockRange        = 5000
	defaultBlocksPerMintWindow  = 7200
	defaultCreationSafetyMargin = 600
	defaultProfileCacheBlocks   = 300
	defaultAverageBlockTime     = 12 * time.Second
)

// Config bounds the engine's window arithmetic. Zero values are replaced by
// the defaults above.
type Config struct {
	// MaxBlockRange caps the span of a single log query. RPC providers
	// reject eth_getLogs calls over wider ranges.
	MaxBlockRange uint64

	// BlocksPerMintWindow is how many blocks an auction is assumed to run
	// for when its creation block is not yet known exactly.
	BlocksPerMintWindow uint64

	// CreationSafetyMargin is subtracted from the mint window when deriving
	// the creation bound from the end estimate.
	CreationSafetyMargin uint64

	// ProfileCacheBlocks is the block TTL of a cached user profile.
	ProfileCacheBlocks uint64

	// AverageBlockTime converts timestamp deltas into block deltas.
	AverageBlockTime time.Duration
}

func (c Config) withDefaults() Config {
	if c.MaxBlockRange == 0 {
		c.MaxBlockRange = defaultMaxBlockRange
	}
	if c.BlocksPerMintWindow == 0 {
		c.BlocksPerMintWindow = defaultBlocksPerMintWindow
	}
	if c.CreationSafetyMargin == 0 {
		c.CreationSafetyMargin = defaultCreationSafetyMargin
	}
	if c.ProfileCacheBlocks == 0 {
		c.ProfileCacheBlocks = defaultProfileCacheBlocks
	}
	if c.AverageBlockTime == 0 {
		c.AverageBlockTime = defaultAverageBlockTime
	}
	return c
}
