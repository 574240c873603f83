package service

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/auctionsight7000-backend/internal/store"
)

// Service is the synchronization engine. All mutation of a single auction is
// serialized through the store's per-auction lock; different auctions sync
// concurrently.
type Service struct {
	logger   *zap.Logger
	store    *store.Store
	reader   ChainReader
	profiles ProfileResolver
	metadata MetadataClient
	archiver BidArchiver
	metrics  SyncMetrics
	cfg      Config
	now      func() time.Time
}

// NewService builds the engine. The archiver is optional and may be nil.
func NewService(
	st *store.Store,
	reader ChainReader,
	profiles ProfileResolver,
	metadataClient MetadataClient,
	archiver BidArchiver,
	metrics SyncMetrics,
	cfg Config,
	logger *zap.Logger,
) (*Service, error) {
	if st == nil {
		return nil, errors.New("store is required")
	}
	if reader == nil {
		return nil, errors.New("chain reader is required")
	}
	if profiles == nil {
		return nil, errors.New("profile resolver is required")
	}
	if metadataClient == nil {
		return nil, errors.New("metadata client is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics are required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &Service{
		logger:   logger,
		store:    st,
		reader:   reader,
		profiles: profiles,
		metadata: metadataClient,
		archiver: archiver,
		metrics:  metrics,
		cfg:      cfg.withDefaults(),
		now:      time.Now,
	}, nil
}
