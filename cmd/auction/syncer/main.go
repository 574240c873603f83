package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/auctionsight7000-backend/internal/chain"
	"github.com/goodnatureofminers/auctionsight7000-backend/internal/ens"
	"github.com/goodnatureofminers/auctionsight7000-backend/internal/metadata"
	"github.com/goodnatureofminers/auctionsight7000-backend/internal/metrics"
	"github.com/goodnatureofminers/auctionsight7000-backend/internal/model"
	"github.com/goodnatureofminers/auctionsight7000-backend/internal/repository/clickhouse"
	"github.com/goodnatureofminers/auctionsight7000-backend/internal/service"
	"github.com/goodnatureofminers/auctionsight7000-backend/internal/store"
	"github.com/goodnatureofminers/auctionsight7000-backend/pkg/batcher"
)

type config struct {
	RPCURL          string        `long:"rpc-url" env:"AUCTION_SYNCER_RPC_URL" description:"EVM provider RPC URL" default:"http://127.0.0.1:8545"`
	AuctionsAddress string        `long:"auctions-address" env:"AUCTION_SYNCER_AUCTIONS_ADDRESS" description:"auctions contract address" required:"true"`
	Network         string        `long:"network" env:"AUCTION_SYNCER_NETWORK" description:"network name for metrics labels" default:"mainnet"`
	SnapshotPath    string        `long:"snapshot-path" env:"AUCTION_SYNCER_SNAPSHOT_PATH" description:"store snapshot file" default:"auctions.json"`
	ClickhouseDSN   string        `long:"clickhouse-dsn" env:"AUCTION_SYNCER_CLICKHOUSE_DSN" description:"ClickHouse DSN for the bid archive; empty disables archiving"`
	RPCRateLimit    int           `long:"rpc-rate-limit" env:"AUCTION_SYNCER_RPC_RATE_LIMIT" description:"provider requests per second" default:"20"`
	HTTPTimeout     time.Duration `long:"http-timeout" env:"AUCTION_SYNCER_HTTP_TIMEOUT" description:"HTTP timeout for metadata requests" default:"30s"`
	IPFSGateway     string        `long:"ipfs-gateway" env:"AUCTION_SYNCER_IPFS_GATEWAY" description:"IPFS HTTP gateway" default:"https://ipfs.io/ipfs/"`
	ArweaveGateway  string        `long:"arweave-gateway" env:"AUCTION_SYNCER_ARWEAVE_GATEWAY" description:"Arweave HTTP gateway" default:"https://arweave.net/"`
	MetricsAddr     string        `long:"metrics-addr" env:"AUCTION_SYNCER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if !common.IsHexAddress(cfg.AuctionsAddress) {
		logger.Fatal("invalid auctions contract address", zap.String("address", cfg.AuctionsAddress))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("auction syncer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	ec, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return fmt.Errorf("dial provider: %w", err)
	}
	defer ec.Close()

	chainID, err := ec.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("read chain id: %w", err)
	}

	client, err := chain.NewClient(ec, common.HexToAddress(cfg.AuctionsAddress), chainID)
	if err != nil {
		return fmt.Errorf("init chain client: %w", err)
	}
	reader := chain.NewObservedReader(
		chain.NewRateLimitedReader(client, cfg.RPCRateLimit),
		metrics.NewChainClient(cfg.Network),
	)

	st, err := store.Load(cfg.SnapshotPath, logger.Named("store"))
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	var archiver service.BidArchiver
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository(cfg.Network))
		if err != nil {
			return fmt.Errorf("init bid archive: %w", err)
		}

		archiveBatcher := batcher.New[model.BidEvent](
			logger.Named("bidArchiveBatcher"),
			repo.InsertBidEvents,
			500,
			30*time.Second,
			1,
		)
		archiveBatcher.Start(ctx)
		defer archiveBatcher.Stop()

		archiver = &archiveSink{batcher: archiveBatcher}
	}

	svc, err := service.NewService(
		st,
		reader,
		ens.NewResolver(ec),
		metadata.NewClient(metadata.Gateways{IPFS: cfg.IPFSGateway, Arweave: cfg.ArweaveGateway}, cfg.HTTPTimeout),
		archiver,
		metrics.NewSyncEngine(cfg.Network),
		service.Config{},
		logger.Named("service"),
	)
	if err != nil {
		return err
	}

	syncer, err := service.NewSyncer(svc, st, cfg.SnapshotPath, logger.Named("syncer"))
	if err != nil {
		return err
	}

	err = syncer.Run(ctx)

	if cfg.SnapshotPath != "" {
		if saveErr := st.Save(cfg.SnapshotPath); saveErr != nil {
			logger.Error("saving snapshot on shutdown failed", zap.Error(saveErr))
		}
	}
	return err
}

// archiveSink feeds merged bid batches into the archive batcher.
type archiveSink struct {
	batcher *batcher.Batcher[model.BidEvent]
}

func (s *archiveSink) ArchiveBids(ctx context.Context, bids []model.BidEvent) error {
	for _, bid := range bids {
		if err := s.batcher.Add(ctx, bid); err != nil {
			return err
		}
	}
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
