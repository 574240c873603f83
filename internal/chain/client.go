package chain

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/goodnatureofminers/auctionsight7000-backend/internal/model"
)

// Backend is the slice of ethclient.Client this package depends on.
type Backend interface {
	BlockNumber(ctx context.Context) (uint64, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
	TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error)
}

// Client implements Reader against a JSON-RPC provider.
type Client struct {
	backend  Backend
	auctions common.Address
	signer   types.Signer

	auctionsABI abi.ABI
	erc721ABI   abi.ABI
	erc1155ABI  abi.ABI
}

// NewClient builds a Client for the auctions contract at the given address.
// chainID is needed to recover transaction senders.
func NewClient(backend Backend, auctionsAddress common.Address, chainID *big.Int) (*Client, error) {
	auctionsABI, err := abi.JSON(strings.NewReader(auctionsABIJSON))
	if err != nil {
		return nil, fmt.Errorf("parse auctions abi: %w", err)
	}
	erc721ABI, err := abi.JSON(strings.NewReader(erc721ABIJSON))
	if err != nil {
		return nil, fmt.Errorf("parse erc721 abi: %w", err)
	}
	erc1155ABI, err := abi.JSON(strings.NewReader(erc1155ABIJSON))
	if err != nil {
		return nil, fmt.Errorf("parse erc1155 abi: %w", err)
	}

	return &Client{
		backend:     backend,
		auctions:    auctionsAddress,
		signer:      types.LatestSignerForChainID(chainID),
		auctionsABI: auctionsABI,
		erc721ABI:   erc721ABI,
		erc1155ABI:  erc1155ABI,
	}, nil
}

// BlockNumber returns the current chain head block number.
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	head, err := c.backend.BlockNumber(ctx)
	if err != nil {
		return 0, providerError("get block number", err)
	}
	return head, nil
}

// LatestAuctionID reads the contract's auctionId counter.
func (c *Client) LatestAuctionID(ctx context.Context) (*big.Int, error) {
	out, err := c.call(ctx, c.auctions, c.auctionsABI, "auctionId")
	if err != nil {
		return nil, err
	}
	values, err := c.auctionsABI.Unpack("auctionId", out)
	if err != nil {
		return nil, fmt.Errorf("unpack auctionId: %w", err)
	}
	id, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("auctionId: unexpected type %T", values[0])
	}
	return id, nil
}

// AuctionState reads the auctions(id) record.
func (c *Client) AuctionState(ctx context.Context, id *big.Int) (AuctionState, error) {
	var state AuctionState
	out, err := c.call(ctx, c.auctions, c.auctionsABI, "auctions", id)
	if err != nil {
		return state, err
	}
	if err := c.auctionsABI.UnpackIntoInterface(&state, "auctions", out); err != nil {
		return state, fmt.Errorf("unpack auctions(%s): %w", id, err)
	}
	return state, nil
}

// CurrentBidPrice reads the minimum accepted next bid for an auction.
func (c *Client) CurrentBidPrice(ctx context.Context, id *big.Int) (*big.Int, error) {
	out, err := c.call(ctx, c.auctions, c.auctionsABI, "currentBidPrice", id)
	if err != nil {
		return nil, err
	}
	values, err := c.auctionsABI.Unpack("currentBidPrice", out)
	if err != nil {
		return nil, fmt.Errorf("unpack currentBidPrice(%s): %w", id, err)
	}
	price, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("currentBidPrice: unexpected type %T", values[0])
	}
	return price, nil
}

// TokenURI reads the metadata URI of a token, dispatching on the standard.
func (c *Client) TokenURI(ctx context.Context, collection common.Address, tokenID *big.Int, standard model.TokenStandard) (string, error) {
	var (
		out []byte
		err error
	)
	contractABI := c.erc721ABI
	method := "tokenURI"
	if standard == model.StandardERC1155 {
		contractABI = c.erc1155ABI
		method = "uri"
	}

	out, err = c.call(ctx, collection, contractABI, method, tokenID)
	if err != nil {
		return "", err
	}
	values, err := contractABI.Unpack(method, out)
	if err != nil {
		return "", fmt.Errorf("unpack %s(%s): %w", method, tokenID, err)
	}
	uri, ok := values[0].(string)
	if !ok {
		return "", fmt.Errorf("%s: unexpected type %T", method, values[0])
	}
	return uri, nil
}

// BidLogs fetches Bid events for one auction in [fromBlock, toBlock], in the
// order the provider returns them.
func (c *Client) BidLogs(ctx context.Context, id *big.Int, fromBlock, toBlock uint64) ([]BidLog, error) {
	logs, err := c.filterLogs(ctx, "Bid", id, fromBlock, toBlock)
	if err != nil {
		return nil, err
	}

	bids := make([]BidLog, 0, len(logs))
	for _, l := range logs {
		bid, err := decodeBidLog(l)
		if err != nil {
			return nil, err
		}
		bids = append(bids, bid)
	}
	return bids, nil
}

// InitLogs fetches AuctionInitialised events for one auction.
func (c *Client) InitLogs(ctx context.Context, id *big.Int, fromBlock, toBlock uint64) ([]InitLog, error) {
	logs, err := c.filterLogs(ctx, "AuctionInitialised", id, fromBlock, toBlock)
	if err != nil {
		return nil, err
	}

	inits := make([]InitLog, 0, len(logs))
	for _, l := range logs {
		init, err := c.decodeInitLog(l)
		if err != nil {
			return nil, err
		}
		inits = append(inits, init)
	}
	return inits, nil
}

// SettleLogs fetches AuctionSettled events for one auction.
func (c *Client) SettleLogs(ctx context.Context, id *big.Int, fromBlock, toBlock uint64) ([]SettleLog, error) {
	logs, err := c.filterLogs(ctx, "AuctionSettled", id, fromBlock, toBlock)
	if err != nil {
		return nil, err
	}

	settles := make([]SettleLog, 0, len(logs))
	for _, l := range logs {
		settle, err := c.decodeSettleLog(l)
		if err != nil {
			return nil, err
		}
		settles = append(settles, settle)
	}
	return settles, nil
}

// TransactionSender recovers the from address of a transaction.
func (c *Client) TransactionSender(ctx context.Context, txHash common.Hash) (common.Address, error) {
	tx, _, err := c.backend.TransactionByHash(ctx, txHash)
	if err != nil {
		return common.Address{}, providerError(fmt.Sprintf("get transaction %s", txHash), err)
	}
	sender, err := types.Sender(c.signer, tx)
	if err != nil {
		return common.Address{}, fmt.Errorf("recover sender of %s: %w", txHash, err)
	}
	return sender, nil
}

func (c *Client) call(ctx context.Context, to common.Address, contractABI abi.ABI, method string, args ...interface{}) ([]byte, error) {
	data, err := contractABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}
	out, err := c.backend.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return nil, providerError(fmt.Sprintf("call %s", method), err)
	}
	return out, nil
}

func (c *Client) filterLogs(ctx context.Context, event string, id *big.Int, fromBlock, toBlock uint64) ([]types.Log, error) {
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: []common.Address{c.auctions},
		Topics: [][]common.Hash{
			{c.auctionsABI.Events[event].ID},
			{common.BigToHash(id)},
		},
	}
	logs, err := c.backend.FilterLogs(ctx, query)
	if err != nil {
		return nil, providerError(fmt.Sprintf("get %s logs [%d, %d]", event, fromBlock, toBlock), err)
	}
	return logs, nil
}

// decodeBidLog decodes a Bid log. All three event arguments are indexed, so
// everything lives in the topics and the data is empty.
func decodeBidLog(l types.Log) (BidLog, error) {
	if len(l.Topics) != 4 {
		return BidLog{}, fmt.Errorf("bid log %s: expected 4 topics, got %d", l.TxHash, len(l.Topics))
	}
	return BidLog{
		Block:    l.BlockNumber,
		LogIndex: l.Index,
		TxHash:   l.TxHash,
		Bidder:   common.BytesToAddress(l.Topics[3].Bytes()),
		Value:    new(big.Int).SetBytes(l.Topics[2].Bytes()),
	}, nil
}

func (c *Client) decodeInitLog(l types.Log) (InitLog, error) {
	if len(l.Topics) != 4 {
		return InitLog{}, fmt.Errorf("init log %s: expected 4 topics, got %d", l.TxHash, len(l.Topics))
	}

	var data struct {
		TokenERCStandard uint16
		EndTimestamp     *big.Int
		Beneficiary      common.Address
	}
	if err := c.auctionsABI.UnpackIntoInterface(&data, "AuctionInitialised", l.Data); err != nil {
		return InitLog{}, fmt.Errorf("decode init log %s: %w", l.TxHash, err)
	}

	return InitLog{
		Block:         l.BlockNumber,
		LogIndex:      l.Index,
		TxHash:        l.TxHash,
		TokenContract: common.BytesToAddress(l.Topics[2].Bytes()),
		TokenID:       new(big.Int).SetBytes(l.Topics[3].Bytes()),
		Standard:      data.TokenERCStandard,
		EndTimestamp:  data.EndTimestamp,
		Beneficiary:   data.Beneficiary,
	}, nil
}

func (c *Client) decodeSettleLog(l types.Log) (SettleLog, error) {
	if len(l.Topics) != 4 {
		return SettleLog{}, fmt.Errorf("settle log %s: expected 4 topics, got %d", l.TxHash, len(l.Topics))
	}

	var data struct {
		Amount *big.Int
	}
	if err := c.auctionsABI.UnpackIntoInterface(&data, "AuctionSettled", l.Data); err != nil {
		return SettleLog{}, fmt.Errorf("decode settle log %s: %w", l.TxHash, err)
	}

	return SettleLog{
		Block:       l.BlockNumber,
		LogIndex:    l.Index,
		TxHash:      l.TxHash,
		Winner:      common.BytesToAddress(l.Topics[2].Bytes()),
		Beneficiary: common.BytesToAddress(l.Topics[3].Bytes()),
		Amount:      data.Amount,
	}, nil
}
