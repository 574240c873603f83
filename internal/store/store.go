// Package store owns every auction and user entity. Other components receive
// pointers into the store, never copies, so mutations are visible store-wide.
package store

import (
	"math/big"
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/auctionsight7000-backend/internal/model"
)

// CurrentSchemaVersion is bumped whenever the snapshot layout changes in an
// incompatible way. Older snapshots are discarded wholesale on load.
const CurrentSchemaVersion = 7

// Store is a mutex-guarded aggregate of all auctions and users.
//
// The table lock only guards the maps. Mutating an auction's fields requires
// the per-auction lock from LockAuction; forward and backward sync perform
// read-modify-write sequences on watermarks and the bid list that must never
// interleave for the same auction id. Work on distinct auctions is
// independent and may run in parallel.
type Store struct {
	logger *zap.Logger

	mu            sync.RWMutex
	latestAuction *big.Int
	auctions      map[string]*model.Auction
	users         map[common.Address]*model.User
	auctionLocks  map[string]*sync.Mutex
}

// New returns an empty store.
func New(logger *zap.Logger) *Store {
	return &Store{
		logger:       logger,
		auctions:     make(map[string]*model.Auction),
		users:        make(map[common.Address]*model.User),
		auctionLocks: make(map[string]*sync.Mutex),
	}
}

// LockAuction serializes sync operations for one auction id. It returns the
// unlock function. The lock outlives the auction entity; a forced resync that
// clears bid history keeps holding the same lock.
func (s *Store) LockAuction(id *big.Int) func() {
	key := id.String()

	s.mu.Lock()
	l, ok := s.auctionLocks[key]
	if !ok {
		l = &sync.Mutex{}
		s.auctionLocks[key] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// Auction returns the auction with the given id, if present.
func (s *Store) Auction(id *big.Int) (*model.Auction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.auctions[id.String()]
	return a, ok
}

// HasAuction reports whether an auction entity exists for the id.
func (s *Store) HasAuction(id *big.Int) bool {
	_, ok := s.Auction(id)
	return ok
}

// PutAuction inserts or replaces an auction entity.
func (s *Store) PutAuction(a *model.Auction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auctions[a.ID.String()] = a
}

// Auctions returns all auctions sorted ascending by id.
func (s *Store) Auctions() []*model.Auction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*model.Auction, 0, len(s.auctions))
	for _, a := range s.auctions {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].ID.Cmp(all[j].ID) < 0
	})
	return all
}

// LatestAuction returns the highest auction id read from the contract, or nil
// if none has been read yet.
func (s *Store) LatestAuction() *big.Int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latestAuction
}

// SetLatestAuction records the authoritative latest auction id.
func (s *Store) SetLatestAuction(id *big.Int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latestAuction = id
}

// User returns the user entity for an address, if present.
func (s *Store) User(address common.Address) (*model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[address]
	return u, ok
}

// EnsureUser returns the user entity for an address, creating an empty one on
// first reference. Users are never deleted.
func (s *Store) EnsureUser(address common.Address) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.users[address]; ok {
		return u
	}
	u := &model.User{Address: address}
	s.users[address] = u
	return u
}

// Users returns all known users in unspecified order.
func (s *Store) Users() []*model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*model.User, 0, len(s.users))
	for _, u := range s.users {
		all = append(all, u)
	}
	return all
}
