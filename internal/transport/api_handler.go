// Package transport exposes the read-only HTTP API over the auction store.
package transport

import (
	"encoding/json"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/auctionsight7000-backend/internal/store"
)

// APIHandler serves auction and user resources from the store.
type APIHandler struct {
	logger *zap.Logger
	store  *store.Store
}

// NewAPIHandler returns an APIHandler instance.
func NewAPIHandler(st *store.Store, logger *zap.Logger) *APIHandler {
	return &APIHandler{logger: logger, store: st}
}

// Register mounts the API routes on mux.
func (h *APIHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.health)
	mux.HandleFunc("GET /v1/auctions", h.listAuctions)
	mux.HandleFunc("GET /v1/auctions/{id}", h.getAuction)
	mux.HandleFunc("GET /v1/auctions/{id}/bids", h.getAuctionBids)
	mux.HandleFunc("GET /v1/users/{address}", h.getUser)
}

func (h *APIHandler) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *APIHandler) listAuctions(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.Auctions())
}

func (h *APIHandler) getAuction(w http.ResponseWriter, r *http.Request) {
	id, ok := parseAuctionID(r.PathValue("id"))
	if !ok {
		h.writeError(w, http.StatusBadRequest, "invalid auction id")
		return
	}

	a, ok := h.store.Auction(id)
	if !ok {
		h.writeError(w, http.StatusNotFound, "auction not found")
		return
	}
	h.writeJSON(w, http.StatusOK, a)
}

func (h *APIHandler) getAuctionBids(w http.ResponseWriter, r *http.Request) {
	id, ok := parseAuctionID(r.PathValue("id"))
	if !ok {
		h.writeError(w, http.StatusBadRequest, "invalid auction id")
		return
	}

	a, ok := h.store.Auction(id)
	if !ok {
		h.writeError(w, http.StatusNotFound, "auction not found")
		return
	}
	h.writeJSON(w, http.StatusOK, a.Bids)
}

func (h *APIHandler) getUser(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("address")
	if !common.IsHexAddress(raw) {
		h.writeError(w, http.StatusBadRequest, "invalid address")
		return
	}

	u, ok := h.store.User(common.HexToAddress(raw))
	if !ok {
		h.writeError(w, http.StatusNotFound, "user not found")
		return
	}
	h.writeJSON(w, http.StatusOK, u)
}

func parseAuctionID(raw string) (*big.Int, bool) {
	id, ok := new(big.Int).SetString(raw, 10)
	if !ok || id.Sign() < 1 {
		return nil, false
	}
	return id, true
}

func (h *APIHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("writing response failed", zap.Error(err))
	}
}

func (h *APIHandler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
