// Package ens resolves reverse names and profile text records.
package ens

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	goens "github.com/wealdtech/go-ens/v3"
)

// Resolver looks up ENS records through a contract backend. Lookups are
// best-effort from the caller's point of view; this package just reports
// errors and lets the profile cache decide what to swallow.
type Resolver struct {
	backend bind.ContractBackend
}

// NewResolver builds a Resolver on top of an Ethereum client.
func NewResolver(backend bind.ContractBackend) *Resolver {
	return &Resolver{backend: backend}
}

// ReverseName resolves the primary name for an address. An address without a
// reverse record returns an error from the underlying library.
func (r *Resolver) ReverseName(ctx context.Context, address common.Address) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name, err := goens.ReverseResolve(r.backend, address)
	if err != nil {
		return "", fmt.Errorf("reverse resolve %s: %w", address, err)
	}
	return name, nil
}

// Text resolves a named text record for a name.
func (r *Resolver) Text(ctx context.Context, name, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	resolver, err := goens.NewResolver(r.backend, name)
	if err != nil {
		return "", fmt.Errorf("resolver for %s: %w", name, err)
	}
	value, err := resolver.Text(key)
	if err != nil {
		return "", fmt.Errorf("text record %s of %s: %w", key, name, err)
	}
	return value, nil
}
