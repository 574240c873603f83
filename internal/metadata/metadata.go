// Package metadata resolves token URIs and fetches token metadata documents.
package metadata

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrMetadataFetch marks an unreachable or unparsable metadata document.
	// Auction creation fails when metadata cannot be obtained.
	ErrMetadataFetch = errors.New("metadata fetch failed")

	// ErrUnsupportedURI marks a relative or unknown URI scheme. Failing fast
	// beats guessing a base URL.
	ErrUnsupportedURI = errors.New("unsupported uri")
)

const (
	defaultIPFSGateway    = "https://ipfs.io/ipfs/"
	defaultArweaveGateway = "https://arweave.net/"

	jsonDataURIPrefix = "data:application/json;base64,"

	maxMetadataBytes = 4 << 20
)

// Gateways configures how non-HTTP URI schemes are rewritten.
type Gateways struct {
	IPFS    string
	Arweave string
}

// DefaultGateways returns the public gateway endpoints.
func DefaultGateways() Gateways {
	return Gateways{
		IPFS:    defaultIPFSGateway,
		Arweave: defaultArweaveGateway,
	}
}

// TokenMetadata is the parsed token metadata document. Image and
// AnimationURL are already rewritten to fetchable form.
type TokenMetadata struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	AnimationURL string `json:"animation_url"`
}

// ResolveURI rewrites a token URI into an HTTP-fetchable (or inline data)
// form. Empty input resolves to empty. Relative paths fail with
// ErrUnsupportedURI.
func ResolveURI(uri string, gw Gateways) (string, error) {
	switch {
	case uri == "":
		return "", nil
	case strings.HasPrefix(uri, "data:"):
		return uri, nil
	case strings.HasPrefix(uri, "ipfs://"):
		return gw.IPFS + strings.TrimPrefix(uri, "ipfs://"), nil
	case strings.HasPrefix(uri, "ar://"):
		return gw.Arweave + strings.TrimPrefix(uri, "ar://"), nil
	// Bare IPFS CIDs show up in the wild without a scheme.
	case strings.HasPrefix(uri, "Qm"), strings.HasPrefix(uri, "baf"):
		return gw.IPFS + uri, nil
	case strings.HasPrefix(uri, "http://"), strings.HasPrefix(uri, "https://"):
		return uri, nil
	case strings.HasPrefix(uri, "/"):
		return "", fmt.Errorf("%w: relative uri %q needs a base url", ErrUnsupportedURI, uri)
	}
	return uri, nil
}

// ExpandERC1155ID substitutes the ERC-1155 {id} placeholder with the token id
// as a 64-character lowercase hex string.
func ExpandERC1155ID(uri string, tokenID *big.Int) string {
	if tokenID == nil {
		return uri
	}
	return strings.ReplaceAll(uri, "{id}", fmt.Sprintf("%064s", tokenID.Text(16)))
}

// Client fetches and parses token metadata documents.
type Client struct {
	http     *http.Client
	gateways Gateways
}

// NewClient builds a metadata client. A zero timeout defaults to 30s.
func NewClient(gateways Gateways, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		http:     &http.Client{Timeout: timeout},
		gateways: gateways,
	}
}

// Fetch resolves rawURI, retrieves the metadata document and parses it. The
// Image and AnimationURL fields of the result are resolved through the same
// gateway rewriting before returning.
func (c *Client) Fetch(ctx context.Context, rawURI string) (TokenMetadata, error) {
	var meta TokenMetadata

	uri, err := ResolveURI(rawURI, c.gateways)
	if err != nil {
		return meta, err
	}
	if uri == "" {
		return meta, fmt.Errorf("%w: empty token uri", ErrMetadataFetch)
	}

	raw, err := c.retrieve(ctx, uri)
	if err != nil {
		return meta, err
	}

	if err := json.Unmarshal(raw, &meta); err != nil {
		return meta, fmt.Errorf("parse metadata from %s: %w", uri, errors.Join(ErrMetadataFetch, err))
	}

	if meta.Image, err = ResolveURI(meta.Image, c.gateways); err != nil {
		return meta, err
	}
	if meta.AnimationURL, err = ResolveURI(meta.AnimationURL, c.gateways); err != nil {
		return meta, err
	}
	return meta, nil
}

func (c *Client) retrieve(ctx context.Context, uri string) ([]byte, error) {
	if strings.HasPrefix(uri, jsonDataURIPrefix) {
		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, jsonDataURIPrefix))
		if err != nil {
			return nil, fmt.Errorf("decode data uri: %w", errors.Join(ErrMetadataFetch, err))
		}
		return raw, nil
	}
	if strings.HasPrefix(uri, "data:") {
		return nil, fmt.Errorf("%w: data uri is not json metadata", ErrMetadataFetch)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("build metadata request: %w", errors.Join(ErrMetadataFetch, err))
	}
	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch metadata from %s: %w", uri, errors.Join(ErrMetadataFetch, err))
	}
	defer func() {
		_ = res.Body.Close()
	}()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned status %d", ErrMetadataFetch, uri, res.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxMetadataBytes))
	if err != nil {
		return nil, fmt.Errorf("read metadata from %s: %w", uri, errors.Join(ErrMetadataFetch, err))
	}
	return raw, nil
}
