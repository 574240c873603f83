package model

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// OptionalText is a best-effort resolved attribute. Known distinguishes "the
// resolver answered with an empty value" from "resolution was never attempted
// or failed".
type OptionalText struct {
	Value string `json:"value"`
	Known bool   `json:"known"`
}

// Text returns a resolved OptionalText.
func Text(v string) OptionalText {
	return OptionalText{Value: v, Known: true}
}

// User is a lazily created per-address identity record. Profile fields are
// refreshed in place once the block-based freshness window expires.
type User struct {
	Address     common.Address `json:"address"`
	ENS         OptionalText   `json:"ens"`
	Avatar      OptionalText   `json:"avatar"`
	Description OptionalText   `json:"description"`
	URL         OptionalText   `json:"url"`
	Email       OptionalText   `json:"email"`
	Twitter     OptionalText   `json:"twitter"`
	GitHub      OptionalText   `json:"github"`

	// ProfileUpdatedAtBlock is stamped on every refresh attempt, including
	// partial failures, so a broken resolver cannot cause a re-fetch storm.
	ProfileUpdatedAtBlock uint64 `json:"profileUpdatedAtBlock"`
}

// DisplayName returns the ENS name when one resolved, otherwise a shortened
// hex address.
func (u *User) DisplayName() string {
	if u.ENS.Known && u.ENS.Value != "" {
		return u.ENS.Value
	}
	return ShortAddress(u.Address)
}

// ShortAddress renders an address as 0xabcd...1234.
func ShortAddress(a common.Address) string {
	hex := a.Hex()
	return fmt.Sprintf("%s...%s", hex[:6], hex[len(hex)-4:])
}
