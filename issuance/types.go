// Package issuance implements the lifecycle manager for one token
// issuance event: tiered whitelisted minting with a platform fee, refunds
// after an expired mint, linear vesting of a reserved allocation, and
// progressive seeding of a locked liquidity pool and a yield-farm reward
// pool. One Instance per event; every public operation is atomic under the
// chain runtime's serialized execution.
package issuance

import (
	"github.com/launchforge/launchpad-go/chain"
	"github.com/launchforge/launchpad-go/merkle"
)

// Category is one mint tier: a unit price, a supply cap, and an optional
// whitelist commitment. Immutable after setup. The caller-supplied order
// is preserved, never re-sorted.
type Category struct {
	Price         uint64
	Supply        uint64
	WhitelistRoot merkle.Root
}

// RefundConfig enables the price-refund escape hatch. MintEnd zero means
// refunds are disabled; otherwise it is the deadline after which an
// incomplete mint becomes refundable.
type RefundConfig struct {
	MintEnd int64
}

func (c RefundConfig) Enabled() bool { return c.MintEnd != 0 }

// VestingConfig reserves Amount units that unlock linearly over Duration
// seconds for Receiver. The zero receiver means the feature is disabled;
// Duration zero means instant unlock at vesting start.
type VestingConfig struct {
	Receiver chain.Address
	Duration int64
	Amount   uint64
}

func (c VestingConfig) Enabled() bool { return c.Amount != 0 }

// LiquidityConfig reserves Amount units for pool seeding, each deposited
// alongside Price of native value.
type LiquidityConfig struct {
	Amount uint64
	Price  uint64
}

func (c LiquidityConfig) Enabled() bool { return c.Amount != 0 }

// FarmConfig reserves Amount units for yield-farm seeding with a reward
// emission horizon of Duration seconds.
type FarmConfig struct {
	Amount   uint64
	Duration int64
}

func (c FarmConfig) Enabled() bool { return c.Amount != 0 }

// SetupParams is the one-time configuration record for an instance.
type SetupParams struct {
	Name       string
	Symbol     string
	Categories []Category
	Cap        uint64
	RoyaltyBps uint16
	Refund     RefundConfig
	Vesting    VestingConfig
	Liquidity  LiquidityConfig
	Farm       FarmConfig
	Owner      chain.Address
}

// MinterAccount tracks one address's cumulative mints and reclaimable
// value. Only maintained while refunds are enabled. A fully refunded
// account reaches exactly (0, 0) and is never deleted.
type MinterAccount struct {
	TotalMinted     uint64
	AvailableRefund uint64
}
