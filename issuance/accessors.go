package issuance

import (
	bin "github.com/gagliardetto/binary"

	"github.com/launchforge/launchpad-go/chain"
)

// Read-only accessors. Together they expose every configuration record
// and progress counter verbatim, so an external observer can reconstruct
// the phase without any hidden state.

func (in *Instance) Owner() chain.Address { return in.params.Owner }

func (in *Instance) Cap() uint64 { return in.params.Cap }

func (in *Instance) RoyaltyBps() uint16 { return in.params.RoyaltyBps }

func (in *Instance) Categories() []Category {
	return append([]Category(nil), in.params.Categories...)
}

func (in *Instance) RefundConfig() RefundConfig { return in.params.Refund }

func (in *Instance) VestingConfig() VestingConfig { return in.params.Vesting }

func (in *Instance) LiquidityConfig() LiquidityConfig { return in.params.Liquidity }

func (in *Instance) FarmConfig() FarmConfig { return in.params.Farm }

func (in *Instance) MintedInCategory(i int) uint64 {
	if i < 0 || i >= len(in.state.mintedPerCategory) {
		return 0
	}
	return in.state.mintedPerCategory[i]
}

// TotalMinted counts units issued through Mint; vesting and seeding
// issuance is not included.
func (in *Instance) TotalMinted() uint64 { return in.state.totalMinted }

// TotalRaised is the cumulative value paid for minted units, fees
// excluded.
func (in *Instance) TotalRaised() bin.Uint128 { return in.state.totalRaised }

// MintCompleteTime is zero until the mint fully sells out.
func (in *Instance) MintCompleteTime() int64 { return in.state.mintCompleteTime }

func (in *Instance) LockedLiquiditySupply() uint64 { return in.state.lockedSupply }

func (in *Instance) SeededFarmSupply() uint64 { return in.state.seededFarmSupply }

func (in *Instance) TotalVestClaimed() uint64 { return in.state.totalVestClaimed }

func (in *Instance) MigrationTarget() (chain.Address, bool) {
	return in.state.migrationTarget, in.state.migrationProposed
}

func (in *Instance) MinterAccountOf(addr chain.Address) (MinterAccount, bool) {
	acct, ok := in.state.minters[addr]
	if !ok {
		return MinterAccount{}, false
	}
	return *acct, true
}
